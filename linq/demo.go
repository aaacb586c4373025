package linq

import (
	"context"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{{
		Name:  "linq",
		Topic: "linq",
		Title: "Query combinators over iter.Seq",
		Run:   demoQueries,
	}}
}

func demoQueries(_ context.Context, env *catalog.Env) error {
	nums := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 324, 4, 534, -5345, -5}
	words := []string{"csharp", "java", "science", "IT", "LINQ", "123"}

	ui.Sub(env.Out, "select")
	env.Println("  words:", ToSlice(Select(From(words), Identity[string])))
	env.Println("  upper:", ToSlice(Select(From(words), strings.ToUpper)))

	ui.Sub(env.Out, "where")
	over5 := Where(From(nums), func(i int) bool { return i > 5 })
	env.Println("  > 5:", ToSlice(over5))

	ui.Sub(env.Out, "order by")
	env.Println("  ascending: ", ToSlice(OrderBy(From(nums), Identity[int])))
	env.Println("  descending:", ToSlice(OrderByDescending(From(nums), Identity[int])))
	env.Println("  words by length:", ToSlice(OrderBy(From(words), func(s string) int { return len(s) })))

	ui.Sub(env.Out, "composition — lazy until collected")
	evaluated := 0
	query := Take(
		Where(From(nums), func(i int) bool {
			evaluated++
			return i%2 == 0
		}),
		3,
	)
	env.Println("  predicate calls before ranging:", evaluated) // 0
	env.Println("  first three evens:", ToSlice(query))
	env.Println("  predicate calls after:", evaluated) // stops early

	ui.Sub(env.Out, "aggregates")
	env.Println("  count:", Count(From(nums)))
	env.Println("  sum:", Sum(From(nums)))
	env.Println("  any negative:", Any(From(nums), func(i int) bool { return i < 0 }))
	env.Println("  all < 1000:", All(From(nums), func(i int) bool { return i < 1000 }))
	first, _ := First(Where(From(words), func(s string) bool { return strings.ToUpper(s) == s }))
	env.Println("  first all-caps word:", first)
	env.Println("  distinct:", ToSlice(Distinct(From(nums))))
	env.Println("  skip 10:", ToSlice(Skip(From(nums), 10)))

	ui.Sub(env.Out, "group by")
	for _, g := range GroupBy(From(words), func(s string) int { return len(s) }) {
		env.Printf("  len %d: %v\n", g.Key, g.Items)
	}
	return nil
}
