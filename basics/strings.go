package basics

import (
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// demoStrings shows the strings package functions most programs need.
// Strings are immutable byte sequences; every "modifying" call returns a
// new string.
func demoStrings(env *catalog.Env) {
	str1 := "Hello"
	str2 := "World"
	str3 := "hello world"

	concat := str1 + " " + str2
	env.Println(" ", concat)                               // Hello World
	env.Println(" ", strings.ToUpper(concat))              // HELLO WORLD
	env.Println(" ", strings.ToLower(concat))              // hello world
	env.Println("  len:", len(str1))                       // 5
	env.Println("  contains:", strings.Contains(concat, "World"))
	env.Println("  prefix:", strings.HasPrefix(concat, "He"))
	env.Println("  suffix:", strings.HasSuffix(concat, "ld"))
	env.Println("  index of 'o':", strings.IndexByte(str1, 'o')) // 4
	env.Printf("  trim: %q\n", strings.TrimSpace("   padded string   "))
	env.Println("  compare:", strings.Compare(str1, str3)) // -1: 'H' < 'h'
	env.Println("  equal fold:", strings.EqualFold(concat, str3))

	// There is no Insert; slicing and concatenation do the job.
	env.Println("  insert:", Insert(str3, 0, "inserint"))
	env.Println("  substring:", concat[6:6+5]) // World
	env.Println("  replace:", strings.ReplaceAll(concat, "World", "Go"))
}

// Insert returns s with v inserted at byte offset i.
func Insert(s string, i int, v string) string {
	return s[:i] + v + s[i:]
}
