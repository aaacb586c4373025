package collections

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

// demoText is a second pass over strings focused on building and
// inspecting text.
func demoText(env *catalog.Env) {
	ui.Sub(env.Out, "concatenation & formatting")
	s1, s2 := "Hello", "World"
	env.Println("  concatenated:", s1+" "+s2)

	name, age := "Prasu", 21
	env.Println(" ", fmt.Sprintf("Name: %s, Age: %d", name, age))

	ui.Sub(env.Out, "raw string literals")
	path := `C:\Users\Prasu\Documents` // backslashes are literal
	env.Println("  path:", path)

	ui.Sub(env.Out, "inspection")
	str := "  Go Programming "
	env.Printf("  trim:       %q\n", strings.TrimSpace(str))
	env.Printf("  upper:      %q\n", strings.ToUpper(str))
	env.Println("  contains:  ", strings.Contains(str, "Program"))
	env.Println("  has prefix:", strings.HasPrefix(strings.TrimSpace(str), "G"))
	env.Println("  has suffix:", strings.HasSuffix(strings.TrimSpace(str), "ing"))
	env.Println("  index 'a': ", strings.IndexByte(str, 'a'))
	env.Printf("  str[2:7]:   %q\n", str[2:7])
	env.Printf("  replace:    %q\n", strings.Replace(str, "Go", "Gopher", 1))

	ui.Sub(env.Out, "split & join")
	words := strings.Fields("Go is fun to learn")
	for _, w := range words {
		env.Println("   ", w)
	}
	env.Println("  joined:", strings.Join(words, "-"))

	ui.Sub(env.Out, "number formatting")
	env.Println(" ", fmt.Sprintf("Total: %s", FormatMoney(1234.56, "$")))
	env.Println(" ", fmt.Sprintf("padded: [%8.2f] [%-8d] [%08d]", 3.14159, 42, 42))

	ui.Sub(env.Out, "equality")
	a, b := "Test", "test"
	env.Println("  a == b:     ", a == b)
	env.Println("  EqualFold:  ", strings.EqualFold(a, b))

	ui.Sub(env.Out, "empty & whitespace")
	env.Println("  empty == \"\":        ", IsEmpty(""))
	env.Println("  blank \"   \":         ", IsBlank("   "))

	ui.Sub(env.Out, "bytes vs runes")
	word := "héllo"
	env.Printf("  len(%q)=%d bytes, %d runes\n", word, len(word), utf8.RuneCountInString(word))
}

// IsEmpty reports whether s has no bytes. Go strings cannot be nil.
func IsEmpty(s string) bool { return s == "" }

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// FormatMoney renders v with two decimals and thousands separators.
func FormatMoney(v float64, symbol string) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := fmt.Sprintf("%.2f", v)
	intPart, frac, _ := strings.Cut(whole, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + symbol + b.String() + "." + frac
}
