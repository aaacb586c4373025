package basics

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func run(t *testing.T, name string, seed uint64) string {
	t.Helper()
	var buf bytes.Buffer
	env := catalog.NewEnv(&buf)
	env.Rand = rand.New(rand.NewPCG(seed, seed))

	for _, d := range Demos() {
		if d.Name == name {
			require.NoError(t, d.Run(context.Background(), env))
			return buf.String()
		}
	}
	t.Fatalf("no demo %q", name)
	return ""
}

func TestDemosProduceExpectedLines(t *testing.T) {
	tests := map[string][]string{
		"arrays": {
			"inferred[2]: 30",
			"reversed: [50 40 30 20 10]",
			"index of 30: 2",
			"array sees the change too: [50 40 30 20 10]",
			"literal=[1 2 3 4 5] arrCopy=[99 2 3 4 5]",
			"4 5  (len 2)",
			"sum: 15",
		},
		"strings": {
			"HELLO WORLD",
			"index of 'o': 4",
			`trim: "padded string"`,
			"insert: inserinthello world",
			"substring: World",
			"replace: Hello Go",
		},
		"maths": {"RoundToEven(2.5): 2", "Sign(-7):"},
		"methods": {
			"Multiply float64: 8.75",
			"Name: Alice, Age: 18",
			"Name: Bob, Age: 25",
			"after pointer param: 10",
			"variadic: [] [1 2 3] [10 20 30 40 50]",
			"Factorial(5): 120",
			"Cube(3): 27",
		},
		"typecasting": {
			"65 int",
			"1000 int64",
			"int(3.140934691) = 3",
			"uint8(300) = 44 (wraps)",
			"123 int",
			`Atoi("12x") error:`,
		},
	}
	for name, wants := range tests {
		t.Run(name, func(t *testing.T) {
			out := run(t, name, 1)
			for _, want := range wants {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestMathsValues(t *testing.T) {
	out := run(t, "maths", 1)
	assert.Regexp(t, `Sqrt\(49\):\s+7\n`, out)
	assert.Regexp(t, `Sign\(-7\):\s+-1\n`, out)
	assert.Regexp(t, `Trunc\(9\.87\):\s+9\n`, out)
}

func TestRandomsReproducibleWithSeed(t *testing.T) {
	assert.Equal(t, run(t, "randoms", 42), run(t, "randoms", 42))
	assert.NotEqual(t, run(t, "randoms", 42), run(t, "randoms", 43))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, GenerateSeq(3))
	assert.Equal(t, 0, Sum(nil))
	assert.Equal(t, -1, Sign(-0.5))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Factorial(0))
	assert.Equal(t, "0a-ff", formatBytes([]byte{0x0a, 0xff}))
	assert.Equal(t, "abXYcd", Insert("abcd", 2, "XY"))
}
