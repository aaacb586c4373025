package lambdas

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func TestClosures(t *testing.T) {
	assert.Equal(t, 30, Multiplier(3)(10))
	assert.Equal(t, 25, Power(2)(5))
	assert.Equal(t, 8, Power(3)(2))
	assert.Equal(t, 1, Power(0)(7))

	a, b := Counter(), Counter()
	a()
	a()
	assert.Equal(t, 3, a())
	assert.Equal(t, 1, b()) // independent state
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demoLambdas(context.Background(), catalog.NewEnv(&buf)))

	for _, want := range []string{
		"square(5): 25",
		"3*4 + 10: 22",
		"multiplyBy3(10): 30",
		"captured factor (5): 50",
		"after factor = 10:  100",
		"even numbers: 2, 4, 6",
		"squares: 1, 4, 9, 16, 25, 36",
		"[Name] Alice",
		"counter after three calls: 3",
		"per-iteration capture: 0 1 2",
		"method value: method value",
	} {
		assert.Contains(t, buf.String(), want)
	}
}
