package basics

import (
	"encoding/hex"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// demoRandoms uses the Env's generator so that a fixed --seed reproduces
// the output. math/rand/v2 has no global Seed; build a *rand.Rand with a
// source instead.
func demoRandoms(env *catalog.Env) {
	r := env.Rand

	env.Println("  Int32():", r.Int32())
	env.Println("  1 + IntN(99):", 1+r.IntN(99)) // [1, 100)
	env.Println("  Float64():", r.Float64())      // [0.0, 1.0)

	buf := make([]byte, 5)
	for i := range buf {
		buf[i] = byte(r.Uint32())
	}
	env.Println("  bytes:", strings.ToUpper(formatBytes(buf)))

	perm := r.Perm(5)
	env.Println("  Perm(5):", perm)
}

// formatBytes renders b as dash-separated hex pairs, e.g. "0a-ff-10".
func formatBytes(b []byte) string {
	parts := make([]string, len(b))
	for i := range b {
		parts[i] = hex.EncodeToString(b[i : i+1])
	}
	return strings.Join(parts, "-")
}
