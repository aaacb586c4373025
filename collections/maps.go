package collections

import (
	"maps"
	"slices"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// demoMap covers map operations. Iteration order over a map is randomised
// on purpose; sort the keys when output order matters.
func demoMap(env *catalog.Env) {
	m := map[int]string{1: "One", 2: "Two", 3: "Three"}

	m[2] = "Two Updated" // assignment adds or overwrites
	m[4] = "Four"

	_, has3 := m[3]
	env.Println("  has key 3:", has3)
	env.Println("  has value Five:", ContainsValue(m, "Five"))

	if v, ok := m[1]; ok { // comma-ok: the TryGetValue idiom
		env.Println("  key 1 has value:", v)
	}

	delete(m, 4)
	env.Println("  len:", len(m))

	keys := slices.Sorted(maps.Keys(m))
	env.Println("  keys:", keys)
	for _, k := range keys {
		env.Printf("  %d = %s\n", k, m[k])
	}

	clear(m)
	env.Println("  len after clear:", len(m))

	env.Println("  TryAdd 5:", TryAdd(m, 5, "Five"))
	env.Println("  TryAdd 1:", TryAdd(m, 1, "One"))
	env.Println("  TryAdd 1 again:", TryAdd(m, 1, "One New")) // false: key exists

	v := m[10] // missing key → zero value, never a panic
	env.Printf("  value for key 10: %q\n", v)
	env.Printf("  GetOrDefault(10, %q): %q\n", "none", GetOrDefault(m, 10, "none"))

	var nilMap map[string]int
	env.Println("  reading a nil map:", nilMap["x"], "(writing would panic)")
}

// TryAdd inserts v under k only if k is absent.
func TryAdd[K comparable, V any](m map[K]V, k K, v V) bool {
	if _, ok := m[k]; ok {
		return false
	}
	m[k] = v
	return true
}

// GetOrDefault returns m[k] or def when k is absent.
func GetOrDefault[K comparable, V any](m map[K]V, k K, def V) V {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

// ContainsValue scans the map's values.
func ContainsValue[K, V comparable](m map[K]V, v V) bool {
	for _, x := range m {
		if x == v {
			return true
		}
	}
	return false
}
