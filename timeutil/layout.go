package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrLayout = errors.New("unsupported layout token")

// tokens maps custom date pattern tokens (the dd/MM/yyyy family) to Go
// reference-time fragments. Longer tokens come first so the scanner is
// greedy.
var tokens = []struct{ pattern, layout string }{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"dd", "02"},
	{"d", "2"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"fffffff", "0000000"},
	{"ffffff", "000000"},
	{"fffff", "00000"},
	{"ffff", "0000"},
	{"fff", "000"},
	{"ff", "00"},
	{"f", "0"},
	{"tt", "PM"},
	{"zzz", "-07:00"},
}

// GoLayout translates a custom pattern such as "dd/MM/yyyy" into the
// equivalent Go layout ("02/01/2006"). Letters that are not tokens are an
// error; anything quoted with '...' is copied literally.
func GoLayout(pattern string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated quote in %q", ErrLayout, pattern)
			}
			out.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}
		if !isLetter(c) {
			out.WriteByte(c)
			i++
			continue
		}
		matched := false
		for _, tk := range tokens {
			if strings.HasPrefix(pattern[i:], tk.pattern) {
				out.WriteString(tk.layout)
				i += len(tk.pattern)
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("%w: %q in %q", ErrLayout, pattern[i:i+1], pattern)
		}
	}
	return out.String(), nil
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

// ParseExact parses value with a custom pattern in loc. It fails unless
// value matches the pattern exactly.
func ParseExact(value, pattern string, loc *time.Location) (time.Time, error) {
	layout, err := GoLayout(pattern)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q as %q: %w", value, pattern, err)
	}
	return t, nil
}

// Format renders t with a custom pattern.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := GoLayout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
