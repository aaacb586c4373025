package timeutil

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSpanFormat   = errors.New("span: unrecognised format")
	ErrSpanOverflow = errors.New("span: component out of range")
	ErrSpanLayout   = errors.New("span: unknown layout")
)

// Tick is the resolution of a Span.
const (
	Tick           = 100 * time.Nanosecond
	TicksPerSecond = int64(time.Second / Tick)
	TicksPerDay    = 24 * 60 * 60 * TicksPerSecond
)

// Span is an elapsed interval with day-aware accessors and formatting. It
// is a time.Duration underneath, so it covers roughly ±292 years.
type Span time.Duration

const (
	Zero    Span = 0
	MaxSpan Span = math.MaxInt64
	MinSpan Span = math.MinInt64
)

// maxDays is the whole-day part of MaxSpan.
var maxDays = uint64(MaxSpan.Ticks() / TicksPerDay)

// NewSpan builds a span from components; any of them may be negative or
// exceed its usual range.
func NewSpan(days, hours, minutes, seconds, milliseconds int) Span {
	return Span(time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond)
}

func FromTicks(ticks int64) Span { return Span(time.Duration(ticks) * Tick) }

func FromDays(d float64) Span    { return fromFloat(d, 24*time.Hour) }
func FromHours(h float64) Span   { return fromFloat(h, time.Hour) }
func FromMinutes(m float64) Span { return fromFloat(m, time.Minute) }
func FromSeconds(s float64) Span { return fromFloat(s, time.Second) }

func fromFloat(v float64, unit time.Duration) Span {
	return FromTicks(int64(math.Round(v * float64(unit/Tick))))
}

func (s Span) Duration() time.Duration { return time.Duration(s) }

// Ticks truncates toward zero.
func (s Span) Ticks() int64 { return int64(s) / int64(Tick) }

// Components carry the span's sign, like the totals do.
func (s Span) Days() int         { return int(time.Duration(s) / (24 * time.Hour)) }
func (s Span) Hours() int        { return int(time.Duration(s) / time.Hour % 24) }
func (s Span) Minutes() int      { return int(time.Duration(s) / time.Minute % 60) }
func (s Span) Seconds() int      { return int(time.Duration(s) / time.Second % 60) }
func (s Span) Milliseconds() int { return int(time.Duration(s) / time.Millisecond % 1000) }

func (s Span) TotalDays() float64         { return time.Duration(s).Hours() / 24 }
func (s Span) TotalHours() float64        { return time.Duration(s).Hours() }
func (s Span) TotalMinutes() float64      { return time.Duration(s).Minutes() }
func (s Span) TotalSeconds() float64      { return time.Duration(s).Seconds() }
func (s Span) TotalMilliseconds() float64 { return float64(s) / float64(time.Millisecond) }

func (s Span) Add(o Span) Span { return s + o }
func (s Span) Sub(o Span) Span { return s - o }

func (s Span) Negate() Span { return -s }

func (s Span) Abs() Span { return Span(time.Duration(s).Abs()) }

// Multiply and Divide round to the nearest tick.
func (s Span) Multiply(f float64) Span {
	return FromTicks(int64(math.Round(float64(s.Ticks()) * f)))
}

func (s Span) Divide(f float64) Span {
	return FromTicks(int64(math.Round(float64(s.Ticks()) / f)))
}

// Compare returns -1, 0 or +1.
func (s Span) Compare(o Span) int { return cmp.Compare(s, o) }

func (s Span) String() string { return s.format('c') }

// Format renders s in one of three layouts:
//
//	"c"  [-][d.]hh:mm:ss[.fffffff]   constant, the String form
//	"g"  [-][d:]h:mm:ss[.FFFFFFF]    short, trailing fraction zeros trimmed
//	"G"  [-]d:hh:mm:ss.fffffff       long, every component present
func (s Span) Format(layout string) (string, error) {
	if len(layout) != 1 || !strings.ContainsAny(layout, "cgG") {
		return "", fmt.Errorf("%w: %q", ErrSpanLayout, layout)
	}
	return s.format(layout[0]), nil
}

func (s Span) format(layout byte) string {
	ticks := s.Ticks()
	var b strings.Builder
	if ticks < 0 {
		b.WriteByte('-')
		ticks = -ticks
	}
	days := ticks / TicksPerDay
	rem := ticks % TicksPerDay
	hours := rem / (3600 * TicksPerSecond)
	minutes := rem / (60 * TicksPerSecond) % 60
	seconds := rem / TicksPerSecond % 60
	frac := rem % TicksPerSecond

	switch layout {
	case 'c':
		if days > 0 {
			fmt.Fprintf(&b, "%d.", days)
		}
		fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
		if frac > 0 {
			fmt.Fprintf(&b, ".%07d", frac)
		}
	case 'g':
		if days > 0 {
			fmt.Fprintf(&b, "%d:", days)
		}
		fmt.Fprintf(&b, "%d:%02d:%02d", hours, minutes, seconds)
		if frac > 0 {
			b.WriteByte('.')
			b.WriteString(strings.TrimRight(fmt.Sprintf("%07d", frac), "0"))
		}
	case 'G':
		fmt.Fprintf(&b, "%d:%02d:%02d:%02d.%07d", days, hours, minutes, seconds, frac)
	}
	return b.String()
}

// ParseSpan accepts the forms the "c" layout produces and a few looser
// ones:
//
//	d                  whole days
//	[-][d.]h:m[:s[.f]] with up to seven fraction digits
//
// Hours must be below 24 and minutes and seconds below 60.
func ParseSpan(str string) (Span, error) {
	in := strings.TrimSpace(str)
	neg := strings.HasPrefix(in, "-")
	in = strings.TrimPrefix(in, "-")
	if in == "" {
		return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
	}

	if !strings.Contains(in, ":") {
		d, err := strconv.ParseUint(in, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
		}
		if d > maxDays {
			return 0, fmt.Errorf("%w: %q", ErrSpanOverflow, str)
		}
		return signed(neg, int64(d)*TicksPerDay), nil
	}

	var days uint64
	if dot := strings.IndexByte(in, '.'); dot >= 0 && dot < strings.IndexByte(in, ':') {
		d, err := strconv.ParseUint(in[:dot], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
		}
		if d >= maxDays {
			return 0, fmt.Errorf("%w: %q", ErrSpanOverflow, str)
		}
		days = d
		in = in[dot+1:]
	}

	var frac int64
	dot := strings.LastIndexByte(in, '.')
	if dot >= 0 {
		digits := in[dot+1:]
		if digits == "" || len(digits) > 7 {
			return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
		}
		f, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
		}
		frac = int64(f) * int64(math.Pow10(7-len(digits)))
		in = in[:dot]
	}

	parts := strings.Split(in, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
	}
	limits := []uint64{24, 60, 60}
	var hms [3]int64
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
		}
		if v >= limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrSpanOverflow, str)
		}
		hms[i] = int64(v)
	}
	if dot >= 0 && len(parts) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrSpanFormat, str)
	}

	ticks := int64(days)*TicksPerDay +
		(hms[0]*3600+hms[1]*60+hms[2])*TicksPerSecond +
		frac
	return signed(neg, ticks), nil
}

func signed(neg bool, ticks int64) Span {
	if neg {
		ticks = -ticks
	}
	return FromTicks(ticks)
}
