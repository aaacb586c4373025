package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	time1 = NewSpan(0, 1, 30, 45, 0)
	time2 = NewSpan(0, 2, 15, 30, 500)
)

func TestSpanConstructors(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Span(90*time.Minute), FromMinutes(90))
	assert.Equal(t, Span(time.Second), FromTicks(10_000_000))
	assert.Equal(t, Span(36*time.Hour), FromDays(1.5))
	assert.Equal(t, Span(1500*time.Millisecond), FromSeconds(1.5))
	assert.Equal(t, Span(2*time.Hour), FromHours(2))
	assert.Equal(t, int64(54450000000), time1.Ticks())
}

func TestSpanComponents(t *testing.T) {
	t.Parallel()
	s := NewSpan(3, 2, 15, 30, 500)
	assert.Equal(t, []int{3, 2, 15, 30, 500},
		[]int{s.Days(), s.Hours(), s.Minutes(), s.Seconds(), s.Milliseconds()})

	n := s.Negate()
	assert.Equal(t, []int{-3, -2, -15, -30, -500},
		[]int{n.Days(), n.Hours(), n.Minutes(), n.Seconds(), n.Milliseconds()})
}

func TestSpanTotals(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1.5125, time1.TotalHours(), 1e-12)
	assert.Equal(t, 90.75, time1.TotalMinutes())
	assert.Equal(t, 8130500.0, time2.TotalMilliseconds())
	assert.InDelta(t, 8130.5/86400, time2.TotalDays(), 1e-12)
	assert.Equal(t, 1.0, FromTicks(10_000_000).TotalSeconds())
}

func TestSpanArithmetic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "03:46:15.5000000", time1.Add(time2).String())
	assert.Equal(t, "00:44:45.5000000", time2.Sub(time1).String())
	assert.Equal(t, "03:46:52.5000000", time1.Multiply(2.5).String())
	assert.Equal(t, "00:45:10.1666667", time2.Divide(3).String())
	assert.Equal(t, "-01:30:45", time1.Negate().String())
	assert.Equal(t, time1, time1.Negate().Abs())

	assert.Equal(t, -1, time1.Compare(time2))
	assert.Equal(t, 1, time2.Compare(time1))
	assert.Equal(t, 0, time1.Compare(NewSpan(0, 0, 90, 45, 0)))
}

func TestSpanFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		span    Span
		c, g, G string
	}{
		{time1, "01:30:45", "1:30:45", "0:01:30:45.0000000"},
		{time2, "02:15:30.5000000", "2:15:30.5", "0:02:15:30.5000000"},
		{NewSpan(2, 3, 4, 5, 60), "2.03:04:05.0600000", "2:3:04:05.06", "2:03:04:05.0600000"},
		{time1.Negate(), "-01:30:45", "-1:30:45", "-0:01:30:45.0000000"},
		{Zero, "00:00:00", "0:00:00", "0:00:00:00.0000000"},
	}
	for _, tc := range cases {
		t.Run(tc.c, func(t *testing.T) {
			for layout, want := range map[string]string{"c": tc.c, "g": tc.g, "G": tc.G} {
				got, err := tc.span.Format(layout)
				require.NoError(t, err)
				assert.Equal(t, want, got, "layout %s", layout)
			}
		})
	}

	_, err := time1.Format("x")
	assert.ErrorIs(t, err, ErrSpanLayout)
}

func TestSpanLimits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "106751.23:47:16.8547758", MaxSpan.String())
	assert.Equal(t, "-106751.23:47:16.8547758", MinSpan.String())
}

func TestParseSpan(t *testing.T) {
	t.Parallel()
	cases := map[string]Span{
		"02:45:30":          NewSpan(0, 2, 45, 30, 0),
		"01:15:10":          NewSpan(0, 1, 15, 10, 0),
		"1:02":              NewSpan(0, 1, 2, 0, 0),
		"3":                 NewSpan(3, 0, 0, 0, 0),
		"1.02:03:04.5":      NewSpan(1, 2, 3, 4, 500),
		"-00:00:01":         NewSpan(0, 0, 0, -1, 0),
		" 00:00:00.0000001": FromTicks(1),
	}
	for in, want := range cases {
		got, err := ParseSpan(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseSpanRoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []Span{time1, time2, time2.Divide(3), NewSpan(12, 23, 59, 59, 999).Negate()} {
		got, err := ParseSpan(s.String())
		require.NoError(t, err)
		assert.Equal(t, s.Ticks(), got.Ticks())
	}
}

func TestParseSpanErrors(t *testing.T) {
	t.Parallel()
	format := []string{"", "-", "abc", "1:2:3:4", "01:02.5", "1:30.5", "01:02.0", "01:02:03.", "01:02:03.12345678", "x.01:02"}
	for _, in := range format {
		_, err := ParseSpan(in)
		assert.ErrorIs(t, err, ErrSpanFormat, in)
	}
	overflow := []string{"24:00", "01:60", "01:00:60", "999999999"}
	for _, in := range overflow {
		_, err := ParseSpan(in)
		assert.ErrorIs(t, err, ErrSpanOverflow, in)
	}
}
