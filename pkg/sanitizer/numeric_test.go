package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fundkit/pkg/sanitizer"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    int
		min      int
		max      int
		expected int
	}{
		{name: "value within range", value: 5, min: 1, max: 10, expected: 5},
		{name: "value below minimum", value: -5, min: 1, max: 10, expected: 1},
		{name: "value above maximum", value: 15, min: 1, max: 10, expected: 10},
		{name: "value equals minimum", value: 1, min: 1, max: 10, expected: 1},
		{name: "value equals maximum", value: 10, min: 1, max: 10, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Clamp(tt.value, tt.min, tt.max))
		})
	}
}

func TestClampMin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(0), sanitizer.ClampMin(int64(-300), 0))
	assert.Equal(t, int64(42), sanitizer.ClampMin(int64(42), 0))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "dollar amount with grouping", input: "$7,200", want: 7200, ok: true},
		{name: "decimal amount", input: "$1,234.50", want: 1234.5, ok: true},
		{name: "plain number", input: "100", want: 100, ok: true},
		{name: "euro suffix", input: "250 €", want: 250, ok: true},
		{name: "negative sign is stripped", input: "-50", want: 50, ok: true},
		{name: "letters only", input: "abc", want: 0, ok: false},
		{name: "empty string", input: "", want: 0, ok: false},
		{name: "unresolved token", input: "{RAISED_AMOUNT}", want: 0, ok: false},
		{name: "multiple decimal points", input: "1.2.3", want: 0, ok: false},
		{name: "lone decimal point", input: "$.", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := sanitizer.ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		part  float64
		whole float64
		want  int
	}{
		{name: "regular progress", part: 7200, whole: 10000, want: 72},
		{name: "rounds half up", part: 1, whole: 8, want: 13},
		{name: "rounds down", part: 724, whole: 1000, want: 72},
		{name: "exceeds goal is capped", part: 150, whole: 100, want: 100},
		{name: "zero whole", part: 50, whole: 0, want: 0},
		{name: "zero part", part: 0, whole: 100, want: 0},
		{name: "negative part", part: -10, whole: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.Percentage(tt.part, tt.whole))
		})
	}
}

func TestPercentage_Integers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, sanitizer.Percentage(int64(5000), int64(10000)))
	assert.Equal(t, 100, sanitizer.Percentage(int64(20000), int64(10000)))
}
