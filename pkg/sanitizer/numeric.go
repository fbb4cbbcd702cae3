package sanitizer

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a numeric value to be within the specified range [min, max].
// If the value is less than min, it returns min. If greater than max, it returns max.
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampMin ensures a numeric value is not less than the specified minimum.
func ClampMin[T Numeric](value T, min T) T {
	if value < min {
		return min
	}
	return value
}

// KeepNumeric keeps digits and decimal points, dropping currency symbols,
// grouping separators, signs and whitespace.
func KeepNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}
		return -1
	}, s)
}

// ParseAmount extracts a non-negative number from a formatted amount such as "$7,200".
// It returns 0 and false when nothing parseable remains.
func ParseAmount(s string) (float64, bool) {
	digits := KeepNumeric(s)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Percentage returns part as a whole-number percentage of whole, rounded to the
// nearest integer and clamped to [0, 100]. A zero whole yields 0.
func Percentage[T Numeric](part T, whole T) int {
	if whole == 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return Clamp(int(math.Round(Clamp(p, -1, 101))), 0, 100)
}
