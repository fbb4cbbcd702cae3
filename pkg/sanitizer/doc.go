// Package sanitizer provides small helpers for cleaning loosely formatted input
// before it is used in computations.
//
// The numeric helpers are generic over Go's numeric types and never panic:
//
//	v, ok := sanitizer.ParseAmount("$7,200.50") // 7200.5, true
//	p := sanitizer.Percentage(v, 10000)          // 72
//	w := sanitizer.Clamp(p, 0, 100)
//
// Malformed input is reported through the boolean result of ParseAmount and
// treated as zero by Percentage, so callers can feed the result straight into
// layout code without NaN checks.
package sanitizer
