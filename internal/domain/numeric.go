package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// absentTokenRe matches the placeholder tokens the source data uses for
	// missing values.
	absentTokenRe = regexp.MustCompile(`(?i)^(null|nd|n/d|na|n/a|-)$`)

	// numericClutterRe strips units, currency symbols, and other clutter,
	// preserving digits, sign, and both separator conventions.
	numericClutterRe = regexp.MustCompile(`[^\d,.-]`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseNumber converts a locale-ambiguous numeric string into a float64.
// The second return value is false when the value is absent: empty input, a
// placeholder token, or text with no parseable number.
//
// When both comma and dot appear, the separator occurring later in the string
// is the decimal point and the other is a thousands separator ("1.234,56" and
// "1,234.56" both parse to 1234.56). A lone comma is a decimal point
// ("123,45" -> 123.45).
func ParseNumber(raw string) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || absentTokenRe.MatchString(v) {
		return 0, false
	}

	v = whitespaceRe.ReplaceAllString(v, "")
	v = numericClutterRe.ReplaceAllString(v, "")
	if v == "" {
		return 0, false
	}

	hasComma := strings.Contains(v, ",")
	hasDot := strings.Contains(v, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(v, ",") > strings.LastIndex(v, ".") {
			// 1.234,56 -> 1234.56
			v = strings.ReplaceAll(v, ".", "")
			v = strings.ReplaceAll(v, ",", ".")
		} else {
			// 1,234.56 -> 1234.56
			v = strings.ReplaceAll(v, ",", "")
		}
	case hasComma:
		// 123,45 -> 123.45
		v = strings.ReplaceAll(v, ",", ".")
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
