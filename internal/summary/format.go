package summary

import (
	"math"
	"strconv"
	"strings"
)

// roundPercent is round(v/total*100) with a guard for a zero denominator.
func roundPercent(v, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(v / total * 100))
}

// formatNumber renders an amount with comma thousands separators and at
// most three decimal places, matching the formatting the summary fields
// are quoted with everywhere else.
func formatNumber(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	v = math.Round(v*1000) / 1000

	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
