package formatter

import (
	"fmt"
	"math"
	"strings"
)

// FormatINR renders a currency amount with Indian digit grouping
// (₹1,67,35,187). Non-finite values render as-is so invalid plan inputs
// stay visible instead of being masked by the formatter.
func FormatINR(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("₹%v", v)
	}

	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := fmt.Sprintf("%d", n)

	// Indian grouping: rightmost three digits, then pairs.
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatCr renders a crore-denominated amount, e.g. "₹43.75 Cr".
func FormatCr(v float64) string {
	return fmt.Sprintf("₹%.2f Cr", v)
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders a funnel count with one decimal, dropping the fraction
// when it is whole.
func FormatCount(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
