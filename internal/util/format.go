package util

import (
	"fmt"
	"strconv"
)

// FormatMillis renders a millisecond count the way chart labels show it.
func FormatMillis(ms int64) string {
	return strconv.FormatInt(ms, 10) + "ms"
}

// FormatGapLabel renders the label shown before an interval.
func FormatGapLabel(kind string, ms int64) string {
	switch kind {
	case "gap":
		return fmt.Sprintf("+%s gap", FormatMillis(ms))
	case "overlap":
		return fmt.Sprintf("+%s from prev start", FormatMillis(ms))
	default:
		return ""
	}
}

// FormatPercent formats a ratio in [0,1] with one decimal.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
