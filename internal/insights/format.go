package insights

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"insightchat/internal/query"
)

// printer renders counts with thousands separators.
var printer = message.NewPrinter(language.Japanese)

// FormatCount renders a count metric as a separated integer: 1234 → "1,234".
func FormatCount(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatRate renders a rate metric ×100 with one decimal: 0.423 → "42.3%".
func FormatRate(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatDuration renders seconds as minutes and seconds: 185 → "3分5秒".
func FormatDuration(seconds float64) string {
	total := int64(math.Round(seconds))
	return fmt.Sprintf("%d分%d秒", total/60, total%60)
}

// FormatMetricValue renders a value per its metric's formatting class.
func FormatMetricValue(m query.Metric, v float64) string {
	switch m.Class() {
	case query.ClassRate:
		return FormatRate(v)
	case query.ClassDuration:
		return FormatDuration(v)
	default:
		return FormatCount(v)
	}
}

// formatSigned renders a count delta with an explicit sign: "+200" / "-35".
func formatSigned(v float64) string {
	if v >= 0 {
		return "+" + FormatCount(v)
	}
	return "-" + FormatCount(-v)
}

// formatSignedPercent renders a percent delta with an explicit sign: "+25.0%".
func formatSignedPercent(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}
