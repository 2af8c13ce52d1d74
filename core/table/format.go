// Package table projects aggregated metrics into the column and row descriptors
// rendered by the output surfaces. It formats values; it never derives them.
package table

import (
	"math"
	"strings"

	"github.com/oceanplan/sizecard/internal/contract"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Value formatter names accepted by ValueFormatter.
const (
	FormatPercent     = "percent"
	FormatPercent0Dig = "percent0dig"
	FormatPercent1Dig = "percent1dig"
	FormatPercent2Dig = "percent2dig"
	FormatInteger     = "integer"
	FormatNumber      = "number"
	FormatEdgePercent = "percentWithEdge"
	FormatArea        = "squareKilometer"
)

const (
	squareMetersPerKilometer = 1_000_000
	edgeLower                = 0.001
	edgeUpper                = 0.99
)

// SquareMeterToKilometer converts an area in square meters to square kilometers.
func SquareMeterToKilometer(v float64) float64 {
	return v / squareMetersPerKilometer
}

// RoundHalfAwayFromZero rounds v to the given number of decimal places.
func RoundHalfAwayFromZero(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Formatter renders numbers with the grouping and decimal rules of a locale.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// DefaultFormatter formats like the English reports do.
func DefaultFormatter() Formatter {
	return NewFormatter(language.English)
}

// Decimal formats v with digit grouping and between minDigits and maxDigits fraction digits.
// Rounding happens here, half away from zero, so the printer never rounds on its own.
func (f Formatter) Decimal(v float64, minDigits, maxDigits int) string {
	v = RoundHalfAwayFromZero(v, maxDigits)
	return f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

// Percent formats a ratio as a percentage, 0.5 -> "50%".
func (f Formatter) Percent(ratio float64, minDigits, maxDigits int) string {
	return f.Decimal(ratio*100, minDigits, maxDigits) + "%"
}

// FormatArea formats an area in square meters as whole square kilometers, 1234567890 -> "1,235".
func (f Formatter) FormatArea(squareMeters float64) string {
	return f.Decimal(SquareMeterToKilometer(squareMeters), 0, 0)
}

// PercentWithEdge formats a ratio as a percentage, collapsing the extremes so that
// tiny and nearly complete coverage are not shown as 0% or 100%.
func (f Formatter) PercentWithEdge(ratio float64) string {
	switch {
	case ratio == 0:
		return "0%"
	case ratio > 0 && ratio < edgeLower:
		return "< " + f.Percent(edgeLower, 0, 1)
	case ratio > edgeUpper && ratio < 1:
		return "> " + f.Percent(edgeUpper, 0, 0)
	default:
		return f.Percent(ratio, 0, 1)
	}
}

// ValueFormatter formats v with one of the named formatters. Unknown names fall back to number.
func (f Formatter) ValueFormatter(v float64, kind string) string {
	switch kind {
	case FormatPercent:
		return f.Percent(v, 0, 1)
	case FormatPercent0Dig:
		return f.Percent(v, 0, 0)
	case FormatPercent1Dig:
		return f.Percent(v, 1, 1)
	case FormatPercent2Dig:
		return f.Percent(v, 2, 2)
	case FormatInteger:
		return f.Decimal(v, 0, 0)
	case FormatEdgePercent:
		return f.PercentWithEdge(v)
	case FormatArea:
		return f.FormatArea(v)
	default:
		return f.Decimal(v, 0, 3)
	}
}

// translate looks key up in t, falling back to the key itself.
func translate(t contract.Translator, key string) string {
	if t == nil {
		return key
	}
	if s := t.T(key); strings.TrimSpace(s) != "" {
		return s
	}
	return key
}
