package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a monetary value as integer-rounded,
// thousands-grouped digits: 12000000 -> "12,000,000".
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("%d", int64(math.Round(v)))
}

// FormatPriceDZD renders a monetary value with the currency suffix
func FormatPriceDZD(v float64) string {
	return FormatPrice(v) + " DZD"
}

// FormatArea renders an area with the square-meter unit glyph
func FormatArea(sqm int) string {
	return fmt.Sprintf("%d m²", sqm)
}

// FormatPropertyType renders a property type title-cased: "villa" -> "Villa"
func FormatPropertyType(t string) string {
	// cases.Title casers are stateful, so one is built per call
	return cases.Title(language.English).String(t)
}
