package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// LinkColor is the colour Excel uses for the default hyperlink style
const LinkColor = "0563C1"

// NumberFormat returns a thousands-separated format with the given number of
// decimal places, e.g. "#,##0" or "#,##0.00"
func NumberFormat(places int) string {
	if places <= 0 {
		return "#,##0"
	}
	return "#,##0." + strings.Repeat("0", places)
}

// FontStyle is a shorthand for a style that only sets a font and alignment
func FontStyle(family string, size float64, bold bool, align *excelize.Alignment) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold:   bold,
			Family: family,
			Size:   size,
		},
		Alignment: align,
	}
}

// Align builds an alignment with vertical centring, the default for every cell
// the report writes
func Align(horizontal string, wrap bool) *excelize.Alignment {
	return &excelize.Alignment{
		Horizontal: horizontal,
		Vertical:   "center",
		WrapText:   wrap,
	}
}

// LinkStyle is the hyperlink look: underlined, blue, wrapped
func LinkStyle(family string, size float64) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Family:    family,
			Size:      size,
			Underline: "single",
			Color:     LinkColor,
		},
		Alignment: Align("", true),
	}
}
