package report

import (
	"fmt"

	"datasetFmt/internal/logger"
)

// SkipHook observes a cell that could not be written. The cell is left empty
// and assembly continues.
type SkipHook func(sheet string, row, col int, err error)

// Options are the presentation settings of a generated workbook.
type Options struct {
	// Font family used by every cell, "Arial" by default.
	Font string
	// DataAlign aligns data cells and their headers: left, center or right.
	DataAlign string
	// DataFontSize is the font size inside data tables, 12 by default.
	DataFontSize int

	OnSkip  SkipHook
	Metrics *Metrics
}

// DefaultOptions returns the recommended accessible defaults.
func DefaultOptions() Options {
	return Options{
		Font:         "Arial",
		DataAlign:    "right",
		DataFontSize: 12,
	}
}

func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.Font == "" {
		o.Font = def.Font
	}
	if o.DataAlign == "" {
		o.DataAlign = def.DataAlign
	}
	if o.DataFontSize == 0 {
		o.DataFontSize = def.DataFontSize
	}

	switch o.DataAlign {
	case "left", "center", "right":
	default:
		return o, fmt.Errorf("invalid data alignment %q: must be left, center or right", o.DataAlign)
	}
	if o.DataFontSize < 1 {
		return o, fmt.Errorf("invalid data font size %d", o.DataFontSize)
	}
	if o.OnSkip == nil {
		o.OnSkip = logSkip
	}
	return o, nil
}

func logSkip(sheet string, row, col int, err error) {
	logger.Warn("Skipped cell", "sheet", sheet, "row", row+1, "column", col+1, "error", err)
}
