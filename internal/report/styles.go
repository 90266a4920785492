package report

import (
	"fmt"

	"datasetFmt/internal/excel"

	"github.com/xuri/excelize/v2"
)

// styles holds the registered style ids used by the emitters.
type styles struct {
	editor *excel.Editor
	opts   Options

	basic           int
	wrap            int
	heading1        int
	guidanceTable   int
	guidanceTable2  int
	coverHeading2   int
	index           int
	tableHeading    int
	tableSubheading int
	link            int

	numbers map[int]int
}

func newStyles(editor *excel.Editor, opts Options) (*styles, error) {
	s := &styles{
		editor:  editor,
		opts:    opts,
		numbers: make(map[int]int),
	}
	font := opts.Font
	data := float64(opts.DataFontSize)

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.basic, excel.FontStyle(font, 12, false, excel.Align("", false))},
		{&s.wrap, excel.FontStyle(font, 12, false, excel.Align("left", true))},
		{&s.heading1, excel.FontStyle(font, 16, true, excel.Align("", false))},
		{&s.guidanceTable, excel.FontStyle(font, 13, true, excel.Align("center", true))},
		{&s.guidanceTable2, excel.FontStyle(font, 12, true, excel.Align("center", true))},
		{&s.coverHeading2, excel.FontStyle(font, 13, true, excel.Align("", false))},
		{&s.index, excel.FontStyle(font, data, true, excel.Align("left", false))},
		{&s.tableHeading, excel.FontStyle(font, data+1, true, excel.Align(opts.DataAlign, true))},
		{&s.tableSubheading, excel.FontStyle(font, data, true, excel.Align(opts.DataAlign, false))},
		{&s.link, excel.LinkStyle(font, 12)},
	}
	for _, d := range defs {
		id, err := editor.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.dst = id
	}
	return s, nil
}

// number returns the data cell style for a displayed precision, registering
// it on first use.
func (s *styles) number(places int) (int, error) {
	if id, ok := s.numbers[places]; ok {
		return id, nil
	}
	format := excel.NumberFormat(places)
	style := excel.FontStyle(s.opts.Font, float64(s.opts.DataFontSize), false, excel.Align(s.opts.DataAlign, false))
	style.CustomNumFmt = &format

	id, err := s.editor.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("number style for %d places: %w", places, err)
	}
	s.numbers[places] = id
	return id, nil
}
