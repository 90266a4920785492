package report

import (
	"github.com/xuri/excelize/v2"
)

// presentation is the part of a workbook the restyle pass may touch. It reads
// cells but can only change their styles.
type presentation interface {
	GetSheetNames() []string
	GetAllRows(sheet string) ([][]string, error)
	GetCellStyle(sheet string, row, col int) (int, error)
	SetCellStyle(sheet string, row, col int, style int) error
	StyleDefinition(style int) (*excelize.Style, error)
	NewStyle(style *excelize.Style) (int, error)
	IsHyperlink(sheet string, row, col int) bool
}

// restyleTargets names the contents rows that become headings.
type restyleTargets struct {
	font      string
	sectioned bool
	// Labels promoted to heading 2 on the contents sheet.
	heading2 map[string]bool
	// Sub-table titles, heading 3 when sections exist and heading 2 otherwise.
	subsections map[string]bool
	contentsEnd int
}

func (a *assembler) restyleTargets() restyleTargets {
	t := restyleTargets{
		font:        a.opts.Font,
		sectioned:   a.plan.Sectioned,
		heading2:    map[string]bool{"Guidance sheets": true},
		subsections: make(map[string]bool),
		contentsEnd: a.plan.LastRow(),
	}
	for _, s := range a.plan.Sections {
		t.heading2[s.Name] = true
	}
	if len(a.plan.Tables) > 1 {
		for _, st := range a.plan.Tables[1:] {
			t.subsections[st.Title] = true
		}
	}
	return t
}

type restyler struct {
	doc     presentation
	targets restyleTargets

	// derived caches styles built from an existing one, keyed by purpose and
	// source id.
	derived map[string]map[int]int
	fixed   map[string]int
}

// restyle applies the accessibility pass: automatic font colours, heading
// levels and left-aligned time index headers.
func restyle(doc presentation, targets restyleTargets) error {
	r := &restyler{
		doc:     doc,
		targets: targets,
		derived: make(map[string]map[int]int),
		fixed:   make(map[string]int),
	}

	for _, sheet := range doc.GetSheetNames() {
		if err := r.sheet(sheet); err != nil {
			return err
		}
	}
	if err := r.cover(); err != nil {
		return err
	}
	return r.contents()
}

func (r *restyler) sheet(sheet string) error {
	rows, err := r.doc.GetAllRows(sheet)
	if err != nil {
		return err
	}

	for i, row := range rows {
		for j, v := range row {
			if v == "" || r.doc.IsHyperlink(sheet, i, j) {
				continue
			}
			if err := r.derive(sheet, i, j, "color", clearColor); err != nil {
				return err
			}
		}
	}

	if cell(rows, 0, 0) != "" {
		if err := r.set(sheet, 0, 0, "heading1"); err != nil {
			return err
		}
	}
	for i := 2; i <= 3; i++ {
		if v := cell(rows, i, 0); v == "Year" || v == "Quarter" {
			if err := r.derive(sheet, i, 0, "left", alignLeft); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *restyler) cover() error {
	rows, err := r.doc.GetAllRows(CoverSheet)
	if err != nil {
		return err
	}
	headings := make(map[string]bool, len(coverHeadings))
	for _, h := range coverHeadings {
		headings[h] = true
	}
	for i := 1; i < 14; i++ {
		if headings[cell(rows, i, 0)] {
			if err := r.set(CoverSheet, i, 0, "heading2"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *restyler) contents() error {
	rows, err := r.doc.GetAllRows(ContentsSheet)
	if err != nil {
		return err
	}
	for i := 0; i <= r.targets.contentsEnd; i++ {
		v := cell(rows, i, 0)
		switch {
		case v == "":
		case r.targets.heading2[v]:
			err = r.set(ContentsSheet, i, 0, "heading2-wrap")
		case r.targets.subsections[v] && r.targets.sectioned:
			err = r.set(ContentsSheet, i, 0, "heading3-wrap")
		case r.targets.subsections[v]:
			err = r.set(ContentsSheet, i, 0, "heading2-wrap")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func cell(rows [][]string, row, col int) string {
	if row < len(rows) && col < len(rows[row]) {
		return rows[row][col]
	}
	return ""
}

// set applies one of the fixed heading styles.
func (r *restyler) set(sheet string, row, col int, name string) error {
	id, ok := r.fixed[name]
	if !ok {
		font := r.targets.font
		var style *excelize.Style
		switch name {
		case "heading1":
			style = headingStyle(font, 16, "", false)
		case "heading2":
			style = headingStyle(font, 13, "", false)
		case "heading2-wrap":
			style = headingStyle(font, 13, "left", true)
		default:
			style = headingStyle(font, 12, "left", true)
		}
		var err error
		if id, err = r.doc.NewStyle(style); err != nil {
			return err
		}
		r.fixed[name] = id
	}
	return r.doc.SetCellStyle(sheet, row, col, id)
}

func headingStyle(font string, size float64, horizontal string, wrap bool) *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{Bold: true, Family: font, Size: size},
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   "center",
			WrapText:   wrap,
		},
	}
}

// derive replaces a cell's style with a modified copy. change returns false
// when the style needs no change.
func (r *restyler) derive(sheet string, row, col int, purpose string, change func(*excelize.Style) bool) error {
	src, err := r.doc.GetCellStyle(sheet, row, col)
	if err != nil {
		return err
	}
	cache, ok := r.derived[purpose]
	if !ok {
		cache = make(map[int]int)
		r.derived[purpose] = cache
	}

	id, ok := cache[src]
	if !ok {
		def, err := r.doc.StyleDefinition(src)
		if err != nil {
			return err
		}
		cp := *def
		if !change(&cp) {
			id = src
		} else if id, err = r.doc.NewStyle(&cp); err != nil {
			return err
		}
		cache[src] = id
	}
	if id == src {
		return nil
	}
	return r.doc.SetCellStyle(sheet, row, col, id)
}

func clearColor(s *excelize.Style) bool {
	if s.Font == nil || s.Font.Color == "" {
		return false
	}
	font := *s.Font
	font.Color = ""
	s.Font = &font
	return true
}

func alignLeft(s *excelize.Style) bool {
	align := excelize.Alignment{Vertical: "center"}
	if s.Alignment != nil {
		align = *s.Alignment
	}
	align.Horizontal = "left"
	s.Alignment = &align
	return true
}
