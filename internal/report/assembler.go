// Package report assembles an accessible dataset workbook: a cover sheet, a
// table of contents, guidance, optional index and notes sheets, then one
// worksheet per data table.
package report

import (
	"fmt"

	"datasetFmt/internal/dataset"
	"datasetFmt/internal/excel"
	"datasetFmt/internal/layout"
	"datasetFmt/internal/logger"
	"datasetFmt/internal/prose"
	"datasetFmt/internal/template"
)

// Fixed sheet names of the generated workbook.
const (
	CoverSheet    = "Cover_sheet"
	ContentsSheet = "Table_of_contents"
	GuidanceSheet = "Guidance"
	NotesSheet    = "Notes"
)

type sheetKind int

const (
	guidanceKind sheetKind = iota
	indexKind
	notesKind
	dataKind
)

func (k sheetKind) String() string {
	switch k {
	case guidanceKind:
		return "guidance"
	case indexKind:
		return "index"
	case notesKind:
		return "notes"
	default:
		return "data"
	}
}

// sheetEntry is a worksheet that claims a contents row. pos is its position
// among sheets of the same kind.
type sheetEntry struct {
	kind sheetKind
	name string
	pos  int
}

// emissionOrder lists the sheets that fill contents rows, in the order they
// claim them.
func emissionOrder(tmpl *template.Template) []sheetEntry {
	order := []sheetEntry{{kind: guidanceKind, name: GuidanceSheet}}
	for i, s := range tmpl.IndexSheets() {
		order = append(order, sheetEntry{kind: indexKind, name: s.TabName, pos: i})
	}
	if len(tmpl.Notes) > 0 {
		order = append(order, sheetEntry{kind: notesKind, name: NotesSheet})
	}
	for i := range tmpl.Metadata() {
		order = append(order, sheetEntry{kind: dataKind, name: DataSheetName(i), pos: i})
	}
	return order
}

// DataSheetName names the worksheet of the zero-based data table x.
func DataSheetName(x int) string {
	return fmt.Sprintf("Table_%d", x+1)
}

// PlanInput summarises a template for the contents planner.
func PlanInput(tmpl *template.Template) layout.Input {
	in := layout.Input{
		IndexSheets: len(tmpl.IndexSheets()),
		HasNotes:    len(tmpl.Notes) > 0,
	}
	for _, c := range tmpl.Contents {
		in.Definitions = append(in.Definitions, layout.Definition{
			Section:    c.Section,
			Subsection: c.Subsection,
			Tables:     len(c.Tables),
			Sources:    c.Sources(),
		})
	}
	return in
}

type assembler struct {
	tmpl   *template.Template
	tables []*dataset.Table
	opts   Options

	editor *excel.Editor
	styles *styles
	cells  *cellWriter
	plan   *layout.Plan
	ledger *layout.Ledger
}

// Produce writes the workbook for tmpl and tables to path. tables must be in
// the same order as the table metadata of the template.
func Produce(path string, tmpl *template.Template, tables []*dataset.Table, opts Options) error {
	opts, err := opts.normalize()
	if err != nil {
		return err
	}

	metadata := tmpl.Metadata()
	if len(metadata) != len(tables) {
		return fmt.Errorf("%w: %d metadata rows, %d tables", ErrTableCountMismatch, len(metadata), len(tables))
	}

	plan, err := layout.NewPlan(PlanInput(tmpl))
	if err != nil {
		return fmt.Errorf("failed to plan contents: %w", err)
	}

	editor, err := excel.CreateNewFile(CoverSheet)
	if err != nil {
		return err
	}
	defer editor.Close()

	st, err := newStyles(editor, opts)
	if err != nil {
		return err
	}

	a := &assembler{
		tmpl:   tmpl,
		tables: tables,
		opts:   opts,
		editor: editor,
		styles: st,
		cells:  &cellWriter{editor: editor, onSkip: opts.OnSkip, metrics: opts.Metrics},
		plan:   plan,
		ledger: plan.NewLedger(),
	}

	logger.Info("Assembling dataset",
		"path", path,
		"tables", len(tables),
		"contents_entries", len(plan.Entries()))

	if err := a.build(); err != nil {
		return err
	}
	if remaining := a.ledger.Remaining(); remaining != 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnfilledSlots, remaining, len(plan.Entries()))
	}

	if err := restyle(editor, a.restyleTargets()); err != nil {
		return fmt.Errorf("failed to restyle workbook: %w", err)
	}

	if err := editor.SaveAs(path); err != nil {
		logger.Error("Failed to save dataset", "path", path, "error", err)
		return &OutputError{Path: path, Err: err}
	}
	opts.Metrics.saved()

	logger.Info("Dataset saved",
		"path", path,
		"sheets", len(editor.GetSheetNames()),
		"skipped_cells", a.cells.skipped)
	return nil
}

func (a *assembler) build() error {
	if err := a.writeCover(); err != nil {
		return err
	}
	if err := a.writeContents(); err != nil {
		return err
	}

	metadata := a.tmpl.Metadata()
	indexSheets := a.tmpl.IndexSheets()
	for _, e := range emissionOrder(a.tmpl) {
		var err error
		switch e.kind {
		case guidanceKind:
			err = a.writeGuidance()
		case indexKind:
			err = a.writeIndex(indexSheets[e.pos])
		case notesKind:
			err = a.writeNotes()
		case dataKind:
			err = a.writeTable(e.pos, metadata[e.pos], a.tables[e.pos])
		}
		if err != nil {
			return fmt.Errorf("sheet %s: %w", e.name, err)
		}
		a.opts.Metrics.sheet(e.kind.String())
	}
	return nil
}

// fillEntry claims the next contents row and links it to sheet.
func (a *assembler) fillEntry(sheet, estimate, unit, description string, sources []template.Reference) error {
	row, err := a.ledger.Next()
	if err != nil {
		return err
	}

	a.cells.sheetLink(ContentsSheet, row, 0, sheet, a.styles.link)
	a.cells.text(ContentsSheet, row, 1, estimate, a.styles.wrap)
	a.cells.text(ContentsSheet, row, 2, unit, a.styles.wrap)
	a.cells.text(ContentsSheet, row, 3, description, a.styles.wrap)
	for k, ref := range sources {
		if k >= a.plan.SourceColumns {
			break
		}
		a.cells.reference(ContentsSheet, row, 4+k, ref, a.styles.wrap, a.styles.link)
	}
	a.opts.Metrics.entry()
	return nil
}

// oneTableSheet writes the title and table-count note shared by every
// single-table worksheet.
func (a *assembler) oneTableSheet(sheet, title string) error {
	if err := a.editor.AddSheet(sheet); err != nil {
		return err
	}
	a.cells.text(sheet, 0, 0, title, a.styles.heading1)
	a.cells.text(sheet, 1, 0, prose.NumberOfTablesNote(1), a.styles.basic)
	return nil
}
