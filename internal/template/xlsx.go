package template

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"datasetFmt/internal/excel"
	"datasetFmt/internal/logger"
)

// Sheet names and labels of the workbook template.
const (
	CoverSheet    = "Cover_sheet"
	ChangesSheet  = "Changes"
	GuidanceSheet = "Guidance"
	NotesSheet    = "Notes"

	ContentsPrefix = "Contents"
	IndexPrefix    = "Index"

	changesColumn = "Changes and notes"
	notesColumn   = "Note"
)

// Load reads a template, choosing the decoder from the file extension.
func Load(path string) (*Template, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadWorkbook(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported template format: %s", path)
	}
}

// LoadWorkbook reads a template from an xlsx initialisation workbook.
func LoadWorkbook(path string) (*Template, error) {
	wb, err := excel.ScanWorkbook(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl := &Template{}

	if tmpl.Cover, err = readCover(wb); err != nil {
		return nil, err
	}
	if tmpl.Changes, err = readColumn(wb, ChangesSheet, changesColumn); err != nil {
		return nil, err
	}
	if tmpl.Notes, err = readColumn(wb, NotesSheet, notesColumn); err != nil {
		return nil, err
	}
	if tmpl.Guidance, err = readGuidance(wb); err != nil {
		return nil, err
	}

	for _, name := range wb.SheetsWithPrefix(ContentsPrefix) {
		contents, err := readContents(name, wb.Rows(name))
		if err != nil {
			return nil, err
		}
		tmpl.Contents = append(tmpl.Contents, contents)
	}

	for _, name := range wb.SheetsWithPrefix(IndexPrefix) {
		section, err := readIndex(name, wb.Rows(name))
		if err != nil {
			return nil, err
		}
		if !section.HasData() {
			logger.Info("Skipping empty index sheet", "sheet", name)
		}
		tmpl.Index = append(tmpl.Index, section)
	}

	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Loaded workbook template",
		"path", path,
		"contents_definitions", len(tmpl.Contents),
		"index_sheets", len(tmpl.IndexSheets()),
		"notes", len(tmpl.Notes))
	return tmpl, nil
}

// keyValues reads a two-column block of labels in column A and values in B.
func keyValues(rows [][]string, limit int) map[string]string {
	values := make(map[string]string)
	for i := 0; i < len(rows) && i < limit; i++ {
		key := excel.Cell(rows, i, 0)
		if key != "" {
			values[key] = excel.Cell(rows, i, 1)
		}
	}
	return values
}

func lookup(values map[string]string, sheet, key string) (string, error) {
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in sheet %s", ErrMissingField, key, sheet)
	}
	return v, nil
}

func readCover(wb *excel.Workbook) (Cover, error) {
	if !wb.HasSheet(CoverSheet) {
		return Cover{}, fmt.Errorf("%w: %s", ErrMissingSection, CoverSheet)
	}
	values := keyValues(wb.Rows(CoverSheet), math.MaxInt)

	var cover Cover
	fields := []struct {
		key string
		dst *string
	}{
		{"Title", &cover.Title},
		{"Summary", &cover.Summary},
		{"URL", &cover.URL},
		{"Publication date", &cover.PublicationDate},
		{"Next release date", &cover.NextRelease},
		{"Email", &cover.Email},
		{"Telephone", &cover.Telephone},
	}
	for _, f := range fields {
		v, err := lookup(values, CoverSheet, f.key)
		if err != nil {
			return Cover{}, err
		}
		*f.dst = v
	}
	cover.URLText = values["URL text (optional)"]
	return cover, nil
}

// headerIndex maps header names of a row to their column positions.
func headerIndex(row []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range row {
		h = strings.TrimSpace(h)
		if h != "" {
			idx[h] = i
		}
	}
	return idx
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readColumn reads the non-blank values under a named header on row 1.
func readColumn(wb *excel.Workbook, sheet, column string) ([]string, error) {
	if !wb.HasSheet(sheet) {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, sheet)
	}
	rows := wb.Rows(sheet)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: header %q in sheet %s", ErrMissingField, column, sheet)
	}
	col, ok := headerIndex(rows[0])[column]
	if !ok {
		return nil, fmt.Errorf("%w: header %q in sheet %s", ErrMissingField, column, sheet)
	}

	var values []string
	for i := 1; i < len(rows); i++ {
		if v := excel.Cell(rows, i, col); v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}

// numberedColumns finds headers named prefix+k and returns them ordered by k.
func numberedColumns(header map[string]int, prefix string) []int {
	var numbers []int
	for name := range header {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

func contiguous(numbers []int) bool {
	for i, n := range numbers {
		if n != i+1 {
			return false
		}
	}
	return true
}

func readReferences(rows [][]string, row int, header map[string]int, textPrefix string, count int) []Reference {
	refs := make([]Reference, count)
	for k := 1; k <= count; k++ {
		if col, ok := header[fmt.Sprintf("%s%d", textPrefix, k)]; ok {
			refs[k-1].Text = excel.Cell(rows, row, col)
		}
		if col, ok := header[fmt.Sprintf("URL_%d", k)]; ok {
			refs[k-1].URL = excel.Cell(rows, row, col)
		}
	}
	return refs
}

func readGuidance(wb *excel.Workbook) (Guidance, error) {
	if !wb.HasSheet(GuidanceSheet) {
		return Guidance{}, fmt.Errorf("%w: %s", ErrMissingSection, GuidanceSheet)
	}
	rows := wb.Rows(GuidanceSheet)
	if len(rows) == 0 {
		return Guidance{}, fmt.Errorf("%w: header row in sheet %s", ErrMissingField, GuidanceSheet)
	}

	header := headerIndex(rows[0])
	refs := numberedColumns(header, "Reference_")
	if !contiguous(refs) {
		return Guidance{}, fmt.Errorf("%w: Reference_ columns in sheet %s", ErrSourceColumns, GuidanceSheet)
	}

	g := Guidance{ReferenceColumns: len(refs)}
	for i := 1; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}
		g.Rows = append(g.Rows, GuidanceRow{
			Note:       excel.Cell(rows, i, 0),
			Guidance:   excel.Cell(rows, i, 1),
			References: readReferences(rows, i, header, "Reference_", len(refs)),
		})
	}
	return g, nil
}

func parseCount(sheet, column, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %q in column %q of sheet %s", ErrInvalidNumber, value, column, sheet)
	}
	n := int(f)
	return &n, nil
}

func readContents(sheet string, rows [][]string) (ContentsTable, error) {
	if excel.Cell(rows, 0, 0) != "Section name" {
		return ContentsTable{}, fmt.Errorf("%w: \"Section name\" in cell A1 of sheet %s", ErrMissingField, sheet)
	}
	if excel.Cell(rows, 1, 0) != "Subsection name" {
		return ContentsTable{}, fmt.Errorf("%w: \"Subsection name\" in cell A2 of sheet %s", ErrMissingField, sheet)
	}
	if len(rows) < 3 {
		return ContentsTable{}, fmt.Errorf("%w: header row in sheet %s", ErrMissingField, sheet)
	}

	header := headerIndex(rows[2])
	if _, ok := header["Name"]; !ok {
		return ContentsTable{}, fmt.Errorf("%w: header \"Name\" in sheet %s", ErrMissingField, sheet)
	}
	sources := numberedColumns(header, "Sources_")
	if len(sources) == 0 || !contiguous(sources) {
		return ContentsTable{}, fmt.Errorf("%w: sheet %s", ErrSourceColumns, sheet)
	}

	contents := ContentsTable{
		Section:       excel.Cell(rows, 0, 1),
		Subsection:    excel.Cell(rows, 1, 1),
		SourceColumns: len(sources),
	}

	text := func(row int, column string) string {
		if col, ok := header[column]; ok {
			return excel.Cell(rows, row, col)
		}
		return ""
	}

	for i := 3; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}
		md := TableMetadata{
			Name:            text(i, "Name"),
			MissingDataNote: text(i, "Missing data note"),
			MarkupName:      text(i, "Marked up table name"),
			Estimate:        text(i, "Estimate"),
			Unit:            text(i, "Unit(s)"),
			Description:     text(i, "Description"),
			Sources:         readReferences(rows, i, header, "Sources_", len(sources)),
		}

		var err error
		if md.HiddenDecimals, err = parseCount(sheet, "Hidden decimal places", text(i, "Hidden decimal places")); err != nil {
			return ContentsTable{}, err
		}
		if md.DisplayedDecimals, err = parseCount(sheet, "Displayed decimal places", text(i, "Displayed decimal places")); err != nil {
			return ContentsTable{}, err
		}
		if md.HeaderRows, err = parseCount(sheet, "Number of header rows", text(i, "Number of header rows")); err != nil {
			return ContentsTable{}, err
		}
		contents.Tables = append(contents.Tables, md)
	}
	return contents, nil
}

// Index sheets carry five label rows, a header row, then data rows.
const indexHeaderRow = 5

func readIndex(sheet string, rows [][]string) (IndexSection, error) {
	if len(rows) <= indexHeaderRow {
		return IndexSection{}, nil
	}

	values := keyValues(rows, indexHeaderRow)
	var section IndexSection
	fields := []struct {
		key string
		dst *string
	}{
		{"Tab name", &section.TabName},
		{"Sheet title", &section.Title},
		{"Contents description", &section.Description},
		{"Source", &section.Source.Text},
		{"Source URL", &section.Source.URL},
	}
	for _, f := range fields {
		v, err := lookup(values, sheet, f.key)
		if err != nil {
			return IndexSection{}, err
		}
		*f.dst = v
	}

	header := rows[indexHeaderRow]
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}
	if len(header) == 0 {
		return IndexSection{}, fmt.Errorf("%w: header row 6 in sheet %s", ErrMissingField, sheet)
	}
	for _, h := range header {
		section.Header = append(section.Header, strings.TrimSpace(h))
	}

	for i := indexHeaderRow + 1; i < len(rows); i++ {
		if blankRow(rows[i]) {
			continue
		}
		row := make([]string, len(header))
		for j := range row {
			row[j] = excel.Cell(rows, i, j)
		}
		section.Rows = append(section.Rows, row)
	}
	return section, nil
}
