package report

import (
	"datasetFmt/internal/dataset"
	"datasetFmt/internal/excel"
	"datasetFmt/internal/template"
)

// cellWriter writes cells best-effort. A failed write leaves the cell empty,
// is reported to the skip hook and does not stop the run.
type cellWriter struct {
	editor  *excel.Editor
	onSkip  SkipHook
	metrics *Metrics
	skipped int
}

func (w *cellWriter) skip(sheet string, row, col int, err error) {
	w.skipped++
	w.metrics.skipped(sheet)
	w.onSkip(sheet, row, col, err)
}

// write stores value with style. Missing values only receive the style.
func (w *cellWriter) write(sheet string, row, col int, value dataset.Value, style int) bool {
	if dataset.IsMissing(value) {
		value = nil
	}
	if err := w.editor.Write(sheet, row, col, value, style); err != nil {
		w.skip(sheet, row, col, err)
		return false
	}
	return true
}

// text writes a string cell, leaving empty strings untouched.
func (w *cellWriter) text(sheet string, row, col int, value string, style int) bool {
	if value == "" {
		return true
	}
	return w.write(sheet, row, col, value, style)
}

func (w *cellWriter) url(sheet string, row, col int, url, text string, style int) bool {
	if err := w.editor.WriteURL(sheet, row, col, url, text, style); err != nil {
		w.skip(sheet, row, col, err)
		return false
	}
	return true
}

func (w *cellWriter) sheetLink(sheet string, row, col int, target string, style int) bool {
	if err := w.editor.WriteSheetLink(sheet, row, col, target, target, style); err != nil {
		w.skip(sheet, row, col, err)
		return false
	}
	return true
}

// reference writes a link when the reference has a URL and plain text
// otherwise. Empty references write nothing.
func (w *cellWriter) reference(sheet string, row, col int, ref template.Reference, textStyle, linkStyle int) bool {
	switch {
	case ref.Empty():
		return true
	case ref.URL != "":
		return w.url(sheet, row, col, ref.URL, ref.Text, linkStyle)
	default:
		return w.write(sheet, row, col, ref.Text, textStyle)
	}
}

// header writes a row of header cells with one style.
func (w *cellWriter) header(sheet string, row, firstCol int, cells []string, style int) {
	for j, v := range cells {
		w.write(sheet, row, firstCol+j, v, style)
	}
}
