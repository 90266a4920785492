package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts what an assembly run wrote and skipped.
type Metrics struct {
	SheetsWritten  *prometheus.CounterVec
	CellsSkipped   *prometheus.CounterVec
	EntriesFilled  prometheus.Counter
	WorkbooksSaved prometheus.Counter
}

// NewMetrics registers the report counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SheetsWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datasetfmt",
			Name:      "sheets_written_total",
			Help:      "Worksheets written, by kind.",
		}, []string{"kind"}),
		CellsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datasetfmt",
			Name:      "cells_skipped_total",
			Help:      "Cells left empty because the write failed, by sheet.",
		}, []string{"sheet"}),
		EntriesFilled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "datasetfmt",
			Name:      "contents_entries_total",
			Help:      "Table of contents rows filled.",
		}),
		WorkbooksSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "datasetfmt",
			Name:      "workbooks_saved_total",
			Help:      "Workbooks written to disk.",
		}),
	}
}

func (m *Metrics) sheet(kind string) {
	if m != nil {
		m.SheetsWritten.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) skipped(sheet string) {
	if m != nil {
		m.CellsSkipped.WithLabelValues(sheet).Inc()
	}
}

func (m *Metrics) entry() {
	if m != nil {
		m.EntriesFilled.Inc()
	}
}

func (m *Metrics) saved() {
	if m != nil {
		m.WorkbooksSaved.Inc()
	}
}
