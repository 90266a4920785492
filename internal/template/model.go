// Package template reads the layout template describing a dataset workbook:
// cover metadata, change log, contents definitions, guidance, index tables,
// notes, and one metadata row per data table.
package template

import (
	"errors"
	"strings"
)

var (
	ErrMissingSection = errors.New("template section missing")
	ErrMissingField   = errors.New("template field missing")
	ErrSourceColumns  = errors.New("template sources columns are not numbered 1..n")
	ErrInvalidNumber  = errors.New("template value is not a whole number")
)

// Reference is a piece of citation text with an optional URL.
type Reference struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url,omitempty"`
}

// Empty reports whether there is nothing to write.
func (r Reference) Empty() bool {
	return r.Text == "" && r.URL == ""
}

type Cover struct {
	Title           string `yaml:"title"`
	Summary         string `yaml:"summary"`
	URL             string `yaml:"url"`
	URLText         string `yaml:"url_text,omitempty"`
	PublicationDate string `yaml:"publication_date"`
	NextRelease     string `yaml:"next_release"`
	Email           string `yaml:"email"`
	Telephone       string `yaml:"telephone"`
}

// LinkText is the displayed text of the cover URL, falling back to the title.
func (c Cover) LinkText() string {
	if c.URLText != "" {
		return c.URLText
	}
	return c.Title
}

// TableMetadata describes one data table. Optional counts are nil when the
// template leaves them blank.
type TableMetadata struct {
	Name              string      `yaml:"name"`
	HiddenDecimals    *int        `yaml:"hidden_decimal_places,omitempty"`
	DisplayedDecimals *int        `yaml:"displayed_decimal_places,omitempty"`
	HeaderRows        *int        `yaml:"header_rows,omitempty"`
	MissingDataNote   string      `yaml:"missing_data_note,omitempty"`
	MarkupName        string      `yaml:"markup_name,omitempty"`
	Estimate          string      `yaml:"estimate,omitempty"`
	Unit              string      `yaml:"unit,omitempty"`
	Description       string      `yaml:"description,omitempty"`
	Sources           []Reference `yaml:"sources,omitempty"`
}

// Displayed returns the displayed decimal places, 1 when unset.
func (m TableMetadata) Displayed() int {
	if m.DisplayedDecimals == nil {
		return 1
	}
	return *m.DisplayedDecimals
}

// Headers returns the number of header rows, 1 when unset.
func (m TableMetadata) Headers() int {
	if m.HeaderRows == nil {
		return 1
	}
	return *m.HeaderRows
}

// ContentsTable is one contents definition: a subsection of data tables,
// optionally grouped under a section.
type ContentsTable struct {
	Section       string          `yaml:"section,omitempty"`
	Subsection    string          `yaml:"subsection"`
	SourceColumns int             `yaml:"source_columns,omitempty"`
	Tables        []TableMetadata `yaml:"tables"`
}

// Sources is the number of source columns this definition needs.
func (c ContentsTable) Sources() int {
	n := c.SourceColumns
	for _, t := range c.Tables {
		if len(t.Sources) > n {
			n = len(t.Sources)
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

type GuidanceRow struct {
	Note       string      `yaml:"note"`
	Guidance   string      `yaml:"guidance"`
	References []Reference `yaml:"references,omitempty"`
}

// Guidance holds the guidance table and its declared reference column count.
type Guidance struct {
	ReferenceColumns int           `yaml:"reference_columns,omitempty"`
	Rows             []GuidanceRow `yaml:"rows"`
}

// References returns the number of reference columns to render.
func (g Guidance) References() int {
	n := g.ReferenceColumns
	for _, r := range g.Rows {
		if len(r.References) > n {
			n = len(r.References)
		}
	}
	return n
}

// IndexSection is a lookup table rendered on its own worksheet.
type IndexSection struct {
	TabName     string     `yaml:"tab_name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Source      Reference  `yaml:"source,omitempty"`
	Header      []string   `yaml:"header"`
	Rows        [][]string `yaml:"rows"`
}

// HasData reports whether the section should produce a worksheet.
func (s IndexSection) HasData() bool {
	return len(s.Header) > 0
}

// TableName is the Excel table name derived from the tab name.
func (s IndexSection) TableName() string {
	return SanitizeName(s.TabName)
}

type Template struct {
	Cover    Cover           `yaml:"cover"`
	Changes  []string        `yaml:"changes,omitempty"`
	Contents []ContentsTable `yaml:"contents"`
	Guidance Guidance        `yaml:"guidance"`
	Index    []IndexSection  `yaml:"index,omitempty"`
	Notes    []string        `yaml:"notes,omitempty"`
}

// Metadata concatenates table metadata across contents definitions, in order.
func (t *Template) Metadata() []TableMetadata {
	var out []TableMetadata
	for _, c := range t.Contents {
		out = append(out, c.Tables...)
	}
	return out
}

// IndexSheets returns the index sections that have data.
func (t *Template) IndexSheets() []IndexSection {
	var out []IndexSection
	for _, s := range t.Index {
		if s.HasData() {
			out = append(out, s)
		}
	}
	return out
}

// SanitizeName makes a string usable as an Excel table name.
func SanitizeName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9', r == '.':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
