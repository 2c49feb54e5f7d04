// Package report renders a finished batch run for people and machines.
//
// A [Report] bundles the formatted rows with the run's settings, counts,
// diagnostics, and skipped names. [Write] renders it in one of several
// formats: text, json, and yaml carry the whole report; list, jsonl, and
// go-template=<tmpl> emit the formatted rows one per line; csv, tsv,
// markdown, html, and table lay the rows out as a three-column table
// (row, text, method).
package report

import (
	"strconv"
	"strings"

	"github.com/toma4423/dtpsupport"
)

// Settings echoes the batch configuration a report was produced under.
type Settings struct {
	Width     int    `json:"width" yaml:"width"`
	Alignment string `json:"alignment" yaml:"alignment"`
	Match     string `json:"match" yaml:"match"`
	Fallback  string `json:"fallback" yaml:"fallback"`
	Join      string `json:"join,omitempty" yaml:"join,omitempty"`
	Spread    bool   `json:"spread,omitempty" yaml:"spread,omitempty"`
}

// BatchSettings captures the report-relevant fields of a batch.
func BatchSettings(b dtpsupport.Batch) Settings {
	return Settings{
		Width:     b.Width,
		Alignment: b.Align.String(),
		Match:     b.Match.String(),
		Fallback:  b.Fallback.String(),
		Join:      b.Join,
		Spread:    b.Spread,
	}
}

// summary renders the settings as a one-line parenthetical for the text
// and table formats.
func (s Settings) summary() string {
	parts := []string{
		"width " + strconv.Itoa(s.Width),
		s.Alignment,
		s.Match + " match",
		s.Fallback + " fallback",
	}
	if s.Spread {
		parts = append(parts, "spread")
	} else if s.Join != "" {
		parts = append(parts, "join "+strconv.Quote(s.Join))
	}
	return strings.Join(parts, ", ")
}

// Counts summarizes a run.
type Counts struct {
	// Input is the number of rows fed to the batch, blanks included.
	Input int `json:"input" yaml:"input"`
	// Formatted is the number of rows that produced output.
	Formatted int `json:"formatted" yaml:"formatted"`
	// Skipped counts rows dropped for want of a dictionary surname.
	Skipped int `json:"skipped" yaml:"skipped"`
	// AutoSplit counts rows kept with a midpoint guess.
	AutoSplit int `json:"auto_split" yaml:"auto_split"`
	// Truncated counts rows the generic padder had to cut.
	Truncated int `json:"truncated" yaml:"truncated"`
}

// Report is one batch run, ready for rendering.
type Report struct {
	Settings    Settings                  `json:"settings" yaml:"settings"`
	Counts      Counts                    `json:"counts" yaml:"counts"`
	Rows        []dtpsupport.FormattedRow `json:"rows" yaml:"rows"`
	Diagnostics []dtpsupport.Diagnostic   `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Skipped     []string                  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// New assembles a report from a finished run. input is the total number
// of rows fed to the batch, blanks included, so the counts reflect the
// source file rather than just the survivors.
func New(settings Settings, input int, rows []dtpsupport.FormattedRow, diags []dtpsupport.Diagnostic) *Report {
	r := &Report{
		Settings:    settings,
		Rows:        rows,
		Diagnostics: diags,
	}
	r.Counts.Input = input
	r.Counts.Formatted = len(rows)
	for _, d := range diags {
		switch d.Kind {
		case dtpsupport.DiagNoSurnameMatch:
			r.Counts.Skipped++
			r.Skipped = append(r.Skipped, strings.TrimSpace(d.Input))
		case dtpsupport.DiagAutoSplit:
			r.Counts.AutoSplit++
		case dtpsupport.DiagTruncated:
			r.Counts.Truncated++
		}
	}
	return r
}

// rowHeader and rowCells feed the tabular encoders.

func rowHeader() []string { return []string{"row", "text", "method"} }

func rowCells(fr dtpsupport.FormattedRow) []string {
	return []string{strconv.Itoa(fr.Row), fr.Text, string(fr.Method)}
}

// rowAligns gives the column alignments of the rows table: row numbers
// right, everything else left.
func rowAligns() []dtpsupport.Alignment {
	return []dtpsupport.Alignment{dtpsupport.AlignRight, dtpsupport.AlignLeft, dtpsupport.AlignLeft}
}

// rowTable materializes the cells of every formatted row.
func (r *Report) rowTable() [][]string {
	rows := make([][]string, len(r.Rows))
	for i, fr := range r.Rows {
		rows[i] = rowCells(fr)
	}
	return rows
}
