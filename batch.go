package dtpsupport

import (
	"fmt"
	"strings"
)

// ProgressFunc receives batch progress after each input row, blanks
// included: done rows out of total. Calls arrive in row order.
type ProgressFunc func(done, total int)

// Batch holds everything one formatting run needs. The zero value plus a
// Width is usable: longest match, unmatched rows skipped, centered
// generic padding, full-width filler.
//
// A Batch is read-only during [Batch.Run], so one value can serve many
// runs as long as Progress tolerates it.
type Batch struct {
	// Dictionary is the ordered surname list.
	Dictionary Dictionary
	// Width is the slot size in cells. 5 and 7 use the fixed layout
	// tables; every other width goes through the generic padder.
	Width int
	// Align places generic padding. The rule tables ignore it.
	Align Alignment
	// Match selects the dictionary scan policy.
	Match MatchPolicy
	// Fallback decides what happens to names with no dictionary surname.
	Fallback FallbackPolicy
	// Join is put between surname and given name by the generic padder,
	// usually empty or a single filler cell. The rule tables ignore it.
	Join string
	// Spread letter-spaces the whole name, one filler cell between every
	// pair of characters, before generic padding. Overrides Join; the
	// rule tables ignore it.
	Spread bool
	// Filler overrides the layout glyph. Zero means U+3000.
	Filler Filler
	// DisableRuleTables routes widths 5 and 7 through the generic padder
	// like any other width.
	DisableRuleTables bool
	// KeepFullSurname drops the five-cell 3/3 rule so three-character
	// surnames are never cut down to their first character.
	KeepFullSurname bool
	// ReportBlankRows emits a [DiagEmptyRow] diagnostic per blank row
	// instead of skipping silently.
	ReportBlankRows bool
	// Progress, when set, is told about every processed row.
	Progress ProgressFunc
}

// FormattedRow is one successfully laid-out name.
type FormattedRow struct {
	// Row is the 1-based input position.
	Row int `json:"row" yaml:"row"`
	// Text is the finished cell content.
	Text string `json:"text" yaml:"text"`
	// Method tells how Text was produced.
	Method Method `json:"method" yaml:"method"`
}

// Diagnostic records a per-row event the caller should surface.
type Diagnostic struct {
	Row     int      `json:"row" yaml:"row"`
	Input   string   `json:"input" yaml:"input"`
	Kind    DiagKind `json:"kind" yaml:"kind"`
	Message string   `json:"message" yaml:"message"`
}

// Run formats rows in input order. Row numbers are 1-based positions in
// rows. Leading and trailing whitespace is stripped per row; blank rows
// produce no output. A row whose surname is unknown is dropped under
// [SkipUnmatched] or midpoint-split under [AutoSplit]. No row can stop
// the rest of the batch, and diagnostics come back in row order too.
func (b Batch) Run(rows []string) ([]FormattedRow, []Diagnostic) {
	var (
		out   []FormattedRow
		diags []Diagnostic
	)
	total := len(rows)
	filler := b.Filler.orDefault()
	table, useTable := b.table()
	for i, raw := range rows {
		row := i + 1
		if b.Progress != nil {
			b.Progress(row, total)
		}
		name := strings.TrimSpace(raw)
		if name == "" {
			if b.ReportBlankRows {
				diags = append(diags, Diagnostic{
					Row: row, Input: raw, Kind: DiagEmptyRow,
					Message: "blank row skipped",
				})
			}
			continue
		}
		tok, err := Tokenize(name, b.Dictionary, b.Match, b.Fallback)
		if err != nil {
			diags = append(diags, Diagnostic{
				Row: row, Input: raw, Kind: DiagNoSurnameMatch,
				Message: fmt.Sprintf("surname of %q not in dictionary; row skipped", name),
			})
			continue
		}
		if tok.Kind == FallbackSplit {
			diags = append(diags, Diagnostic{
				Row: row, Input: raw, Kind: DiagAutoSplit,
				Message: fmt.Sprintf("surname of %q not in dictionary; split at midpoint as %q + %q", name, tok.Surname, tok.Given),
			})
		}
		fr, diag := b.format(row, raw, tok, table, useTable, filler)
		if diag != nil {
			diags = append(diags, *diag)
		}
		out = append(out, fr)
	}
	return out, diags
}

// table picks the rule table for the configured width, if any applies.
func (b Batch) table() (RuleTable, bool) {
	if b.DisableRuleTables {
		return RuleTable{}, false
	}
	switch b.Width {
	case Width5.Width:
		if b.KeepFullSurname {
			return Width5.Without(3, 3), true
		}
		return Width5, true
	case Width7.Width:
		return Width7, true
	}
	return RuleTable{}, false
}

// format lays out one tokenized row and reports any lossy cut.
func (b Batch) format(row int, raw string, tok Tokenization, table RuleTable, useTable bool, f Filler) (FormattedRow, *Diagnostic) {
	if useTable {
		if text, ok := table.Apply(tok.Surname, tok.Given, f); ok {
			return FormattedRow{Row: row, Text: text, Method: MethodRuleTable}, nil
		}
		return FormattedRow{Row: row, Text: tok.Surname + tok.Given, Method: MethodConcat}, nil
	}
	base := tok.Surname + b.Join + tok.Given
	if b.Spread {
		base = spreadCells(tok.Surname+tok.Given, f)
	}
	text, trunc := fitCells(base, b.Width, b.Align, f)
	fr := FormattedRow{Row: row, Text: text, Method: MethodGenericPad}
	if trunc == nil {
		return fr, nil
	}
	msg := fmt.Sprintf("%q does not fit in %d cells; dropped %q", strings.TrimSpace(raw), b.Width, trunc.dropped)
	if trunc.midCluster {
		msg += " (cut splits a character cluster)"
	}
	return fr, &Diagnostic{Row: row, Input: raw, Kind: DiagTruncated, Message: msg}
}
