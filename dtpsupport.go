package dtpsupport

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoSurnameMatch   = errors.New("no dictionary surname matches")
	ErrNarrowFiller     = errors.New("filler glyph is not full width")
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrUnknownPolicy    = errors.New("unknown policy")
)

// MatchPolicy selects how the surname dictionary is scanned.
type MatchPolicy int

const (
	// LongestMatch picks the longest dictionary surname that prefixes the
	// full name. Nested entries such as 小 and 小比類巻 resolve to the
	// longer one regardless of dictionary order.
	LongestMatch MatchPolicy = iota
	// FirstMatch picks the first dictionary surname, in list order, that
	// prefixes the full name. Dictionary order becomes part of the result:
	// with 小 listed before 小比類巻, the name 小比類巻太郎 splits after 小.
	FirstMatch
)

// String returns the policy name.
func (p MatchPolicy) String() string {
	if p == FirstMatch {
		return "first"
	}
	return "longest"
}

// ParseMatchPolicy parses a match policy name. Recognizes "longest" and
// "first", with or without a "-match" suffix.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-match") {
	case "longest":
		return LongestMatch, nil
	case "first":
		return FirstMatch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// FallbackPolicy decides what happens to a name no dictionary surname
// prefixes.
type FallbackPolicy int

const (
	// SkipUnmatched drops the row and reports [DiagNoSurnameMatch].
	SkipUnmatched FallbackPolicy = iota
	// AutoSplit splits the name at its midpoint, floor(cells/2) to the
	// surname, and reports [DiagAutoSplit].
	AutoSplit
)

// String returns the policy name.
func (p FallbackPolicy) String() string {
	if p == AutoSplit {
		return "auto-split"
	}
	return "skip"
}

// ParseFallbackPolicy parses a fallback policy name. Recognizes "skip",
// "auto-split", and "autosplit".
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return SkipUnmatched, nil
	case "auto-split", "autosplit":
		return AutoSplit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Alignment controls where the generic padder puts its filler.
type Alignment int

const (
	// AlignCenter splits padding around the name, the extra cell trailing.
	// The zero value, matching the original tool's default.
	AlignCenter Alignment = iota
	// AlignLeft pads after the name.
	AlignLeft
	// AlignRight pads before the name.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// ParseAlignment parses an alignment name: "center", "left", or "right".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

// Method identifies how a row's text was produced.
type Method string

const (
	// MethodRuleTable means a fixed-cell layout pattern applied.
	MethodRuleTable Method = "rule-table"
	// MethodGenericPad means the alignment-based padder laid the row out.
	MethodGenericPad Method = "generic-pad"
	// MethodConcat means no rule applied and the tokens were joined
	// untouched.
	MethodConcat Method = "concat"
)

// DiagKind classifies a per-row diagnostic.
type DiagKind string

const (
	// DiagEmptyRow marks a blank input row. Informational; only emitted
	// when [Batch.ReportBlankRows] is set.
	DiagEmptyRow DiagKind = "empty-row"
	// DiagNoSurnameMatch marks a row dropped because no dictionary
	// surname prefixes it.
	DiagNoSurnameMatch DiagKind = "no-surname-match"
	// DiagAutoSplit marks a row kept with a midpoint guess instead of a
	// dictionary match.
	DiagAutoSplit DiagKind = "auto-split"
	// DiagTruncated marks a row the generic padder had to cut to fit.
	DiagTruncated DiagKind = "truncated"
)
