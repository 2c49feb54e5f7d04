package dtpsupport

import (
	"fmt"
	"strings"
)

// Dictionary is an ordered list of known surnames. Order is significant
// under [FirstMatch], so callers must keep entries in source order.
// Empty entries never match; duplicates are harmless.
type Dictionary []string

// Lookup returns the dictionary surname that prefixes fullName under the
// given policy, and whether one was found.
func (d Dictionary) Lookup(fullName string, policy MatchPolicy) (string, bool) {
	var best string
	found := false
	for _, surname := range d {
		if surname == "" || !strings.HasPrefix(fullName, surname) {
			continue
		}
		if policy == FirstMatch {
			return surname, true
		}
		// Candidates all prefix the same name, so byte length orders
		// them the same as cell count.
		if len(surname) > len(best) {
			best = surname
		}
		found = true
	}
	return best, found
}

// MatchKind reports how a full name was split into its tokens.
type MatchKind string

const (
	// DictionaryMatch means a dictionary surname prefixed the name.
	DictionaryMatch MatchKind = "dictionary"
	// FallbackSplit means no surname matched and the midpoint rule split
	// the name instead.
	FallbackSplit MatchKind = "fallback-split"
)

// Tokenization is a full name split into surname and given name.
// Surname + Given always reassembles the input exactly.
type Tokenization struct {
	Surname string
	Given   string
	Kind    MatchKind
}

// Tokenize splits fullName into surname and given name.
//
// The dictionary is scanned according to match. When no entry prefixes
// the name, fallback decides the outcome: [SkipUnmatched] returns
// [ErrNoSurnameMatch]; [AutoSplit] gives floor(cells/2) characters to the
// surname and tags the result [FallbackSplit]. The given name may be
// empty when a dictionary entry equals the whole input.
func Tokenize(fullName string, dict Dictionary, match MatchPolicy, fallback FallbackPolicy) (Tokenization, error) {
	if surname, ok := dict.Lookup(fullName, match); ok {
		return Tokenization{
			Surname: surname,
			Given:   fullName[len(surname):],
			Kind:    DictionaryMatch,
		}, nil
	}
	if fallback == AutoSplit {
		surname, given := midpointSplit(fullName)
		return Tokenization{Surname: surname, Given: given, Kind: FallbackSplit}, nil
	}
	return Tokenization{}, fmt.Errorf("%w: %q", ErrNoSurnameMatch, fullName)
}

// midpointSplit puts floor(n/2) runes in the surname and the rest in the
// given name.
func midpointSplit(s string) (string, string) {
	runes := []rune(s)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}
