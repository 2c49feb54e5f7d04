package dtpsupport

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// truncation describes a lossy cut made by the generic padder.
type truncation struct {
	dropped    string // the cells cut from the end
	midCluster bool   // the cut split a grapheme cluster
}

// Pad joins surname and given name with join and fits the result to
// exactly width cells by inserting filler: [AlignCenter] splits the
// padding with the extra cell trailing, [AlignLeft] pads after the name,
// [AlignRight] before it. A name longer than width is cut to width cells
// and truncated is true; callers should surface that, since the cut is
// lossy and can land inside a combining sequence.
func Pad(surname, given string, width int, align Alignment, join string) (string, bool) {
	out, trunc := fitCells(surname+join+given, width, align, FillerFullWidth)
	return out, trunc != nil
}

// PadSpread letter-spaces the name, one filler cell between every pair of
// characters, before fitting it to width cells like [Pad]. A two-character
// surname and two-character given name spread to seven cells (佐　藤　太
// 　郎), the classic look for name plates wider than the name itself.
func PadSpread(surname, given string, width int, align Alignment) (string, bool) {
	f := FillerFullWidth
	out, trunc := fitCells(spreadCells(surname+given, f), width, align, f)
	return out, trunc != nil
}

// spreadCells returns s with one filler cell between every pair of
// characters. Zero- and one-character strings come back unchanged.
func spreadCells(s string, f Filler) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteString(f.String())
		}
		b.WriteRune(r)
	}
	return b.String()
}

// fitCells fits base to exactly width cells and reports any lossy cut.
func fitCells(base string, width int, align Alignment, f Filler) (string, *truncation) {
	if width < 0 {
		width = 0
	}
	n := Cells(base)
	if n > width {
		runes := []rune(base)
		kept := string(runes[:width])
		return kept, &truncation{
			dropped:    string(runes[width:]),
			midCluster: splitsCluster(base, len(kept)),
		}
	}
	pad := width - n
	switch align {
	case AlignLeft:
		return base + f.Run(pad), nil
	case AlignRight:
		return f.Run(pad) + base, nil
	default:
		lead := pad / 2
		return f.Run(lead) + base + f.Run(pad-lead), nil
	}
}

// splitsCluster reports whether cutting s at byte offset cut lands inside
// a grapheme cluster, e.g. between a kana and its combining voicing mark.
// Cell counts are per rune, so a cut on a rune boundary can still break a
// user-perceived character.
func splitsCluster(s string, cut int) bool {
	if cut <= 0 || cut >= len(s) {
		return false
	}
	off := 0
	toks := graphemes.FromString(s)
	for toks.Next() {
		off += len(toks.Value())
		if off == cut {
			return false
		}
		if off > cut {
			return true
		}
	}
	return true
}
