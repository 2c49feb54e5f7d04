package dtpsupport

import "strings"

// lengthKey indexes a rule table by (surname cells, given-name cells).
type lengthKey struct {
	surname, given int
}

type source int

const (
	srcSurname     source = iota // whole surname token
	srcGiven                     // whole given-name token
	srcSurnameRune               // one surname character
	srcGivenRune                 // one given-name character
	srcFiller                    // run of filler cells
)

// segment is one piece of a layout pattern.
type segment struct {
	src  source
	at   int // rune index for srcSurnameRune / srcGivenRune
	fill int // run length for srcFiller
}

func sur() segment          { return segment{src: srcSurname} }
func giv() segment          { return segment{src: srcGiven} }
func surRune(i int) segment { return segment{src: srcSurnameRune, at: i} }
func givRune(i int) segment { return segment{src: srcGivenRune, at: i} }
func fill(n int) segment    { return segment{src: srcFiller, fill: n} }

// pattern spells one fixed-cell layout as an ordered list of segments.
type pattern []segment

// render assembles the pattern from the tokens. Rune indexes are safe: a
// pattern is only reachable through its exact length key.
func (p pattern) render(surname, given string, f Filler) string {
	sr := []rune(surname)
	gr := []rune(given)
	var b strings.Builder
	for _, seg := range p {
		switch seg.src {
		case srcSurname:
			b.WriteString(surname)
		case srcGiven:
			b.WriteString(given)
		case srcSurnameRune:
			b.WriteRune(sr[seg.at])
		case srcGivenRune:
			b.WriteRune(gr[seg.at])
		case srcFiller:
			b.WriteString(f.Run(seg.fill))
		}
	}
	return b.String()
}

// RuleTable maps (surname cells, given-name cells) pairs to layout
// patterns for one slot width. The two standard tables are [Width5] and
// [Width7]; a table is immutable once built.
type RuleTable struct {
	// Width is the slot size the table serves.
	Width int

	rules map[lengthKey]pattern
}

// Apply lays out surname and given name when the table has a pattern for
// their length pair. ok is false when it has none, in which case callers
// fall back to joining the tokens untouched.
func (t RuleTable) Apply(surname, given string, f Filler) (string, bool) {
	p, ok := t.rules[lengthKey{Cells(surname), Cells(given)}]
	if !ok {
		return "", false
	}
	return p.render(surname, given, f.orDefault()), true
}

// Without returns a copy of the table lacking the rule for one length
// pair. Names with that shape then fall through to concatenation.
func (t RuleTable) Without(surnameLen, givenLen int) RuleTable {
	rules := make(map[lengthKey]pattern, len(t.rules))
	for k, p := range t.rules {
		rules[k] = p
	}
	delete(rules, lengthKey{surnameLen, givenLen})
	return RuleTable{Width: t.Width, rules: rules}
}

// FormatFixedWidth lays out a name for a 5- or 7-cell slot using the
// standard tables and filler. ok reports whether a pattern applied; when
// none did, or width is neither 5 nor 7, the result is surname+given
// unchanged.
func FormatFixedWidth(surname, given string, width int) (string, bool) {
	var table RuleTable
	switch width {
	case Width5.Width:
		table = Width5
	case Width7.Width:
		table = Width7
	default:
		return surname + given, false
	}
	if out, ok := table.Apply(surname, given, FillerFullWidth); ok {
		return out, true
	}
	return surname + given, false
}
