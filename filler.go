package dtpsupport

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// FillerFullWidth is the standard filler, U+3000 IDEOGRAPHIC SPACE. It
// occupies one cell on a Japanese monospaced grid, same as a kanji.
const FillerFullWidth Filler = '　'

// Filler is the blank glyph inserted to occupy one character cell. A
// dedicated type so the full-width assumption is checked with [Filler.Validate]
// rather than trusted: an ASCII space is half a cell and would shear every
// column it touches.
type Filler rune

// String returns the glyph as a string.
func (f Filler) String() string { return string(rune(f)) }

// Run returns n filler cells. n <= 0 yields the empty string.
func (f Filler) Run(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(rune(f)), n)
}

// Validate reports whether the glyph occupies a full character cell.
// Returns [ErrNarrowFiller] when it does not.
func (f Filler) Validate() error {
	if runewidth.RuneWidth(rune(f)) != 2 {
		return fmt.Errorf("%w: %q", ErrNarrowFiller, rune(f))
	}
	return nil
}

// orDefault maps the zero value to [FillerFullWidth].
func (f Filler) orDefault() Filler {
	if f == 0 {
		return FillerFullWidth
	}
	return f
}

// Cells returns how many character cells s occupies in the layout model:
// one rune, one cell, regardless of script. This matches how typesetters
// count 五字取り and 七字取り slots.
func Cells(s string) int { return utf8.RuneCountInString(s) }

// DisplayWidth returns the terminal column width of s, counting full-width
// characters as two columns. The layout rules work in [Cells]; this is for
// checking that a formatted row lines up on an actual monospaced screen.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }
