// Package namelist reads name rows and surname dictionaries from
// line-oriented text, the interchange format of the print shop workflow:
// one full name or one surname per line, UTF-8.
package namelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/toma4423/dtpsupport"
)

// maxLine bounds a single input line. Names are short, but pasted lists
// sometimes carry long stray lines and the scanner must not choke on them.
const maxLine = 1024 * 1024

// ReadRows returns every line of r verbatim, blank lines included, so a
// row's slice position equals its line number in the source file. The
// batch runner skips blanks itself; dropping them here would shift every
// row index in the diagnostics.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := newScanner(r)
	for sc.Scan() {
		rows = append(rows, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read name rows: %w", err)
	}
	return rows, nil
}

// ReadDictionary returns the surnames of r in file order, trimmed, with
// blank lines dropped. File order is kept: it is the first-match
// priority.
func ReadDictionary(r io.Reader) (dtpsupport.Dictionary, error) {
	var dict dtpsupport.Dictionary
	sc := newScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			dict = append(dict, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read surname list: %w", err)
	}
	return dict, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return sc
}
