package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// progressLine draws a single carriage-return-overwritten line while a
// batch runs. It stays silent when the writer is not a terminal or when
// CI is set, and a failed write disables it for the rest of the run.
type progressLine struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool

	start     time.Time
	lastLen   int
	lastFlush time.Time
}

func newProgressLine(w io.Writer) *progressLine {
	if w == nil {
		w = os.Stderr
	}
	p := &progressLine{w: w, start: time.Now()}
	if os.Getenv("CI") != "" {
		return p
	}
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil {
			p.enabled = fi.Mode()&os.ModeCharDevice != 0
		}
	}
	return p
}

// update is a dtpsupport.ProgressFunc. Repaints are throttled to one per
// 100ms; the final row always lands.
func (p *progressLine) update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	now := time.Now()
	if done < total && now.Sub(p.lastFlush) < 100*time.Millisecond {
		return
	}
	p.lastFlush = now
	p.print(fmt.Sprintf("formatting %d/%d rows (%s)", done, total, formatDur(time.Since(p.start))))
}

// finish blanks the line so regular output starts at column one.
func (p *progressLine) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || p.lastLen == 0 {
		return
	}
	p.print("")
	if p.enabled {
		if _, err := io.WriteString(p.w, "\r"); err != nil {
			p.enabled = false
		}
	}
}

// print overwrites the current line, padding with spaces when the new
// text is shorter than the previous one.
func (p *progressLine) print(s string) {
	pad := 0
	if l := len([]rune(s)); p.lastLen > l {
		pad = p.lastLen - l
	}
	var b strings.Builder
	b.WriteByte('\r')
	b.WriteString(s)
	if pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		p.enabled = false
		return
	}
	p.lastLen = len([]rune(s))
}

func formatDur(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", float64(d.Milliseconds())/1000.0)
}
