package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrInvalidTemplate   = errors.New("invalid report template")
)

// Format represents a report rendering.
type Format string

const (
	Text     Format = "text"
	List     Format = "list"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	Table    Format = "table"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, List, JSON, JSONL, YAML, CSV, TSV, Markdown, HTML, Table}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each formatted row through a
// Go text/template, one line per row. Row fields are addressable the
// usual way: {{.Row}} {{.Text}} {{.Method}}.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r *Report) error {
	switch f {
	case Text:
		return writeText(w, r)
	case List:
		return writeList(w, r)
	case JSON:
		return writeJSON(w, r)
	case JSONL:
		return writeJSONL(w, r)
	case YAML:
		return writeYAML(w, r)
	case CSV:
		return writeCSV(w, r)
	case TSV:
		return writeTSV(w, r)
	case Markdown:
		return writeMarkdown(w, r)
	case HTML:
		return writeHTML(w, r)
	case Table:
		return writeTable(w, r)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, r)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders r in format f and returns the bytes.
func Marshal(f Format, r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
