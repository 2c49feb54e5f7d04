package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toma4423/dtpsupport"
)

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align dtpsupport.Alignment
		want  string
	}{
		"left":            {s: "ab", width: 4, align: dtpsupport.AlignLeft, want: "ab  "},
		"right":           {s: "ab", width: 4, align: dtpsupport.AlignRight, want: "  ab"},
		"center":          {s: "ab", width: 4, align: dtpsupport.AlignCenter, want: " ab "},
		"center odd pad":  {s: "ab", width: 5, align: dtpsupport.AlignCenter, want: " ab  "},
		"full width left": {s: "佐藤", width: 6, align: dtpsupport.AlignLeft, want: "佐藤  "},
		"overflow":        {s: "佐藤一", width: 4, align: dtpsupport.AlignLeft, want: "佐藤一"},
		"exact":           {s: "abcd", width: 4, align: dtpsupport.AlignRight, want: "abcd"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.s, tt.width, tt.align))
		})
	}
}

func TestColumnWidths(t *testing.T) {
	t.Parallel()
	header := []string{"row", "text", "method"}
	rows := [][]string{
		{"1", "佐藤　一郎", "rule-table"},
		{"12", "林", "generic-pad"},
	}
	// Full-width characters count double.
	assert.Equal(t, []int{3, 10, 11}, columnWidths(header, rows))
}

func TestSettingsSummary(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		settings Settings
		want     string
	}{
		"defaults": {
			settings: Settings{Width: 5, Alignment: "center", Match: "longest", Fallback: "skip"},
			want:     "width 5, center, longest match, skip fallback",
		},
		"spread": {
			settings: Settings{Width: 9, Alignment: "left", Match: "longest", Fallback: "skip", Spread: true},
			want:     "width 9, left, longest match, skip fallback, spread",
		},
		"join": {
			settings: Settings{Width: 6, Alignment: "right", Match: "first", Fallback: "auto-split", Join: "・"},
			want:     `width 6, right, first match, auto-split fallback, join "・"`,
		},
		"full-width join escaped": {
			settings: Settings{Width: 6, Alignment: "center", Match: "longest", Fallback: "skip", Join: "　"},
			want:     `width 6, center, longest match, skip fallback, join "\u3000"`,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.settings.summary())
		})
	}
}
