package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toma4423/dtpsupport"
	"github.com/toma4423/dtpsupport/internal/config"
)

func TestApplyFormatFlags(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{}
	cmd.Flags().Int("width", 5, "")
	cmd.Flags().String("align", "center", "")
	cmd.Flags().String("fallback", "skip", "")
	cmd.Flags().Bool("spread", false, "")
	require.NoError(t, cmd.Flags().Set("width", "7"))
	require.NoError(t, cmd.Flags().Set("fallback", "auto-split"))
	require.NoError(t, cmd.Flags().Set("spread", "true"))

	cfg := config.Default()
	applyFormatFlags(cmd, cfg)

	assert.Equal(t, 7, cfg.Width)
	assert.Equal(t, "auto-split", cfg.Fallback)
	assert.True(t, cfg.Spread)
	// Flags left at their defaults do not touch the config.
	assert.Equal(t, "center", cfg.Alignment)
	assert.Equal(t, "longest", cfg.Match)
}

func TestReadRowsFromStdin(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("佐藤一郎\n\n鈴木花子\n"))

	rows, source, err := readRows(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "stdin", source)
	assert.Equal(t, []string{"佐藤一郎", "", "鈴木花子"}, rows)
}

func TestReadRowsDashMeansStdin(t *testing.T) {
	t.Parallel()
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("佐藤一郎\n"))

	rows, source, err := readRows(cmd, []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "stdin", source)
	assert.Equal(t, []string{"佐藤一郎"}, rows)
}

func TestReadRowsFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("佐藤一郎\n山本太郎\n"), 0o644))

	rows, source, err := readRows(&cobra.Command{}, []string{path})
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, []string{"佐藤一郎", "山本太郎"}, rows)
}

func TestReadRowsMissingFile(t *testing.T) {
	t.Parallel()
	_, _, err := readRows(&cobra.Command{}, []string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestReadDictionary(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "surnames.txt")
	require.NoError(t, os.WriteFile(path, []byte("佐藤\n\n鈴木\n"), 0o644))

	dict, err := readDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, dtpsupport.Dictionary{"佐藤", "鈴木"}, dict)
}

func TestReadDictionaryMissingFile(t *testing.T) {
	t.Parallel()
	_, err := readDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
