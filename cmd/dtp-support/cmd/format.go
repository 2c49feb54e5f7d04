package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toma4423/dtpsupport"
	"github.com/toma4423/dtpsupport/internal/config"
	"github.com/toma4423/dtpsupport/internal/namelist"
	"github.com/toma4423/dtpsupport/internal/report"
)

var formatCmd = &cobra.Command{
	Use:   "format [names file]",
	Short: "Lay out a list of names in fixed-width cells",
	Long: `Format reads one name per line, from the given file or stdin, splits
each against the surname dictionary, and writes the laid-out names to
stdout one per line. Rows whose surname is unknown are skipped, or
midpoint-split with --fallback auto-split, and show up in the log and in
the report.

A run report is written with --report; --report - sends it to stdout in
place of the plain name list. An explicit --out still receives the
names.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringP("surnames", "s", "", "surname dictionary file, one surname per line (required)")
	formatCmd.Flags().IntP("width", "w", 5, "slot width in cells")
	formatCmd.Flags().String("align", "center", "generic padding alignment (center, left, right)")
	formatCmd.Flags().String("match", "longest", "dictionary match policy (longest, first)")
	formatCmd.Flags().String("fallback", "skip", "unmatched name handling (skip, auto-split)")
	formatCmd.Flags().String("join", "", "string between surname and given name for generic padding")
	formatCmd.Flags().Bool("spread", false, "letter-space the whole name before padding")
	formatCmd.Flags().Bool("keep-full-surname", false, "never cut three-character surnames in five-cell slots")
	formatCmd.Flags().Bool("no-rule-tables", false, "use generic padding for every width")
	formatCmd.Flags().Bool("blank-diagnostics", false, "report blank input rows as diagnostics")
	formatCmd.Flags().StringP("out", "o", "", "write the formatted names to this file instead of stdout")
	formatCmd.Flags().String("report", "", "write a run report to this file (- for stdout)")
	formatCmd.Flags().String("report-format", "text", "report rendering (text, list, json, jsonl, yaml, csv, tsv, markdown, html, table, go-template=<tmpl>)")
	formatCmd.Flags().Bool("progress", false, "draw a progress line on the terminal")
	_ = formatCmd.MarkFlagRequired("surnames")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFormatFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	surnamesPath, _ := cmd.Flags().GetString("surnames")
	dict, err := readDictionary(surnamesPath)
	if err != nil {
		return err
	}

	rows, source, err := readRows(cmd, args)
	if err != nil {
		return err
	}

	batch, err := cfg.Batch(dict)
	if err != nil {
		return err
	}

	var prog *progressLine
	if cfg.Progress {
		prog = newProgressLine(cmd.ErrOrStderr())
		batch.Progress = prog.update
	}

	formatted, diags := batch.Run(rows)
	if prog != nil {
		prog.finish()
	}

	rep := report.New(report.BatchSettings(batch), len(rows), formatted, diags)

	logger.Info("batch finished",
		zap.String("source", source),
		zap.Int("surnames", len(dict)),
		zap.Int("input", rep.Counts.Input),
		zap.Int("formatted", rep.Counts.Formatted),
		zap.Int("skipped", rep.Counts.Skipped),
		zap.Int("auto_split", rep.Counts.AutoSplit),
		zap.Int("truncated", rep.Counts.Truncated),
	)
	for _, d := range diags {
		logger.Warn("row diagnostic",
			zap.Int("row", d.Row),
			zap.String("kind", string(d.Kind)),
			zap.String("message", d.Message),
		)
	}

	reportFormat, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return err
	}
	reportPath, _ := cmd.Flags().GetString("report")
	outPath, _ := cmd.Flags().GetString("out")

	// --report - claims stdout for the report; the name list then goes
	// only to --out, when given.
	if outPath != "" || reportPath != "-" {
		out := cmd.OutOrStdout()
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := report.Write(out, report.List, rep); err != nil {
			return fmt.Errorf("failed to write formatted names: %w", err)
		}
	}

	switch reportPath {
	case "":
	case "-":
		if err := report.Write(cmd.OutOrStdout(), reportFormat, rep); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	default:
		f, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		if err := report.Write(f, reportFormat, rep); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// applyFormatFlags lays explicitly set flags over the loaded config, so
// precedence stays flags > environment > config file > defaults.
func applyFormatFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.Width, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("align") {
		cfg.Alignment, _ = cmd.Flags().GetString("align")
	}
	if cmd.Flags().Changed("match") {
		cfg.Match, _ = cmd.Flags().GetString("match")
	}
	if cmd.Flags().Changed("fallback") {
		cfg.Fallback, _ = cmd.Flags().GetString("fallback")
	}
	if cmd.Flags().Changed("join") {
		cfg.Join, _ = cmd.Flags().GetString("join")
	}
	if cmd.Flags().Changed("spread") {
		cfg.Spread, _ = cmd.Flags().GetBool("spread")
	}
	if cmd.Flags().Changed("keep-full-surname") {
		cfg.KeepFullSurname, _ = cmd.Flags().GetBool("keep-full-surname")
	}
	if cmd.Flags().Changed("no-rule-tables") {
		cfg.DisableRuleTables, _ = cmd.Flags().GetBool("no-rule-tables")
	}
	if cmd.Flags().Changed("blank-diagnostics") {
		cfg.ReportBlankRows, _ = cmd.Flags().GetBool("blank-diagnostics")
	}
	if cmd.Flags().Changed("report-format") {
		cfg.ReportFormat, _ = cmd.Flags().GetString("report-format")
	}
	if cmd.Flags().Changed("progress") {
		cfg.Progress, _ = cmd.Flags().GetBool("progress")
	}
}

// readRows loads the name list from the file argument, or stdin when the
// argument is absent or "-".
func readRows(cmd *cobra.Command, args []string) ([]string, string, error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to open names file: %w", err)
		}
		defer f.Close()
		rows, err := namelist.ReadRows(f)
		if err != nil {
			return nil, "", err
		}
		return rows, args[0], nil
	}
	rows, err := namelist.ReadRows(cmd.InOrStdin())
	if err != nil {
		return nil, "", err
	}
	return rows, "stdin", nil
}

func readDictionary(path string) (dtpsupport.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open surname list: %w", err)
	}
	defer f.Close()
	return namelist.ReadDictionary(f)
}
