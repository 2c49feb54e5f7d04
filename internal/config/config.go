// Package config loads and validates settings for the dtp-support tool.
package config

import (
	"fmt"

	"github.com/toma4423/dtpsupport"
	"github.com/toma4423/dtpsupport/internal/report"
)

// Config holds every setting the CLI and server share. Enum fields carry
// their textual form; [Config.Batch] parses them into core types.
type Config struct {
	// Width is the slot size in cells.
	Width int
	// Alignment places generic padding: center, left, or right.
	Alignment string
	// Match is the dictionary scan policy: longest or first.
	Match string
	// Fallback handles names without a dictionary surname: skip or
	// auto-split.
	Fallback string
	// Join is put between surname and given name by the generic padder.
	Join string
	// Spread letter-spaces the whole name before generic padding.
	Spread bool
	// KeepFullSurname drops the five-cell rule that cuts three-character
	// surnames down to their first character.
	KeepFullSurname bool
	// DisableRuleTables routes every width through the generic padder.
	DisableRuleTables bool
	// ReportBlankRows surfaces blank input rows as diagnostics.
	ReportBlankRows bool
	// ReportFormat picks the report rendering.
	ReportFormat string
	// Progress draws a progress line on the terminal during a batch.
	Progress bool
	// Server configures the HTTP API.
	Server ServerConfig
}

// ServerConfig holds the HTTP API listen address.
type ServerConfig struct {
	Host string
	Port int
}

// Default returns the configuration used when nothing overrides it: the
// five-cell slot with the classic layout behavior.
func Default() *Config {
	return &Config{
		Width:        5,
		Alignment:    "center",
		Match:        "longest",
		Fallback:     "skip",
		ReportFormat: "text",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
	}
}

// Batch assembles a core batch from the parsed settings.
func (c *Config) Batch(dict dtpsupport.Dictionary) (dtpsupport.Batch, error) {
	align, err := dtpsupport.ParseAlignment(c.Alignment)
	if err != nil {
		return dtpsupport.Batch{}, err
	}
	match, err := dtpsupport.ParseMatchPolicy(c.Match)
	if err != nil {
		return dtpsupport.Batch{}, err
	}
	fallback, err := dtpsupport.ParseFallbackPolicy(c.Fallback)
	if err != nil {
		return dtpsupport.Batch{}, err
	}
	return dtpsupport.Batch{
		Dictionary:        dict,
		Width:             c.Width,
		Align:             align,
		Match:             match,
		Fallback:          fallback,
		Join:              c.Join,
		Spread:            c.Spread,
		KeepFullSurname:   c.KeepFullSurname,
		DisableRuleTables: c.DisableRuleTables,
		ReportBlankRows:   c.ReportBlankRows,
	}, nil
}

// Validate checks ranges and enum spellings so bad settings fail up
// front instead of mid-batch. Load runs it; callers that override fields
// afterwards, such as CLI flags, should run it again.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", c.Width)
	}
	if _, err := dtpsupport.ParseAlignment(c.Alignment); err != nil {
		return err
	}
	if _, err := dtpsupport.ParseMatchPolicy(c.Match); err != nil {
		return err
	}
	if _, err := dtpsupport.ParseFallbackPolicy(c.Fallback); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.ReportFormat); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	return nil
}
