package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration with CLI flags > environment > config file >
// defaults precedence. Flag overrides are the caller's job; Load covers
// the other three. Environment variables use the DTP_ prefix with dots
// replaced by underscores, e.g. DTP_SERVER_PORT.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults matching Default().
	v.SetDefault("width", 5)
	v.SetDefault("alignment", "center")
	v.SetDefault("match", "longest")
	v.SetDefault("fallback", "skip")
	v.SetDefault("join", "")
	v.SetDefault("spread", false)
	v.SetDefault("keep_full_surname", false)
	v.SetDefault("disable_rule_tables", false)
	v.SetDefault("report_blank_rows", false)
	v.SetDefault("report_format", "text")
	v.SetDefault("progress", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetEnvPrefix("DTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Width:             v.GetInt("width"),
		Alignment:         v.GetString("alignment"),
		Match:             v.GetString("match"),
		Fallback:          v.GetString("fallback"),
		Join:              v.GetString("join"),
		Spread:            v.GetBool("spread"),
		KeepFullSurname:   v.GetBool("keep_full_surname"),
		DisableRuleTables: v.GetBool("disable_rule_tables"),
		ReportBlankRows:   v.GetBool("report_blank_rows"),
		ReportFormat:      v.GetString("report_format"),
		Progress:          v.GetBool("progress"),
		Server: ServerConfig{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
