// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used when fetching remote exports.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds the 429 retry loop (0 uses the default).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// ArchiveConfig holds settings for the appraisal archive.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Dir is the directory containing archive.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// SourceURL is the CSV export imported when no file is given.
	SourceURL string `json:"source_url" yaml:"source_url" mapstructure:"source_url"`
}

// Config groups all settings read from appraisal-writer.yaml.
type Config struct {
	// Bank is the phrase bank YAML path. Empty uses the built-in bank.
	Bank string `json:"bank" yaml:"bank" mapstructure:"bank"`

	Archive ArchiveConfig `json:"archive" yaml:"archive" mapstructure:"archive"`
}
