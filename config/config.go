// Package config provides configuration loading and management for conlaw.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnforceMode controls how rule violations are handled.
type EnforceMode string

const (
	// EnforceStrict fails checks on any violation.
	EnforceStrict EnforceMode = "strict"
	// EnforceWarn reports violations without failing checks.
	EnforceWarn EnforceMode = "warn"
	// EnforceOff disables rule evaluation entirely.
	EnforceOff EnforceMode = "off"
)

// Valid reports whether the enforce mode is a known value.
func (m EnforceMode) Valid() bool {
	switch m {
	case EnforceStrict, EnforceWarn, EnforceOff:
		return true
	}
	return false
}

// Config represents the complete conlaw configuration
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Ruleset RulesetConfig `yaml:"ruleset"`
	NATS    NATSConfig    `yaml:"nats"`
	Server  ServerConfig  `yaml:"server"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Export  ExportConfig  `yaml:"export"`
}

// CorpusConfig configures corpus document discovery
type CorpusConfig struct {
	// Paths are glob patterns for corpus documents (e.g. "corpus/**/*.md")
	Paths []string `yaml:"paths"`
	// Watch enables filesystem watching for document changes
	Watch bool `yaml:"watch"`
	// DebounceInterval is the settle time between a file change and a re-parse
	DebounceInterval time.Duration `yaml:"debounce_interval"`
}

// RulesetConfig configures the rule evaluator
type RulesetConfig struct {
	// File is an optional ruleset definition file (YAML or JSON);
	// empty uses the built-in defaults
	File string `yaml:"file"`
	// Org is the organization segment used in ruleset entity IDs
	Org string `yaml:"org"`
	// Enforce controls violation handling: strict, warn, or off
	Enforce EnforceMode `yaml:"enforce"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = use embedded server)
	URL string `yaml:"url"`
	// Embedded indicates whether to use embedded NATS
	Embedded bool `yaml:"embedded"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	// Addr is the listen address for the HTTP API
	Addr string `yaml:"addr"`
}

// FetchConfig configures remote document fetching
type FetchConfig struct {
	// Timeout is the maximum time for a single fetch
	Timeout time.Duration `yaml:"timeout"`
	// MaxSizeBytes caps the response body size
	MaxSizeBytes int64 `yaml:"max_size_bytes"`
}

// ExportConfig configures RDF export defaults
type ExportConfig struct {
	// Profile is the default ontology profile: minimal, bfo, or cco
	Profile string `yaml:"profile"`
	// Format is the default serialization: turtle, ntriples, or jsonld
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Paths:            []string{"corpus/**/*.md"},
			Watch:            false,
			DebounceInterval: 500 * time.Millisecond,
		},
		Ruleset: RulesetConfig{
			File:    "",
			Org:     "conlaw",
			Enforce: EnforceStrict,
		},
		NATS: NATSConfig{
			URL:      "",
			Embedded: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Fetch: FetchConfig{
			Timeout:      30 * time.Second,
			MaxSizeBytes: 10 * 1024 * 1024,
		},
		Export: ExportConfig{
			Profile: "minimal",
			Format:  "turtle",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Corpus.Paths) == 0 {
		return fmt.Errorf("corpus.paths is required")
	}
	if c.Ruleset.Org == "" {
		return fmt.Errorf("ruleset.org is required")
	}
	if !c.Ruleset.Enforce.Valid() {
		return fmt.Errorf("ruleset.enforce must be strict, warn, or off")
	}
	if c.Fetch.MaxSizeBytes <= 0 {
		return fmt.Errorf("fetch.max_size_bytes must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Corpus
	if len(other.Corpus.Paths) > 0 {
		c.Corpus.Paths = other.Corpus.Paths
	}
	if other.Corpus.Watch {
		c.Corpus.Watch = true
	}
	if other.Corpus.DebounceInterval != 0 {
		c.Corpus.DebounceInterval = other.Corpus.DebounceInterval
	}

	// Ruleset
	if other.Ruleset.File != "" {
		c.Ruleset.File = other.Ruleset.File
	}
	if other.Ruleset.Org != "" {
		c.Ruleset.Org = other.Ruleset.Org
	}
	if other.Ruleset.Enforce != "" {
		c.Ruleset.Enforce = other.Ruleset.Enforce
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
		c.NATS.Embedded = false
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.MaxSizeBytes != 0 {
		c.Fetch.MaxSizeBytes = other.Fetch.MaxSizeBytes
	}

	// Export
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
}
