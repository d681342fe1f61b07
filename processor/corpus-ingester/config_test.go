package corpusingester

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StreamName != "CORPUS" {
		t.Errorf("StreamName = %q, want CORPUS", cfg.StreamName)
	}
	if cfg.ConsumerName != "corpus-ingester" {
		t.Errorf("ConsumerName = %q, want corpus-ingester", cfg.ConsumerName)
	}
	if cfg.Ports == nil {
		t.Fatal("expected default ports")
	}
	if len(cfg.Ports.Inputs) != 1 || len(cfg.Ports.Outputs) != 1 {
		t.Errorf("ports = %d in / %d out, want 1 / 1", len(cfg.Ports.Inputs), len(cfg.Ports.Outputs))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing stream", func(c *Config) { c.StreamName = "" }, true},
		{"missing consumer", func(c *Config) { c.ConsumerName = "" }, true},
		{"missing corpus dir", func(c *Config) { c.CorpusDir = "" }, true},
		{"missing patterns", func(c *Config) { c.Patterns = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWatchConfigDebounce(t *testing.T) {
	tests := []struct {
		delay string
		want  time.Duration
	}{
		{"", 500 * time.Millisecond},
		{"2s", 2 * time.Second},
		{"bogus", 500 * time.Millisecond},
	}

	for _, tt := range tests {
		cfg := WatchConfig{DebounceDelay: tt.delay}
		if got := cfg.GetDebounceDelay(); got != tt.want {
			t.Errorf("GetDebounceDelay(%q) = %v, want %v", tt.delay, got, tt.want)
		}
	}
}

func TestIngestRequestValidate(t *testing.T) {
	req := &IngestRequest{}
	if err := req.Validate(); err == nil {
		t.Error("empty request should fail validation")
	}

	req.Path = "constitution.md"
	if err := req.Validate(); err != nil {
		t.Errorf("valid request should pass: %v", err)
	}
}
