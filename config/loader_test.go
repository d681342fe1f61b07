package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLoader(t *testing.T) *Loader {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEnsureUserConfig(t *testing.T) {
	loader := testLoader(t)

	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}

	path := loader.userConfigPath()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("user config not created at %s: %v", path, err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load created config: %v", err)
	}
	if cfg.Ruleset.Org != DefaultConfig().Ruleset.Org {
		t.Errorf("created config org = %q, want default", cfg.Ruleset.Org)
	}
}

func TestEnsureUserConfig_PreservesExisting(t *testing.T) {
	loader := testLoader(t)

	path := loader.userConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("ruleset:\n  org: customorg\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loader.EnsureUserConfig(); err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Ruleset.Org != "customorg" {
		t.Errorf("org = %q, existing config was overwritten", cfg.Ruleset.Org)
	}
}
