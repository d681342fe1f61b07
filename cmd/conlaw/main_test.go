package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/conlaw/config"
	corpusingester "github.com/c360studio/conlaw/processor/corpus-ingester"
	"github.com/c360studio/conlaw/processor/rulecheck"
)

func TestHTTPPortFromAddr(t *testing.T) {
	tests := []struct {
		addr string
		want int
	}{
		{":8080", 8080},
		{"localhost:9090", 9090},
		{"8081", 8081},
		{"", 8080},
		{":bogus", 8080},
	}

	for _, tt := range tests {
		if got := httpPortFromAddr(tt.addr); got != tt.want {
			t.Errorf("httpPortFromAddr(%q) = %d, want %d", tt.addr, got, tt.want)
		}
	}
}

func TestFetchFileName(t *testing.T) {
	name := fetchFileName("https://example.com/constitution/full-text")
	if name != "example-com-constitution-full-text.md" {
		t.Errorf("fetchFileName = %q", name)
	}
}

func TestBuildStreamsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ruleset.Org = "acme"
	cfg.Ruleset.Enforce = config.EnforceWarn
	cfg.Corpus.Watch = true

	streamsCfg, err := buildStreamsConfig(cfg, "nats://localhost:4222")
	if err != nil {
		t.Fatalf("buildStreamsConfig: %v", err)
	}

	if streamsCfg.Platform.Org != "acme" {
		t.Errorf("platform org = %q, want acme", streamsCfg.Platform.Org)
	}
	for _, stream := range []string{"CORPUS", "RULES", "GRAPH"} {
		if _, ok := streamsCfg.Streams[stream]; !ok {
			t.Errorf("missing stream %s", stream)
		}
	}

	ingesterRaw, ok := streamsCfg.Components["corpus-ingester"]
	if !ok {
		t.Fatal("missing corpus-ingester component config")
	}
	var ingesterCfg corpusingester.Config
	if err := json.Unmarshal(ingesterRaw.Config, &ingesterCfg); err != nil {
		t.Fatalf("unmarshal ingester config: %v", err)
	}
	if !ingesterCfg.WatchConfig.Enabled {
		t.Error("watch should be enabled")
	}

	rulecheckRaw, ok := streamsCfg.Components["rulecheck"]
	if !ok {
		t.Fatal("missing rulecheck component config")
	}
	var rulecheckCfg rulecheck.Config
	if err := json.Unmarshal(rulecheckRaw.Config, &rulecheckCfg); err != nil {
		t.Fatalf("unmarshal rulecheck config: %v", err)
	}
	if rulecheckCfg.Org != "acme" {
		t.Errorf("rulecheck org = %q, want acme", rulecheckCfg.Org)
	}
	if rulecheckCfg.EnforceMode != "warn" {
		t.Errorf("rulecheck enforce mode = %q, want warn", rulecheckCfg.EnforceMode)
	}
}

func TestReadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	if err := os.WriteFile(path, []byte(`{"kind": "tally", "yea": 70, "nay": 30, "proceeding": "veto_override"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	record, err := readRecord(path)
	if err != nil {
		t.Fatalf("readRecord: %v", err)
	}
	if record.String("kind") != "tally" {
		t.Errorf("kind = %q, want tally", record.String("kind"))
	}
	if record.Int("yea") != 70 {
		t.Errorf("yea = %d, want 70", record.Int("yea"))
	}
}

func TestReadRecordErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readRecord(path); err == nil {
		t.Error("expected error for empty record")
	}
	if _, err := readRecord(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunCheckExitBehavior(t *testing.T) {
	ruleset, err := buildRuleset("", "test")
	if err != nil {
		t.Fatal(err)
	}

	passing := map[string]any{
		"kind": "tally", "yea": 70, "nay": 30, "proceeding": "veto_override",
	}
	if err := runCheck(ruleset, passing); err != nil {
		t.Errorf("passing record should not error: %v", err)
	}

	failing := map[string]any{
		"kind": "tally", "yea": 50, "nay": 50, "proceeding": "veto_override",
	}
	if err := runCheck(ruleset, failing); err == nil {
		t.Error("failing record should error")
	}
}
