package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/conlaw/processor/rulecheck"
	"github.com/c360studio/conlaw/rules"
)

func checkCmd(configPath, logLevel *string) *cobra.Command {
	var recordFile string

	cmd := &cobra.Command{
		Use:   "check [RECORD.json]",
		Short: "Evaluate a record against the ruleset",
		Long: `Evaluate a JSON record against the corpus ruleset. The record is
read from the named file, --file, or stdin. Exits non-zero when an
enforced must-rule is violated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)

			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			path := recordFile
			if len(args) == 1 {
				path = args[0]
			}

			record, err := readRecord(path)
			if err != nil {
				return err
			}

			ruleset, err := buildRuleset(cfg.Ruleset.File, cfg.Ruleset.Org)
			if err != nil {
				return err
			}

			return runCheck(ruleset, record)
		},
	}

	cmd.Flags().StringVarP(&recordFile, "file", "f", "", "Record file path (defaults to stdin)")
	return cmd
}

// readRecord decodes a check record from the given file, or stdin
// when the path is empty.
func readRecord(path string) (rules.Record, error) {
	var data []byte
	var err error

	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	var record rules.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	if len(record) == 0 {
		return nil, fmt.Errorf("record is empty")
	}

	return record, nil
}

// buildRuleset loads the ruleset from a file when configured, falling
// back to the built-in corpus defaults.
func buildRuleset(file, org string) (*rules.Ruleset, error) {
	if file != "" {
		return rulecheck.LoadRulesetFile(file, org)
	}
	return rules.DefaultRuleset(org), nil
}

func runCheck(ruleset *rules.Ruleset, record rules.Record) error {
	result := ruleset.Evaluate(record)

	for _, v := range result.Violations {
		fmt.Printf("VIOLATION  %s (%s): %s\n", v.Rule.ID, v.Rule.Citation, v.Message)
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning    %s (%s): %s\n", w.Rule.ID, w.Rule.Citation, w.Message)
	}

	if result.Passed {
		fmt.Println("PASS")
		return nil
	}

	return fmt.Errorf("check failed: %d violation(s)", len(result.Violations))
}
