package rulecheck

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/conlaw/rules"
)

// RulesetFile is the on-disk ruleset format. Rules are grouped by
// article reference; a rule may bind one of the built-in predicates by
// name, otherwise it is text-only and never evaluated.
type RulesetFile struct {
	Version  string                `json:"version"  yaml:"version"`
	Articles map[string][]FileRule `json:"articles" yaml:"articles"`
}

// FileRule is a single rule entry in a ruleset file.
type FileRule struct {
	ID        string `json:"id"                  yaml:"id"`
	Citation  string `json:"citation,omitempty"  yaml:"citation,omitempty"`
	Text      string `json:"text"                yaml:"text"`
	Category  string `json:"category,omitempty"  yaml:"category,omitempty"`
	Priority  string `json:"priority,omitempty"  yaml:"priority,omitempty"`
	Enforced  *bool  `json:"enforced,omitempty"  yaml:"enforced,omitempty"`
	Predicate string `json:"predicate,omitempty" yaml:"predicate,omitempty"`
}

// LoadRulesetFile reads a ruleset definition from a YAML or JSON file
// and builds an evaluable ruleset for the given org.
func LoadRulesetFile(path, org string) (*rules.Ruleset, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read ruleset file: %w", err)
	}

	var file RulesetFile
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported ruleset file format: %s", filepath.Ext(absPath))
	}

	return buildRuleset(&file, org)
}

// buildRuleset converts a parsed ruleset file into a Ruleset.
func buildRuleset(file *RulesetFile, org string) (*rules.Ruleset, error) {
	version := file.Version
	if version == "" {
		version = rules.DefaultRulesetVersion
	}

	s := rules.NewRuleset(org, version)

	for ref, fileRules := range file.Articles {
		for i, fr := range fileRules {
			if fr.Text == "" {
				return nil, fmt.Errorf("article %s rule %d: text is required", ref, i+1)
			}

			rule := rules.Rule{
				ID:       fr.ID,
				Citation: fr.Citation,
				Text:     fr.Text,
				Category: rules.CategoryName(fr.Category),
				Priority: rules.RulePriorityValue(fr.Priority),
				Enforced: true,
			}
			if rule.Priority == "" {
				rule.Priority = rules.PriorityShould
			}
			if fr.Enforced != nil {
				rule.Enforced = *fr.Enforced
			}

			if fr.Predicate != "" {
				pred, ok := rules.BuiltinPredicate(fr.Predicate)
				if !ok {
					return nil, fmt.Errorf("article %s rule %q: unknown predicate %q", ref, fr.ID, fr.Predicate)
				}
				rule.Predicate = pred
			}

			s.AddRule(rules.ArticleRef(ref), rule)
		}
	}

	return s, nil
}
