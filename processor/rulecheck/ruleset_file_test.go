package rulecheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/conlaw/rules"
)

const testRulesetYAML = `version: "2.0.0"
articles:
  article_i:
    - id: house-age
      citation: "Article I, Section 2, Clause 2"
      text: "Representatives shall be twenty-five years of age."
      category: qualification
      priority: must
      predicate: representative-eligibility
    - id: advisory-note
      text: "Members should disclose conflicts of interest."
  amendments:
    - id: speech
      citation: "Amendment I"
      text: "Congress shall make no law abridging the freedom of speech."
      category: prohibition
      priority: must
      enforced: false
`

func writeRulesetFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRulesetFileYAML(t *testing.T) {
	path := writeRulesetFile(t, "ruleset.yaml", testRulesetYAML)

	s, err := LoadRulesetFile(path, "acme")
	require.NoError(t, err)

	assert.Equal(t, "acme.conlaw.corpus.ruleset.2.0.0", s.ID)
	assert.Equal(t, "2.0.0", s.Version)
	assert.Len(t, s.AllRules(), 3)

	articleRules := s.RulesFor(rules.RefArticleI)
	require.Len(t, articleRules, 2)

	bound := articleRules[0]
	assert.Equal(t, "house-age", bound.ID)
	assert.Equal(t, rules.PriorityMust, bound.Priority)
	assert.True(t, bound.Enforced)
	require.NotNil(t, bound.Predicate)

	// The bound predicate rejects an underage representative.
	err = bound.Predicate(rules.Record{
		"kind":             "candidate",
		"office":           "representative",
		"age":              20,
		"citizen_years":    10,
		"state":            "vt",
		"inhabitant_state": "vt",
	})
	assert.Error(t, err)

	// Text-only rule defaults: priority should, enforced, nil predicate.
	advisory := articleRules[1]
	assert.Equal(t, rules.PriorityShould, advisory.Priority)
	assert.True(t, advisory.Enforced)
	assert.Nil(t, advisory.Predicate)

	amendmentRules := s.RulesFor(rules.RefAmendments)
	require.Len(t, amendmentRules, 1)
	assert.False(t, amendmentRules[0].Enforced)
}

func TestLoadRulesetFileJSON(t *testing.T) {
	path := writeRulesetFile(t, "ruleset.json", `{
		"version": "1.1.0",
		"articles": {
			"article_i": [
				{"id": "tally", "text": "Supermajorities carry.", "predicate": "supermajority-thresholds"}
			]
		}
	}`)

	s, err := LoadRulesetFile(path, "acme")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", s.Version)
	require.Len(t, s.AllRules(), 1)
	assert.NotNil(t, s.AllRules()[0].Predicate)
}

func TestLoadRulesetFileDefaultVersion(t *testing.T) {
	path := writeRulesetFile(t, "ruleset.yaml", "articles:\n  article_i:\n    - id: r1\n      text: \"A rule.\"\n")

	s, err := LoadRulesetFile(path, "acme")
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultRulesetVersion, s.Version)
}

func TestLoadRulesetFileErrors(t *testing.T) {
	t.Run("unknown predicate", func(t *testing.T) {
		path := writeRulesetFile(t, "ruleset.yaml", "articles:\n  article_i:\n    - id: r1\n      text: \"A rule.\"\n      predicate: no-such-check\n")
		_, err := LoadRulesetFile(path, "acme")
		assert.ErrorContains(t, err, "unknown predicate")
	})

	t.Run("missing text", func(t *testing.T) {
		path := writeRulesetFile(t, "ruleset.yaml", "articles:\n  article_i:\n    - id: r1\n")
		_, err := LoadRulesetFile(path, "acme")
		assert.ErrorContains(t, err, "text is required")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeRulesetFile(t, "ruleset.toml", "version = '1.0.0'")
		_, err := LoadRulesetFile(path, "acme")
		assert.ErrorContains(t, err, "unsupported ruleset file format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRulesetFile(filepath.Join(t.TempDir(), "absent.yaml"), "acme")
		assert.Error(t, err)
	})
}

func TestBuiltinPredicateNames(t *testing.T) {
	for _, name := range []string{
		"representative-eligibility",
		"senator-eligibility",
		"president-eligibility",
		"revenue-origination",
		"supermajority-thresholds",
		"judgment-limit",
	} {
		pred, ok := rules.BuiltinPredicate(name)
		assert.True(t, ok, name)
		assert.NotNil(t, pred, name)
	}

	_, ok := rules.BuiltinPredicate("bogus")
	assert.False(t, ok)
}
