package rules

import (
	"fmt"
	"time"

	"github.com/c360studio/semstreams/message"
)

// Ruleset holds the evaluable rules derived from the corpus, grouped
// by article citation.
type Ruleset struct {
	// ID is the entity identifier
	// Format: {org}.conlaw.corpus.ruleset.{version}
	ID string

	// Version is the ruleset version
	Version string

	// Articles contains rules organized by article citation
	Articles map[ArticleRef][]Rule

	// Timestamps
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Rule represents a single evaluable rule.
type Rule struct {
	// ID is the rule identifier within the article
	ID string

	// Citation names the article/section/clause the rule derives from
	Citation string

	// Text is the rule description
	Text string

	// Category classifies what the rule governs
	Category CategoryName

	// Priority indicates enforcement level
	Priority RulePriorityValue

	// Enforced indicates if the rule is actively enforced
	Enforced bool

	// Predicate evaluates a record against the rule. A nil predicate
	// marks a text-only rule that is published but never evaluated.
	Predicate func(Record) error `json:"-"`
}

// NewRuleset creates a new ruleset entity
func NewRuleset(org, version string) *Ruleset {
	now := time.Now()
	return &Ruleset{
		ID:         fmt.Sprintf("%s.conlaw.corpus.ruleset.%s", org, version),
		Version:    version,
		Articles:   make(map[ArticleRef][]Rule),
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// AddRule adds a rule to the ruleset under the given article.
func (s *Ruleset) AddRule(ref ArticleRef, rule Rule) {
	if s.Articles == nil {
		s.Articles = make(map[ArticleRef][]Rule)
	}
	s.Articles[ref] = append(s.Articles[ref], rule)
	s.ModifiedAt = time.Now()
}

// RulesFor returns all rules for a given article.
func (s *Ruleset) RulesFor(ref ArticleRef) []Rule {
	return s.Articles[ref]
}

// AllRules returns all rules across all articles.
func (s *Ruleset) AllRules() []Rule {
	var rules []Rule
	for _, articleRules := range s.Articles {
		rules = append(rules, articleRules...)
	}
	return rules
}

// EnforcedRules returns only rules that are actively enforced.
func (s *Ruleset) EnforcedRules() []Rule {
	var rules []Rule
	for _, articleRules := range s.Articles {
		for _, rule := range articleRules {
			if rule.Enforced {
				rules = append(rules, rule)
			}
		}
	}
	return rules
}

// RulesInCategory returns all rules with the given category.
func (s *Ruleset) RulesInCategory(category CategoryName) []Rule {
	var rules []Rule
	for _, articleRules := range s.Articles {
		for _, rule := range articleRules {
			if rule.Category == category {
				rules = append(rules, rule)
			}
		}
	}
	return rules
}

// Triples converts the Ruleset to a slice of message.Triple for graph storage
func (s *Ruleset) Triples() []message.Triple {
	triples := make([]message.Triple, 0, 10+len(s.AllRules())*6)

	// Ruleset identity
	triples = append(triples,
		message.Triple{Subject: s.ID, Predicate: DcTitle, Object: fmt.Sprintf("Ruleset %s", s.Version)},
		message.Triple{Subject: s.ID, Predicate: Version, Object: s.Version},
		message.Triple{Subject: s.ID, Predicate: DcCreated, Object: s.CreatedAt.Format(time.RFC3339)},
		message.Triple{Subject: s.ID, Predicate: DcModified, Object: s.ModifiedAt.Format(time.RFC3339)},
	)

	// Rules per article
	for ref, articleRules := range s.Articles {
		for i, rule := range articleRules {
			ruleID := rule.ID
			if ruleID == "" {
				ruleID = fmt.Sprintf("%s-%d", ref, i+1)
			}
			ruleSubject := fmt.Sprintf("%s.rule.%s", s.ID, ruleID)

			triples = append(triples,
				message.Triple{Subject: ruleSubject, Predicate: RuleID, Object: ruleID},
				message.Triple{Subject: ruleSubject, Predicate: Citation, Object: rule.Citation},
				message.Triple{Subject: ruleSubject, Predicate: RuleText, Object: rule.Text},
				message.Triple{Subject: ruleSubject, Predicate: RuleCategory, Object: string(rule.Category)},
				message.Triple{Subject: ruleSubject, Predicate: RulePriority, Object: string(rule.Priority)},
				message.Triple{Subject: ruleSubject, Predicate: RuleEnforced, Object: rule.Enforced},
			)
		}
	}

	return triples
}

// CheckResult represents the result of evaluating a record against the ruleset
type CheckResult struct {
	// Passed indicates if all enforced must-rules passed
	Passed bool

	// Violations contains must-rule failures
	Violations []Violation

	// Warnings contains should-rule failures
	Warnings []Violation

	// CheckedAt is when the check was performed
	CheckedAt time.Time
}

// Violation represents a single rule failure
type Violation struct {
	// Rule is the rule that failed
	Rule Rule

	// Article is the article the rule belongs to
	Article ArticleRef

	// Message describes the failure
	Message string
}

// NewCheckResult creates a new check result
func NewCheckResult() *CheckResult {
	return &CheckResult{
		Passed:    true,
		CheckedAt: time.Now(),
	}
}

// AddViolation adds a violation to the result
func (r *CheckResult) AddViolation(v Violation) {
	r.Passed = false
	r.Violations = append(r.Violations, v)
}

// AddWarning adds a warning to the result
func (r *CheckResult) AddWarning(v Violation) {
	r.Warnings = append(r.Warnings, v)
}

// Evaluate runs every enforced rule with a predicate against the
// record. A must-rule failure becomes a violation, any other priority
// a warning. A panicking predicate is reported as a violation rather
// than propagated.
func (s *Ruleset) Evaluate(record Record) *CheckResult {
	result := NewCheckResult()

	for ref, articleRules := range s.Articles {
		for _, rule := range articleRules {
			if !rule.Enforced || rule.Predicate == nil {
				continue
			}

			err := runPredicate(rule, record)
			if err == nil {
				continue
			}

			v := Violation{Rule: rule, Article: ref, Message: err.Error()}
			if rule.Priority == PriorityMust {
				result.AddViolation(v)
			} else {
				result.AddWarning(v)
			}
		}
	}

	return result
}

func runPredicate(rule Rule, record Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rule %s predicate panicked: %v", rule.ID, r)
		}
	}()
	return rule.Predicate(record)
}
