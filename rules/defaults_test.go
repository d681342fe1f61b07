package rules

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultRuleset_Coverage(t *testing.T) {
	s := DefaultRuleset("acme")

	if len(s.RulesInCategory(CategoryQualification)) != 3 {
		t.Errorf("qualification rules = %d, want 3", len(s.RulesInCategory(CategoryQualification)))
	}
	if len(s.RulesInCategory(CategoryProhibition)) == 0 {
		t.Error("no prohibition rules in default ruleset")
	}
	for _, rule := range s.AllRules() {
		if rule.Citation == "" {
			t.Errorf("rule %s has no citation", rule.ID)
		}
	}
}

func TestDefaultRuleset_CandidateChecks(t *testing.T) {
	s := DefaultRuleset("acme")

	result := s.Evaluate(Record{
		"kind":             KindCandidate,
		"office":           "senator",
		"state":            "NY",
		"age":              float64(33),
		"citizen_years":    float64(12),
		"inhabitant_state": "NY",
	})
	if !result.Passed {
		t.Errorf("qualified senator failed: %+v", result.Violations)
	}

	result = s.Evaluate(Record{
		"kind":             KindCandidate,
		"office":           "senator",
		"state":            "NY",
		"age":              float64(28),
		"citizen_years":    float64(12),
		"inhabitant_state": "NY",
	})
	if result.Passed {
		t.Error("underage senator should fail")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("Violations = %d, want 1", len(result.Violations))
	}
	if result.Violations[0].Rule.ID != "senate-qualifications" {
		t.Errorf("violated rule = %q, want senate-qualifications", result.Violations[0].Rule.ID)
	}
}

func TestDefaultRuleset_BillChecks(t *testing.T) {
	s := DefaultRuleset("acme")

	result := s.Evaluate(Record{
		"kind":      KindBill,
		"bill_kind": "revenue",
		"origin":    "senate",
	})
	if result.Passed {
		t.Error("Senate-origin revenue bill should fail")
	}

	result = s.Evaluate(Record{
		"kind":      KindBill,
		"bill_kind": "revenue",
		"origin":    "house",
	})
	if !result.Passed {
		t.Errorf("House-origin revenue bill failed: %+v", result.Violations)
	}
}

func TestDefaultRuleset_Prohibitions(t *testing.T) {
	s := DefaultRuleset("acme")

	for _, action := range []string{"bill_of_attainder", "ex_post_facto", "grant_title", "state_treaty", "state_coinage", "religious_test"} {
		result := s.Evaluate(Record{"kind": KindAction, "action": action, "state": "GA"})
		if result.Passed {
			t.Errorf("action %q should be a violation", action)
		}
	}
}

func TestDefaultRuleset_TreasonWitnesses(t *testing.T) {
	s := DefaultRuleset("acme")

	result := s.Evaluate(Record{
		"kind":                  KindAction,
		"action":                "treason_conviction",
		"witnesses_to_same_act": float64(1),
	})
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %d, want 1", len(result.Warnings))
	}
	if !strings.Contains(result.Warnings[0].Message, "Article III") {
		t.Errorf("warning %q does not cite Article III", result.Warnings[0].Message)
	}

	result = s.Evaluate(Record{
		"kind":                     KindAction,
		"action":                   "treason_conviction",
		"confession_in_open_court": true,
	})
	if len(result.Warnings) != 0 {
		t.Errorf("confession in open court warned: %+v", result.Warnings)
	}
}

func TestDefaultRuleset_TallyChecks(t *testing.T) {
	s := DefaultRuleset("acme")

	result := s.Evaluate(Record{
		"kind":       KindTally,
		"proceeding": "veto_override",
		"yea":        float64(290),
		"nay":        float64(145),
	})
	if !result.Passed {
		t.Errorf("two-thirds override failed: %+v", result.Violations)
	}

	result = s.Evaluate(Record{
		"kind":       KindTally,
		"proceeding": "veto_override",
		"yea":        float64(250),
		"nay":        float64(185),
	})
	if result.Passed {
		t.Error("simple-majority override should fail")
	}
}

func TestDefaultRuleset_JudgmentLimit(t *testing.T) {
	s := DefaultRuleset("acme")

	result := s.Evaluate(Record{
		"kind":      KindJudgment,
		"official":  "Judge X",
		"penalties": []any{"removal", "disqualification"},
	})
	if !result.Passed {
		t.Errorf("lawful judgment failed: %+v", result.Violations)
	}

	result = s.Evaluate(Record{
		"kind":      KindJudgment,
		"official":  "Judge X",
		"penalties": []any{"removal", "imprisonment"},
	})
	if result.Passed {
		t.Error("judgment reaching imprisonment should fail")
	}
}

func TestValidateJudgment(t *testing.T) {
	err := ValidateJudgment(Judgment{
		Official:  "Judge X",
		Penalties: []Penalty{PenaltyRemoval, Penalty("fine")},
	})
	if !errors.Is(err, ErrProhibited) {
		t.Errorf("error = %v, want ErrProhibited", err)
	}
}

func TestSuccessionLine(t *testing.T) {
	line := DefaultSuccessionLine()

	if next := line.Next("president"); next != "vice_president" {
		t.Errorf("Next(president) = %q, want vice_president", next)
	}
	if pos := line.Position("vice_president"); pos != 1 {
		t.Errorf("Position(vice_president) = %d, want 1", pos)
	}
	if next := line.Next("secretary_of_state"); next != "" {
		t.Errorf("Next at end of line = %q, want empty", next)
	}
	if pos := line.Position("court_jester"); pos != -1 {
		t.Errorf("Position of unknown office = %d, want -1", pos)
	}
}
