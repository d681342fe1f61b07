package storage

import (
	"testing"

	"github.com/c360studio/conlaw/rules"
)

func TestEntityID_RoundTrip(t *testing.T) {
	id := NewEntityID(EntityTypeCheck)

	if id.Type != EntityTypeCheck {
		t.Errorf("Type = %q, want %q", id.Type, EntityTypeCheck)
	}
	if id.ID == "" {
		t.Fatal("ID is empty")
	}

	parsed, err := ParseEntityID(id.String())
	if err != nil {
		t.Fatalf("ParseEntityID(%q) error = %v", id.String(), err)
	}
	if parsed != id {
		t.Errorf("ParseEntityID round trip = %+v, want %+v", parsed, id)
	}
}

func TestParseEntityID_Invalid(t *testing.T) {
	tests := []string{
		"no-separator",
		"unknown:abc",
		"",
	}
	for _, s := range tests {
		if _, err := ParseEntityID(s); err == nil {
			t.Errorf("ParseEntityID(%q) = nil error, want failure", s)
		}
	}
}

func TestNewEntityID_Unique(t *testing.T) {
	a := NewEntityID(EntityTypeDocument)
	b := NewEntityID(EntityTypeDocument)
	if a.ID == b.ID {
		t.Error("consecutive IDs collide")
	}
}

func TestRulingFromResult(t *testing.T) {
	result := rules.NewCheckResult()
	result.AddViolation(rules.Violation{Message: "age 24 is below 25"})
	result.AddWarning(rules.Violation{Message: "only one witness"})

	checkID := NewEntityID(EntityTypeCheck)
	ruling := RulingFromResult(checkID, result)

	if ruling.Passed {
		t.Error("Passed = true, want false after a violation")
	}
	if ruling.CheckID != checkID.String() {
		t.Errorf("CheckID = %q, want %q", ruling.CheckID, checkID.String())
	}
	if len(ruling.Violations) != 1 || ruling.Violations[0] != "age 24 is below 25" {
		t.Errorf("Violations = %v, want the violation message", ruling.Violations)
	}
	if len(ruling.Warnings) != 1 {
		t.Errorf("Warnings = %v, want 1 entry", ruling.Warnings)
	}
}
