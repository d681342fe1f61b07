package rules

import (
	"errors"
	"testing"

	"github.com/c360studio/conlaw/vocabulary/legislation"
)

func TestVetoOverrideCarries(t *testing.T) {
	tests := []struct {
		name    string
		tally   TallyResult
		carries bool
	}{
		{"exactly two thirds", TallyResult{Yea: 290, Nay: 145}, true},
		{"one short", TallyResult{Yea: 289, Nay: 146}, false},
		{"unanimous", TallyResult{Yea: 100, Nay: 0}, true},
		{"simple majority only", TallyResult{Yea: 60, Nay: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carries, err := tt.tally.VetoOverrideCarries()
			if err != nil {
				t.Fatalf("VetoOverrideCarries() error = %v", err)
			}
			if carries != tt.carries {
				t.Errorf("VetoOverrideCarries() = %v, want %v", carries, tt.carries)
			}
		})
	}
}

func TestConvictionCarries_CountsPresent(t *testing.T) {
	// 60 of 90 voting is two thirds, but ten more senators present
	// raise the base to 100 and the vote fails.
	tally := TallyResult{Yea: 60, Nay: 30, Present: 10}
	carries, err := tally.ConvictionCarries()
	if err != nil {
		t.Fatalf("ConvictionCarries() error = %v", err)
	}
	if carries {
		t.Error("ConvictionCarries() = true, want false with present members counted")
	}

	tally = TallyResult{Yea: 67, Nay: 30, Present: 3}
	carries, err = tally.ConvictionCarries()
	if err != nil {
		t.Fatalf("ConvictionCarries() error = %v", err)
	}
	if !carries {
		t.Error("ConvictionCarries() = false, want true at 67 of 100")
	}
}

func TestRatificationCarries(t *testing.T) {
	tests := []struct {
		name      string
		ratifying int
		total     int
		carries   bool
	}{
		{"exactly three fourths", 38, 50, true},
		{"one short", 37, 50, false},
		{"all states", 13, 13, true},
		{"nine of thirteen", 9, 13, false},
		{"ten of thirteen", 10, 13, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carries, err := RatificationCarries(tt.ratifying, tt.total)
			if err != nil {
				t.Fatalf("RatificationCarries() error = %v", err)
			}
			if carries != tt.carries {
				t.Errorf("RatificationCarries(%d, %d) = %v, want %v", tt.ratifying, tt.total, carries, tt.carries)
			}
		})
	}
}

func TestRatificationCarries_Invalid(t *testing.T) {
	if _, err := RatificationCarries(5, 0); !errors.Is(err, ErrInvalidTally) {
		t.Errorf("error = %v, want ErrInvalidTally", err)
	}
	if _, err := RatificationCarries(14, 13); !errors.Is(err, ErrInvalidTally) {
		t.Errorf("error = %v, want ErrInvalidTally", err)
	}
}

func TestTally_InvalidCounts(t *testing.T) {
	if _, err := (TallyResult{Yea: -1, Nay: 5}).VetoOverrideCarries(); !errors.Is(err, ErrInvalidTally) {
		t.Errorf("negative count error = %v, want ErrInvalidTally", err)
	}
	if _, err := (TallyResult{}).ProposalCarries(); !errors.Is(err, ErrInvalidTally) {
		t.Errorf("empty tally error = %v, want ErrInvalidTally", err)
	}
}

func TestTally_Carries_Dispatch(t *testing.T) {
	tally := TallyResult{Yea: 67, Nay: 33}

	carries, err := tally.Carries(legislation.ProceedingVetoOverride)
	if err != nil {
		t.Fatalf("Carries() error = %v", err)
	}
	if !carries {
		t.Error("Carries(veto_override) = false, want true at 67 of 100")
	}

	if _, err := tally.Carries("recount"); err == nil {
		t.Error("Carries() with unknown proceeding should error")
	}
}
