package rules

import (
	"fmt"

	"github.com/c360studio/conlaw/vocabulary/office"
)

// Qualification thresholds as the text states them.
const (
	// Article I, Section 2: House of Representatives.
	MinAgeRepresentative          = 25
	MinCitizenYearsRepresentative = 7

	// Article I, Section 3: Senate.
	MinAgeSenator          = 30
	MinCitizenYearsSenator = 9

	// Article II, Section 1: President.
	MinAgePresident           = 35
	MinResidencyYearsPresident = 14
)

// Candidate carries the attributes the qualification clauses test.
type Candidate struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	CitizenYears    int    `json:"citizen_years"`
	NaturalBorn     bool   `json:"natural_born"`
	ResidencyYears  int    `json:"residency_years"`
	InhabitantState string `json:"inhabitant_state"`
}

// EligibleForHouse checks the Article I, Section 2 qualifications: at
// least twenty-five years of age, seven years a citizen, and an
// inhabitant of the state represented.
func EligibleForHouse(c Candidate, state string) error {
	if c.Age < MinAgeRepresentative {
		return fmt.Errorf("%w: age %d is below %d", ErrNotEligible, c.Age, MinAgeRepresentative)
	}
	if c.CitizenYears < MinCitizenYearsRepresentative {
		return fmt.Errorf("%w: %d years a citizen, %d required", ErrNotEligible, c.CitizenYears, MinCitizenYearsRepresentative)
	}
	if c.InhabitantState != state {
		return fmt.Errorf("%w: not an inhabitant of %s", ErrNotEligible, state)
	}
	return nil
}

// EligibleForSenate checks the Article I, Section 3 qualifications:
// thirty years of age, nine years a citizen, and an inhabitant of the
// state represented.
func EligibleForSenate(c Candidate, state string) error {
	if c.Age < MinAgeSenator {
		return fmt.Errorf("%w: age %d is below %d", ErrNotEligible, c.Age, MinAgeSenator)
	}
	if c.CitizenYears < MinCitizenYearsSenator {
		return fmt.Errorf("%w: %d years a citizen, %d required", ErrNotEligible, c.CitizenYears, MinCitizenYearsSenator)
	}
	if c.InhabitantState != state {
		return fmt.Errorf("%w: not an inhabitant of %s", ErrNotEligible, state)
	}
	return nil
}

// EligibleForPresidency checks the Article II, Section 1
// qualifications: a natural-born citizen, thirty-five years of age,
// and fourteen years a resident within the United States.
func EligibleForPresidency(c Candidate) error {
	if !c.NaturalBorn {
		return fmt.Errorf("%w: not a natural-born citizen", ErrNotEligible)
	}
	if c.Age < MinAgePresident {
		return fmt.Errorf("%w: age %d is below %d", ErrNotEligible, c.Age, MinAgePresident)
	}
	if c.ResidencyYears < MinResidencyYearsPresident {
		return fmt.Errorf("%w: %d years resident, %d required", ErrNotEligible, c.ResidencyYears, MinResidencyYearsPresident)
	}
	return nil
}

// EligibleForOffice dispatches to the qualification check for the
// given office. For chamber seats the record's represented state is
// compared against the candidate's inhabitant state.
func EligibleForOffice(c Candidate, officeType office.Type, state string) error {
	switch officeType {
	case office.TypeRepresentative:
		return EligibleForHouse(c, state)
	case office.TypeSenator:
		return EligibleForSenate(c, state)
	case office.TypePresident, office.TypeVicePresident:
		// Amendment XII extends the presidential qualifications to the
		// Vice President.
		return EligibleForPresidency(c)
	}
	return fmt.Errorf("unknown office %q", officeType)
}

// CandidateFromRecord builds a Candidate from a generic check record.
func CandidateFromRecord(r Record) Candidate {
	return Candidate{
		Name:            r.String("name"),
		Age:             r.Int("age"),
		CitizenYears:    r.Int("citizen_years"),
		NaturalBorn:     r.Bool("natural_born"),
		ResidencyYears:  r.Int("residency_years"),
		InhabitantState: r.String("inhabitant_state"),
	}
}
