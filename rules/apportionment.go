package rules

import (
	"fmt"
	"math"
)

// PersonsPerSeat is the Article I, Section 2 ceiling: the number of
// representatives shall not exceed one for every thirty thousand.
const PersonsPerSeat = 30000

// taxShareTolerance absorbs rounding in caller-supplied shares.
const taxShareTolerance = 0.001

// StateApportionment records one state's seats, census basis, and
// share of direct taxes.
type StateApportionment struct {
	State      string  `json:"state"`
	Seats      int     `json:"seats"`
	Population int     `json:"population"`
	TaxShare   float64 `json:"tax_share"`
}

// ValidateApportionment checks an apportionment table against the
// Article I, Section 2 constraints: every state has at least one
// representative, no state has more than one seat per thirty thousand
// persons, and direct tax shares are proportional to population. It
// validates only; assigning seats is out of scope.
func ValidateApportionment(states []StateApportionment) error {
	if len(states) == 0 {
		return fmt.Errorf("apportionment requires at least one state")
	}

	var totalPopulation int
	for _, s := range states {
		if s.Seats < 1 {
			return fmt.Errorf("%s has %d seats; each state shall have at least one representative", s.State, s.Seats)
		}
		if s.Population <= 0 {
			return fmt.Errorf("%s has population %d; a positive census basis is required", s.State, s.Population)
		}
		if s.Seats > 1 && s.Seats*PersonsPerSeat > s.Population {
			return fmt.Errorf("%s has %d seats for %d persons; the number shall not exceed one per %d", s.State, s.Seats, s.Population, PersonsPerSeat)
		}
		totalPopulation += s.Population
	}

	for _, s := range states {
		expected := float64(s.Population) / float64(totalPopulation)
		if math.Abs(s.TaxShare-expected) > taxShareTolerance {
			return fmt.Errorf("%s tax share %.4f is not proportional to its census basis (expected %.4f)", s.State, s.TaxShare, expected)
		}
	}

	return nil
}
