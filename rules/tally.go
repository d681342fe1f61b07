package rules

import (
	"fmt"

	"github.com/c360studio/conlaw/vocabulary/legislation"
)

// TallyResult is a caller-supplied vote count. The evaluator never
// counts votes itself; it only tests a tally against the threshold the
// text sets for the proceeding.
type TallyResult struct {
	Yea     int `json:"yea"`
	Nay     int `json:"nay"`
	Present int `json:"present"`
}

// Voting returns the number of members voting.
func (t TallyResult) Voting() int {
	return t.Yea + t.Nay
}

// valid rejects tallies that cannot be evaluated.
func (t TallyResult) valid() error {
	if t.Yea < 0 || t.Nay < 0 || t.Present < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidTally)
	}
	if t.Voting() == 0 {
		return fmt.Errorf("%w: no votes cast", ErrInvalidTally)
	}
	return nil
}

// meetsTwoThirds reports whether yea votes reach two thirds of the
// base without floating-point arithmetic.
func meetsTwoThirds(yea, base int) bool {
	return 3*yea >= 2*base
}

// meetsThreeFourths reports whether yea reaches three fourths of the base.
func meetsThreeFourths(yea, base int) bool {
	return 4*yea >= 3*base
}

// VetoOverrideCarries reports whether a chamber's repassage vote meets
// the Article I, Section 7 two-thirds threshold. Both chambers must
// carry separately; callers invoke this once per chamber.
func (t TallyResult) VetoOverrideCarries() (bool, error) {
	if err := t.valid(); err != nil {
		return false, err
	}
	return meetsTwoThirds(t.Yea, t.Voting()), nil
}

// ConvictionCarries reports whether a Senate impeachment vote meets
// the Article I, Section 3 threshold: two thirds of the members
// present.
func (t TallyResult) ConvictionCarries() (bool, error) {
	if err := t.valid(); err != nil {
		return false, err
	}
	base := t.Voting() + t.Present
	return meetsTwoThirds(t.Yea, base), nil
}

// TreatyConsentCarries reports whether a Senate treaty vote meets the
// Article II, Section 2 threshold: two thirds of the senators present.
func (t TallyResult) TreatyConsentCarries() (bool, error) {
	if err := t.valid(); err != nil {
		return false, err
	}
	base := t.Voting() + t.Present
	return meetsTwoThirds(t.Yea, base), nil
}

// ProposalCarries reports whether a chamber's amendment proposal vote
// meets the Article V two-thirds threshold.
func (t TallyResult) ProposalCarries() (bool, error) {
	if err := t.valid(); err != nil {
		return false, err
	}
	return meetsTwoThirds(t.Yea, t.Voting()), nil
}

// RatificationCarries reports whether ratification by the states meets
// the Article V three-fourths threshold. Yea counts ratifying states
// and the base is the total number of states.
func RatificationCarries(ratifying, totalStates int) (bool, error) {
	if totalStates <= 0 {
		return false, fmt.Errorf("%w: no states", ErrInvalidTally)
	}
	if ratifying < 0 || ratifying > totalStates {
		return false, fmt.Errorf("%w: %d of %d states", ErrInvalidTally, ratifying, totalStates)
	}
	return meetsThreeFourths(ratifying, totalStates), nil
}

// Carries dispatches a tally to the threshold for the named
// proceeding.
func (t TallyResult) Carries(proceeding legislation.ProceedingKind) (bool, error) {
	switch proceeding {
	case legislation.ProceedingVetoOverride:
		return t.VetoOverrideCarries()
	case legislation.ProceedingConviction:
		return t.ConvictionCarries()
	case legislation.ProceedingTreaty:
		return t.TreatyConsentCarries()
	case legislation.ProceedingAmendmentProposal:
		return t.ProposalCarries()
	case legislation.ProceedingRatification:
		return RatificationCarries(t.Yea, t.Yea+t.Nay+t.Present)
	}
	return false, fmt.Errorf("unknown proceeding %q", proceeding)
}
