package rules

import "fmt"

// The enumerated prohibitions. Each returns ErrProhibited wrapped with
// its clause citation; none of these actions has a lawful form, so the
// functions take no arguments that could change the outcome.

// PassBillOfAttainder is forbidden to Congress and the states.
func PassBillOfAttainder() error {
	return fmt.Errorf("%w: no bill of attainder shall be passed (Article I, Section 9)", ErrProhibited)
}

// PassExPostFactoLaw is forbidden to Congress and the states.
func PassExPostFactoLaw() error {
	return fmt.Errorf("%w: no ex post facto law shall be passed (Article I, Section 9)", ErrProhibited)
}

// GrantTitleOfNobility is forbidden to the United States.
func GrantTitleOfNobility() error {
	return fmt.Errorf("%w: no title of nobility shall be granted (Article I, Section 9)", ErrProhibited)
}

// StateEnterTreaty is forbidden to the states.
func StateEnterTreaty(state string) error {
	return fmt.Errorf("%w: %s may not enter into a treaty, alliance, or confederation (Article I, Section 10)", ErrProhibited, state)
}

// StateCoinMoney is forbidden to the states.
func StateCoinMoney(state string) error {
	return fmt.Errorf("%w: %s may not coin money (Article I, Section 10)", ErrProhibited, state)
}

// RequireReligiousTest is forbidden for any federal office or public trust.
func RequireReligiousTest() error {
	return fmt.Errorf("%w: no religious test shall ever be required as a qualification to office (Article VI)", ErrProhibited)
}
