package rules

import "errors"

// ErrProhibited signals an action the text forbids outright. Callers
// branch on it with errors.Is; the wrapped message carries the clause
// citation.
var ErrProhibited = errors.New("prohibited by the constitutional text")

// ErrNotEligible signals a candidate who fails an office's
// qualification thresholds.
var ErrNotEligible = errors.New("not eligible for office")

// ErrThresholdNotMet signals a tally that falls short of the
// supermajority its proceeding requires.
var ErrThresholdNotMet = errors.New("supermajority threshold not met")

// ErrInvalidTally signals a tally whose counts cannot be evaluated,
// such as a zero or negative voting base.
var ErrInvalidTally = errors.New("invalid tally")
