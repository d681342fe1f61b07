package rules

import "fmt"

// Penalty is one consequence an impeachment judgment imposes.
type Penalty string

// The two penalties Article I, Section 3 permits a judgment to reach.
const (
	PenaltyRemoval          Penalty = "removal"
	PenaltyDisqualification Penalty = "disqualification"
)

// Judgment is the outcome of an impeachment conviction.
type Judgment struct {
	Official  string    `json:"official"`
	Penalties []Penalty `json:"penalties"`
}

// ValidateJudgment enforces the Article I, Section 3 limit: judgment
// in cases of impeachment extends no further than removal from office
// and disqualification from holding future office. The convicted
// party remains liable to ordinary criminal process, which is outside
// the judgment itself.
func ValidateJudgment(j Judgment) error {
	for _, p := range j.Penalties {
		if p != PenaltyRemoval && p != PenaltyDisqualification {
			return fmt.Errorf("%w: judgment may not extend to %q (Article I, Section 3)", ErrProhibited, p)
		}
	}
	return nil
}
