package legislation

// BillKind distinguishes revenue bills from ordinary ones.
type BillKind string

const (
	// BillKindOrdinary is a bill with no revenue effect.
	BillKindOrdinary BillKind = "ordinary"

	// BillKindRevenue is a bill for raising revenue.
	BillKindRevenue BillKind = "revenue"
)

// BillStatus tracks a bill through presentment.
type BillStatus string

const (
	// BillStatusIntroduced means the bill was introduced in its chamber.
	BillStatusIntroduced BillStatus = "introduced"

	// BillStatusPassed means both chambers passed the bill.
	BillStatusPassed BillStatus = "passed"

	// BillStatusPresented means the bill is before the President.
	BillStatusPresented BillStatus = "presented"

	// BillStatusSigned means the President signed the bill into law.
	BillStatusSigned BillStatus = "signed"

	// BillStatusVetoed means the President returned the bill with objections.
	BillStatusVetoed BillStatus = "vetoed"

	// BillStatusOverridden means both chambers repassed over a veto.
	BillStatusOverridden BillStatus = "overridden"

	// BillStatusPocketVetoed means adjournment prevented return.
	BillStatusPocketVetoed BillStatus = "pocket_vetoed"

	// BillStatusLaw means the bill became law without signature
	// after the ten-day window.
	BillStatusLaw BillStatus = "law"
)

// ProceedingKind identifies the kind of supermajority proceeding.
type ProceedingKind string

const (
	// ProceedingVetoOverride is a two-thirds repassage over a veto.
	ProceedingVetoOverride ProceedingKind = "veto_override"

	// ProceedingConviction is a two-thirds impeachment conviction vote.
	ProceedingConviction ProceedingKind = "conviction"

	// ProceedingTreaty is a two-thirds Senate treaty consent vote.
	ProceedingTreaty ProceedingKind = "treaty"

	// ProceedingAmendmentProposal is a two-thirds proposal vote
	// in both chambers.
	ProceedingAmendmentProposal ProceedingKind = "amendment_proposal"

	// ProceedingRatification is a three-fourths-of-states ratification.
	ProceedingRatification ProceedingKind = "ratification"
)
