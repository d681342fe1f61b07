package legislation

import "github.com/c360studio/semstreams/vocabulary"

// Namespace is the base IRI for legislation vocabulary terms.
const Namespace = "https://conlaw.dev/ontology/legislation/"

// Bill predicates describe a bill moving through the chambers.
const (
	// BillTitle is the bill's short title.
	BillTitle = "legislation.bill.title"

	// BillKindPred is whether the bill raises revenue.
	BillKindPred = "legislation.bill.kind"

	// BillOrigin is the chamber the bill originated in.
	BillOrigin = "legislation.bill.origin"

	// BillStatusPred is the bill's presentment status.
	BillStatusPred = "legislation.bill.status"
)

// Tally predicates describe a recorded vote.
const (
	// TallyYea is the count of yea votes.
	TallyYea = "legislation.tally.yea"

	// TallyNay is the count of nay votes.
	TallyNay = "legislation.tally.nay"

	// TallyPresent is the count of members present but not voting.
	TallyPresent = "legislation.tally.present"

	// TallyProceeding is the proceeding the tally was taken for.
	TallyProceeding = "legislation.tally.proceeding"

	// TallyCarried is whether the tally met its threshold.
	TallyCarried = "legislation.tally.carried"
)

func init() {
	vocabulary.Register(BillTitle,
		vocabulary.WithDescription("Bill short title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"billTitle"))

	vocabulary.Register(BillKindPred,
		vocabulary.WithDescription("Whether the bill raises revenue"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"billKind"))

	vocabulary.Register(BillOrigin,
		vocabulary.WithDescription("Chamber of origination"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"billOrigin"))

	vocabulary.Register(BillStatusPred,
		vocabulary.WithDescription("Presentment status"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"billStatus"))

	vocabulary.Register(TallyYea,
		vocabulary.WithDescription("Yea vote count"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"tallyYea"))

	vocabulary.Register(TallyNay,
		vocabulary.WithDescription("Nay vote count"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"tallyNay"))

	vocabulary.Register(TallyPresent,
		vocabulary.WithDescription("Present but not voting count"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"tallyPresent"))

	vocabulary.Register(TallyProceeding,
		vocabulary.WithDescription("Proceeding the tally decides"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"tallyProceeding"))

	vocabulary.Register(TallyCarried,
		vocabulary.WithDescription("Whether the threshold was met"),
		vocabulary.WithDataType("boolean"),
		vocabulary.WithIRI(Namespace+"tallyCarried"))
}
