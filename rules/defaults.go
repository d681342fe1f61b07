package rules

import (
	"fmt"

	"github.com/c360studio/conlaw/vocabulary/legislation"
	"github.com/c360studio/conlaw/vocabulary/office"
)

// Record kinds the built-in predicates dispatch on. A predicate whose
// kind does not match the record passes; the evaluator runs every
// enforced rule against every record.
const (
	KindCandidate     = "candidate"
	KindBill          = "bill"
	KindTally         = "tally"
	KindApportionment = "apportionment"
	KindJudgment      = "judgment"
	KindAction        = "action"
)

// DefaultRulesetVersion identifies the built-in ruleset.
const DefaultRulesetVersion = "1.0.0"

// DefaultRuleset builds the built-in ruleset covering the corpus
// rules: qualification thresholds, the origination clause, the
// enumerated prohibitions, apportionment validation, supermajority
// procedure, and the impeachment judgment limit.
func DefaultRuleset(org string) *Ruleset {
	s := NewRuleset(org, DefaultRulesetVersion)

	s.AddRule(RefArticleI, Rule{
		ID:        "house-qualifications",
		Citation:  "Article I, Section 2, Clause 2",
		Text:      "Representatives shall be twenty-five years of age, seven years a citizen, and inhabitants of the state they represent.",
		Category:  CategoryQualification,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: candidatePredicate(office.TypeRepresentative),
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "senate-qualifications",
		Citation:  "Article I, Section 3, Clause 3",
		Text:      "Senators shall be thirty years of age, nine years a citizen, and inhabitants of the state they represent.",
		Category:  CategoryQualification,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: candidatePredicate(office.TypeSenator),
	})

	s.AddRule(RefArticleII, Rule{
		ID:        "presidential-qualifications",
		Citation:  "Article II, Section 1, Clause 5",
		Text:      "The President shall be a natural-born citizen, thirty-five years of age, and fourteen years a resident within the United States.",
		Category:  CategoryQualification,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: candidatePredicate(office.TypePresident),
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "revenue-origination",
		Citation:  "Article I, Section 7, Clause 1",
		Text:      "All bills for raising revenue shall originate in the House of Representatives.",
		Category:  CategoryProcedure,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: originationPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "no-bill-of-attainder",
		Citation:  "Article I, Section 9, Clause 3",
		Text:      "No bill of attainder or ex post facto law shall be passed.",
		Category:  CategoryProhibition,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: attainderPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "no-titles-of-nobility",
		Citation:  "Article I, Section 9, Clause 8",
		Text:      "No title of nobility shall be granted by the United States.",
		Category:  CategoryProhibition,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: nobilityPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "state-prohibitions",
		Citation:  "Article I, Section 10, Clause 1",
		Text:      "No state shall enter into any treaty, alliance, or confederation, or coin money.",
		Category:  CategoryProhibition,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: statePowersPredicate,
	})

	s.AddRule(RefArticleVI, Rule{
		ID:        "no-religious-test",
		Citation:  "Article VI, Clause 3",
		Text:      "No religious test shall ever be required as a qualification to any office or public trust.",
		Category:  CategoryProhibition,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: religiousTestPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "apportionment-bounds",
		Citation:  "Article I, Section 2, Clause 3",
		Text:      "Each state shall have at least one representative, seats shall not exceed one per thirty thousand persons, and direct taxes shall be apportioned by the census.",
		Category:  CategoryApportionment,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: apportionmentPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "supermajority-thresholds",
		Citation:  "Articles I, II, and V",
		Text:      "Veto overrides, convictions, treaty consent, and amendment proposals require two thirds; ratification requires three fourths of the states.",
		Category:  CategoryProcedure,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: tallyPredicate,
	})

	s.AddRule(RefArticleI, Rule{
		ID:        "judgment-limit",
		Citation:  "Article I, Section 3, Clause 7",
		Text:      "Judgment in cases of impeachment shall not extend further than removal from office and disqualification.",
		Category:  CategoryProhibition,
		Priority:  PriorityMust,
		Enforced:  true,
		Predicate: judgmentPredicate,
	})

	s.AddRule(RefArticleIII, Rule{
		ID:        "treason-witnesses",
		Citation:  "Article III, Section 3",
		Text:      "No person shall be convicted of treason unless on the testimony of two witnesses to the same overt act, or on confession in open court.",
		Category:  CategoryProcedure,
		Priority:  PriorityShould,
		Enforced:  true,
		Predicate: treasonPredicate,
	})

	return s
}

// BuiltinPredicate resolves a predicate name used in ruleset files to
// one of the built-in record checks. Returns false for unknown names.
func BuiltinPredicate(name string) (func(Record) error, bool) {
	switch name {
	case "representative-eligibility":
		return candidatePredicate(office.TypeRepresentative), true
	case "senator-eligibility":
		return candidatePredicate(office.TypeSenator), true
	case "president-eligibility":
		return candidatePredicate(office.TypePresident), true
	case "revenue-origination":
		return originationPredicate, true
	case "no-bill-of-attainder":
		return attainderPredicate, true
	case "no-titles-of-nobility":
		return nobilityPredicate, true
	case "state-prohibitions":
		return statePowersPredicate, true
	case "no-religious-test":
		return religiousTestPredicate, true
	case "apportionment-bounds":
		return apportionmentPredicate, true
	case "supermajority-thresholds":
		return tallyPredicate, true
	case "judgment-limit":
		return judgmentPredicate, true
	case "treason-witnesses":
		return treasonPredicate, true
	}
	return nil, false
}

func candidatePredicate(officeType office.Type) func(Record) error {
	return func(r Record) error {
		if r.String("kind") != KindCandidate {
			return nil
		}
		if office.Type(r.String("office")) != officeType {
			return nil
		}
		return EligibleForOffice(CandidateFromRecord(r), officeType, r.String("state"))
	}
}

func originationPredicate(r Record) error {
	if r.String("kind") != KindBill {
		return nil
	}
	return CheckOrigination(
		legislation.BillKind(r.String("bill_kind")),
		office.Chamber(r.String("origin")),
	)
}

func attainderPredicate(r Record) error {
	if r.String("kind") != KindAction {
		return nil
	}
	switch r.String("action") {
	case "bill_of_attainder":
		return PassBillOfAttainder()
	case "ex_post_facto":
		return PassExPostFactoLaw()
	}
	return nil
}

func nobilityPredicate(r Record) error {
	if r.String("kind") != KindAction || r.String("action") != "grant_title" {
		return nil
	}
	return GrantTitleOfNobility()
}

func statePowersPredicate(r Record) error {
	if r.String("kind") != KindAction {
		return nil
	}
	switch r.String("action") {
	case "state_treaty":
		return StateEnterTreaty(r.String("state"))
	case "state_coinage":
		return StateCoinMoney(r.String("state"))
	}
	return nil
}

func religiousTestPredicate(r Record) error {
	if r.String("kind") != KindAction || r.String("action") != "religious_test" {
		return nil
	}
	return RequireReligiousTest()
}

func apportionmentPredicate(r Record) error {
	if r.String("kind") != KindApportionment {
		return nil
	}
	raw, ok := r["states"].([]any)
	if !ok {
		return nil
	}
	states := make([]StateApportionment, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		rec := Record(m)
		states = append(states, StateApportionment{
			State:      rec.String("state"),
			Seats:      rec.Int("seats"),
			Population: rec.Int("population"),
			TaxShare:   rec.Float("tax_share"),
		})
	}
	return ValidateApportionment(states)
}

func tallyPredicate(r Record) error {
	if r.String("kind") != KindTally {
		return nil
	}
	t := TallyResult{
		Yea:     r.Int("yea"),
		Nay:     r.Int("nay"),
		Present: r.Int("present"),
	}
	carried, err := t.Carries(legislation.ProceedingKind(r.String("proceeding")))
	if err != nil {
		return err
	}
	if !carried {
		return ErrThresholdNotMet
	}
	return nil
}

func judgmentPredicate(r Record) error {
	if r.String("kind") != KindJudgment {
		return nil
	}
	raw, ok := r["penalties"].([]any)
	if !ok {
		return nil
	}
	j := Judgment{Official: r.String("official")}
	for _, p := range raw {
		if s, ok := p.(string); ok {
			j.Penalties = append(j.Penalties, Penalty(s))
		}
	}
	return ValidateJudgment(j)
}

func treasonPredicate(r Record) error {
	if r.String("kind") != KindAction || r.String("action") != "treason_conviction" {
		return nil
	}
	if r.Bool("confession_in_open_court") {
		return nil
	}
	if r.Int("witnesses_to_same_act") < 2 {
		return fmt.Errorf("%w: treason conviction requires two witnesses to the same overt act or confession in open court (Article III, Section 3)", ErrProhibited)
	}
	return nil
}
