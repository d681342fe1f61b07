// Package rules implements the rule evaluator for the constitutional
// corpus. It generalizes the repeated shape found throughout the
// document: a flat record of attributes, a predicate over that record,
// and an effect when the predicate fails.
//
// Rules are grouped by article citation into a Ruleset entity that can
// be published to the graph as triples. Evaluation produces a
// CheckResult with must-violations and should-warnings; the evaluator
// itself never panics, even when a predicate does.
//
// The package also carries the document's concrete rules as plain
// functions: eligibility thresholds for federal office, the revenue
// bill origination clause, the enumerated prohibitions, apportionment
// validation, supermajority thresholds, and the succession line. The
// constants are the ones the text states; they are not configurable.
package rules
