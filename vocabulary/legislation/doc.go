// Package legislation defines the vocabulary for bills, tallies, and
// impeachment proceedings: bill kinds and statuses, proceeding outcomes,
// and the dotted predicates the rule evaluator attaches to check results.
package legislation
