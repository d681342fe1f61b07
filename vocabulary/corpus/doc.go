// Package corpus defines vocabulary predicates for constitutional
// corpus entities: documents, articles, sections, clauses, and
// amendments.
//
// Predicates use three-part dotted notation (domain.category.property)
// and register into the shared vocabulary registry at init time so
// graph consumers can resolve descriptions, data types, and IRIs.
package corpus
