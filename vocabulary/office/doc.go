// Package office defines the vocabulary for federal offices and the
// persons who hold or seek them: office kinds, chambers, and the dotted
// predicates describing candidate attributes and qualification outcomes.
//
// Predicates register themselves with the shared vocabulary registry at
// init time, so importing this package is enough to make them known.
package office
