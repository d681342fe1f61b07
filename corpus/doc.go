// Package corpus provides types for the constitutional corpus: parsed
// documents, their front matter, and the structural entities (articles,
// sections, clauses, amendments) extracted from them.
//
// A corpus document is a long-form markdown file with optional YAML
// front matter, heading-delimited articles and sections, and fenced
// blocks carrying illustrative code examples and process diagrams.
// The parser subpackage turns raw files into these types; the
// processors publish them to the knowledge graph.
package corpus
