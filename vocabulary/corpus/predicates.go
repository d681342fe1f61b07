package corpus

import "github.com/c360studio/semstreams/vocabulary"

// Document predicates for corpus source documents.
const (
	// DocTitle is the document title.
	DocTitle = "corpus.doc.title"

	// DocAdopted is when the convention adopted the text.
	DocAdopted = "corpus.doc.adopted"

	// DocEffective is when the text took effect.
	DocEffective = "corpus.doc.effective"

	// DocAuthor is a document author.
	DocAuthor = "corpus.doc.author"

	// DocFilePath is the original file path of the document.
	DocFilePath = "corpus.doc.file_path"

	// DocFileHash is the content hash for staleness detection.
	DocFileHash = "corpus.doc.file_hash"
)

// Article predicates for the numbered articles of the main text.
const (
	// ArticleNumber is the 1-based article number.
	ArticleNumber = "corpus.article.number"

	// ArticleNumeral is the Roman numeral as written in the source.
	ArticleNumeral = "corpus.article.numeral"

	// ArticleTitle is the article heading text.
	ArticleTitle = "corpus.article.title"
)

// Section predicates.
const (
	// SectionNumber is the section number within its article.
	SectionNumber = "corpus.section.number"

	// SectionHeading is the section heading text.
	SectionHeading = "corpus.section.heading"

	// SectionText is the section prose with fenced blocks removed.
	SectionText = "corpus.section.text"
)

// Clause predicates.
const (
	// ClauseIndex is the 1-based clause position within its section.
	ClauseIndex = "corpus.clause.index"

	// ClauseText is the clause text.
	ClauseText = "corpus.clause.text"
)

// Amendment predicates.
const (
	// AmendmentNumber is the 1-based amendment number.
	AmendmentNumber = "corpus.amendment.number"

	// AmendmentNumeral is the Roman numeral as written in the source.
	AmendmentNumeral = "corpus.amendment.numeral"
)

// Source predicates for tracked corpus sources.
const (
	// SourceName is the source display name.
	SourceName = "corpus.source.name"

	// SourceType discriminates file and web sources.
	SourceType = "corpus.source.type"

	// SourceStatus is the ingestion state.
	SourceStatus = "corpus.source.status"

	// SourceError is the last ingestion error message, if any.
	SourceError = "corpus.source.error"

	// SourceAddedAt is when the source was added.
	SourceAddedAt = "corpus.source.added_at"
)

// Relationship predicates linking corpus entities.
const (
	// HasArticle links a document to its articles.
	// Domain: document entity, Range: article entity
	HasArticle = "corpus.rel.has_article"

	// HasAmendment links a document to its amendments.
	// Domain: document entity, Range: amendment entity
	HasAmendment = "corpus.rel.has_amendment"

	// HasSection links an article or amendment to its sections.
	// Domain: article entity, Range: section entity
	HasSection = "corpus.rel.has_section"

	// HasClause links a section to its clauses.
	// Domain: section entity, Range: clause entity
	HasClause = "corpus.rel.has_clause"
)

func init() {
	vocabulary.Register(DocTitle,
		vocabulary.WithDescription("Corpus document title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DcTitle))

	vocabulary.Register(DocAdopted,
		vocabulary.WithDescription("Date the convention adopted the text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"adopted"))

	vocabulary.Register(DocEffective,
		vocabulary.WithDescription("Date the text took effect"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"effective"))

	vocabulary.Register(DocAuthor,
		vocabulary.WithDescription("Document author"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DcCreator))

	vocabulary.Register(DocFilePath,
		vocabulary.WithDescription("Original file path of the document"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"filePath"))

	vocabulary.Register(DocFileHash,
		vocabulary.WithDescription("Content hash for staleness detection"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"fileHash"))

	vocabulary.Register(ArticleNumber,
		vocabulary.WithDescription("1-based article number"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"articleNumber"))

	vocabulary.Register(ArticleNumeral,
		vocabulary.WithDescription("Roman numeral as written in the source"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"articleNumeral"))

	vocabulary.Register(ArticleTitle,
		vocabulary.WithDescription("Article heading text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"articleTitle"))

	vocabulary.Register(SectionNumber,
		vocabulary.WithDescription("Section number within its article"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"sectionNumber"))

	vocabulary.Register(SectionHeading,
		vocabulary.WithDescription("Section heading text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sectionHeading"))

	vocabulary.Register(SectionText,
		vocabulary.WithDescription("Section prose with fenced blocks removed"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sectionText"))

	vocabulary.Register(ClauseIndex,
		vocabulary.WithDescription("1-based clause position within its section"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"clauseIndex"))

	vocabulary.Register(ClauseText,
		vocabulary.WithDescription("Clause text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"clauseText"))

	vocabulary.Register(AmendmentNumber,
		vocabulary.WithDescription("1-based amendment number"),
		vocabulary.WithDataType("integer"),
		vocabulary.WithIRI(Namespace+"amendmentNumber"))

	vocabulary.Register(AmendmentNumeral,
		vocabulary.WithDescription("Roman numeral as written in the source"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"amendmentNumeral"))

	vocabulary.Register(SourceName,
		vocabulary.WithDescription("Source display name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sourceName"))

	vocabulary.Register(SourceType,
		vocabulary.WithDescription("Source type: file or web"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sourceType"))

	vocabulary.Register(SourceStatus,
		vocabulary.WithDescription("Source ingestion state"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sourceStatus"))

	vocabulary.Register(SourceError,
		vocabulary.WithDescription("Last ingestion error message"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sourceError"))

	vocabulary.Register(SourceAddedAt,
		vocabulary.WithDescription("When the source was added"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"sourceAddedAt"))

	vocabulary.Register(HasArticle,
		vocabulary.WithDescription("Links a document to its articles"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasArticle))

	vocabulary.Register(HasAmendment,
		vocabulary.WithDescription("Links a document to its amendments"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasAmendment))

	vocabulary.Register(HasSection,
		vocabulary.WithDescription("Links an article or amendment to its sections"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasSection))

	vocabulary.Register(HasClause,
		vocabulary.WithDescription("Links a section to its clauses"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(PropHasClause))
}
