package corpus

// Namespace is the base IRI prefix for corpus vocabulary terms.
const Namespace = "https://conlaw.dev/ontology/corpus/"

// EntityBase is the root IRI under which entity instances live,
// one path segment per ID context (corpus, rules).
const EntityBase = "https://conlaw.dev/entity/"

// EntityNamespace is the base IRI for corpus entity instances.
const EntityNamespace = EntityBase + "corpus/"

// Standard ontology IRI constants for mappings.
const (
	// DcTitle is the Dublin Core title property.
	DcTitle = "http://purl.org/dc/terms/title"

	// DcCreator is the Dublin Core creator property.
	DcCreator = "http://purl.org/dc/terms/creator"

	// DcCreated is the Dublin Core created property.
	DcCreated = "http://purl.org/dc/terms/created"

	// DcModified is the Dublin Core modified property.
	DcModified = "http://purl.org/dc/terms/modified"
)

// Class IRIs define the types of corpus entities.
const (
	// ClassDocument represents a corpus source document.
	ClassDocument = Namespace + "Document"

	// ClassArticle represents a numbered article of the main text.
	ClassArticle = Namespace + "Article"

	// ClassSection represents a numbered section of an article.
	ClassSection = Namespace + "Section"

	// ClassClause represents a single provision within a section.
	ClassClause = Namespace + "Clause"

	// ClassAmendment represents a ratified amendment.
	ClassAmendment = Namespace + "Amendment"

	// ClassDiagram represents a process-flow diagram block.
	ClassDiagram = Namespace + "Diagram"
)

// Object property IRIs define relationships between corpus entities.
const (
	// PropHasArticle links a document to its articles.
	PropHasArticle = Namespace + "hasArticle"

	// PropHasAmendment links a document to its amendments.
	PropHasAmendment = Namespace + "hasAmendment"

	// PropHasSection links an article or amendment to its sections.
	PropHasSection = Namespace + "hasSection"

	// PropHasClause links a section to its clauses.
	PropHasClause = Namespace + "hasClause"

	// PropAmends links an amendment to the provision it modifies.
	PropAmends = Namespace + "amends"
)
