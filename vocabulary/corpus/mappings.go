package corpus

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"
)

// EntityType represents the type of a corpus entity for mapping purposes.
type EntityType string

// Entity type constants map entity kinds to their string identifiers.
const (
	// EntityTypeDocument is the entity type for corpus source documents.
	EntityTypeDocument EntityType = "document"
	// EntityTypeArticle is the entity type for numbered articles.
	EntityTypeArticle EntityType = "article"
	// EntityTypeSection is the entity type for article sections.
	EntityTypeSection EntityType = "section"
	// EntityTypeClause is the entity type for section clauses.
	EntityTypeClause EntityType = "clause"
	// EntityTypeAmendment is the entity type for ratified amendments.
	EntityTypeAmendment EntityType = "amendment"
	// EntityTypeRuleset is the entity type for rule evaluator rulesets.
	EntityTypeRuleset EntityType = "ruleset"
	// EntityTypeRule is the entity type for individual rules.
	EntityTypeRule EntityType = "rule"
	// EntityTypeRuling is the entity type for recorded check outcomes.
	EntityTypeRuling EntityType = "ruling"
)

// ConlawClassMap maps entity types to conlaw class IRIs.
var ConlawClassMap = map[EntityType]string{
	EntityTypeDocument:  ClassDocument,
	EntityTypeArticle:   ClassArticle,
	EntityTypeSection:   ClassSection,
	EntityTypeClause:    ClassClause,
	EntityTypeAmendment: ClassAmendment,
	EntityTypeRuleset:   Namespace + "Ruleset",
	EntityTypeRule:      Namespace + "Rule",
	EntityTypeRuling:    Namespace + "Ruling",
}

// PROVClassMap maps entity types to PROV-O class IRIs.
// Use this for minimal profile RDF export.
var PROVClassMap = map[EntityType]string{
	EntityTypeDocument:  vocabulary.ProvEntity,
	EntityTypeArticle:   vocabulary.ProvEntity,
	EntityTypeSection:   vocabulary.ProvEntity,
	EntityTypeClause:    vocabulary.ProvEntity,
	EntityTypeAmendment: vocabulary.ProvEntity,
	EntityTypeRuleset:   vocabulary.ProvEntity,
	EntityTypeRule:      vocabulary.ProvEntity,

	// A ruling records an evaluation that happened.
	EntityTypeRuling: vocabulary.ProvActivity,
}

// BFOClassMap maps entity types to BFO class IRIs.
// Use this for BFO profile RDF export.
var BFOClassMap = map[EntityType]string{
	EntityTypeDocument:  bfo.GenericallyDependentContinuant,
	EntityTypeArticle:   bfo.GenericallyDependentContinuant,
	EntityTypeSection:   bfo.GenericallyDependentContinuant,
	EntityTypeClause:    bfo.GenericallyDependentContinuant,
	EntityTypeAmendment: bfo.GenericallyDependentContinuant,
	EntityTypeRuleset:   bfo.GenericallyDependentContinuant,
	EntityTypeRule:      bfo.GenericallyDependentContinuant,
	EntityTypeRuling:    bfo.Process,
}

// CCOClassMap maps entity types to CCO class IRIs.
// Use this for CCO profile RDF export.
var CCOClassMap = map[EntityType]string{
	EntityTypeDocument:  cco.DirectiveInformationContentEntity,
	EntityTypeArticle:   cco.DirectiveInformationContentEntity,
	EntityTypeSection:   cco.DirectiveInformationContentEntity,
	EntityTypeClause:    cco.Requirement,
	EntityTypeAmendment: cco.DirectiveInformationContentEntity,
	EntityTypeRuleset:   cco.DirectiveInformationContentEntity,
	EntityTypeRule:      cco.Requirement,
	EntityTypeRuling:    cco.Act,
}

// PredicateIRIMap maps internal predicates to standard IRIs.
// Use this for RDF export to translate dotted predicates to standard IRIs.
var PredicateIRIMap = map[string]string{
	DocTitle:     vocabulary.DcTitle,
	DocAuthor:    DcCreator,
	DocAdopted:   Namespace + "adopted",
	DocEffective: Namespace + "effective",
	DocFilePath:  Namespace + "filePath",
	DocFileHash:  Namespace + "fileHash",

	ArticleNumber:  Namespace + "articleNumber",
	ArticleNumeral: Namespace + "articleNumeral",
	ArticleTitle:   Namespace + "articleTitle",

	SectionNumber:  Namespace + "sectionNumber",
	SectionHeading: Namespace + "sectionHeading",
	SectionText:    Namespace + "sectionText",

	ClauseIndex: Namespace + "clauseIndex",
	ClauseText:  Namespace + "clauseText",

	AmendmentNumber:  Namespace + "amendmentNumber",
	AmendmentNumeral: Namespace + "amendmentNumeral",

	HasArticle: PropHasArticle,
	HasSection: PropHasSection,
	HasClause:  PropHasClause,
}

// GetTypesForEntity returns all type IRIs for a given entity type and profile.
// Profile determines which ontology types are included:
//   - "minimal": PROV-O + conlaw types
//   - "bfo": BFO + PROV-O + conlaw types
//   - "cco": CCO + BFO + PROV-O + conlaw types
func GetTypesForEntity(entityType EntityType, profile string) []string {
	types := make([]string, 0, 4)

	if conlawClass, ok := ConlawClassMap[entityType]; ok {
		types = append(types, conlawClass)
	}

	if provClass, ok := PROVClassMap[entityType]; ok {
		types = append(types, provClass)
	}

	if profile == "bfo" || profile == "cco" {
		if bfoClass, ok := BFOClassMap[entityType]; ok {
			types = append(types, bfoClass)
		}
	}

	if profile == "cco" {
		if ccoClass, ok := CCOClassMap[entityType]; ok {
			types = append(types, ccoClass)
		}
	}

	return types
}

// GetPredicateIRI returns the standard IRI for a predicate, if mapped.
func GetPredicateIRI(predicate string) string {
	if iri, ok := PredicateIRIMap[predicate]; ok {
		return iri
	}
	// Fall back to the conlaw namespace for unmapped predicates
	return Namespace + predicate
}
