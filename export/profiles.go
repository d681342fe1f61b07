package export

import (
	"strings"

	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"

	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludeBFO indicates whether to include BFO type assertions.
	IncludeBFO bool

	// IncludeCCO indicates whether to include CCO type assertions.
	IncludeCCO bool

	// IncludePROV indicates whether to include PROV-O type assertions.
	IncludePROV bool

	// IncludeConlaw indicates whether to include conlaw type assertions.
	IncludeConlaw bool

	// TranslatePredicates indicates whether to translate predicates to standard IRIs.
	TranslatePredicates bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:                ProfileMinimal,
		Description:         "PROV-O, Dublin Core, and SKOS predicates only",
		IncludeBFO:          false,
		IncludeCCO:          false,
		IncludePROV:         true,
		IncludeConlaw:       true,
		TranslatePredicates: true,
	},
	ProfileBFO: {
		Name:                ProfileBFO,
		Description:         "BFO type assertions plus minimal profile",
		IncludeBFO:          true,
		IncludeCCO:          false,
		IncludePROV:         true,
		IncludeConlaw:       true,
		TranslatePredicates: true,
	},
	ProfileCCO: {
		Name:                ProfileCCO,
		Description:         "Full CCO/BFO/PROV-O alignment",
		IncludeBFO:          true,
		IncludeCCO:          true,
		IncludePROV:         true,
		IncludeConlaw:       true,
		TranslatePredicates: true,
	},
}

// GetProfileConfig returns the configuration for a profile.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileMinimal]
}

// TypeAsserter generates type assertions for entities based on profile.
type TypeAsserter struct {
	profile ProfileConfig
}

// NewTypeAsserter creates a new type asserter for the given profile.
func NewTypeAsserter(profile Profile) *TypeAsserter {
	return &TypeAsserter{
		profile: GetProfileConfig(profile),
	}
}

// GetTypeIRIs returns all type IRIs for an entity type based on the profile.
func (t *TypeAsserter) GetTypeIRIs(entityType vocab.EntityType) []string {
	types := make([]string, 0, 4)

	if t.profile.IncludeConlaw {
		if conlawClass, ok := vocab.ConlawClassMap[entityType]; ok {
			types = append(types, conlawClass)
		}
	}

	if t.profile.IncludePROV {
		if provClass, ok := vocab.PROVClassMap[entityType]; ok {
			types = append(types, provClass)
		}
	}

	if t.profile.IncludeBFO {
		if bfoClass, ok := vocab.BFOClassMap[entityType]; ok {
			types = append(types, bfoClass)
		}
	}

	if t.profile.IncludeCCO {
		if ccoClass, ok := vocab.CCOClassMap[entityType]; ok {
			types = append(types, ccoClass)
		}
	}

	return types
}

// TypeTriples returns rdf:type triples as []message.Triple for an entity
// based on its inferred type and the given profile.
func TypeTriples(entityID string, entityType vocab.EntityType, profile Profile) []message.Triple {
	asserter := NewTypeAsserter(profile)
	typeIRIs := asserter.GetTypeIRIs(entityType)
	triples := make([]message.Triple, 0, len(typeIRIs))
	for _, typeIRI := range typeIRIs {
		triples = append(triples, message.Triple{
			Subject:    entityID,
			Predicate:  "rdf.syntax.type",
			Object:     typeIRI,
			Source:     "conlaw.rdf-export",
			Confidence: 1.0,
		})
	}
	return triples
}

// TypeHierarchy represents the ontology type hierarchy for an entity.
type TypeHierarchy struct {
	// ConlawClass is the conlaw-specific class.
	ConlawClass string

	// PROVClass is the PROV-O class.
	PROVClass string

	// BFOClass is the BFO class.
	BFOClass string

	// CCOClass is the CCO class.
	CCOClass string
}

// GetTypeHierarchy returns the full type hierarchy for an entity type.
func GetTypeHierarchy(entityType vocab.EntityType) TypeHierarchy {
	return TypeHierarchy{
		ConlawClass: vocab.ConlawClassMap[entityType],
		PROVClass:   vocab.PROVClassMap[entityType],
		BFOClass:    vocab.BFOClassMap[entityType],
		CCOClass:    vocab.CCOClassMap[entityType],
	}
}

// BFOClassDescriptions provides human-readable descriptions for BFO classes.
var BFOClassDescriptions = map[string]string{
	bfo.Entity:                         "The root class of all BFO entities",
	bfo.Continuant:                     "Entities that persist through time",
	bfo.Occurrent:                      "Entities that unfold in time",
	bfo.IndependentContinuant:          "Entities that can exist on their own",
	bfo.GenericallyDependentContinuant: "Information patterns that can be copied",
	bfo.Process:                        "Events that unfold over time",
	bfo.Quality:                        "Measurable properties",
	bfo.Role:                           "Context-dependent functions",
}

// CCOClassDescriptions provides human-readable descriptions for CCO classes.
var CCOClassDescriptions = map[string]string{
	cco.InformationContentEntity:          "Root class for information entities",
	cco.DirectiveInformationContentEntity: "Prescriptive information content",
	cco.Requirement:                       "Obligation or constraint on an agent",
	cco.Act:                               "Intentional action by an agent",
}

// PROVClassDescriptions provides human-readable descriptions for PROV-O classes.
var PROVClassDescriptions = map[string]string{
	vocabulary.ProvEntity:   "Thing with fixed aspects",
	vocabulary.ProvActivity: "Something that occurs over time",
	vocabulary.ProvAgent:    "Something bearing responsibility",
}

// InferEntityType attempts to infer the entity type from an entity ID.
func InferEntityType(entityID string) vocab.EntityType {
	// Entity ID format: org.deployment.context.type.instance
	// Examples:
	//   conlaw.local.corpus.document.corpus.constitution.a1b2c3d4e5f6
	//   conlaw.local.corpus.article.1.section.2
	//   acme.conlaw.corpus.ruleset.1.0.0

	parts := strings.Split(entityID, ".")
	if len(parts) < 5 {
		return ""
	}

	context := parts[2]
	entityType := parts[3]

	// Nested divisions carry their kind in the instance path.
	if context == "corpus" {
		for i := len(parts) - 2; i >= 4; i-- {
			switch parts[i] {
			case "clause":
				return vocab.EntityTypeClause
			case "section":
				return vocab.EntityTypeSection
			case "rule":
				return vocab.EntityTypeRule
			}
		}
	}

	switch context {
	case "corpus":
		switch entityType {
		case "document":
			return vocab.EntityTypeDocument
		case "article":
			return vocab.EntityTypeArticle
		case "amendment":
			return vocab.EntityTypeAmendment
		case "ruleset":
			return vocab.EntityTypeRuleset
		}
	case "rules":
		switch entityType {
		case "ruleset":
			return vocab.EntityTypeRuleset
		case "rule":
			return vocab.EntityTypeRule
		case "ruling":
			return vocab.EntityTypeRuling
		}
	}

	return ""
}
