package export_test

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"

	"github.com/c360studio/conlaw/export"
	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

func TestGetProfileConfig(t *testing.T) {
	tests := []struct {
		profile  export.Profile
		wantBFO  bool
		wantCCO  bool
		wantPROV bool
	}{
		{export.ProfileMinimal, false, false, true},
		{export.ProfileBFO, true, false, true},
		{export.ProfileCCO, true, true, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.profile), func(t *testing.T) {
			config := export.GetProfileConfig(tc.profile)
			if config.IncludeBFO != tc.wantBFO {
				t.Errorf("IncludeBFO = %v, want %v", config.IncludeBFO, tc.wantBFO)
			}
			if config.IncludeCCO != tc.wantCCO {
				t.Errorf("IncludeCCO = %v, want %v", config.IncludeCCO, tc.wantCCO)
			}
			if config.IncludePROV != tc.wantPROV {
				t.Errorf("IncludePROV = %v, want %v", config.IncludePROV, tc.wantPROV)
			}
		})
	}
}

func TestGetProfileConfigUnknown(t *testing.T) {
	// Unknown profile should default to minimal
	config := export.GetProfileConfig("unknown")
	if config.Name != export.ProfileMinimal {
		t.Errorf("Unknown profile should default to minimal, got %s", config.Name)
	}
}

func TestTypeAsserterMinimal(t *testing.T) {
	asserter := export.NewTypeAsserter(export.ProfileMinimal)

	types := asserter.GetTypeIRIs(vocab.EntityTypeArticle)

	hasProvEntity := false
	hasConlawClass := false
	for _, typ := range types {
		if typ == vocabulary.ProvEntity {
			hasProvEntity = true
		}
		if typ == vocab.ClassArticle {
			hasConlawClass = true
		}
	}

	if !hasProvEntity {
		t.Error("Minimal profile should include PROV-O type")
	}
	if !hasConlawClass {
		t.Error("Minimal profile should include conlaw type")
	}
}

func TestTypeAsserterBFO(t *testing.T) {
	asserter := export.NewTypeAsserter(export.ProfileBFO)

	types := asserter.GetTypeIRIs(vocab.EntityTypeArticle)

	hasBFOClass := false
	for _, typ := range types {
		if typ == bfo.GenericallyDependentContinuant {
			hasBFOClass = true
		}
	}

	if !hasBFOClass {
		t.Error("BFO profile should include BFO type")
	}
}

func TestTypeAsserterCCO(t *testing.T) {
	asserter := export.NewTypeAsserter(export.ProfileCCO)

	types := asserter.GetTypeIRIs(vocab.EntityTypeClause)

	hasCCOClass := false
	for _, typ := range types {
		if typ == cco.Requirement {
			hasCCOClass = true
		}
	}

	if !hasCCOClass {
		t.Error("CCO profile should include CCO type")
	}
}

func TestGetTypeHierarchy(t *testing.T) {
	tests := []struct {
		entityType vocab.EntityType
		wantConlaw string
		wantPROV   string
		wantBFO    string
		wantCCO    string
	}{
		{
			vocab.EntityTypeArticle,
			vocab.ClassArticle,
			vocabulary.ProvEntity,
			bfo.GenericallyDependentContinuant,
			cco.DirectiveInformationContentEntity,
		},
		{
			vocab.EntityTypeClause,
			vocab.ClassClause,
			vocabulary.ProvEntity,
			bfo.GenericallyDependentContinuant,
			cco.Requirement,
		},
		{
			vocab.EntityTypeRuling,
			vocab.Namespace + "Ruling",
			vocabulary.ProvActivity,
			bfo.Process,
			cco.Act,
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.entityType), func(t *testing.T) {
			h := export.GetTypeHierarchy(tc.entityType)
			if h.ConlawClass != tc.wantConlaw {
				t.Errorf("ConlawClass = %q, want %q", h.ConlawClass, tc.wantConlaw)
			}
			if h.PROVClass != tc.wantPROV {
				t.Errorf("PROVClass = %q, want %q", h.PROVClass, tc.wantPROV)
			}
			if h.BFOClass != tc.wantBFO {
				t.Errorf("BFOClass = %q, want %q", h.BFOClass, tc.wantBFO)
			}
			if h.CCOClass != tc.wantCCO {
				t.Errorf("CCOClass = %q, want %q", h.CCOClass, tc.wantCCO)
			}
		})
	}
}

func TestInferEntityType(t *testing.T) {
	tests := []struct {
		entityID string
		wantType vocab.EntityType
	}{
		{"conlaw.local.corpus.document.corpus.constitution.a1b2c3d4e5f6", vocab.EntityTypeDocument},
		{"conlaw.local.corpus.article.1", vocab.EntityTypeArticle},
		{"conlaw.local.corpus.article.1.section.2", vocab.EntityTypeSection},
		{"conlaw.local.corpus.article.1.section.2.clause.3", vocab.EntityTypeClause},
		{"conlaw.local.corpus.amendment.14", vocab.EntityTypeAmendment},
		{"acme.conlaw.corpus.ruleset.1.0.0", vocab.EntityTypeRuleset},
		{"acme.conlaw.corpus.ruleset.1.0.0.rule.art1-house-qualifications", vocab.EntityTypeRule},
		{"conlaw.local.rules.ruling.7f3a", vocab.EntityTypeRuling},
	}

	for _, tc := range tests {
		t.Run(tc.entityID, func(t *testing.T) {
			got := export.InferEntityType(tc.entityID)
			if got != tc.wantType {
				t.Errorf("InferEntityType(%q) = %q, want %q", tc.entityID, got, tc.wantType)
			}
		})
	}
}

func TestInferEntityTypeShortID(t *testing.T) {
	// Short IDs should return empty string
	got := export.InferEntityType("too.short")
	if got != "" {
		t.Errorf("Short ID should return empty entity type, got %q", got)
	}
}

func TestBFOClassDescriptions(t *testing.T) {
	if len(export.BFOClassDescriptions) == 0 {
		t.Error("BFOClassDescriptions should not be empty")
	}

	if _, ok := export.BFOClassDescriptions[bfo.Process]; !ok {
		t.Error("BFOClassDescriptions should contain Process")
	}
	if _, ok := export.BFOClassDescriptions[bfo.GenericallyDependentContinuant]; !ok {
		t.Error("BFOClassDescriptions should contain GenericallyDependentContinuant")
	}
}

func TestCCOClassDescriptions(t *testing.T) {
	if len(export.CCOClassDescriptions) == 0 {
		t.Error("CCOClassDescriptions should not be empty")
	}

	if _, ok := export.CCOClassDescriptions[cco.DirectiveInformationContentEntity]; !ok {
		t.Error("CCOClassDescriptions should contain DirectiveInformationContentEntity")
	}
	if _, ok := export.CCOClassDescriptions[cco.Requirement]; !ok {
		t.Error("CCOClassDescriptions should contain Requirement")
	}
}

func TestPROVClassDescriptions(t *testing.T) {
	if len(export.PROVClassDescriptions) == 0 {
		t.Error("PROVClassDescriptions should not be empty")
	}

	if _, ok := export.PROVClassDescriptions[vocabulary.ProvEntity]; !ok {
		t.Error("PROVClassDescriptions should contain Entity")
	}
	if _, ok := export.PROVClassDescriptions[vocabulary.ProvActivity]; !ok {
		t.Error("PROVClassDescriptions should contain Activity")
	}
}
