package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/rules"
	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

func TestEntityIDs(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DocumentEntityID("corpus.constitution.abc123"), "conlaw.local.corpus.document.corpus.constitution.abc123"},
		{ArticleEntityID(1), "conlaw.local.corpus.article.1"},
		{AmendmentEntityID(14), "conlaw.local.corpus.amendment.14"},
		{SourceEntityID("corpus.file.constitution-md"), "conlaw.local.corpus.source.corpus.file.constitution-md"},
		{RulingEntityID("xyz"), "conlaw.local.rules.ruling.xyz"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("entity ID = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestPublish_NilClientSkips(t *testing.T) {
	ctx := context.Background()

	if err := PublishConstitution(ctx, nil, &corpus.Constitution{}); err != nil {
		t.Errorf("PublishConstitution(nil client) = %v, want nil", err)
	}
	if err := PublishRuleset(ctx, nil, rules.NewRuleset("acme", "1.0.0")); err != nil {
		t.Errorf("PublishRuleset(nil client) = %v, want nil", err)
	}
	if err := PublishRuling(ctx, nil, "id", rules.NewCheckResult()); err != nil {
		t.Errorf("PublishRuling(nil client) = %v, want nil", err)
	}
	if err := PublishSource(ctx, nil, corpus.NewFileSource("constitution.md")); err != nil {
		t.Errorf("PublishSource(nil client) = %v, want nil", err)
	}
}

func TestConstitutionTriples_DivisionLinks(t *testing.T) {
	c := &corpus.Constitution{
		ID: "corpus.constitution.abc",
		Articles: []corpus.Article{
			{Number: 1, Numeral: "I"},
		},
		Amendments: []corpus.Amendment{
			{Number: 14, Numeral: "XIV"},
		},
	}

	triples := constitutionTriples(c, time.Now())

	docID := DocumentEntityID(c.ID)
	var articleLink, amendmentLink bool
	for _, tr := range triples {
		if tr.Subject != docID {
			continue
		}
		switch tr.Predicate {
		case vocab.HasArticle:
			articleLink = true
			if tr.Object != ArticleEntityID(1) {
				t.Errorf("article link object = %v, want %s", tr.Object, ArticleEntityID(1))
			}
		case vocab.HasAmendment:
			amendmentLink = true
			if tr.Object != AmendmentEntityID(14) {
				t.Errorf("amendment link object = %v, want %s", tr.Object, AmendmentEntityID(14))
			}
		}
	}
	if !articleLink {
		t.Error("missing has_article link from document")
	}
	if !amendmentLink {
		t.Error("missing has_amendment link from document")
	}
}

func TestSourceTriples(t *testing.T) {
	src := corpus.NewFileSource("constitution.md")
	src.MarkError(errors.New("parse failed"))

	triples := sourceTriples(src, time.Now())

	var status, errMsg any
	for _, tr := range triples {
		switch tr.Predicate {
		case vocab.SourceStatus:
			status = tr.Object
		case vocab.SourceError:
			errMsg = tr.Object
		}
	}
	if status != "error" {
		t.Errorf("source status triple = %v, want error", status)
	}
	if errMsg != "parse failed" {
		t.Errorf("source error triple = %v, want parse failed", errMsg)
	}

	src.MarkReady()
	for _, tr := range sourceTriples(src, time.Now()) {
		if tr.Predicate == vocab.SourceError {
			t.Error("ready source still has an error triple")
		}
	}
}

func TestSectionTriples(t *testing.T) {
	sections := []corpus.Section{
		{
			Number:  2,
			Heading: "House of Representatives",
			Text:    "Members are chosen every second year.",
			Clauses: []corpus.Clause{
				{Index: 1, Text: "Representatives must be twenty-five years of age."},
			},
		},
	}

	triples := sectionTriples("conlaw.local.corpus.article.1", sections, time.Now())

	var haveSection, haveClause bool
	for _, tr := range triples {
		switch tr.Predicate {
		case vocab.SectionHeading:
			if tr.Object == "House of Representatives" {
				haveSection = true
			}
		case vocab.ClauseText:
			haveClause = true
		}
		if tr.Confidence != 1.0 {
			t.Errorf("triple %s has confidence %v, want 1.0", tr.Predicate, tr.Confidence)
		}
	}
	if !haveSection {
		t.Error("missing section heading triple")
	}
	if !haveClause {
		t.Error("missing clause text triple")
	}
}
