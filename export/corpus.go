package export

import (
	"fmt"

	"github.com/c360studio/semstreams/message"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/graph"
	"github.com/c360studio/conlaw/rules"
	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
)

// AddMessageTriples groups raw graph triples by subject and adds one
// exportable entity per subject. Each entity's type is inferred from
// its ID, so triples produced for graph ingest can be re-serialized
// as RDF without extra bookkeeping.
func (e *RDFExporter) AddMessageTriples(triples []message.Triple) {
	order := make([]string, 0, 8)
	grouped := make(map[string][]Triple)
	for _, t := range triples {
		if _, seen := grouped[t.Subject]; !seen {
			order = append(order, t.Subject)
		}
		grouped[t.Subject] = append(grouped[t.Subject], Triple{
			Subject:   t.Subject,
			Predicate: t.Predicate,
			Object:    t.Object,
		})
	}
	for _, subject := range order {
		e.AddEntity(Entity{
			ID:         subject,
			EntityType: InferEntityType(subject),
			Triples:    grouped[subject],
		})
	}
}

// AddConstitution adds a parsed corpus document and its full article
// and amendment tree as exportable entities.
func (e *RDFExporter) AddConstitution(c *corpus.Constitution) {
	docID := graph.DocumentEntityID(c.ID)

	docTriples := []Triple{
		{Subject: docID, Predicate: vocab.DocTitle, Object: c.Meta.Title},
		{Subject: docID, Predicate: vocab.DocFilePath, Object: c.FilePath},
		{Subject: docID, Predicate: vocab.DocFileHash, Object: c.FileHash},
	}
	if c.Meta.Adopted != "" {
		docTriples = append(docTriples, Triple{Subject: docID, Predicate: vocab.DocAdopted, Object: c.Meta.Adopted})
	}
	if c.Meta.Effective != "" {
		docTriples = append(docTriples, Triple{Subject: docID, Predicate: vocab.DocEffective, Object: c.Meta.Effective})
	}
	for _, author := range c.Meta.Authors {
		docTriples = append(docTriples, Triple{Subject: docID, Predicate: vocab.DocAuthor, Object: author})
	}
	for _, article := range c.Articles {
		docTriples = append(docTriples, Triple{Subject: docID, Predicate: vocab.HasArticle, Object: graph.ArticleEntityID(article.Number)})
	}
	for _, amendment := range c.Amendments {
		docTriples = append(docTriples, Triple{Subject: docID, Predicate: vocab.HasArticle, Object: graph.AmendmentEntityID(amendment.Number)})
	}
	e.AddEntityFromTriples(docID, vocab.EntityTypeDocument, docTriples)

	for _, article := range c.Articles {
		articleID := graph.ArticleEntityID(article.Number)
		triples := []Triple{
			{Subject: articleID, Predicate: vocab.ArticleNumber, Object: article.Number},
			{Subject: articleID, Predicate: vocab.ArticleNumeral, Object: article.Numeral},
		}
		if article.Title != "" {
			triples = append(triples, Triple{Subject: articleID, Predicate: vocab.ArticleTitle, Object: article.Title})
		}
		for _, section := range article.Sections {
			triples = append(triples, Triple{Subject: articleID, Predicate: vocab.HasSection, Object: sectionEntityID(articleID, section.Number)})
		}
		e.AddEntityFromTriples(articleID, vocab.EntityTypeArticle, triples)
		e.addSections(articleID, article.Sections)
	}

	for _, amendment := range c.Amendments {
		amendmentID := graph.AmendmentEntityID(amendment.Number)
		triples := []Triple{
			{Subject: amendmentID, Predicate: vocab.AmendmentNumber, Object: amendment.Number},
			{Subject: amendmentID, Predicate: vocab.AmendmentNumeral, Object: amendment.Numeral},
		}
		if amendment.Title != "" {
			triples = append(triples, Triple{Subject: amendmentID, Predicate: vocab.ArticleTitle, Object: amendment.Title})
		}
		for _, section := range amendment.Sections {
			triples = append(triples, Triple{Subject: amendmentID, Predicate: vocab.HasSection, Object: sectionEntityID(amendmentID, section.Number)})
		}
		e.AddEntityFromTriples(amendmentID, vocab.EntityTypeAmendment, triples)
		e.addSections(amendmentID, amendment.Sections)
	}
}

// addSections adds section and clause entities under a parent division.
func (e *RDFExporter) addSections(parentID string, sections []corpus.Section) {
	for _, section := range sections {
		sectionID := sectionEntityID(parentID, section.Number)
		triples := []Triple{
			{Subject: sectionID, Predicate: vocab.SectionNumber, Object: section.Number},
		}
		if section.Heading != "" {
			triples = append(triples, Triple{Subject: sectionID, Predicate: vocab.SectionHeading, Object: section.Heading})
		}
		if section.Text != "" {
			triples = append(triples, Triple{Subject: sectionID, Predicate: vocab.SectionText, Object: section.Text})
		}
		for _, clause := range section.Clauses {
			triples = append(triples, Triple{Subject: sectionID, Predicate: vocab.HasClause, Object: clauseEntityID(sectionID, clause.Index)})
		}
		e.AddEntityFromTriples(sectionID, vocab.EntityTypeSection, triples)

		for _, clause := range section.Clauses {
			clauseID := clauseEntityID(sectionID, clause.Index)
			e.AddEntityFromTriples(clauseID, vocab.EntityTypeClause, []Triple{
				{Subject: clauseID, Predicate: vocab.ClauseIndex, Object: clause.Index},
				{Subject: clauseID, Predicate: vocab.ClauseText, Object: clause.Text},
			})
		}
	}
}

// AddRuleset adds a rule evaluator ruleset and its rules as
// exportable entities. The ruleset's own triple builder already
// carries subjects, so grouping by subject is enough.
func (e *RDFExporter) AddRuleset(s *rules.Ruleset) {
	e.AddMessageTriples(s.Triples())
}

func sectionEntityID(parentID string, number int) string {
	return fmt.Sprintf("%s.section.%d", parentID, number)
}

func clauseEntityID(sectionID string, index int) string {
	return fmt.Sprintf("%s.clause.%d", sectionID, index)
}
