// Package graph provides utilities for publishing corpus entities to
// the knowledge graph.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/rules"
	vocab "github.com/c360studio/conlaw/vocabulary/corpus"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
)

// GraphIngestSubject is the subject for graph ingestion.
const GraphIngestSubject = "graph.ingest.entity"

// Triple source identifiers.
const (
	sourceIngester  = "conlaw.ingest"
	sourceEvaluator = "conlaw.rulecheck"
)

// EntityIngestMessage is the message format for graph ingestion.
type EntityIngestMessage struct {
	ID        string           `json:"id"`
	Triples   []message.Triple `json:"triples"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublishConstitution publishes a parsed constitution and its article
// and amendment entities to the knowledge graph.
func PublishConstitution(ctx context.Context, nc *natsclient.Client, c *corpus.Constitution) error {
	if nc == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	now := time.Now()
	return publish(ctx, nc, DocumentEntityID(c.ID), constitutionTriples(c, now), now)
}

// constitutionTriples builds the full entity tree for a parsed
// constitution: the document, its articles, amendments, sections, and
// clauses.
func constitutionTriples(c *corpus.Constitution, now time.Time) []message.Triple {
	docID := DocumentEntityID(c.ID)

	triples := []message.Triple{
		tr(docID, vocab.DocTitle, c.Meta.Title, sourceIngester, now),
		tr(docID, vocab.DocFilePath, c.FilePath, sourceIngester, now),
		tr(docID, vocab.DocFileHash, c.FileHash, sourceIngester, now),
	}
	if c.Meta.Adopted != "" {
		triples = append(triples, tr(docID, vocab.DocAdopted, c.Meta.Adopted, sourceIngester, now))
	}
	if c.Meta.Effective != "" {
		triples = append(triples, tr(docID, vocab.DocEffective, c.Meta.Effective, sourceIngester, now))
	}
	for _, author := range c.Meta.Authors {
		triples = append(triples, tr(docID, vocab.DocAuthor, author, sourceIngester, now))
	}

	for _, article := range c.Articles {
		articleID := ArticleEntityID(article.Number)
		triples = append(triples,
			tr(docID, vocab.HasArticle, articleID, sourceIngester, now),
			tr(articleID, vocab.ArticleNumber, article.Number, sourceIngester, now),
			tr(articleID, vocab.ArticleNumeral, article.Numeral, sourceIngester, now),
		)
		if article.Title != "" {
			triples = append(triples, tr(articleID, vocab.ArticleTitle, article.Title, sourceIngester, now))
		}
		triples = append(triples, sectionTriples(articleID, article.Sections, now)...)
	}

	for _, amendment := range c.Amendments {
		amendmentID := AmendmentEntityID(amendment.Number)
		triples = append(triples,
			tr(docID, vocab.HasAmendment, amendmentID, sourceIngester, now),
			tr(amendmentID, vocab.AmendmentNumber, amendment.Number, sourceIngester, now),
			tr(amendmentID, vocab.AmendmentNumeral, amendment.Numeral, sourceIngester, now),
		)
		triples = append(triples, sectionTriples(amendmentID, amendment.Sections, now)...)
	}

	return triples
}

// PublishSource publishes a source record to the knowledge graph.
func PublishSource(ctx context.Context, nc *natsclient.Client, src *corpus.Source) error {
	if nc == nil {
		return nil
	}
	now := time.Now()
	return publish(ctx, nc, SourceEntityID(src.ID), sourceTriples(src, now), now)
}

// sourceTriples emits the triples describing a source record.
func sourceTriples(src *corpus.Source, now time.Time) []message.Triple {
	entityID := SourceEntityID(src.ID)
	triples := []message.Triple{
		tr(entityID, vocab.SourceName, src.Name, sourceIngester, now),
		tr(entityID, vocab.SourceType, string(src.Type), sourceIngester, now),
		tr(entityID, vocab.SourceStatus, string(src.Status), sourceIngester, now),
		tr(entityID, vocab.SourceAddedAt, src.AddedAt.Format(time.RFC3339), sourceIngester, now),
	}
	if src.Error != "" {
		triples = append(triples, tr(entityID, vocab.SourceError, src.Error, sourceIngester, now))
	}
	return triples
}

// PublishRuleset publishes a ruleset entity to the knowledge graph.
func PublishRuleset(ctx context.Context, nc *natsclient.Client, s *rules.Ruleset) error {
	if nc == nil {
		return nil
	}
	return publish(ctx, nc, s.ID, s.Triples(), time.Now())
}

// PublishRuling publishes a recorded check outcome to the knowledge graph.
func PublishRuling(ctx context.Context, nc *natsclient.Client, rulingID string, result *rules.CheckResult) error {
	if nc == nil {
		return nil
	}

	now := time.Now()
	entityID := RulingEntityID(rulingID)

	triples := []message.Triple{
		tr(entityID, "ruling.check.passed", result.Passed, sourceEvaluator, now),
		tr(entityID, "ruling.check.violations", len(result.Violations), sourceEvaluator, now),
		tr(entityID, "ruling.check.warnings", len(result.Warnings), sourceEvaluator, now),
		tr(entityID, "ruling.check.checked_at", result.CheckedAt.Format(time.RFC3339), sourceEvaluator, now),
	}
	for _, v := range result.Violations {
		triples = append(triples, tr(entityID, "ruling.violation.citation", v.Rule.Citation, sourceEvaluator, now))
	}

	return publish(ctx, nc, entityID, triples, now)
}

// sectionTriples emits the section and clause triples under a parent.
func sectionTriples(parentID string, sections []corpus.Section, now time.Time) []message.Triple {
	var triples []message.Triple
	for _, section := range sections {
		sectionID := fmt.Sprintf("%s.section.%d", parentID, section.Number)
		triples = append(triples,
			tr(parentID, vocab.HasSection, sectionID, sourceIngester, now),
			tr(sectionID, vocab.SectionNumber, section.Number, sourceIngester, now),
		)
		if section.Heading != "" {
			triples = append(triples, tr(sectionID, vocab.SectionHeading, section.Heading, sourceIngester, now))
		}
		if section.Text != "" {
			triples = append(triples, tr(sectionID, vocab.SectionText, section.Text, sourceIngester, now))
		}
		for _, clause := range section.Clauses {
			clauseID := fmt.Sprintf("%s.clause.%d", sectionID, clause.Index)
			triples = append(triples,
				tr(sectionID, vocab.HasClause, clauseID, sourceIngester, now),
				tr(clauseID, vocab.ClauseIndex, clause.Index, sourceIngester, now),
				tr(clauseID, vocab.ClauseText, clause.Text, sourceIngester, now),
			)
		}
	}
	return triples
}

// tr builds one full-confidence triple.
func tr(subject, predicate string, object any, source string, now time.Time) message.Triple {
	return message.Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     object,
		Source:     source,
		Timestamp:  now,
		Confidence: 1.0,
	}
}

func publish(ctx context.Context, nc *natsclient.Client, entityID string, triples []message.Triple, now time.Time) error {
	msg := EntityIngestMessage{
		ID:        entityID,
		Triples:   triples,
		UpdatedAt: now,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal entity %s: %w", entityID, err)
	}

	if err := nc.PublishToStream(ctx, GraphIngestSubject, data); err != nil {
		return fmt.Errorf("publish entity %s: %w", entityID, err)
	}

	return nil
}

// DocumentEntityID generates a consistent entity ID for a corpus
// document. Format: conlaw.local.corpus.document.<doc-id>
func DocumentEntityID(docID string) string {
	return fmt.Sprintf("conlaw.local.corpus.document.%s", docID)
}

// ArticleEntityID generates a consistent entity ID for an article.
// Format: conlaw.local.corpus.article.<n>
func ArticleEntityID(number int) string {
	return fmt.Sprintf("conlaw.local.corpus.article.%d", number)
}

// AmendmentEntityID generates a consistent entity ID for an amendment.
// Format: conlaw.local.corpus.amendment.<n>
func AmendmentEntityID(number int) string {
	return fmt.Sprintf("conlaw.local.corpus.amendment.%d", number)
}

// SourceEntityID generates a consistent entity ID for a source record.
// Format: conlaw.local.corpus.source.<id>
func SourceEntityID(id string) string {
	return fmt.Sprintf("conlaw.local.corpus.source.%s", id)
}

// RulingEntityID generates a consistent entity ID for a check ruling.
// Format: conlaw.local.rules.ruling.<id>
func RulingEntityID(id string) string {
	return fmt.Sprintf("conlaw.local.rules.ruling.%s", id)
}
