// Package storage provides corpus entity storage backed by NATS KV.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/conlaw/rules"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
)

// EntityType represents the type of entity stored in KV.
type EntityType string

const (
	EntityTypeDocument EntityType = "document"
	EntityTypeCheck    EntityType = "check"
	EntityTypeRuling   EntityType = "ruling"
)

// Bucket names for each entity type.
const (
	BucketDocuments = "CONLAW_DOCUMENTS"
	BucketChecks    = "CONLAW_CHECKS"
	BucketRulings   = "CONLAW_RULINGS"
)

// EntityID represents a typed entity identifier.
type EntityID struct {
	Type EntityType
	ID   string
}

// String returns the string representation of the entity ID.
func (e EntityID) String() string {
	return fmt.Sprintf("%s:%s", e.Type, e.ID)
}

// ParseEntityID parses an entity ID string into its components.
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return EntityID{}, fmt.Errorf("invalid entity ID format: %s", s)
	}
	entityType := EntityType(parts[0])
	switch entityType {
	case EntityTypeDocument, EntityTypeCheck, EntityTypeRuling:
		return EntityID{Type: entityType, ID: parts[1]}, nil
	default:
		return EntityID{}, fmt.Errorf("unknown entity type: %s", parts[0])
	}
}

// NewEntityID generates a new unique entity ID for the given type.
func NewEntityID(t EntityType) EntityID {
	return EntityID{
		Type: t,
		ID:   uuid.New().String(),
	}
}

// CheckStatus represents the status of a check request.
type CheckStatus string

const (
	CheckStatusPending   CheckStatus = "pending"
	CheckStatusEvaluated CheckStatus = "evaluated"
	CheckStatusFailed    CheckStatus = "failed"
)

// DocumentRecord tracks an ingested corpus document.
type DocumentRecord struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	Hash       string    `json:"hash"`
	Title      string    `json:"title,omitempty"`
	Articles   int       `json:"articles"`
	Amendments int       `json:"amendments"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Check represents a rule-check request.
type Check struct {
	ID           string         `json:"id"`
	Record       rules.Record   `json:"record"`
	Status       CheckStatus    `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	EvaluatedAt  *time.Time     `json:"evaluated_at,omitempty"`
	StatusChange []StatusChange `json:"status_changes,omitempty"`
}

// StatusChange records a status transition.
type StatusChange struct {
	From      CheckStatus `json:"from"`
	To        CheckStatus `json:"to"`
	Timestamp time.Time   `json:"timestamp"`
}

// Ruling represents a recorded check outcome.
type Ruling struct {
	ID         string    `json:"id"`
	CheckID    string    `json:"check_id"`
	Passed     bool      `json:"passed"`
	Violations []string  `json:"violations,omitempty"`
	Warnings   []string  `json:"warnings,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store provides entity storage operations backed by NATS KV.
type Store struct {
	documents jetstream.KeyValue
	checks    jetstream.KeyValue
	rulings   jetstream.KeyValue
}

// NewStore creates a new Store with the given JetStream context.
// It creates the necessary KV buckets if they don't exist.
func NewStore(ctx context.Context, js jetstream.JetStream) (*Store, error) {
	documents, err := getOrCreateBucket(ctx, js, BucketDocuments)
	if err != nil {
		return nil, fmt.Errorf("create documents bucket: %w", err)
	}

	checks, err := getOrCreateBucket(ctx, js, BucketChecks)
	if err != nil {
		return nil, fmt.Errorf("create checks bucket: %w", err)
	}

	rulings, err := getOrCreateBucket(ctx, js, BucketRulings)
	if err != nil {
		return nil, fmt.Errorf("create rulings bucket: %w", err)
	}

	return &Store{
		documents: documents,
		checks:    checks,
		rulings:   rulings,
	}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("Conlaw %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// CreateDocument records a newly ingested document and returns its ID.
func (s *Store) CreateDocument(ctx context.Context, d *DocumentRecord) (EntityID, error) {
	id := NewEntityID(EntityTypeDocument)
	d.ID = id.String()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt

	data, err := json.Marshal(d)
	if err != nil {
		return EntityID{}, fmt.Errorf("marshal document: %w", err)
	}

	if _, err := s.documents.Create(ctx, id.ID, data); err != nil {
		return EntityID{}, fmt.Errorf("store document: %w", err)
	}

	return id, nil
}

// GetDocument retrieves a document record by ID.
func (s *Store) GetDocument(ctx context.Context, id EntityID) (*DocumentRecord, error) {
	if id.Type != EntityTypeDocument {
		return nil, fmt.Errorf("invalid entity type: expected document, got %s", id.Type)
	}

	entry, err := s.documents.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	var d DocumentRecord
	if err := json.Unmarshal(entry.Value(), &d); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return &d, nil
}

// UpdateDocument updates an existing document record.
func (s *Store) UpdateDocument(ctx context.Context, d *DocumentRecord) error {
	id, err := ParseEntityID(d.ID)
	if err != nil {
		return fmt.Errorf("parse document ID: %w", err)
	}

	d.UpdatedAt = time.Now()

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if _, err := s.documents.Put(ctx, id.ID, data); err != nil {
		return fmt.Errorf("update document: %w", err)
	}

	return nil
}

// FindDocumentByPath returns the record for a document path, if any.
func (s *Store) FindDocumentByPath(ctx context.Context, path string) (*DocumentRecord, error) {
	keys, err := s.documents.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list document keys: %w", err)
	}

	for _, key := range keys {
		entry, err := s.documents.Get(ctx, key)
		if err != nil {
			continue
		}
		var d DocumentRecord
		if err := json.Unmarshal(entry.Value(), &d); err != nil {
			continue
		}
		if d.Path == path {
			return &d, nil
		}
	}

	return nil, ErrNotFound
}

// ListDocuments returns all document records.
func (s *Store) ListDocuments(ctx context.Context) ([]*DocumentRecord, error) {
	keys, err := s.documents.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, nil
		}
		return nil, fmt.Errorf("list document keys: %w", err)
	}

	documents := make([]*DocumentRecord, 0, len(keys))
	for _, key := range keys {
		entry, err := s.documents.Get(ctx, key)
		if err != nil {
			continue // Skip entries that fail to load
		}
		var d DocumentRecord
		if err := json.Unmarshal(entry.Value(), &d); err != nil {
			continue
		}
		documents = append(documents, &d)
	}

	return documents, nil
}

// CreateCheck stores a new check request and returns its ID.
func (s *Store) CreateCheck(ctx context.Context, c *Check) (EntityID, error) {
	id := NewEntityID(EntityTypeCheck)
	c.ID = id.String()
	c.Status = CheckStatusPending
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt

	data, err := json.Marshal(c)
	if err != nil {
		return EntityID{}, fmt.Errorf("marshal check: %w", err)
	}

	if _, err := s.checks.Create(ctx, id.ID, data); err != nil {
		return EntityID{}, fmt.Errorf("store check: %w", err)
	}

	return id, nil
}

// GetCheck retrieves a check by ID.
func (s *Store) GetCheck(ctx context.Context, id EntityID) (*Check, error) {
	if id.Type != EntityTypeCheck {
		return nil, fmt.Errorf("invalid entity type: expected check, got %s", id.Type)
	}

	entry, err := s.checks.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get check: %w", err)
	}

	var c Check
	if err := json.Unmarshal(entry.Value(), &c); err != nil {
		return nil, fmt.Errorf("unmarshal check: %w", err)
	}

	return &c, nil
}

// UpdateCheckStatus updates a check's status and records the change.
func (s *Store) UpdateCheckStatus(ctx context.Context, id EntityID, newStatus CheckStatus) error {
	check, err := s.GetCheck(ctx, id)
	if err != nil {
		return err
	}

	oldStatus := check.Status
	now := time.Now()

	check.Status = newStatus
	check.UpdatedAt = now
	check.StatusChange = append(check.StatusChange, StatusChange{
		From:      oldStatus,
		To:        newStatus,
		Timestamp: now,
	})

	if newStatus == CheckStatusEvaluated || newStatus == CheckStatusFailed {
		check.EvaluatedAt = &now
	}

	parsedID, _ := ParseEntityID(check.ID)
	data, err := json.Marshal(check)
	if err != nil {
		return fmt.Errorf("marshal check: %w", err)
	}

	if _, err := s.checks.Put(ctx, parsedID.ID, data); err != nil {
		return fmt.Errorf("update check: %w", err)
	}

	return nil
}

// CreateRuling stores a new ruling and returns its ID.
func (s *Store) CreateRuling(ctx context.Context, r *Ruling) (EntityID, error) {
	id := NewEntityID(EntityTypeRuling)
	r.ID = id.String()
	r.CreatedAt = time.Now()

	data, err := json.Marshal(r)
	if err != nil {
		return EntityID{}, fmt.Errorf("marshal ruling: %w", err)
	}

	if _, err := s.rulings.Create(ctx, id.ID, data); err != nil {
		return EntityID{}, fmt.Errorf("store ruling: %w", err)
	}

	return id, nil
}

// GetRuling retrieves a ruling by ID.
func (s *Store) GetRuling(ctx context.Context, id EntityID) (*Ruling, error) {
	if id.Type != EntityTypeRuling {
		return nil, fmt.Errorf("invalid entity type: expected ruling, got %s", id.Type)
	}

	entry, err := s.rulings.Get(ctx, id.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ruling: %w", err)
	}

	var r Ruling
	if err := json.Unmarshal(entry.Value(), &r); err != nil {
		return nil, fmt.Errorf("unmarshal ruling: %w", err)
	}

	return &r, nil
}

// GetRulingByCheck retrieves the ruling for a given check.
func (s *Store) GetRulingByCheck(ctx context.Context, checkID EntityID) (*Ruling, error) {
	keys, err := s.rulings.Keys(ctx)
	if err != nil {
		if err == jetstream.ErrNoKeysFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("list ruling keys: %w", err)
	}

	for _, key := range keys {
		entry, err := s.rulings.Get(ctx, key)
		if err != nil {
			continue
		}
		var r Ruling
		if err := json.Unmarshal(entry.Value(), &r); err != nil {
			continue
		}
		if r.CheckID == checkID.String() {
			return &r, nil
		}
	}

	return nil, ErrNotFound
}

// RulingFromResult converts a check result into a storable ruling.
func RulingFromResult(checkID EntityID, result *rules.CheckResult) *Ruling {
	r := &Ruling{
		CheckID: checkID.String(),
		Passed:  result.Passed,
	}
	for _, v := range result.Violations {
		r.Violations = append(r.Violations, v.Message)
	}
	for _, w := range result.Warnings {
		r.Warnings = append(r.Warnings, w.Message)
	}
	return r
}

// isNotFound checks if an error indicates a key was not found.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
