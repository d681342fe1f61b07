package corpusingester

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/storage"
)

// RegisterHTTPHandlers registers HTTP handlers for the corpus-ingester
// component. The prefix should include the trailing slash (e.g.,
// "/api/corpus/").
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(prefix+"documents", c.handleListDocuments)
	mux.HandleFunc(prefix+"documents/", c.handleGetDocument)
	mux.HandleFunc(prefix+"sources", c.handleListSources)
	mux.HandleFunc(prefix+"status", c.handleStatus)
}

// DocumentsResponse is the JSON response for GET /documents
type DocumentsResponse struct {
	Documents []*storage.DocumentRecord `json:"documents"`
	Count     int                       `json:"count"`
}

// SourcesResponse is the JSON response for GET /sources
type SourcesResponse struct {
	Sources []*corpus.Source `json:"sources"`
	Count   int              `json:"count"`
}

// StatusResponse is the JSON response for GET /status
type StatusResponse struct {
	Running            bool  `json:"running"`
	DocumentsIngested  int64 `json:"documents_ingested"`
	Errors             int64 `json:"errors"`
	Sources            int   `json:"sources"`
	Watching           bool  `json:"watching"`
	DroppedWatchEvents int64 `json:"dropped_watch_events"`
}

// handleListDocuments handles GET /documents - lists ingested documents
func (c *Component) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.store == nil {
		http.Error(w, "Document store not available", http.StatusServiceUnavailable)
		return
	}

	documents, err := c.store.ListDocuments(r.Context())
	if err != nil {
		c.logger.Error("Failed to list documents", "error", err)
		http.Error(w, "Failed to list documents", http.StatusInternalServerError)
		return
	}

	ingesterWriteJSON(w, http.StatusOK, DocumentsResponse{
		Documents: documents,
		Count:     len(documents),
	})
}

// handleGetDocument handles GET /documents/{id}
func (c *Component) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	idx := strings.LastIndex(r.URL.Path, "/documents/")
	id := r.URL.Path[idx+len("/documents/"):]
	if id == "" {
		http.Error(w, "Document ID required", http.StatusBadRequest)
		return
	}
	id = strings.TrimPrefix(id, "document:")

	if c.store == nil {
		http.Error(w, "Document store not available", http.StatusServiceUnavailable)
		return
	}

	doc, err := c.store.GetDocument(r.Context(), storage.EntityID{
		Type: storage.EntityTypeDocument,
		ID:   id,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Document not found", http.StatusNotFound)
			return
		}
		c.logger.Error("Failed to get document", "id", id, "error", err)
		http.Error(w, "Failed to get document", http.StatusInternalServerError)
		return
	}

	ingesterWriteJSON(w, http.StatusOK, doc)
}

// handleListSources handles GET /sources - lists tracked source records
func (c *Component) handleListSources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sources := c.Sources()
	ingesterWriteJSON(w, http.StatusOK, SourcesResponse{
		Sources: sources,
		Count:   len(sources),
	})
}

// handleStatus handles GET /status - ingester counters
func (c *Component) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.mu.RLock()
	running := c.running
	c.mu.RUnlock()

	resp := StatusResponse{
		Running:           running,
		DocumentsIngested: c.documentsIngested.Load(),
		Errors:            c.errors.Load(),
		Sources:           len(c.Sources()),
	}
	if c.watcher != nil {
		resp.Watching = true
		resp.DroppedWatchEvents = c.watcher.DroppedEvents()
	}

	ingesterWriteJSON(w, http.StatusOK, resp)
}

// ingesterWriteJSON writes a JSON response with the given status code
func ingesterWriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
