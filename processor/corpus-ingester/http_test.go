package corpusingester

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/corpus/parser"
)

func newTestIngester() *Component {
	return &Component{
		name:    "corpus-ingester",
		config:  DefaultConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		parser:  parser.NewConstitutionParser(),
		sources: make(map[string]*corpus.Source),
	}
}

func newIngesterServer(t *testing.T, c *Component) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("/api/corpus/", mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func getIngesterJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func TestHTTPListDocuments_NoStore(t *testing.T) {
	server := newIngesterServer(t, newTestIngester())

	status := getIngesterJSON(t, server.URL+"/api/corpus/documents", nil)
	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}

func TestHTTPGetDocument_NoStore(t *testing.T) {
	server := newIngesterServer(t, newTestIngester())

	status := getIngesterJSON(t, server.URL+"/api/corpus/documents/abc", nil)
	if status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", status)
	}
}

func TestHTTPListSources(t *testing.T) {
	c := newTestIngester()
	src := c.sourceFor("corpus/constitution.md")
	c.sourceMu.Lock()
	src.MarkReady()
	c.sourceMu.Unlock()

	server := newIngesterServer(t, c)

	var resp SourcesResponse
	status := getIngesterJSON(t, server.URL+"/api/corpus/sources", &resp)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.Count != 1 {
		t.Fatalf("Count = %d, want 1", resp.Count)
	}
	if resp.Sources[0].ID != "corpus.file.constitution-md" {
		t.Errorf("source ID = %q, want corpus.file.constitution-md", resp.Sources[0].ID)
	}
	if string(resp.Sources[0].Status) != "ready" {
		t.Errorf("source status = %q, want ready", resp.Sources[0].Status)
	}
}

func TestHTTPStatus(t *testing.T) {
	c := newTestIngester()
	c.documentsIngested.Add(3)
	c.errors.Add(1)
	c.sourceFor("a.md")
	c.sourceFor("b.md")

	server := newIngesterServer(t, c)

	var resp StatusResponse
	status := getIngesterJSON(t, server.URL+"/api/corpus/status", &resp)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if resp.DocumentsIngested != 3 {
		t.Errorf("DocumentsIngested = %d, want 3", resp.DocumentsIngested)
	}
	if resp.Errors != 1 {
		t.Errorf("Errors = %d, want 1", resp.Errors)
	}
	if resp.Sources != 2 {
		t.Errorf("Sources = %d, want 2", resp.Sources)
	}
	if resp.Watching {
		t.Error("Watching = true with no watcher")
	}
}

func TestHTTPMethodsRejected(t *testing.T) {
	server := newIngesterServer(t, newTestIngester())

	resp, err := http.Post(server.URL+"/api/corpus/status", "application/json", nil)
	if err != nil {
		t.Fatalf("POST status: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestSourceFor_ReusesRecord(t *testing.T) {
	c := newTestIngester()

	first := c.sourceFor("corpus/constitution.md")
	second := c.sourceFor("corpus/constitution.md")
	if first != second {
		t.Error("sourceFor created a second record for the same path")
	}

	other := c.sourceFor("corpus/amendments.md")
	if other == first {
		t.Error("sourceFor shared a record across paths")
	}
	if len(c.Sources()) != 2 {
		t.Errorf("Sources() = %d records, want 2", len(c.Sources()))
	}
}
