package rulecheck

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComponent(t *testing.T, modify func(*Config)) *Component {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Org = "test"
	if modify != nil {
		modify(&cfg)
	}

	c := &Component{
		name:    "rulecheck",
		config:  cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: defaultMetrics(),
	}
	require.NoError(t, c.loadRuleset())
	return c
}

func newTestServer(t *testing.T, modify func(*Config)) *httptest.Server {
	t.Helper()

	c := newTestComponent(t, modify)
	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("/api/ruleset/", mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, out any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHandleGetRuleset(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp Response
	httpResp := getJSON(t, srv.URL+"/api/ruleset/", &resp)
	assert.Equal(t, http.StatusOK, httpResp.StatusCode)

	assert.Equal(t, "test.conlaw.corpus.ruleset.1.0.0", resp.ID)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, 12, resp.RuleCount)
	assert.NotEmpty(t, resp.Articles["article_i"])
}

func TestHandleGetRules(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp RulesResponse
	getJSON(t, srv.URL+"/api/ruleset/rules", &resp)

	assert.Equal(t, 12, resp.Count)
	assert.Len(t, resp.Rules, 12)

	ids := make(map[string]bool)
	for _, r := range resp.Rules {
		ids[r.ID] = true
		assert.NotEmpty(t, r.Article)
		assert.NotEmpty(t, r.Text)
	}
	assert.True(t, ids["house-qualifications"])
	assert.True(t, ids["judgment-limit"])
}

func TestHandleGetRulesByCategory(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp CategoryRulesResponse
	getJSON(t, srv.URL+"/api/ruleset/rules/qualification", &resp)

	assert.Equal(t, "qualification", resp.Category)
	assert.Equal(t, 3, resp.Count)
	for _, r := range resp.Rules {
		assert.Equal(t, "qualification", r.Category)
	}
}

func TestHandleGetRulesByCategoryInvalid(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := getJSON(t, srv.URL+"/api/ruleset/rules/nonsense", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCheckPass(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp HTTPCheckResponse
	httpResp := postJSON(t, srv.URL+"/api/ruleset/check", `{
		"record": {
			"kind": "candidate",
			"office": "representative",
			"age": 40,
			"citizen_years": 10,
			"state": "vt",
			"inhabitant_state": "vt"
		}
	}`, &resp)

	assert.Equal(t, http.StatusOK, httpResp.StatusCode)
	assert.True(t, resp.Passed)
	assert.Empty(t, resp.Violations)
}

func TestHandleCheckViolation(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp HTTPCheckResponse
	postJSON(t, srv.URL+"/api/ruleset/check", `{
		"record": {
			"kind": "candidate",
			"office": "representative",
			"age": 20,
			"citizen_years": 10,
			"state": "vt",
			"inhabitant_state": "vt"
		}
	}`, &resp)

	assert.False(t, resp.Passed)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "house-qualifications", resp.Violations[0].RuleID)
	assert.Equal(t, "must", resp.Violations[0].Priority)
	assert.Contains(t, resp.Violations[0].Message, "age")
}

func TestHandleCheckWarnMode(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.EnforceMode = "warn" })

	var resp HTTPCheckResponse
	postJSON(t, srv.URL+"/api/ruleset/check", `{
		"record": {
			"kind": "candidate",
			"office": "representative",
			"age": 20,
			"citizen_years": 10,
			"state": "vt",
			"inhabitant_state": "vt"
		}
	}`, &resp)

	assert.True(t, resp.Passed)
	assert.Empty(t, resp.Violations)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "house-qualifications", resp.Warnings[0].RuleID)
}

func TestHandleCheckOffMode(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.EnforceMode = "off" })

	var resp HTTPCheckResponse
	postJSON(t, srv.URL+"/api/ruleset/check", `{
		"record": {"kind": "action", "action": "grant_title"}
	}`, &resp)

	assert.True(t, resp.Passed)
	assert.Empty(t, resp.Violations)
	assert.Empty(t, resp.Warnings)
}

func TestHandleCheckMissingRecord(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/ruleset/check", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCheckBadJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/ruleset/check", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleCheckMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := getJSON(t, srv.URL+"/api/ruleset/check", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleGetCheckNoStore(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := getJSON(t, srv.URL+"/api/ruleset/check/abc123", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleGetCheckMissingID(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := getJSON(t, srv.URL+"/api/ruleset/check/", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetCheckMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/ruleset/check/abc123", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleReloadNoFile(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp ReloadResponse
	postJSON(t, srv.URL+"/api/ruleset/reload", "", &resp)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "No ruleset file")
}

func TestHandleReloadFromFile(t *testing.T) {
	path := writeRulesetFile(t, "ruleset.yaml", testRulesetYAML)
	srv := newTestServer(t, func(c *Config) { c.RulesetFile = path })

	var resp ReloadResponse
	postJSON(t, srv.URL+"/api/ruleset/reload", "", &resp)

	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.RuleCount)
}
