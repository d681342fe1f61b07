package rulecheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/c360studio/conlaw/rules"
	"github.com/c360studio/conlaw/storage"
)

// RegisterHTTPHandlers registers HTTP handlers for the rulecheck component.
// The prefix should include the trailing slash (e.g., "/api/ruleset/").
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(prefix, c.handleGetRuleset)
	mux.HandleFunc(prefix+"rules", c.handleGetRules)
	mux.HandleFunc(prefix+"rules/", c.handleGetRulesByCategory)
	mux.HandleFunc(prefix+"check", c.handleCheck)
	mux.HandleFunc(prefix+"check/", c.handleGetCheck)
	mux.HandleFunc(prefix+"reload", c.handleReload)
}

// RuleView is the JSON form of a single rule.
type RuleView struct {
	ID       string `json:"id"`
	Citation string `json:"citation,omitempty"`
	Text     string `json:"text"`
	Article  string `json:"article"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority"`
	Enforced bool   `json:"enforced"`
}

func ruleView(ref rules.ArticleRef, rule rules.Rule) RuleView {
	return RuleView{
		ID:       rule.ID,
		Citation: rule.Citation,
		Text:     rule.Text,
		Article:  string(ref),
		Category: string(rule.Category),
		Priority: string(rule.Priority),
		Enforced: rule.Enforced,
	}
}

// Response is the JSON response for GET /
type Response struct {
	ID         string                `json:"id"`
	Version    string                `json:"version"`
	Articles   map[string][]RuleView `json:"articles"`
	RuleCount  int                   `json:"rule_count"`
	CreatedAt  string                `json:"created_at"`
	ModifiedAt string                `json:"modified_at"`
}

// RulesResponse is the JSON response for GET /rules
type RulesResponse struct {
	Rules []RuleView `json:"rules"`
	Count int        `json:"count"`
}

// CategoryRulesResponse is the JSON response for GET /rules/{category}
type CategoryRulesResponse struct {
	Category string     `json:"category"`
	Rules    []RuleView `json:"rules"`
	Count    int        `json:"count"`
}

// HTTPCheckRequest is the JSON request body for POST /check
type HTTPCheckRequest struct {
	Record rules.Record `json:"record"`
}

// HTTPCheckResponse is the JSON response for POST /check
type HTTPCheckResponse struct {
	Passed     bool          `json:"passed"`
	RulingID   string        `json:"ruling_id,omitempty"`
	Violations []RuleFailure `json:"violations,omitempty"`
	Warnings   []RuleFailure `json:"warnings,omitempty"`
	CheckedAt  string        `json:"checked_at"`
}

// CheckStatusResponse is the JSON response for GET /check/{id}
type CheckStatusResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Record rules.Record    `json:"record"`
	Ruling *storage.Ruling `json:"ruling,omitempty"`
}

// ReloadResponse is the JSON response for POST /reload
type ReloadResponse struct {
	Success   bool   `json:"success"`
	RuleCount int    `json:"rule_count"`
	Message   string `json:"message,omitempty"`
}

// handleGetRuleset handles GET / - returns the active ruleset
func (c *Component) handleGetRuleset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ruleset := c.Ruleset()
	if ruleset == nil {
		writeJSON(w, http.StatusOK, Response{})
		return
	}

	articles := make(map[string][]RuleView, len(ruleset.Articles))
	ruleCount := 0
	for ref, articleRules := range ruleset.Articles {
		views := make([]RuleView, 0, len(articleRules))
		for _, rule := range articleRules {
			views = append(views, ruleView(ref, rule))
		}
		articles[string(ref)] = views
		ruleCount += len(views)
	}

	resp := Response{
		ID:         ruleset.ID,
		Version:    ruleset.Version,
		Articles:   articles,
		RuleCount:  ruleCount,
		CreatedAt:  ruleset.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		ModifiedAt: ruleset.ModifiedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetRules handles GET /rules - returns all rules across all articles
func (c *Component) handleGetRules(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var views []RuleView
	if ruleset := c.Ruleset(); ruleset != nil {
		for ref, articleRules := range ruleset.Articles {
			for _, rule := range articleRules {
				views = append(views, ruleView(ref, rule))
			}
		}
	}

	writeJSON(w, http.StatusOK, RulesResponse{
		Rules: views,
		Count: len(views),
	})
}

// handleGetRulesByCategory handles GET /rules/{category}
func (c *Component) handleGetRulesByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Extract category from path (e.g., "/api/ruleset/rules/qualification" -> "qualification")
	path := r.URL.Path
	idx := strings.LastIndex(path, "/rules/")
	if idx == -1 {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	categoryStr := path[idx+len("/rules/"):]
	if categoryStr == "" {
		http.Error(w, "Category name required", http.StatusBadRequest)
		return
	}

	category := rules.CategoryName(categoryStr)

	// Validate category name
	switch category {
	case rules.CategoryQualification, rules.CategoryProcedure, rules.CategoryProhibition,
		rules.CategoryApportionment, rules.CategorySuccession:
		// valid
	default:
		http.Error(w, "Invalid category: must be one of qualification, procedure, prohibition, apportionment, succession", http.StatusBadRequest)
		return
	}

	views := []RuleView{}
	if ruleset := c.Ruleset(); ruleset != nil {
		for ref, articleRules := range ruleset.Articles {
			for _, rule := range articleRules {
				if rule.Category == category {
					views = append(views, ruleView(ref, rule))
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, CategoryRulesResponse{
		Category: categoryStr,
		Rules:    views,
		Count:    len(views),
	})
}

// handleCheck handles POST /check - evaluate a record against the ruleset
func (c *Component) handleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req HTTPCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON request body", http.StatusBadRequest)
		return
	}

	if len(req.Record) == 0 {
		http.Error(w, "record field is required", http.StatusBadRequest)
		return
	}

	result, rulingID, err := c.runCheck(r.Context(), req.Record)
	if err != nil {
		c.logger.Error("Check evaluation failed", "error", err)
		http.Error(w, "Check evaluation failed", http.StatusInternalServerError)
		return
	}

	resp := HTTPCheckResponse{
		Passed:    result.Passed,
		RulingID:  rulingID,
		CheckedAt: result.CheckedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, v := range result.Violations {
		resp.Violations = append(resp.Violations, failureFromViolation(v))
	}
	for _, warn := range result.Warnings {
		resp.Warnings = append(resp.Warnings, failureFromViolation(warn))
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleGetCheck handles GET /check/{id} - stored check and its ruling
func (c *Component) handleGetCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	idx := strings.LastIndex(r.URL.Path, "/check/")
	id := r.URL.Path[idx+len("/check/"):]
	if id == "" {
		http.Error(w, "Check ID required", http.StatusBadRequest)
		return
	}
	id = strings.TrimPrefix(id, "check:")

	if c.store == nil {
		http.Error(w, "Check store not available", http.StatusServiceUnavailable)
		return
	}

	checkID := storage.EntityID{Type: storage.EntityTypeCheck, ID: id}
	check, err := c.store.GetCheck(r.Context(), checkID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Check not found", http.StatusNotFound)
			return
		}
		c.logger.Error("Failed to get check", "id", id, "error", err)
		http.Error(w, "Failed to get check", http.StatusInternalServerError)
		return
	}

	resp := CheckStatusResponse{
		ID:     check.ID,
		Status: string(check.Status),
		Record: check.Record,
	}

	ruling, err := c.store.GetRulingByCheck(r.Context(), checkID)
	if err == nil {
		resp.Ruling = ruling
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Error("Failed to get ruling for check", "id", id, "error", err)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleReload handles POST /reload - reload ruleset from file
func (c *Component) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.config.RulesetFile == "" {
		writeJSON(w, http.StatusOK, ReloadResponse{
			Success: false,
			Message: "No ruleset file path configured",
		})
		return
	}

	if err := c.loadRuleset(); err != nil {
		c.logger.Error("Failed to reload ruleset", "error", err)
		writeJSON(w, http.StatusInternalServerError, ReloadResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ReloadResponse{
		Success:   true,
		RuleCount: len(c.Ruleset().AllRules()),
		Message:   "Ruleset reloaded successfully",
	})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log but can't do much at this point
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
