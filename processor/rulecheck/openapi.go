package rulecheck

import (
	"reflect"

	"github.com/c360studio/semstreams/service"
)

func init() {
	service.RegisterOpenAPISpec("rulecheck", rulecheckOpenAPISpec())
}

// OpenAPISpec implements the OpenAPIProvider interface.
func (c *Component) OpenAPISpec() *service.OpenAPISpec {
	return rulecheckOpenAPISpec()
}

// rulecheckOpenAPISpec returns the OpenAPI specification for ruleset endpoints.
func rulecheckOpenAPISpec() *service.OpenAPISpec {
	return &service.OpenAPISpec{
		Tags: []service.TagSpec{
			{Name: "Ruleset", Description: "Corpus ruleset management - rules, categories, and record checking"},
		},
		Paths: map[string]service.PathSpec{
			"/api/ruleset/": {
				GET: &service.OperationSpec{
					Summary:     "Get ruleset",
					Description: "Returns the active ruleset with all articles and rules",
					Tags:        []string{"Ruleset"},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "Ruleset with all articles and rules",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/Response",
						},
					},
				},
			},
			"/api/ruleset/rules": {
				GET: &service.OperationSpec{
					Summary:     "Get all rules",
					Description: "Returns all rules across all articles with their article references",
					Tags:        []string{"Ruleset"},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "List of all rules with article metadata",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/RulesResponse",
						},
					},
				},
			},
			"/api/ruleset/rules/{category}": {
				GET: &service.OperationSpec{
					Summary:     "Get rules by category",
					Description: "Returns rules for a specific category (qualification, procedure, prohibition, apportionment, succession)",
					Tags:        []string{"Ruleset"},
					Parameters: []service.ParameterSpec{
						{
							Name:        "category",
							In:          "path",
							Required:    true,
							Description: "Category name: qualification, procedure, prohibition, apportionment, or succession",
							Schema:      service.Schema{Type: "string"},
						},
					},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "Rules for the specified category",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/CategoryRulesResponse",
						},
						"400": {Description: "Invalid category name"},
					},
				},
			},
			"/api/ruleset/check": {
				POST: &service.OperationSpec{
					Summary:     "Check record",
					Description: "Evaluate a record against all enforced rules and return violations and warnings",
					Tags:        []string{"Ruleset"},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "Check result with pass/fail status, violations, and warnings",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/HTTPCheckResponse",
						},
						"400": {Description: "Invalid request (missing record field)"},
					},
				},
			},
			"/api/ruleset/check/{id}": {
				GET: &service.OperationSpec{
					Summary:     "Get check result",
					Description: "Returns a stored check request and its ruling, if one has been recorded",
					Tags:        []string{"Ruleset"},
					Parameters: []service.ParameterSpec{
						{
							Name:        "id",
							In:          "path",
							Required:    true,
							Description: "Check ID",
							Schema:      service.Schema{Type: "string"},
						},
					},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "Stored check with its ruling",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/CheckStatusResponse",
						},
						"404": {Description: "Check not found"},
					},
				},
			},
			"/api/ruleset/reload": {
				POST: &service.OperationSpec{
					Summary:     "Reload ruleset",
					Description: "Reload the ruleset from the configured file path",
					Tags:        []string{"Ruleset"},
					Responses: map[string]service.ResponseSpec{
						"200": {
							Description: "Reload result with success status and rule count",
							ContentType: "application/json",
							SchemaRef:   "#/components/schemas/ReloadResponse",
						},
						"500": {Description: "Failed to reload ruleset"},
					},
				},
			},
		},
		ResponseTypes: []reflect.Type{
			reflect.TypeOf(Response{}),
			reflect.TypeOf(RulesResponse{}),
			reflect.TypeOf(CategoryRulesResponse{}),
			reflect.TypeOf(HTTPCheckRequest{}),
			reflect.TypeOf(HTTPCheckResponse{}),
			reflect.TypeOf(CheckStatusResponse{}),
			reflect.TypeOf(ReloadResponse{}),
			reflect.TypeOf(RuleView{}),
			reflect.TypeOf(RuleFailure{}),
		},
	}
}
