// Command openapi-generator writes the combined OpenAPI 3.0 document
// for the conlaw HTTP API from the specs components register at init.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	// Registers the ruleset API spec
	_ "github.com/c360studio/conlaw/processor/rulecheck"

	"github.com/c360studio/semstreams/service"
	"gopkg.in/yaml.v3"
)

func main() {
	out := flag.String("o", "./specs/openapi.v3.yaml", "Output path for the OpenAPI document")
	flag.Parse()

	specs := service.GetAllOpenAPISpecs()
	log.Printf("Generating OpenAPI document from %d registered specs", len(specs))
	for name := range specs {
		log.Printf("  - %s", name)
	}

	doc := buildDocument(specs)

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	if err := writeDocument(*out, doc); err != nil {
		log.Fatalf("Failed to write OpenAPI document: %v", err)
	}

	log.Printf("Wrote %s", *out)
}

// document is the OpenAPI 3.0 file layout.
type document struct {
	OpenAPI string         `yaml:"openapi"`
	Info    info           `yaml:"info"`
	Servers []srv          `yaml:"servers"`
	Paths   map[string]any `yaml:"paths"`
	Components struct {
		Schemas map[string]any `yaml:"schemas"`
	} `yaml:"components"`
	Tags []tag `yaml:"tags"`
}

type info struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

type srv struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type tag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// buildDocument merges the registered specs into one document in a
// single pass: paths, tags, and response schemas.
func buildDocument(specs map[string]*service.OpenAPISpec) document {
	doc := document{
		OpenAPI: "3.0.3",
		Info: info{
			Title:       "Conlaw API",
			Description: "HTTP API for the constitutional corpus service - ruleset inspection, record checks, stored rulings, and ruleset reloads",
			Version:     "1.0.0",
		},
		Servers: []srv{
			{URL: "http://localhost:8080", Description: "Development server"},
		},
		Paths: make(map[string]any),
	}
	doc.Components.Schemas = make(map[string]any)

	tagsSeen := make(map[string]bool)
	typesSeen := make(map[reflect.Type]bool)

	for _, name := range sortedKeys(specs) {
		spec := specs[name]

		for path, ps := range spec.Paths {
			item := make(map[string]any)
			if ps.GET != nil {
				item["get"] = operation(ps.GET)
			}
			if ps.POST != nil {
				item["post"] = operation(ps.POST)
			}
			doc.Paths[path] = item
		}

		for _, t := range spec.Tags {
			if !tagsSeen[t.Name] {
				tagsSeen[t.Name] = true
				doc.Tags = append(doc.Tags, tag{Name: t.Name, Description: t.Description})
			}
		}

		for _, rt := range spec.ResponseTypes {
			if typesSeen[rt] {
				continue
			}
			typesSeen[rt] = true
			doc.Components.Schemas[schemaName(rt)] = schemaFor(rt)
		}
	}

	sort.Slice(doc.Tags, func(i, j int) bool { return doc.Tags[i].Name < doc.Tags[j].Name })

	return doc
}

// operation converts one registered operation into its OpenAPI map form.
func operation(op *service.OperationSpec) map[string]any {
	m := map[string]any{
		"summary":   op.Summary,
		"responses": responses(op),
	}
	if op.Description != "" {
		m["description"] = op.Description
	}
	if len(op.Tags) > 0 {
		m["tags"] = op.Tags
	}

	var params []map[string]any
	for _, p := range op.Parameters {
		params = append(params, map[string]any{
			"name":        p.Name,
			"in":          p.In,
			"required":    p.Required,
			"description": p.Description,
			"schema":      map[string]any{"type": p.Schema.Type},
		})
	}
	if params != nil {
		m["parameters"] = params
	}

	return m
}

func responses(op *service.OperationSpec) map[string]any {
	out := make(map[string]any, len(op.Responses))
	for code, resp := range op.Responses {
		r := map[string]any{"description": resp.Description}
		if resp.SchemaRef != "" {
			contentType := resp.ContentType
			if contentType == "" {
				contentType = "application/json"
			}
			var schema map[string]any
			if resp.IsArray {
				schema = map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": resp.SchemaRef},
				}
			} else {
				schema = map[string]any{"$ref": resp.SchemaRef}
			}
			r["content"] = map[string]any{
				contentType: map[string]any{"schema": schema},
			}
		}
		out[code] = r
	}
	return out
}

// schemaFor reflects a Go type into its JSON Schema form. It covers
// what the API response types use: structs, slices, maps, pointers,
// time.Time, and the primitives.
func schemaFor(t reflect.Type) map[string]any {
	switch t.Kind() {
	case reflect.Ptr:
		schema := schemaFor(t.Elem())
		schema["nullable"] = true
		return schema
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Slice:
		return map[string]any{"type": "array", "items": schemaFor(t.Elem())}
	case reflect.Map:
		return map[string]any{"type": "object", "additionalProperties": schemaFor(t.Elem())}
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return map[string]any{"type": "string", "format": "date-time"}
		}
		return structSchema(t)
	default:
		return map[string]any{}
	}
}

func structSchema(t reflect.Type) map[string]any {
	properties := make(map[string]any)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitempty := fieldName(field)
		if name == "" {
			continue
		}

		properties[name] = schemaFor(field.Type)
		if !omitempty && field.Type.Kind() != reflect.Ptr {
			required = append(required, name)
		}
	}

	schema := map[string]any{"type": "object", "properties": properties}
	if len(required) > 0 {
		sort.Strings(required)
		schema["required"] = required
	}
	return schema
}

// fieldName resolves a struct field's JSON name, skipping "-" fields.
func fieldName(field reflect.StructField) (name string, omitempty bool) {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return "", false
	}
	parts := strings.Split(jsonTag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

func schemaName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func sortedKeys(specs map[string]*service.OpenAPISpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeDocument(path string, doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	header := "# OpenAPI 3.0 document for the Conlaw API\n" +
		"# Generated by openapi-generator; do not edit by hand\n\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
