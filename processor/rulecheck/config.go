package rulecheck

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// Config holds configuration for the rulecheck processor component
type Config struct {
	Ports       *component.PortConfig `json:"ports"        schema:"type:ports,description:Port configuration,category:basic"`
	Org         string                `json:"org"          schema:"type:string,description:Organization for ruleset entity IDs,category:basic,required:true"`
	RulesetFile string                `json:"ruleset_file" schema:"type:string,description:Path to ruleset YAML/JSON file,category:basic"`
	EnforceMode string                `json:"enforce_mode" schema:"type:string,description:Enforcement mode (strict|warn|off),category:advanced,default:strict"`
	StreamName  string                `json:"stream_name"  schema:"type:string,description:JetStream stream name,category:advanced,default:RULES"`
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Org == "" {
		return fmt.Errorf("org is required")
	}

	switch c.EnforceMode {
	case "", "strict", "warn", "off":
		// valid
	default:
		return fmt.Errorf("enforce_mode must be one of: strict, warn, off")
	}

	if c.StreamName == "" {
		return fmt.Errorf("stream_name is required")
	}

	return nil
}

// DefaultConfig returns default configuration for the rulecheck processor
func DefaultConfig() Config {
	inputDefs := []component.PortDefinition{
		{
			Name:        "check.request",
			Type:        "jetstream",
			Subject:     "ruleset.check.request",
			StreamName:  "RULES",
			Required:    false,
			Description: "Incoming requests to evaluate records against the ruleset",
		},
	}

	outputDefs := []component.PortDefinition{
		{
			Name:        "graph.ingest",
			Type:        "jetstream",
			Subject:     "graph.ingest.entity",
			StreamName:  "GRAPH",
			Required:    true,
			Description: "Ruleset and ruling entity updates for graph storage",
		},
		{
			Name:        "check.result",
			Type:        "jetstream",
			Subject:     "ruleset.check.result",
			StreamName:  "RULES",
			Required:    false,
			Description: "Check results published for requesters",
		},
	}

	return Config{
		Ports: &component.PortConfig{
			Inputs:  inputDefs,
			Outputs: outputDefs,
		},
		Org:         "conlaw",
		EnforceMode: "strict",
		StreamName:  "RULES",
	}
}
