package corpusingester

import (
	"fmt"

	"github.com/c360studio/semstreams/component"
)

// Config holds configuration for the corpus-ingester processor component.
type Config struct {
	Ports *component.PortConfig `json:"ports" schema:"type:ports,description:Port configuration,category:basic"`

	// StreamName is the JetStream stream for corpus ingestion messages.
	StreamName string `json:"stream_name" schema:"type:string,description:JetStream stream name,category:basic,default:CORPUS"`

	// ConsumerName is the durable consumer name.
	ConsumerName string `json:"consumer_name" schema:"type:string,description:Durable consumer name,category:basic,default:corpus-ingester"`

	// CorpusDir is the base directory for corpus documents.
	CorpusDir string `json:"corpus_dir" schema:"type:string,description:Base directory for corpus documents,category:basic,default:corpus"`

	// Patterns are glob patterns for corpus documents relative to the
	// corpus directory. Double-star patterns are supported.
	Patterns []string `json:"patterns" schema:"type:array,description:Glob patterns for corpus documents,category:basic,default:[**/*.md]"`

	// WatchConfig holds file watching configuration.
	WatchConfig WatchConfig `json:"watch_config" schema:"type:object,description:File watching configuration for automatic re-ingestion,category:advanced"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.StreamName == "" {
		return fmt.Errorf("stream_name is required")
	}
	if c.ConsumerName == "" {
		return fmt.Errorf("consumer_name is required")
	}
	if c.CorpusDir == "" {
		return fmt.Errorf("corpus_dir is required")
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("patterns is required")
	}
	return nil
}

// DefaultConfig returns default configuration for corpus-ingester processor.
func DefaultConfig() Config {
	inputDefs := []component.PortDefinition{
		{
			Name:        "corpus.in",
			Type:        "jetstream",
			Subject:     "corpus.ingest.>",
			StreamName:  "CORPUS",
			Required:    true,
			Description: "Corpus document ingestion requests",
		},
	}

	outputDefs := []component.PortDefinition{
		{
			Name:        "graph.out",
			Type:        "jetstream",
			Subject:     "graph.ingest.entity",
			StreamName:  "GRAPH",
			Required:    true,
			Description: "Entity state updates for graph ingestion",
		},
	}

	return Config{
		Ports: &component.PortConfig{
			Inputs:  inputDefs,
			Outputs: outputDefs,
		},
		StreamName:   "CORPUS",
		ConsumerName: "corpus-ingester",
		CorpusDir:    "corpus",
		Patterns:     []string{"**/*.md"},
		WatchConfig:  DefaultWatchConfig(),
	}
}
