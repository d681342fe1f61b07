// Package corpusingester provides a component for parsing corpus
// documents and publishing their structure to the knowledge graph.
package corpusingester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/corpus/parser"
	"github.com/c360studio/conlaw/graph"
	"github.com/c360studio/conlaw/storage"
)

// corpusIngesterSchema defines the configuration schema.
var corpusIngesterSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Component implements the corpus-ingester processor.
type Component struct {
	name       string
	config     Config
	natsClient *natsclient.Client
	logger     *slog.Logger
	platform   component.PlatformMeta
	parser     *parser.ConstitutionParser
	store      *storage.Store
	watcher    *CorpusWatcher

	// Source records keyed by file path
	sourceMu sync.Mutex
	sources  map[string]*corpus.Source

	// Lifecycle management
	running   bool
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc

	// Metrics
	documentsIngested atomic.Int64
	errors            atomic.Int64
	lastActivityMu    sync.RWMutex
	lastActivity      time.Time
}

// NewComponent creates a new corpus-ingester processor component.
func NewComponent(rawConfig json.RawMessage, deps component.Dependencies) (component.Discoverable, error) {
	var config Config
	if err := json.Unmarshal(rawConfig, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Use default config if ports not set
	if config.Ports == nil {
		config = DefaultConfig()
		// Re-unmarshal to get user-provided values
		if err := json.Unmarshal(rawConfig, &config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Component{
		name:       "corpus-ingester",
		config:     config,
		natsClient: deps.NATSClient,
		logger:     deps.GetLogger(),
		platform:   deps.Platform,
		parser:     parser.NewConstitutionParser(),
		sources:    make(map[string]*corpus.Source),
	}

	return c, nil
}

// Initialize prepares the component.
func (c *Component) Initialize() error {
	return nil
}

// Start begins processing corpus ingestion requests.
func (c *Component) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("component already running")
	}
	if c.natsClient == nil {
		c.mu.Unlock()
		return fmt.Errorf("NATS client required")
	}
	// Mark as starting immediately to prevent concurrent starts
	c.running = true
	c.startTime = time.Now()
	c.mu.Unlock()

	js, err := c.natsClient.JetStream()
	if err != nil {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		return fmt.Errorf("get JetStream context: %w", err)
	}

	store, err := storage.NewStore(ctx, js)
	if err != nil {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
		return fmt.Errorf("create entity store: %w", err)
	}
	c.store = store

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	// Start consumer in background
	go c.consumeMessages(runCtx)

	// Ingest everything matching the configured patterns on startup
	go c.ingestAll(runCtx)

	// Start file watcher if enabled
	if c.config.WatchConfig.Enabled {
		watcher, err := NewCorpusWatcher(c.config.WatchConfig, c.config.CorpusDir, c.logger)
		if err != nil {
			c.logger.Error("Failed to create corpus watcher", "error", err)
		} else {
			c.watcher = watcher
			if err := watcher.Start(runCtx); err != nil {
				c.logger.Error("Failed to start corpus watcher", "error", err)
			} else {
				// Process watcher events in background
				go c.processWatchEvents(runCtx)
			}
		}
	}

	c.logger.Info("Corpus ingester started",
		"stream", c.config.StreamName,
		"consumer", c.config.ConsumerName,
		"corpus_dir", c.config.CorpusDir,
		"watching", c.config.WatchConfig.Enabled)

	return nil
}

// ingestAll parses and publishes every document matching the
// configured patterns.
func (c *Component) ingestAll(ctx context.Context) {
	files, err := ResolveFiles(c.config.CorpusDir, c.config.Patterns)
	if err != nil {
		c.logger.Error("Failed to resolve corpus patterns", "error", err)
		c.errors.Add(1)
		return
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := c.ingestFile(ctx, path, false); err != nil {
			c.logger.Error("Failed to ingest document", "path", path, "error", err)
			c.errors.Add(1)
		}
	}
}

// consumeMessages processes incoming ingestion requests.
func (c *Component) consumeMessages(ctx context.Context) {
	js, err := c.natsClient.JetStream()
	if err != nil {
		c.logger.Error("Failed to get JetStream context", "error", err)
		return
	}

	// Get stream
	stream, err := js.Stream(ctx, c.config.StreamName)
	if err != nil {
		c.logger.Error("Failed to get stream", "error", err, "stream", c.config.StreamName)
		return
	}

	// Create or update durable consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		FilterSubject: "corpus.ingest.>",
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       60 * time.Second,
		MaxDeliver:    3,
	}
	consumer, err := stream.CreateOrUpdateConsumer(ctx, consumerConfig)
	if err != nil {
		c.logger.Error("Failed to create consumer", "error", err, "stream", c.config.StreamName, "consumer", c.config.ConsumerName)
		return
	}

	c.logger.Info("Consumer connected", "stream", c.config.StreamName, "consumer", c.config.ConsumerName)

	// Consume messages
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		// Fetch next message with timeout
		msgs, err := consumer.Fetch(1, jetstream.FetchMaxWait(5*time.Second))
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			continue // Timeout, try again
		}

		for msg := range msgs.Messages() {
			select {
			case <-ctx.Done():
				// NAK the message so it can be redelivered
				_ = msg.Nak()
				return
			default:
				c.handleMessage(ctx, msg)
			}
		}
	}
}

// handleMessage processes a single ingestion request.
func (c *Component) handleMessage(ctx context.Context, msg jetstream.Msg) {
	c.updateLastActivity()

	// Parse request
	var req IngestRequest
	if err := json.Unmarshal(msg.Data(), &req); err != nil {
		c.logger.Warn("Failed to parse ingestion request", "error", err)
		c.errors.Add(1)
		_ = msg.Nak()
		return
	}
	if err := req.Validate(); err != nil {
		c.logger.Warn("Invalid ingestion request", "error", err)
		c.errors.Add(1)
		_ = msg.Nak()
		return
	}

	c.logger.Info("Processing ingestion request", "path", req.Path, "force", req.Force)

	path := req.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.config.CorpusDir, path)
	}

	if err := c.ingestFile(ctx, path, req.Force); err != nil {
		c.logger.Error("Failed to ingest document", "path", path, "error", err)
		c.errors.Add(1)
		_ = msg.Nak()
		return
	}

	_ = msg.Ack()
}

// ingestFile ingests one corpus document, tracking its source record
// through the status transitions and publishing the record afterwards.
func (c *Component) ingestFile(ctx context.Context, path string, force bool) error {
	src := c.sourceFor(path)

	c.sourceMu.Lock()
	src.MarkIngesting()
	c.sourceMu.Unlock()

	err := c.ingestDocument(ctx, path, force)

	c.sourceMu.Lock()
	if err != nil {
		src.MarkError(err)
	} else {
		src.MarkReady()
	}
	snapshot := *src
	c.sourceMu.Unlock()

	if pubErr := graph.PublishSource(ctx, c.natsClient, &snapshot); pubErr != nil {
		c.logger.Warn("Failed to publish source record", "source", snapshot.ID, "error", pubErr)
	}

	return err
}

// sourceFor returns the tracked source record for a path, creating it
// on first sight.
func (c *Component) sourceFor(path string) *corpus.Source {
	c.sourceMu.Lock()
	defer c.sourceMu.Unlock()

	if src, ok := c.sources[path]; ok {
		return src
	}
	src := corpus.NewFileSource(path)
	c.sources[path] = src
	return src
}

// Sources returns a snapshot of the tracked source records.
func (c *Component) Sources() []*corpus.Source {
	c.sourceMu.Lock()
	defer c.sourceMu.Unlock()

	sources := make([]*corpus.Source, 0, len(c.sources))
	for _, src := range c.sources {
		copied := *src
		sources = append(sources, &copied)
	}
	return sources
}

// ingestDocument parses one corpus document, publishes its entity tree
// to the graph, and records it in the document store. Unchanged
// content is skipped unless force is set.
func (c *Component) ingestDocument(ctx context.Context, path string, force bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	hash := parser.ContentHash(content)

	existing, err := c.store.FindDocumentByPath(ctx, path)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("look up document record: %w", err)
	}
	if existing != nil && existing.Hash == hash && !force {
		c.logger.Debug("Document unchanged, skipping", "path", path)
		return nil
	}

	constitution, err := c.parser.ParseConstitution(path, content)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	if err := graph.PublishConstitution(ctx, c.natsClient, constitution); err != nil {
		return fmt.Errorf("publish to graph: %w", err)
	}

	if err := c.recordDocument(ctx, existing, constitution, path, hash); err != nil {
		return fmt.Errorf("record document: %w", err)
	}

	c.documentsIngested.Add(1)
	c.logger.Info("Document ingested",
		"path", path,
		"articles", len(constitution.Articles),
		"amendments", len(constitution.Amendments))

	return nil
}

// recordDocument creates or updates the stored document record.
func (c *Component) recordDocument(ctx context.Context, existing *storage.DocumentRecord, constitution *corpus.Constitution, path, hash string) error {
	if existing != nil {
		existing.Hash = hash
		existing.Title = constitution.Meta.Title
		existing.Articles = len(constitution.Articles)
		existing.Amendments = len(constitution.Amendments)
		return c.store.UpdateDocument(ctx, existing)
	}

	record := &storage.DocumentRecord{
		Path:       path,
		Hash:       hash,
		Title:      constitution.Meta.Title,
		Articles:   len(constitution.Articles),
		Amendments: len(constitution.Amendments),
	}
	_, err := c.store.CreateDocument(ctx, record)
	return err
}

// processWatchEvents handles file watch events and triggers ingestion.
func (c *Component) processWatchEvents(ctx context.Context) {
	if c.watcher == nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-c.watcher.Events():
			if !ok {
				return
			}
			c.handleWatchEvent(ctx, event)
		}
	}
}

// handleWatchEvent processes a single file watch event.
func (c *Component) handleWatchEvent(ctx context.Context, event WatchEvent) {
	c.updateLastActivity()

	switch event.Operation {
	case WatchOpCreate, WatchOpModify:
		if event.Operation == WatchOpModify {
			src := c.sourceFor(event.AbsPath)
			c.sourceMu.Lock()
			src.MarkStale()
			c.sourceMu.Unlock()
		}

		c.logger.Info("Corpus file changed, re-ingesting",
			"path", event.Path,
			"operation", event.Operation)

		if err := c.ingestFile(ctx, event.AbsPath, false); err != nil {
			c.logger.Error("Failed to ingest watched document",
				"path", event.Path,
				"error", err)
			c.errors.Add(1)
		}

	case WatchOpDelete:
		// Log deletion - graph cleanup would be handled separately
		c.logger.Info("Corpus file deleted", "path", event.Path)
	}
}

// updateLastActivity safely updates the last activity timestamp.
func (c *Component) updateLastActivity() {
	c.lastActivityMu.Lock()
	c.lastActivity = time.Now()
	c.lastActivityMu.Unlock()
}

// getLastActivity safely retrieves the last activity timestamp.
func (c *Component) getLastActivity() time.Time {
	c.lastActivityMu.RLock()
	defer c.lastActivityMu.RUnlock()
	return c.lastActivity
}

// Stop gracefully stops the component within the given timeout.
func (c *Component) Stop(_ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	if c.cancel != nil {
		c.cancel()
	}

	// Stop watcher if running
	var droppedEvents int64
	if c.watcher != nil {
		droppedEvents = c.watcher.DroppedEvents()
		if err := c.watcher.Stop(); err != nil {
			c.logger.Error("Failed to stop corpus watcher", "error", err)
		}
	}

	c.running = false
	c.logger.Info("Corpus ingester stopped",
		"documents_ingested", c.documentsIngested.Load(),
		"errors", c.errors.Load(),
		"dropped_watch_events", droppedEvents)

	return nil
}

// Discoverable interface implementation

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "corpus-ingester",
		Type:        "processor",
		Description: "Corpus document ingester for knowledge graph population",
		Version:     "0.1.0",
	}
}

// InputPorts returns configured input port definitions.
func (c *Component) InputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Inputs))
	for i, portDef := range c.config.Ports.Inputs {
		ports[i] = buildPort(portDef, component.DirectionInput)
	}
	return ports
}

// OutputPorts returns configured output port definitions.
func (c *Component) OutputPorts() []component.Port {
	if c.config.Ports == nil {
		return []component.Port{}
	}

	ports := make([]component.Port, len(c.config.Ports.Outputs))
	for i, portDef := range c.config.Ports.Outputs {
		ports[i] = buildPort(portDef, component.DirectionOutput)
	}
	return ports
}

// buildPort creates a component.Port from a PortDefinition.
func buildPort(portDef component.PortDefinition, direction component.Direction) component.Port {
	port := component.Port{
		Name:        portDef.Name,
		Direction:   direction,
		Required:    portDef.Required,
		Description: portDef.Description,
	}
	if portDef.Type == "jetstream" {
		port.Config = component.JetStreamPort{
			StreamName: portDef.StreamName,
			Subjects:   []string{portDef.Subject},
		}
	} else {
		port.Config = component.NATSPort{
			Subject: portDef.Subject,
		}
	}
	return port
}

// ConfigSchema returns the configuration schema.
func (c *Component) ConfigSchema() component.ConfigSchema {
	return corpusIngesterSchema
}

// Health returns the current health status.
func (c *Component) Health() component.HealthStatus {
	c.mu.RLock()
	running := c.running
	startTime := c.startTime
	c.mu.RUnlock()

	return component.HealthStatus{
		Healthy:    running,
		LastCheck:  time.Now(),
		ErrorCount: int(c.errors.Load()),
		Uptime:     time.Since(startTime),
		Status:     c.getStatusString(running),
	}
}

// getStatusString returns a status string based on running state.
func (c *Component) getStatusString(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}

// DataFlow returns current data flow metrics.
func (c *Component) DataFlow() component.FlowMetrics {
	return component.FlowMetrics{
		MessagesPerSecond: 0,
		BytesPerSecond:    0,
		ErrorRate:         0,
		LastActivity:      c.getLastActivity(),
	}
}
