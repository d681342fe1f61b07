// Package rulecheck provides a component that evaluates records
// against the corpus ruleset, over NATS and HTTP.
package rulecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/conlaw/graph"
	"github.com/c360studio/conlaw/rules"
	"github.com/c360studio/conlaw/storage"
)

// CheckResultSubject is the subject check results are published on.
const CheckResultSubject = "ruleset.check.result"

// rulecheckSchema defines the configuration schema.
var rulecheckSchema = component.GenerateConfigSchema(reflect.TypeOf(Config{}))

// Shared across component instances; promauto registration panics on
// duplicates.
var (
	metricsOnce   sync.Once
	sharedMetrics *Metrics
)

func defaultMetrics() *Metrics {
	metricsOnce.Do(func() {
		sharedMetrics = NewMetrics()
	})
	return sharedMetrics
}

// Component implements the rulecheck processor.
type Component struct {
	name       string
	config     Config
	natsClient *natsclient.Client
	logger     *slog.Logger
	platform   component.PlatformMeta
	metrics    *Metrics
	store      *storage.Store

	// Active ruleset, swapped atomically on reload
	rulesetMu sync.RWMutex
	ruleset   *rules.Ruleset

	// Lifecycle management
	running   bool
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc

	// Metrics
	checksProcessed atomic.Int64
	errors          atomic.Int64
	lastActivityMu  sync.RWMutex
	lastActivity    time.Time
}

// NewComponent creates a new rulecheck processor component.
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
		name:       "rulecheck",
		config:     config,
		natsClient: deps.NATSClient,
		logger:     deps.GetLogger(),
		platform:   deps.Platform,
		metrics:    defaultMetrics(),
	}

	return c, nil
}

// Initialize loads the ruleset from the configured file, falling back
// to the built-in defaults.
func (c *Component) Initialize() error {
	if err := c.loadRuleset(); err != nil {
		return fmt.Errorf("load ruleset: %w", err)
	}
	return nil
}

// loadRuleset builds the active ruleset and swaps it in.
func (c *Component) loadRuleset() error {
	var (
		ruleset *rules.Ruleset
		err     error
	)

	if c.config.RulesetFile != "" {
		ruleset, err = LoadRulesetFile(c.config.RulesetFile, c.config.Org)
		if err != nil {
			return err
		}
		c.logger.Info("Loaded ruleset from file",
			"path", c.config.RulesetFile,
			"rules", len(ruleset.AllRules()))
	} else {
		ruleset = rules.DefaultRuleset(c.config.Org)
		c.logger.Info("Using built-in ruleset", "rules", len(ruleset.AllRules()))
	}

	c.rulesetMu.Lock()
	c.ruleset = ruleset
	c.rulesetMu.Unlock()

	c.metrics.SetRulesLoaded(len(ruleset.AllRules()))
	return nil
}

// Ruleset returns the active ruleset.
func (c *Component) Ruleset() *rules.Ruleset {
	c.rulesetMu.RLock()
	defer c.rulesetMu.RUnlock()
	return c.ruleset
}

// Start publishes the ruleset entity and begins serving check requests.
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

	if err := graph.PublishRuleset(ctx, c.natsClient, c.Ruleset()); err != nil {
		c.logger.Error("Failed to publish ruleset entity", "error", err)
		c.errors.Add(1)
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go c.consumeChecks(runCtx)

	c.logger.Info("Rulecheck processor started",
		"stream", c.config.StreamName,
		"rules", len(c.Ruleset().AllRules()),
		"enforce_mode", c.config.EnforceMode)

	return nil
}

// consumeChecks processes incoming check requests.
func (c *Component) consumeChecks(ctx context.Context) {
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
		Durable:       "rulecheck",
		FilterSubject: "ruleset.check.request",
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       60 * time.Second,
		MaxDeliver:    3,
	}
	consumer, err := stream.CreateOrUpdateConsumer(ctx, consumerConfig)
	if err != nil {
		c.logger.Error("Failed to create consumer", "error", err, "stream", c.config.StreamName)
		return
	}

	c.logger.Info("Consumer connected", "stream", c.config.StreamName, "consumer", "rulecheck")

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

// handleMessage processes a single check request. Malformed requests
// are logged and acked so they are not redelivered.
func (c *Component) handleMessage(ctx context.Context, msg jetstream.Msg) {
	c.updateLastActivity()

	var req CheckRequestPayload
	if err := json.Unmarshal(msg.Data(), &req); err != nil {
		c.logger.Warn("Failed to parse check request", "error", err)
		c.errors.Add(1)
		_ = msg.Ack()
		return
	}
	if err := req.Validate(); err != nil {
		c.logger.Warn("Invalid check request", "error", err)
		c.errors.Add(1)
		_ = msg.Ack()
		return
	}

	result, rulingID, err := c.runCheck(ctx, req.Record)
	if err != nil {
		c.logger.Error("Check evaluation failed", "request_id", req.RequestID, "error", err)
		c.errors.Add(1)
		c.metrics.RecordCheck("error")
		_ = msg.Nak()
		return
	}

	resp := resultPayload(req.RequestID, rulingID, result)
	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error("Failed to marshal check result", "request_id", req.RequestID, "error", err)
		c.errors.Add(1)
		_ = msg.Nak()
		return
	}

	if err := c.natsClient.PublishToStream(ctx, CheckResultSubject, data); err != nil {
		c.logger.Error("Failed to publish check result", "request_id", req.RequestID, "error", err)
		c.errors.Add(1)
		_ = msg.Nak()
		return
	}

	c.logger.Info("Check evaluated",
		"request_id", req.RequestID,
		"passed", result.Passed,
		"violations", len(result.Violations),
		"warnings", len(result.Warnings))

	_ = msg.Ack()
}

// runCheck evaluates a record against the active ruleset, records the
// check and ruling, and publishes the ruling entity to the graph. The
// ruling ID is empty when no store is attached.
func (c *Component) runCheck(ctx context.Context, record rules.Record) (*rules.CheckResult, string, error) {
	var checkID storage.EntityID
	if c.store != nil {
		id, err := c.store.CreateCheck(ctx, &storage.Check{Record: record})
		if err != nil {
			return nil, "", fmt.Errorf("record check: %w", err)
		}
		checkID = id
	}

	result := c.Ruleset().Evaluate(record)
	c.applyEnforceMode(result)

	c.checksProcessed.Add(1)
	c.metrics.RecordFailures(len(result.Violations), len(result.Warnings))
	if result.Passed {
		c.metrics.RecordCheck("passed")
	} else {
		c.metrics.RecordCheck("failed")
	}

	var rulingID string
	if c.store != nil {
		if err := c.store.UpdateCheckStatus(ctx, checkID, storage.CheckStatusEvaluated); err != nil {
			return nil, "", fmt.Errorf("update check status: %w", err)
		}

		id, err := c.store.CreateRuling(ctx, storage.RulingFromResult(checkID, result))
		if err != nil {
			return nil, "", fmt.Errorf("record ruling: %w", err)
		}
		rulingID = id.ID

		if err := graph.PublishRuling(ctx, c.natsClient, rulingID, result); err != nil {
			c.logger.Error("Failed to publish ruling entity", "ruling", rulingID, "error", err)
			c.errors.Add(1)
		}
	}

	return result, rulingID, nil
}

// applyEnforceMode adjusts a check result for the configured mode:
// warn demotes violations to warnings, off suppresses both.
func (c *Component) applyEnforceMode(result *rules.CheckResult) {
	switch c.config.EnforceMode {
	case "warn":
		result.Warnings = append(result.Warnings, result.Violations...)
		result.Violations = nil
		result.Passed = true
	case "off":
		result.Violations = nil
		result.Warnings = nil
		result.Passed = true
	}
}

// resultPayload flattens a check result for the wire.
func resultPayload(requestID, rulingID string, result *rules.CheckResult) CheckResultPayload {
	resp := CheckResultPayload{
		RequestID: requestID,
		RulingID:  rulingID,
		Passed:    result.Passed,
		CheckedAt: result.CheckedAt,
	}
	for _, v := range result.Violations {
		resp.Violations = append(resp.Violations, failureFromViolation(v))
	}
	for _, w := range result.Warnings {
		resp.Warnings = append(resp.Warnings, failureFromViolation(w))
	}
	return resp
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

	c.running = false
	c.logger.Info("Rulecheck processor stopped",
		"checks_processed", c.checksProcessed.Load(),
		"errors", c.errors.Load())

	return nil
}

// Discoverable interface implementation

// Meta returns component metadata.
func (c *Component) Meta() component.Metadata {
	return component.Metadata{
		Name:        "rulecheck",
		Type:        "processor",
		Description: "Ruleset evaluation over NATS and HTTP",
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
	return rulecheckSchema
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
