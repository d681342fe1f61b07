package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/spf13/cobra"

	"github.com/c360studio/semstreams/component"
	"github.com/c360studio/semstreams/componentregistry"
	sscfg "github.com/c360studio/semstreams/config"
	"github.com/c360studio/semstreams/metric"
	"github.com/c360studio/semstreams/natsclient"
	"github.com/c360studio/semstreams/service"
	"github.com/c360studio/semstreams/types"

	"github.com/c360studio/conlaw/config"
	corpusingester "github.com/c360studio/conlaw/processor/corpus-ingester"
	"github.com/c360studio/conlaw/processor/rulecheck"
)

func serveCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the corpus service",
		Long: `Run the full corpus service: the ingester parses corpus documents
and publishes entities to the knowledge graph, the rulecheck processor
answers check requests over NATS and HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)

			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			return runServe(cfg, logger)
		},
	}
}

func runServe(cfg *config.Config, logger *slog.Logger) error {
	printBanner()

	ctx := context.Background()

	// Start NATS (embedded or connect to external)
	natsURL, embedded, err := resolveNATS(cfg)
	if err != nil {
		return err
	}
	if embedded != nil {
		defer func() {
			embedded.Shutdown()
			embedded.WaitForShutdown()
		}()
	}

	natsClient, err := connectToNATS(ctx, natsURL, logger)
	if err != nil {
		return err
	}
	defer natsClient.Close(ctx)

	// Build the semstreams platform config from the conlaw config
	streamsCfg, err := buildStreamsConfig(cfg, natsURL)
	if err != nil {
		return fmt.Errorf("build platform config: %w", err)
	}

	// Ensure JetStream streams exist
	if err := ensureStreams(ctx, streamsCfg, natsClient, logger); err != nil {
		return err
	}

	slog.Info("Conlaw ready",
		"version", Version,
		"org", cfg.Ruleset.Org,
		"embedded_nats", embedded != nil)

	// Create remaining infrastructure
	metricsRegistry := metric.NewMetricsRegistry()
	platform := types.PlatformMeta{
		Org:      cfg.Ruleset.Org,
		Platform: "conlaw-local",
	}

	// Create and start config manager (required for component configs)
	configManager, err := sscfg.NewConfigManager(streamsCfg, natsClient, logger)
	if err != nil {
		return fmt.Errorf("create config manager: %w", err)
	}
	if err := configManager.Start(ctx); err != nil {
		return fmt.Errorf("start config manager: %w", err)
	}
	defer configManager.Stop(5 * time.Second)

	// Create and populate component registry
	componentRegistry := component.NewRegistry()

	// Register all semstreams components
	slog.Debug("Registering semstreams component factories")
	if err := componentregistry.Register(componentRegistry); err != nil {
		return fmt.Errorf("register semstreams components: %w", err)
	}

	// Register conlaw-specific components
	slog.Debug("Registering conlaw component factories")
	if err := corpusingester.Register(componentRegistry); err != nil {
		return fmt.Errorf("register corpus-ingester: %w", err)
	}

	if err := rulecheck.Register(componentRegistry); err != nil {
		return fmt.Errorf("register rulecheck: %w", err)
	}

	factories := componentRegistry.ListFactories()
	slog.Info("Component factories registered", "count", len(factories))

	// Create service registry and manager (semstreams pattern)
	serviceRegistry := service.NewServiceRegistry()
	if err := service.RegisterAll(serviceRegistry); err != nil {
		return fmt.Errorf("register services: %w", err)
	}

	manager := service.NewServiceManager(serviceRegistry)
	ensureServiceManagerConfig(streamsCfg, cfg.Server.Addr)

	// Create service dependencies
	svcDeps := &service.Dependencies{
		NATSClient:        natsClient,
		MetricsRegistry:   metricsRegistry,
		Logger:            logger,
		Platform:          platform,
		Manager:           configManager,
		ComponentRegistry: componentRegistry,
	}

	// Configure and create services
	if err := configureAndCreateServices(streamsCfg, manager, svcDeps); err != nil {
		return err
	}

	slog.Info("All services configured")

	// Setup signal handling
	signalCtx, signalCancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer signalCancel()

	// Start all services (includes HTTP server with health endpoints)
	slog.Info("Starting all services")
	if err := manager.StartAll(signalCtx); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	slog.Info("All services started successfully")

	// Block until shutdown signal
	<-signalCtx.Done()
	slog.Info("Received shutdown signal")

	// Stop all services
	shutdownTimeout := 30 * time.Second
	if err := manager.StopAll(shutdownTimeout); err != nil {
		slog.Error("Error stopping services", "error", err)
	}

	slog.Info("Conlaw shutdown complete")
	return nil
}

func printBanner() {
	fmt.Println("conlaw v" + Version + " - constitutional corpus service")
}

// resolveNATS returns the NATS URL to connect to, starting an
// embedded server when configured without an external URL.
func resolveNATS(cfg *config.Config) (string, *natsserver.Server, error) {
	if cfg.NATS.URL != "" && !cfg.NATS.Embedded {
		return cfg.NATS.URL, nil, nil
	}
	if envURL := os.Getenv("CONLAW_NATS_URL"); envURL != "" {
		return envURL, nil, nil
	}

	slog.Info("Starting embedded NATS server")
	opts := &natsserver.Options{
		Port:      -1, // Random available port
		JetStream: true,
		NoLog:     true,
		NoSigs:    true,
	}

	ns, err := natsserver.NewServer(opts)
	if err != nil {
		return "", nil, fmt.Errorf("create embedded NATS server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		return "", nil, fmt.Errorf("embedded NATS server failed to start")
	}

	return ns.ClientURL(), ns, nil
}

func connectToNATS(ctx context.Context, natsURL string, logger *slog.Logger) (*natsclient.Client, error) {
	logger.Info("Connecting to NATS", "url", natsURL)

	client, err := natsclient.NewClient(natsURL,
		natsclient.WithName(appName),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithHealthInterval(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, natsURL)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, natsURL)
	}

	logger.Info("Connected to NATS", "url", natsURL)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	// Check for common connection errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

Either start a NATS server, set CONLAW_NATS_URL to point at one, or
leave nats.url unset to use the embedded server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}

func ensureStreams(ctx context.Context, cfg *sscfg.Config, natsClient *natsclient.Client, logger *slog.Logger) error {
	logger.Debug("Creating JetStream streams")
	streamsManager := sscfg.NewStreamsManager(natsClient, logger)

	if err := streamsManager.EnsureStreams(ctx, cfg); err != nil {
		return fmt.Errorf("ensure streams: %w", err)
	}

	logger.Debug("JetStream streams ready")
	return nil
}

// buildStreamsConfig assembles the semstreams platform config for the
// conlaw components and streams.
func buildStreamsConfig(cfg *config.Config, natsURL string) (*sscfg.Config, error) {
	ingesterCfg := corpusingester.DefaultConfig()
	ingesterCfg.CorpusDir = "."
	ingesterCfg.Patterns = cfg.Corpus.Paths
	ingesterCfg.WatchConfig.Enabled = cfg.Corpus.Watch
	if cfg.Corpus.DebounceInterval > 0 {
		ingesterCfg.WatchConfig.DebounceDelay = cfg.Corpus.DebounceInterval.String()
	}
	ingesterJSON, err := json.Marshal(ingesterCfg)
	if err != nil {
		return nil, fmt.Errorf("marshal corpus-ingester config: %w", err)
	}

	rulecheckCfg := rulecheck.DefaultConfig()
	rulecheckCfg.Org = cfg.Ruleset.Org
	rulecheckCfg.RulesetFile = cfg.Ruleset.File
	rulecheckCfg.EnforceMode = string(cfg.Ruleset.Enforce)
	rulecheckJSON, err := json.Marshal(rulecheckCfg)
	if err != nil {
		return nil, fmt.Errorf("marshal rulecheck config: %w", err)
	}

	return &sscfg.Config{
		Version: "1.0.0",
		Platform: sscfg.PlatformConfig{
			Org:         cfg.Ruleset.Org,
			ID:          "conlaw-local",
			Environment: "dev",
		},
		NATS: sscfg.NATSConfig{
			URLs:          []string{natsURL},
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
			JetStream: sscfg.JetStreamConfig{
				Enabled: true,
			},
		},
		Services: types.ServiceConfigs{},
		Components: sscfg.ComponentConfigs{
			"corpus-ingester": types.ComponentConfig{
				Name:    "corpus-ingester",
				Type:    types.ComponentTypeProcessor,
				Enabled: true,
				Config:  ingesterJSON,
			},
			"rulecheck": types.ComponentConfig{
				Name:    "rulecheck",
				Type:    types.ComponentTypeProcessor,
				Enabled: true,
				Config:  rulecheckJSON,
			},
		},
		Streams: sscfg.StreamConfigs{
			"CORPUS": sscfg.StreamConfig{
				Subjects: []string{
					"corpus.ingest.>",
				},
				MaxAge:   "24h",
				Storage:  "memory",
				Replicas: 1,
			},
			"RULES": sscfg.StreamConfig{
				Subjects: []string{
					"ruleset.check.>",
				},
				MaxAge:   "24h",
				Storage:  "memory",
				Replicas: 1,
			},
			"GRAPH": sscfg.StreamConfig{
				Subjects: []string{
					"graph.ingest.entity",
					"graph.export.>",
				},
				MaxAge:   "24h",
				Storage:  "memory",
				Replicas: 1,
			},
		},
	}, nil
}

// httpPortFromAddr extracts the numeric port from a listen address.
func httpPortFromAddr(addr string) int {
	const defaultPort = 8080

	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		// Accept a bare port like "8080"
		portStr = strings.TrimPrefix(addr, ":")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return defaultPort
	}
	return port
}

// ensureServiceManagerConfig ensures service-manager config exists with defaults
func ensureServiceManagerConfig(cfg *sscfg.Config, listenAddr string) {
	if cfg.Services == nil {
		cfg.Services = make(types.ServiceConfigs)
	}

	if _, exists := cfg.Services["service-manager"]; !exists {
		slog.Debug("Adding default service-manager config")
		defaultConfig := map[string]any{
			"http_port":  httpPortFromAddr(listenAddr),
			"swagger_ui": false,
			"server_info": map[string]string{
				"title":       "Conlaw API",
				"description": "constitutional corpus service - parsing, graph publishing, rule checking",
				"version":     Version,
			},
		}
		defaultConfigJSON, _ := json.Marshal(defaultConfig)
		cfg.Services["service-manager"] = types.ServiceConfig{
			Name:    "service-manager",
			Enabled: true,
			Config:  defaultConfigJSON,
		}
	}
}

// configureAndCreateServices configures the manager and creates all services
func configureAndCreateServices(
	cfg *sscfg.Config,
	manager *service.Manager,
	svcDeps *service.Dependencies,
) error {
	slog.Debug("Configuring Manager")
	if err := manager.ConfigureFromServices(cfg.Services, svcDeps); err != nil {
		return fmt.Errorf("configure service manager: %w", err)
	}

	slog.Debug("Creating services from config", "count", len(cfg.Services))
	for name, svcConfig := range cfg.Services {
		if name == "service-manager" {
			continue
		}

		if !svcConfig.Enabled {
			slog.Info("Service disabled in config", "name", name)
			continue
		}

		if !manager.HasConstructor(name) {
			slog.Warn("Service configured but not registered", "key", name)
			continue
		}

		if _, err := manager.CreateService(name, svcConfig.Config, svcDeps); err != nil {
			return fmt.Errorf("create service %s: %w", name, err)
		}

		slog.Info("Created service", "name", name)
	}

	return nil
}
