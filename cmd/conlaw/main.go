// Package main provides the conlaw binary entry point.
// Conlaw renders a constitutional corpus as structured data: it
// parses corpus markdown, publishes entities to a knowledge graph,
// and evaluates records against the corpus ruleset.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/conlaw/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "conlaw"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "conlaw",
		Short: "Constitutional corpus service",
		Long: `Conlaw renders a constitutional corpus as structured data.

It provides:
- Corpus markdown parsing into articles, sections, and clauses
- Rule evaluation for qualification, procedure, and prohibition checks
- Knowledge graph publishing and RDF export

The serve command runs the full service; components communicate via
NATS using the semstreams framework.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		parseCmd(&configPath, &logLevel),
		checkCmd(&configPath, &logLevel),
		exportCmd(&configPath, &logLevel),
		fetchCmd(&configPath, &logLevel),
		serveCmd(&configPath, &logLevel),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// setupLogger configures the default slog logger for the given level.
func setupLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig resolves the effective configuration: an explicit file
// path wins, otherwise the layered loader (defaults, user config,
// project config, environment).
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	loader := config.NewLoader(logger)
	if err := loader.EnsureUserConfig(); err != nil {
		logger.Warn("Failed to create user config", "error", err)
	}
	return loader.Load()
}
