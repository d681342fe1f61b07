package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/corpus/webfetch"
)

const fetchUserAgent = "conlaw/" + Version

func fetchCmd(configPath, logLevel *string) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Fetch a remote document into the corpus directory",
		Long: `Fetch an HTML document, convert it to corpus markdown, and write
it under the output directory named after the source domain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)

			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			fetcher := webfetch.NewFetcher(cfg.Fetch.Timeout, fetchUserAgent, cfg.Fetch.MaxSizeBytes)
			return runFetch(cmd, fetcher, args[0], outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "corpus", "Directory to write the fetched document")
	return cmd
}

func runFetch(cmd *cobra.Command, fetcher *webfetch.Fetcher, rawURL, outputDir string) error {
	src := corpus.NewWebSource(webfetch.GenerateEntityID(rawURL), rawURL)
	src.MarkIngesting()

	result, err := fetcher.Fetch(cmd.Context(), rawURL)
	if err != nil {
		src.MarkError(err)
		return fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	converted, err := webfetch.NewConverter().Convert(result.Body, pageURL)
	if err != nil {
		src.MarkError(err)
		return fmt.Errorf("convert to markdown: %w", err)
	}

	path := filepath.Join(outputDir, fetchFileName(rawURL))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	content := converted.Markdown
	if converted.Title != "" && !strings.HasPrefix(content, "# ") {
		content = "# " + converted.Title + "\n\n" + content
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		src.MarkError(err)
		return fmt.Errorf("write document: %w", err)
	}

	src.MarkReady()
	fmt.Printf("Fetched %s -> %s (%d bytes, source %s)\n", rawURL, path, len(content), src.ID)
	return nil
}

// fetchFileName derives a stable markdown file name from the source URL.
func fetchFileName(rawURL string) string {
	id := webfetch.GenerateEntityID(rawURL)
	// Entity IDs have the form "corpus.web.<slug>".
	slug := strings.TrimPrefix(id, "corpus.web.")
	return slug + ".md"
}
