package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/conlaw/corpus/parser"
	"github.com/c360studio/conlaw/export"
)

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var (
		format  string
		profile string
		output  string
		ruleset bool
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a corpus document as RDF",
		Long: `Parse a corpus document and serialize its entities as RDF.
Formats: turtle, ntriples, jsonld. Profiles: minimal, bfo, cco.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(*logLevel)

			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Export.Format
			}
			if profile == "" {
				profile = cfg.Export.Profile
			}

			return runExport(cfg.Ruleset.File, cfg.Ruleset.Org, args[0], format, profile, output, ruleset)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: turtle, ntriples, jsonld")
	cmd.Flags().StringVar(&profile, "profile", "", "Ontology profile: minimal, bfo, cco")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().BoolVar(&ruleset, "ruleset", false, "Include the ruleset entities")
	return cmd
}

func runExport(rulesetFile, org, path, format, profile, output string, includeRuleset bool) error {
	if _, ok := export.GetFormatInfo(export.Format(format)); !ok {
		return fmt.Errorf("unsupported format %q (want turtle, ntriples, or jsonld)", format)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	constitution, err := parser.NewConstitutionParser().ParseConstitution(path, content)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	exporter := export.NewRDFExporter(export.Profile(profile))
	exporter.AddConstitution(constitution)

	if includeRuleset {
		s, err := buildRuleset(rulesetFile, org)
		if err != nil {
			return err
		}
		exporter.AddRuleset(s)
	}

	serialized, err := exporter.Export(export.Format(format))
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	if output == "" || output == "-" {
		fmt.Print(serialized)
		return nil
	}

	if err := os.WriteFile(output, []byte(serialized), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}
