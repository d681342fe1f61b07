package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/conlaw/corpus"
	"github.com/c360studio/conlaw/corpus/parser"
)

func parseCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a corpus document and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(*logLevel)
			return runParse(args[0])
		},
	}
}

func runParse(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	constitution, err := parser.NewConstitutionParser().ParseConstitution(path, content)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	printConstitution(constitution)
	return nil
}

func printConstitution(c *corpus.Constitution) {
	title := c.Meta.Title
	if title == "" {
		title = c.ID
	}
	fmt.Printf("%s\n", title)
	if c.Meta.Adopted != "" {
		fmt.Printf("  adopted:   %s\n", c.Meta.Adopted)
	}
	if c.Meta.Effective != "" {
		fmt.Printf("  effective: %s\n", c.Meta.Effective)
	}
	fmt.Printf("  articles: %d, amendments: %d\n\n", len(c.Articles), len(c.Amendments))

	for _, article := range c.Articles {
		heading := fmt.Sprintf("Article %s", article.Numeral)
		if article.Title != "" {
			heading += ": " + article.Title
		}
		fmt.Println(heading)
		for _, section := range article.Sections {
			printSection(section)
		}
	}

	for _, amendment := range c.Amendments {
		fmt.Printf("Amendment %s\n", amendment.Numeral)
		for _, section := range amendment.Sections {
			printSection(section)
		}
	}
}

func printSection(s corpus.Section) {
	line := fmt.Sprintf("  Section %d", s.Number)
	if s.Heading != "" {
		line += ": " + s.Heading
	}
	if len(s.Clauses) > 0 {
		line += fmt.Sprintf(" (%d clauses)", len(s.Clauses))
	}
	fmt.Println(line)
}
