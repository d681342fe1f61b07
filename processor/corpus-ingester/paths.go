package corpusingester

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles expands glob patterns to concrete document files under
// the corpus directory. Double-star patterns match recursively.
//
// Examples:
//   - "**/*.md" → every markdown file under the corpus dir
//   - "constitution.md" → that one file, if it exists
//
// Returns only regular files, sorted for deterministic ordering.
func ResolveFiles(corpusDir string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var resolved []string

	for _, pattern := range patterns {
		paths, err := resolvePattern(corpusDir, pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}

// resolvePattern expands a single glob pattern to files.
func resolvePattern(corpusDir, pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		// No glob - return the path if it's a regular file
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(corpusDir, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not a file: %s", path)
		}
		return []string{path}, nil
	}

	full := pattern
	if !filepath.IsAbs(full) {
		full = filepath.Join(corpusDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(full)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}

	return files, nil
}

// containsGlob reports whether a pattern contains glob metacharacters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
