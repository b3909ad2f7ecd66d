package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles expands glob patterns to concrete metadata files.
// Supports both single-level wildcards (*) and recursive wildcards
// (**). Plain paths are returned as-is after a stat check. The result
// is deduplicated and sorted so batch output order is stable.
func ResolveFiles(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolveFilePattern(pattern)
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

// resolveFilePattern expands a single glob pattern to regular files.
func resolveFilePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not a metadata file: %s", pattern)
		}
		return []string{pattern}, nil
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue // Skip paths that can't be stat'd
		}
		if !info.IsDir() {
			files = append(files, match)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	return files, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// hasExtension reports whether path carries one of the given
// extensions (case-insensitive).
func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
