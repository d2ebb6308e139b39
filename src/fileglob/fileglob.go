// Package fileglob implements the glob dialect used by exclude patterns and
// per-file overrides: filepath.Match syntax extended with "**" for zero or
// more path segments.
package fileglob

import (
	"path/filepath"
	"strings"
)

// Match matches a glob pattern supporting ** against a forward-slash path.
func Match(pattern, path string) bool {
	// Fast path: no ** — use stdlib.
	if !strings.Contains(pattern, "**") {
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	// Split at the first "**".
	idx := strings.Index(pattern, "**")
	prefix := pattern[:idx]
	suffix := strings.TrimLeft(pattern[idx+2:], "/")

	// The prefix (before **) must match the start of path.
	if prefix != "" {
		prefix = strings.TrimRight(prefix, "/")
		if !strings.HasPrefix(path, prefix) {
			return false
		}
		path = strings.TrimPrefix(path, prefix)
		path = strings.TrimLeft(path, "/")
	}

	// No suffix — ** at end matches everything remaining.
	if suffix == "" {
		return true
	}

	// Try matching suffix against every possible tail of path.
	parts := strings.Split(path, "/")
	for i := 0; i <= len(parts); i++ {
		tail := strings.Join(parts[i:], "/")
		if Match(suffix, tail) {
			return true
		}
	}

	return false
}

// MatchPath matches a pattern against a file path. Patterns containing "/"
// or "**" match against the full normalized path; bare patterns match the
// base name only, so "__init__.py" covers every __init__.py in the tree.
func MatchPath(pattern, path string) bool {
	pattern = filepath.ToSlash(pattern)
	norm := Normalize(path)
	if strings.Contains(pattern, "/") || strings.Contains(pattern, "**") {
		return Match(pattern, norm)
	}
	return Match(pattern, filepath.Base(norm))
}

// Normalize converts a path to forward slashes and strips a leading "./".
func Normalize(p string) string {
	p = filepath.ToSlash(p)
	return strings.TrimPrefix(p, "./")
}

// Valid reports whether the pattern is syntactically well formed. The check
// substitutes single stars for "**" so filepath.Match can vet the rest.
func Valid(pattern string) error {
	probe := strings.ReplaceAll(filepath.ToSlash(pattern), "**", "*")
	_, err := filepath.Match(probe, "probe")
	return err
}
