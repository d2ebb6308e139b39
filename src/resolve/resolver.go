// Package resolve answers which lint rules are in force for which files
// under a loaded configuration document.
package resolve

import (
	"sort"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/fileglob"
	"github.com/lintrig/lintrig/src/rules"
)

// Resolver applies the two override layers of a document: the global ignore
// set always beats the global selection, and per-file ignores beat both for
// matching files. It is immutable after New and safe for concurrent use.
type Resolver struct {
	selected []rules.Code
	perFile  []perFileIgnore
	format   config.FormatConfig
}

type perFileIgnore struct {
	pattern   string
	selectors []rules.Selector
}

// New builds a resolver from a validated configuration.
func New(cfg *config.Config) *Resolver {
	selected := map[rules.Code]bool{}
	for _, s := range cfg.Lint.Select {
		for _, code := range rules.Expand(rules.Selector(s)) {
			selected[code] = true
		}
	}
	for _, s := range cfg.Lint.Ignore {
		for _, code := range rules.Expand(rules.Selector(s)) {
			delete(selected, code)
		}
	}

	codes := make([]rules.Code, 0, len(selected))
	for code := range selected {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	perFile := make([]perFileIgnore, 0, len(cfg.Lint.PerFileIgnores))
	for pattern, entries := range cfg.Lint.PerFileIgnores {
		selectors := make([]rules.Selector, len(entries))
		for i, e := range entries {
			selectors[i] = rules.Selector(e)
		}
		perFile = append(perFile, perFileIgnore{pattern: pattern, selectors: selectors})
	}
	sort.Slice(perFile, func(i, j int) bool { return perFile[i].pattern < perFile[j].pattern })

	return &Resolver{
		selected: codes,
		perFile:  perFile,
		format:   cfg.Format,
	}
}

// EffectiveRules returns the rule codes in force for the given file path,
// sorted by code. The slice is freshly allocated on every call; mutating it
// never affects the resolver.
func (r *Resolver) EffectiveRules(filePath string) []rules.Code {
	norm := fileglob.Normalize(filePath)

	out := make([]rules.Code, 0, len(r.selected))
	for _, code := range r.selected {
		if r.ignoredFor(code, norm) {
			continue
		}
		out = append(out, code)
	}
	return out
}

// Selected returns the global selection minus the global ignores.
func (r *Resolver) Selected() []rules.Code {
	out := make([]rules.Code, len(r.selected))
	copy(out, r.selected)
	return out
}

// FormatOptions returns the formatter settings verbatim.
func (r *Resolver) FormatOptions() config.FormatConfig {
	return r.format
}

func (r *Resolver) ignoredFor(code rules.Code, norm string) bool {
	for _, pfi := range r.perFile {
		if !fileglob.MatchPath(pfi.pattern, norm) {
			continue
		}
		for _, sel := range pfi.selectors {
			if sel.Matches(code) {
				return true
			}
		}
	}
	return false
}
