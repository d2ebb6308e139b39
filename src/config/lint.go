package config

// LintConfig holds rule selection and suppression settings. Entries in
// Select and Ignore are rule selectors: whole categories ("E"), numeric
// prefixes ("E5"), or exact codes ("E501").
type LintConfig struct {
	Select         []string            `toml:"select,omitempty"`
	Ignore         []string            `toml:"ignore,omitempty"`
	PerFileIgnores map[string][]string `toml:"per-file-ignores,omitempty"`
	Isort          IsortConfig         `toml:"isort"`
}

// IsortConfig holds import-sorting settings.
type IsortConfig struct {
	// LinesAfterImports of -1 leaves the blank-line count to the tool.
	LinesAfterImports int      `toml:"lines-after-imports"`
	KnownFirstParty   []string `toml:"known-first-party,omitempty"`
}

// DefaultLintConfig returns the selection used when the document sets none.
func DefaultLintConfig() LintConfig {
	return LintConfig{
		Select:         []string{"E4", "E7", "E9", "F"},
		PerFileIgnores: map[string][]string{},
		Isort: IsortConfig{
			LinesAfterImports: -1,
		},
	}
}
