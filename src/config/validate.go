package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/lintrig/lintrig/src/fileglob"
	"github.com/lintrig/lintrig/src/rules"
)

// Validate checks structural invariants of a decoded Config. Every problem
// is reported as a SchemaError carrying the offending key path; all are
// returned joined so the operator sees the full list at once.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LineLength <= 0 {
		errs = append(errs, schemaErrorf("line-length", "must be positive, got %d", cfg.LineLength))
	}
	if cfg.IndentWidth <= 0 {
		errs = append(errs, schemaErrorf("indent-width", "must be positive, got %d", cfg.IndentWidth))
	}

	if cfg.RequiredVersion != "" {
		if _, err := semver.NewConstraint(cfg.RequiredVersion); err != nil {
			errs = append(errs, schemaErrorf("required-version", "invalid version constraint %q: %v", cfg.RequiredVersion, err))
		}
	}

	for i, pattern := range cfg.Exclude {
		if err := fileglob.Valid(pattern); err != nil {
			errs = append(errs, schemaErrorf(fmt.Sprintf("exclude[%d]", i), "invalid glob %q", pattern))
		}
	}

	errs = append(errs, validateSelectors("lint.select", cfg.Lint.Select)...)
	errs = append(errs, validateSelectors("lint.ignore", cfg.Lint.Ignore)...)

	for pattern, codes := range cfg.Lint.PerFileIgnores {
		key := fmt.Sprintf("lint.per-file-ignores.%q", pattern)
		if err := fileglob.Valid(pattern); err != nil {
			errs = append(errs, schemaErrorf(key, "invalid glob %q", pattern))
		}
		errs = append(errs, validateSelectors(key, codes)...)
	}

	if cfg.Lint.Isort.LinesAfterImports < -1 {
		errs = append(errs, schemaErrorf("lint.isort.lines-after-imports", "must be -1 or greater, got %d", cfg.Lint.Isort.LinesAfterImports))
	}
	for i, pkg := range cfg.Lint.Isort.KnownFirstParty {
		if !isPackageName(pkg) {
			errs = append(errs, schemaErrorf(fmt.Sprintf("lint.isort.known-first-party[%d]", i), "%q is not a valid package name", pkg))
		}
	}

	if !validQuoteStyles[cfg.Format.QuoteStyle] {
		errs = append(errs, schemaErrorf("format.quote-style", "unknown value %q (supported: double, single)", cfg.Format.QuoteStyle))
	}
	if !validIndentStyles[cfg.Format.IndentStyle] {
		errs = append(errs, schemaErrorf("format.indent-style", "unknown value %q (supported: space, tab)", cfg.Format.IndentStyle))
	}
	if !validLineEndings[cfg.Format.LineEnding] {
		errs = append(errs, schemaErrorf("format.line-ending", "unknown value %q (supported: auto, lf, crlf, native)", cfg.Format.LineEnding))
	}

	return errors.Join(errs...)
}

// validateSelectors checks that every entry parses and addresses at least
// one catalog rule.
func validateSelectors(key string, selectors []string) []error {
	var errs []error
	for i, s := range selectors {
		entry := fmt.Sprintf("%s[%d]", key, i)
		sel, err := rules.ParseSelector(s)
		if err != nil {
			errs = append(errs, schemaErrorf(entry, "%v", err))
			continue
		}
		if !rules.Known(sel) {
			errs = append(errs, schemaErrorf(entry, "%q does not match any known rule", s))
		}
	}
	return errs
}

// CheckRequiredVersion verifies the running tool version against the
// document's required-version constraint, if one is set. Pre-release builds
// ("dev") are exempt.
func (c *Config) CheckRequiredVersion(current string) error {
	if c.RequiredVersion == "" {
		return nil
	}
	v, err := semver.NewVersion(current)
	if err != nil {
		return nil // unparseable local build, e.g. "dev"
	}
	constraint, err := semver.NewConstraint(c.RequiredVersion)
	if err != nil {
		return schemaErrorf("required-version", "invalid version constraint %q: %v", c.RequiredVersion, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("version %s does not satisfy required-version %q", current, c.RequiredVersion)
	}
	return nil
}

// isPackageName reports whether s looks like a Python package name.
func isPackageName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
