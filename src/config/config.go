package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "ruff.toml"

// Config is the top-level configuration document. Once returned by Load it
// is never mutated; callers may read it concurrently.
type Config struct {
	LineLength      int          `toml:"line-length"`
	IndentWidth     int          `toml:"indent-width"`
	RequiredVersion string       `toml:"required-version,omitempty"`
	Exclude         []string     `toml:"exclude,omitempty"`
	Lint            LintConfig   `toml:"lint"`
	Format          FormatConfig `toml:"format"`
}

// Load reads a configuration document from a TOML file.
// If path is empty, it tries the default file and returns defaults when the
// file doesn't exist; an explicitly named file must exist. A malformed or
// invalid document is rejected wholesale: Load never returns a partially
// applied config.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	return Parse(data)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	// Syntax check against a shapeless target first: a failure here means
	// the document itself is malformed, not that it violates the schema.
	var probe map[string]any
	if err := toml.Unmarshal(data, &probe); err != nil {
		return nil, asParseError(err)
	}

	cfg := defaults()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, asSchemaError(err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		LineLength:  88,
		IndentWidth: 4,
		Lint:        DefaultLintConfig(),
		Format:      DefaultFormatConfig(),
	}
}
