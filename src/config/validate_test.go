package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireSchemaError(t *testing.T, err error, key string) {
	t.Helper()
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Contains(t, err.Error(), key)
}

func TestValidateEnums(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
	}{
		{"quote style", "[format]\nquote-style = \"both\"\n", "format.quote-style"},
		{"indent style", "[format]\nindent-style = \"smart\"\n", "format.indent-style"},
		{"line ending", "[format]\nline-ending = \"cr\"\n", "format.line-ending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			requireSchemaError(t, err, tt.key)
		})
	}
}

func TestValidateRuleSelectors(t *testing.T) {
	_, err := Parse([]byte("[lint]\nselect = [\"e501\"]\n"))
	requireSchemaError(t, err, "lint.select[0]")

	_, err = Parse([]byte("[lint]\nignore = [\"Z\"]\n"))
	requireSchemaError(t, err, "lint.ignore[0]")

	_, err = Parse([]byte("[lint.per-file-ignores]\n\"__init__.py\" = [\"F9999\"]\n"))
	requireSchemaError(t, err, "__init__.py")
}

func TestValidateGlobs(t *testing.T) {
	_, err := Parse([]byte("exclude = [\"[unclosed\"]\n"))
	requireSchemaError(t, err, "exclude[0]")

	_, err = Parse([]byte("[lint.per-file-ignores]\n\"[bad\" = [\"F401\"]\n"))
	requireSchemaError(t, err, "per-file-ignores")
}

func TestValidateIntegers(t *testing.T) {
	_, err := Parse([]byte("line-length = 0\n"))
	requireSchemaError(t, err, "line-length")

	_, err = Parse([]byte("indent-width = -1\n"))
	requireSchemaError(t, err, "indent-width")

	_, err = Parse([]byte("[lint.isort]\nlines-after-imports = -2\n"))
	requireSchemaError(t, err, "lines-after-imports")
}

func TestValidateKnownFirstParty(t *testing.T) {
	_, err := Parse([]byte("[lint.isort]\nknown-first-party = [\"not a package\"]\n"))
	requireSchemaError(t, err, "known-first-party[0]")

	_, err = Parse([]byte("[lint.isort]\nknown-first-party = [\"9pkg\"]\n"))
	requireSchemaError(t, err, "known-first-party[0]")

	_, err = Parse([]byte("[lint.isort]\nknown-first-party = [\"gptqmodel\", \"my_pkg2\"]\n"))
	require.NoError(t, err)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := "line-length = 0\n\n[format]\nquote-style = \"both\"\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line-length")
	require.Contains(t, err.Error(), "format.quote-style")
}

func TestRequiredVersion(t *testing.T) {
	_, err := Parse([]byte("required-version = \"not-a-constraint!!\"\n"))
	requireSchemaError(t, err, "required-version")

	cfg, err := Parse([]byte("required-version = \">=0.4.0\"\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.CheckRequiredVersion("0.5.1"))
	require.Error(t, cfg.CheckRequiredVersion("0.3.0"))

	// Unparseable local builds are exempt.
	require.NoError(t, cfg.CheckRequiredVersion("dev"))

	cfg, err = Parse([]byte("required-version = \">=999.0.0\"\n"))
	require.NoError(t, err)
	require.Error(t, cfg.CheckRequiredVersion("1.0.0"))
}
