package resolve

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/rules"
)

const sampleDoc = `
line-length = 119

[lint]
ignore = ["C901", "E501", "E741", "W605", "E402"]
select = ["C", "E", "F", "I", "W"]

[lint.per-file-ignores]
"__init__.py" = ["E402", "F401", "F403", "F811"]

[lint.isort]
lines-after-imports = 2
known-first-party = ["gptqmodel"]

[format]
quote-style = "double"
indent-style = "space"
skip-magic-trailing-comma = false
line-ending = "auto"
`

func sampleResolver(t *testing.T) *Resolver {
	t.Helper()
	cfg, err := config.Parse([]byte(sampleDoc))
	require.NoError(t, err)
	return New(cfg)
}

func TestGlobalIgnoreWinsOverSelect(t *testing.T) {
	r := sampleResolver(t)

	ignored := []rules.Code{"C901", "E501", "E741", "W605", "E402"}
	for _, path := range []string{"gptqmodel/models/writer.py", "other.py", "__init__.py"} {
		effective := r.EffectiveRules(path)
		for _, code := range ignored {
			require.NotContains(t, effective, code, "path %s", path)
		}
	}
}

func TestPerFileIgnoreWinsOverSelect(t *testing.T) {
	r := sampleResolver(t)

	// Unused-import and wildcard-import codes are suppressed for any
	// __init__.py despite not being globally ignored.
	for _, path := range []string{"__init__.py", "gptqmodel/__init__.py", "gptqmodel/models/__init__.py"} {
		effective := r.EffectiveRules(path)
		for _, code := range []rules.Code{"F401", "F403", "F811"} {
			require.NotContains(t, effective, code, "path %s", path)
		}
		// Other pyflakes codes still apply.
		require.Contains(t, effective, rules.Code("F841"), "path %s", path)
	}
}

func TestNoOverrideForOtherFiles(t *testing.T) {
	r := sampleResolver(t)

	effective := r.EffectiveRules("other.py")
	require.Contains(t, effective, rules.Code("F401"))
	require.Contains(t, effective, rules.Code("F403"))
	require.Contains(t, effective, rules.Code("F811"))
}

func TestEffectiveRulesSortedAndFresh(t *testing.T) {
	r := sampleResolver(t)

	first := r.EffectiveRules("other.py")
	require.True(t, sort.SliceIsSorted(first, func(i, j int) bool { return first[i] < first[j] }))

	// Mutating the returned slice must not affect later calls.
	for i := range first {
		first[i] = "X999"
	}
	second := r.EffectiveRules("other.py")
	require.NotContains(t, second, rules.Code("X999"))
	require.Contains(t, second, rules.Code("F401"))
}

func TestSelectedIsACopy(t *testing.T) {
	r := sampleResolver(t)

	selected := r.Selected()
	require.NotEmpty(t, selected)
	selected[0] = "X999"
	require.NotContains(t, r.Selected(), rules.Code("X999"))
}

func TestSelectorPrefixExpansion(t *testing.T) {
	cfg, err := config.Parse([]byte("[lint]\nselect = [\"E5\"]\n"))
	require.NoError(t, err)
	r := New(cfg)

	effective := r.EffectiveRules("any.py")
	require.NotEmpty(t, effective)
	for _, code := range effective {
		require.Equal(t, "E5", string(code)[:2])
	}
}

func TestIgnorePrefixInPerFileEntry(t *testing.T) {
	doc := "[lint]\nselect = [\"F\"]\n\n[lint.per-file-ignores]\n\"conftest.py\" = [\"F4\"]\n"
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	r := New(cfg)

	effective := r.EffectiveRules("tests/conftest.py")
	require.NotContains(t, effective, rules.Code("F401"))
	require.NotContains(t, effective, rules.Code("F403"))
	require.Contains(t, effective, rules.Code("F841"))
}

func TestFormatOptionsVerbatim(t *testing.T) {
	cfg, err := config.Parse([]byte(sampleDoc))
	require.NoError(t, err)

	opts := New(cfg).FormatOptions()
	require.Equal(t, cfg.Format, opts)
}
