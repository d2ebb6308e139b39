package rules

import (
	"fmt"
	"sort"
)

// Rule describes a single catalog entry.
type Rule struct {
	Code    Code
	Name    string
	Summary string
}

var catalog = map[Code]Rule{}

// register adds a rule to the catalog. Called below at package init;
// duplicate codes are a programming error.
func register(code Code, name, summary string) {
	if _, exists := catalog[code]; exists {
		panic(fmt.Sprintf("rules: duplicate catalog registration: %s", code))
	}
	catalog[code] = Rule{Code: code, Name: name, Summary: summary}
}

// Lookup returns the catalog entry for an exact code.
func Lookup(code Code) (Rule, bool) {
	r, ok := catalog[code]
	return r, ok
}

// Expand returns all catalog codes the selector addresses, sorted.
func Expand(sel Selector) []Code {
	var codes []Code
	for code := range catalog {
		if sel.Matches(code) {
			codes = append(codes, code)
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Known reports whether the selector addresses at least one catalog rule.
func Known(sel Selector) bool {
	for code := range catalog {
		if sel.Matches(code) {
			return true
		}
	}
	return false
}

// All returns every catalog rule, sorted by code.
func All() []Rule {
	rules := make([]Rule, 0, len(catalog))
	for _, r := range catalog {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Code < rules[j].Code })
	return rules
}

func init() {
	// mccabe
	register("C901", "complex-structure", "function is too complex")

	// pycodestyle errors
	register("E101", "mixed-spaces-and-tabs", "indentation contains mixed spaces and tabs")
	register("E111", "indentation-with-invalid-multiple", "indentation is not a multiple of the indent width")
	register("E114", "indentation-with-invalid-multiple-comment", "comment indentation is not a multiple of the indent width")
	register("E117", "over-indented", "line is over-indented")
	register("E201", "whitespace-after-open-bracket", "whitespace after an opening bracket")
	register("E202", "whitespace-before-close-bracket", "whitespace before a closing bracket")
	register("E203", "whitespace-before-punctuation", "whitespace before punctuation")
	register("E211", "whitespace-before-parameters", "whitespace before a parameter list")
	register("E225", "missing-whitespace-around-operator", "missing whitespace around an operator")
	register("E231", "missing-whitespace", "missing whitespace after a separator")
	register("E251", "unexpected-spaces-around-keyword-parameter-equals", "spaces around a keyword parameter equals sign")
	register("E261", "too-few-spaces-before-inline-comment", "inline comment should be separated by two spaces")
	register("E262", "no-space-after-inline-comment", "inline comment should start with '# '")
	register("E265", "no-space-after-block-comment", "block comment should start with '# '")
	register("E266", "multiple-leading-hashes-for-block-comment", "block comment starts with more than one '#'")
	register("E301", "blank-line-between-methods", "expected a blank line between methods")
	register("E302", "blank-lines-top-level", "expected blank lines before a top-level definition")
	register("E303", "too-many-blank-lines", "too many consecutive blank lines")
	register("E305", "blank-lines-after-function-or-class", "expected blank lines after a function or class")
	register("E401", "multiple-imports-on-one-line", "multiple imports on one line")
	register("E402", "module-import-not-at-top-of-file", "module-level import not at the top of the file")
	register("E501", "line-too-long", "line exceeds the configured maximum length")
	register("E502", "redundant-backslash", "redundant backslash inside brackets")
	register("E701", "multiple-statements-on-one-line-colon", "multiple statements on one line (colon)")
	register("E702", "multiple-statements-on-one-line-semicolon", "multiple statements on one line (semicolon)")
	register("E703", "useless-semicolon", "statement ends with an unnecessary semicolon")
	register("E711", "none-comparison", "comparison to None should use 'is'")
	register("E712", "true-false-comparison", "comparison to True/False should use 'is' or truthiness")
	register("E713", "not-in-test", "membership test should use 'not in'")
	register("E714", "not-is-test", "identity test should use 'is not'")
	register("E721", "type-comparison", "types should be compared with isinstance")
	register("E722", "bare-except", "bare except clause")
	register("E731", "lambda-assignment", "lambda expression assigned to a name")
	register("E741", "ambiguous-variable-name", "ambiguous single-letter variable name")
	register("E742", "ambiguous-class-name", "ambiguous class name")
	register("E743", "ambiguous-function-name", "ambiguous function name")
	register("E902", "io-error", "source file could not be read")
	register("E999", "syntax-error", "source file contains a syntax error")

	// pyflakes
	register("F401", "unused-import", "imported name is never used")
	register("F402", "import-shadowed-by-loop-var", "import shadowed by a loop variable")
	register("F403", "undefined-local-with-import-star", "wildcard import makes definitions untraceable")
	register("F404", "late-future-import", "__future__ import after other statements")
	register("F405", "undefined-local-with-import-star-usage", "name may come from a wildcard import")
	register("F501", "percent-format-invalid-format", "percent-format string is invalid")
	register("F502", "percent-format-expected-mapping", "percent-format expected a mapping")
	register("F541", "f-string-missing-placeholders", "f-string has no placeholders")
	register("F631", "assertion-on-tuple", "assert on a non-empty tuple is always true")
	register("F632", "is-literal", "identity comparison with a literal")
	register("F811", "redefined-while-unused", "name redefined while the earlier binding is unused")
	register("F821", "undefined-name", "reference to an undefined name")
	register("F822", "undefined-export", "__all__ names an undefined symbol")
	register("F823", "undefined-local", "local variable referenced before assignment")
	register("F841", "unused-variable", "local variable assigned but never used")
	register("F901", "raise-not-implemented", "raise NotImplemented should be NotImplementedError")

	// import sorting
	register("I001", "unsorted-imports", "import block is not sorted or formatted")
	register("I002", "missing-required-import", "a required import is missing")

	// pycodestyle warnings
	register("W191", "tab-indentation", "indentation uses tabs")
	register("W291", "trailing-whitespace", "trailing whitespace")
	register("W292", "missing-newline-at-end-of-file", "no newline at end of file")
	register("W293", "blank-line-with-whitespace", "blank line contains whitespace")
	register("W391", "too-many-newlines-at-end-of-file", "extra blank lines at end of file")
	register("W505", "doc-line-too-long", "doc line exceeds the configured maximum length")
	register("W605", "invalid-escape-sequence", "invalid escape sequence in a string literal")
}
