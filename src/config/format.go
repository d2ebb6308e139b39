package config

// QuoteStyle is the formatter preference for string literal delimiters.
type QuoteStyle string

const (
	QuoteDouble QuoteStyle = "double"
	QuoteSingle QuoteStyle = "single"
)

// IndentStyle selects the character class used for indentation.
type IndentStyle string

const (
	IndentSpace IndentStyle = "space"
	IndentTab   IndentStyle = "tab"
)

// LineEnding selects the newline sequence written by the formatter.
type LineEnding string

const (
	LineEndingAuto   LineEnding = "auto"
	LineEndingLF     LineEnding = "lf"
	LineEndingCRLF   LineEnding = "crlf"
	LineEndingNative LineEnding = "native"
)

var (
	validQuoteStyles = map[QuoteStyle]bool{
		QuoteDouble: true,
		QuoteSingle: true,
	}
	validIndentStyles = map[IndentStyle]bool{
		IndentSpace: true,
		IndentTab:   true,
	}
	validLineEndings = map[LineEnding]bool{
		LineEndingAuto:   true,
		LineEndingLF:     true,
		LineEndingCRLF:   true,
		LineEndingNative: true,
	}
)

// FormatConfig holds code-formatting style preferences. It is returned
// verbatim by accessors; nothing is derived from it.
type FormatConfig struct {
	QuoteStyle             QuoteStyle  `toml:"quote-style" json:"quote-style" yaml:"quote-style"`
	IndentStyle            IndentStyle `toml:"indent-style" json:"indent-style" yaml:"indent-style"`
	SkipMagicTrailingComma bool        `toml:"skip-magic-trailing-comma" json:"skip-magic-trailing-comma" yaml:"skip-magic-trailing-comma"`
	LineEnding             LineEnding  `toml:"line-ending" json:"line-ending" yaml:"line-ending"`
}

// DefaultFormatConfig returns the formatter defaults.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		QuoteStyle:  QuoteDouble,
		IndentStyle: IndentSpace,
		LineEnding:  LineEndingAuto,
	}
}
