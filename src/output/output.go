// Package output formats resolver results for humans and machines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/resolve"
	"github.com/lintrig/lintrig/src/rules"
)

// Colors for terminal output.
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// Printer formats and writes resolver results as human-readable text.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  UseColor(),
	}
}

// FileRules prints effective rules per file, one block per file.
func (p *Printer) FileRules(results []resolve.FileRules) {
	for _, fr := range results {
		fmt.Fprintf(p.Writer, "%s %s\n",
			p.colorize(fr.Path, colorBold),
			p.colorize(fmt.Sprintf("(%d rules)", len(fr.Codes)), colorGray),
		)
		for _, code := range fr.Codes {
			name := ""
			if r, ok := rules.Lookup(code); ok {
				name = r.Name
			}
			fmt.Fprintf(p.Writer, "  %s %s\n", p.colorize(string(code), colorCyan), name)
		}
	}
}

// FormatOptions prints formatter settings.
func (p *Printer) FormatOptions(f config.FormatConfig) {
	fmt.Fprintf(p.Writer, "quote-style               = %s\n", f.QuoteStyle)
	fmt.Fprintf(p.Writer, "indent-style              = %s\n", f.IndentStyle)
	fmt.Fprintf(p.Writer, "skip-magic-trailing-comma = %t\n", f.SkipMagicTrailingComma)
	fmt.Fprintf(p.Writer, "line-ending               = %s\n", f.LineEnding)
}

// Rule prints a catalog entry.
func (p *Printer) Rule(r rules.Rule) {
	fmt.Fprintf(p.Writer, "%s %s\n", p.colorize(string(r.Code), colorCyan), p.colorize(r.Name, colorBold))
	fmt.Fprintf(p.Writer, "  %s\n", r.Summary)
}

// Summary prints a one-line overview of a loaded document.
func (p *Printer) Summary(cfg *config.Config, selected int) {
	parts := []string{
		fmt.Sprintf("%d rules selected", selected),
		fmt.Sprintf("line-length %d", cfg.LineLength),
	}
	if n := len(cfg.Lint.PerFileIgnores); n > 0 {
		parts = append(parts, fmt.Sprintf("%d per-file overrides", n))
	}
	if n := len(cfg.Exclude); n > 0 {
		parts = append(parts, fmt.Sprintf("%d exclude patterns", n))
	}
	fmt.Fprintln(p.Writer, strings.Join(parts, ", "))
}

func (p *Printer) colorize(s, color string) string {
	if !p.Color {
		return s
	}
	return color + s + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal()
}
