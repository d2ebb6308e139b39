package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lintrig/lintrig/src/output"
	"github.com/lintrig/lintrig/src/resolve"
)

var (
	rulesChanged bool
	rulesOutput  string
)

var rulesCmd = &cobra.Command{
	Use:   "rules [paths...]",
	Short: "Show effective rules per file",
	Long: `Resolve the rule codes in force for the given paths.

Without arguments, every Python file under the working directory is
resolved, honoring the document's exclude patterns. Per-file ignores always
win over the global selection; the global ignore set always wins over the
global selection.`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesChanged, "changed", false, "only files changed relative to the git baseline")
	rulesCmd.Flags().StringVarP(&rulesOutput, "output", "o", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(rulesOutput)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		rootDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		walker := &resolve.Walker{RootDir: rootDir, Exclude: cfg.Exclude}
		paths, err = walker.Collect()
		if err != nil {
			return fmt.Errorf("collecting files: %w", err)
		}
		log.Debug().Int("files", len(paths)).Msg("collected files")

		if rulesChanged {
			delta := &resolve.Delta{RootDir: rootDir}
			changed, err := delta.ChangedFiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("detecting changed files: %w", err)
			}
			paths = resolve.FilterChanged(paths, changed)
			log.Debug().Int("files", len(paths)).Msg("after delta filtering")
		}
	}

	resolver := resolve.New(cfg)
	results, err := resolve.Batch(cmd.Context(), resolver, paths)
	if err != nil {
		return err
	}

	if format == output.FormatText {
		output.NewPrinter().FileRules(results)
		return nil
	}
	return output.Encode(os.Stdout, results, format)
}
