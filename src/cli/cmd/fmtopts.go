package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lintrig/lintrig/src/output"
	"github.com/lintrig/lintrig/src/resolve"
)

var fmtoptsOutput string

var fmtoptsCmd = &cobra.Command{
	Use:   "fmtopts",
	Short: "Show formatter options",
	Long:  "Print the document's formatter options verbatim; nothing is derived.",
	Args:  cobra.NoArgs,
	RunE:  runFmtopts,
}

func init() {
	fmtoptsCmd.Flags().StringVarP(&fmtoptsOutput, "output", "o", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(fmtoptsCmd)
}

func runFmtopts(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(fmtoptsOutput)
	if err != nil {
		return err
	}

	opts := resolve.New(cfg).FormatOptions()

	if format == output.FormatText {
		output.NewPrinter().FormatOptions(opts)
		return nil
	}
	return output.Encode(os.Stdout, opts, format)
}
