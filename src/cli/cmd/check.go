package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/output"
	"github.com/lintrig/lintrig/src/resolve"
	"github.com/lintrig/lintrig/src/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [config-file]",
	Short: "Validate a configuration document",
	Long: `Load and validate a configuration document.

The document is accepted or rejected wholesale: any syntax error, unknown
key, type mismatch, or invalid value fails the check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) > 0 {
		path = args[0]
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := c.CheckRequiredVersion(version.Version); err != nil {
		return err
	}

	p := output.NewPrinter()
	p.Summary(c, len(resolve.New(c).Selected()))
	fmt.Fprintln(p.Writer, "ok")
	return nil
}
