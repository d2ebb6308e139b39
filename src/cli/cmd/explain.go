package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lintrig/lintrig/src/output"
	"github.com/lintrig/lintrig/src/rules"
)

var explainCmd = &cobra.Command{
	Use:   "explain CODE...",
	Short: "Describe rule codes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	p := output.NewPrinter()
	for _, arg := range args {
		code := rules.Code(strings.ToUpper(arg))
		r, ok := rules.Lookup(code)
		if !ok {
			return fmt.Errorf("unknown rule code %q", arg)
		}
		p.Rule(r)
	}
	return nil
}
