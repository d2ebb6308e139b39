package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintrig/lintrig/src/config"
	"github.com/lintrig/lintrig/src/logging"
	"github.com/lintrig/lintrig/src/version"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lintrig",
	Short: "Lint configuration toolkit",
	Long:  "lintrig — load, validate, and resolve Ruff-style lint and format configuration.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose)

		// Commands that load nothing, or load on their own terms.
		switch cmd.Name() {
		case "version", "explain", "check":
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.CheckRequiredVersion(version.Version); err != nil {
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ruff.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
