package main

import (
	"fmt"
	"os"

	"caengine/internal/logging"
	_ "caengine/internal/sims/all"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "ca-run",
	Short:         "Run cellular automata headless or in the terminal",
	Long:          `ca-run drives the caengine presets without a window: batch runs with PNG export, parameter sweeps, and an interactive terminal view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.Must(verbose)
}
