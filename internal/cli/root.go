// Package cli wires the aggo commands.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aggo",
		Short: "Aggo store diagnostic mock API",
		Long: `Aggo serves the mock API behind the store diagnostic demo and
can drive a running instance from the terminal.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newScanCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
