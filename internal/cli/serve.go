package cli

import (
	"github.com/spf13/cobra"

	"github.com/adanyl0v/aggo-mock-api/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the mock API server",
		Long:  `Start the mock API server. Configuration is read from the environment and an optional .env file.`,
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			app.Run()
		},
	}
}
