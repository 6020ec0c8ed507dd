// Command sapphire runs the admin dashboard API and its maintenance tasks.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "sapphire",
		Short:         "Admin dashboard API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// Running the binary without a subcommand serves the API.
		RunE: serve.RunE,
	}
	root.AddCommand(
		serve,
		newMigrateCmd(),
		newSuperUserCmd(),
		newWorkerCmd(),
	)

	return root
}
