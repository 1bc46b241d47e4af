package main

import (
	"os"

	"github.com/spf13/cobra"

	"skymaint/internal/interfaces/cli/migrate"
	"skymaint/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skymaint",
		Short: "SkyMaint - UAV fleet maintenance service",
		Long:  `SkyMaint tracks UAV usage against maintenance plans, raises maintenance triggers, and manages the maintenance ticket lifecycle.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
