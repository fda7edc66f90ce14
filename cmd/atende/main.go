package main

import (
	"os"

	"github.com/spf13/cobra"

	"atende/internal/interfaces/cli/migrate"
	"atende/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atende",
		Short: "Atende - customer support ticketing service",
		Long:  `Atende is the support backend: ticket lifecycle, comment ledger, workspace permissions and the admin panel API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
