// Package cmd provides CLI commands for invoicegen.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "invoicegen",
	Short: "Generate client invoices from consultant time cards",
	Long: `invoicegen turns persisted consultant time entries into a
paginated, client-facing invoice document for one calendar month.

It reads time cards from a SQLite store, the business identity from a
properties file, and skill rates and client accounts from YAML.

Example:
  invoicegen generate --client "Acme Industries" --month 3 --year 2013`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
}
