package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/invoice-engine/config"
	"github.com/warp/invoice-engine/invoice"
	"github.com/warp/invoice-engine/store/sqlite"
)

var (
	clientName string
	month      int
	year       int
	dbPath     string
	propsPath  string
	ratesPath  string
	clientsPath string
	outPath    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one client invoice for one month",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&clientName, "client", "", "client account name (required)")
	generateCmd.Flags().IntVar(&month, "month", 0, "invoice month, 1-12 (required)")
	generateCmd.Flags().IntVar(&year, "year", 0, "invoice year (required)")
	generateCmd.Flags().StringVar(&dbPath, "db", "timecards.db", "SQLite time card database path")
	generateCmd.Flags().StringVar(&propsPath, "props", "business.properties", "business identity properties file")
	generateCmd.Flags().StringVar(&ratesPath, "rates", "rates.yaml", "skill rate book")
	generateCmd.Flags().StringVar(&clientsPath, "clients", "clients.yaml", "client roster")
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	generateCmd.MarkFlagRequired("client")
	generateCmd.MarkFlagRequired("month")
	generateCmd.MarkFlagRequired("year")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}

	rates, err := config.LoadRateBook(ratesPath)
	if err != nil {
		return err
	}

	clients, err := config.LoadClients(clientsPath)
	if err != nil {
		return err
	}
	client, ok := clients[clientName]
	if !ok {
		return fmt.Errorf("client %q not found in %s", clientName, clientsPath)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	cards, err := store.TimeCards(cmd.Context())
	if err != nil {
		return err
	}
	slog.Debug("loaded time cards", "count", len(cards))

	inv := invoice.New(client, time.Month(month), year, rates, config.NewIdentityProvider(propsPath))
	for _, card := range cards {
		if err := inv.ExtractLineItems(card); err != nil {
			return fmt.Errorf("extract from card for %s: %w", card.Consultant(), err)
		}
	}
	slog.Info("invoice built",
		"client", clientName,
		"period", fmt.Sprintf("%s %d", time.Month(month), year),
		"line_items", len(inv.LineItems()),
		"total_hours", inv.TotalHours(),
		"total_charges", inv.TotalCharges().Grouped(),
	)

	document := inv.Render()
	if outPath == "" {
		fmt.Print(document)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(document), 0o644); err != nil {
		return fmt.Errorf("write invoice: %w", err)
	}
	slog.Info("invoice written", "path", outPath)
	return nil
}
