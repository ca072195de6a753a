package cmd

import (
	"fmt"
	"log/slog"

	"github.com/matthieukhl/clientia/internal/api"
	"github.com/matthieukhl/clientia/internal/config"
	"github.com/matthieukhl/clientia/internal/server"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Clientia admin console",
	Long: `Start the Clientia admin console which provides:
- Customer search by country with per-customer order listings
- Customer and order creation forms
- A health endpoint probing the backend API`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Clientia Admin Console Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("🔌 Using backend API at %s\n", cfg.API.BaseURL)
	client := api.NewClient(&cfg.API, slog.Default())
	customers := api.NewCustomerService(client)
	orders := api.NewOrderService(client)

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(client, customers, orders, cfg.Server.Templates)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
