package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matthieukhl/clientia/internal/api"
	"github.com/matthieukhl/clientia/internal/config"
	"github.com/matthieukhl/clientia/internal/models"
	"github.com/spf13/cobra"
)

var (
	checkCountry  string
	checkCustomer int
)

var checkCmd = &cobra.Command{
	Use:   "check-api",
	Short: "Check connectivity and data on the backend API",
	Long: `Check that the backend customer/order API is reachable and list
what it currently holds. This helps verify configuration before
starting the admin console.`,
	RunE: checkAPI,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkCountry, "country", "", "List only customers from this country")
	checkCmd.Flags().IntVar(&checkCustomer, "customer", 0, "Show the orders of this customer id")
}

func checkAPI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("🔍 Checking backend API at %s...\n", cfg.API.BaseURL)

	client := api.NewClient(&cfg.API, slog.Default())
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		return fmt.Errorf("backend API unreachable: %w", err)
	}
	fmt.Println("✅ Backend API is reachable")

	if checkCustomer > 0 {
		return printCustomerOrders(ctx, client, checkCustomer)
	}
	return printCustomers(ctx, client)
}

func printCustomers(ctx context.Context, client *api.Client) error {
	customers := api.NewCustomerService(client)

	var (
		list []models.Customer
		err  error
	)
	if checkCountry != "" {
		list, err = customers.SearchByCountry(ctx, checkCountry)
	} else {
		list, err = customers.ListAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch customers: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("📭 No customers found")
		return nil
	}

	fmt.Printf("\n📋 Found %d customer%s:\n", len(list), plural(len(list)))
	fmt.Println(strings.Repeat("─", 80))
	for _, customer := range list {
		fmt.Printf("  #%d %s (%s) — %s\n",
			customer.CustomerID, customer.CompanyName, customer.ContactName, customer.Country)
	}
	return nil
}

func printCustomerOrders(ctx context.Context, client *api.Client, customerID int) error {
	orders := api.NewOrderService(client)

	list, err := orders.GetByCustomerID(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	if len(list) == 0 {
		fmt.Printf("📭 Customer %d has no orders\n", customerID)
		return nil
	}

	models.SortByShippedDateDesc(list)

	fmt.Printf("\n📋 Found %d order%s for customer %d:\n", len(list), plural(len(list)), customerID)
	fmt.Println(strings.Repeat("─", 80))
	for _, order := range list {
		fmt.Printf("  #%d ordered %s, shipped %s\n",
			order.OrderID, models.FormatDate(order.OrderDate), models.FormatDate(order.ShippedDate))
	}
	return nil
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
