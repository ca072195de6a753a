package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Clientia - Customer & Order Admin Console",
	Long: `Clientia is a thin administrative console over the customer and
order REST service. It renders search, listing and creation pages and
delegates all persistent state to the backend API.

Run it as a web server with "admin run", or probe the backend directly
with "admin check-api".`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
