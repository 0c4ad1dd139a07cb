// Package client provides commands that drive a running army builder API
package client

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	retries    int
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the army builder API",
	Long:  `Client commands let you build and check army lists by making real HTTP requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "API base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().IntVar(&retries, "retries", 3, "Retries for failed requests")

	// Catalogue commands
	ClientCmd.AddCommand(listUnitsCmd)
	ClientCmd.AddCommand(listDetachmentsCmd)

	// Army commands
	ClientCmd.AddCommand(createArmyCmd)
	ClientCmd.AddCommand(listArmiesCmd)
	ClientCmd.AddCommand(getArmyCmd)
	ClientCmd.AddCommand(deleteArmyCmd)
	ClientCmd.AddCommand(setDetachmentCmd)

	// Unit commands
	ClientCmd.AddCommand(addUnitCmd)
	ClientCmd.AddCommand(removeUnitCmd)
	ClientCmd.AddCommand(setModelsCmd)
	ClientCmd.AddCommand(selectWargearCmd)
	ClientCmd.AddCommand(toggleEnhancementCmd)

	// Views
	ClientCmd.AddCommand(validateArmyCmd)
	ClientCmd.AddCommand(exportArmyCmd)
}

// createClient creates an API client from the connection flags
func createClient() *apiClient {
	return newAPIClient(serverAddr, retries, timeout)
}
