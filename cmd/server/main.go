// Package main is the entry point for the army builder server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/waaagh-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "waaagh-api",
	Short: "Army builder API server",
	Long: `waaagh-api serves an Orks army builder: browse the faction catalogue,
assemble army lists, and validate them against the matched-play rules.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.waaagh.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Set log level. Available: debug, info, warn, error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")) // nolint:errcheck // flag exists

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
