package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/waaagh-api/internal/version"
)

var showBuildInfo bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(_ *cobra.Command, _ []string) error {
		if showBuildInfo {
			fmt.Println(version.Version().String())
			return nil
		}
		fmt.Println(version.Core())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&showBuildInfo, "build-info", false, "include build metadata")
}
