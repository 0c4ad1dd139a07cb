package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listUnitsCmd = &cobra.Command{
	Use:   "list-units",
	Short: "List every datasheet in the catalogue",
	RunE:  runListUnits,
}

var listDetachmentsCmd = &cobra.Command{
	Use:   "list-detachments",
	Short: "List every detachment and its enhancements",
	RunE:  runListDetachments,
}

func runListUnits(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	faction, units, err := createClient().listUnits(ctx)
	if err != nil {
		return fmt.Errorf("failed to list units: %w", err)
	}

	renderDatasheets(os.Stdout, faction, units)
	return nil
}

func runListDetachments(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	detachments, err := createClient().listDetachments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list detachments: %w", err)
	}

	renderDetachments(os.Stdout, detachments)
	return nil
}
