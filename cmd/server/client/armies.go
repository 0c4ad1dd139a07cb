package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	pointsLimit      int
	clearDetach      bool
	strictValidation bool
)

var createArmyCmd = &cobra.Command{
	Use:   "create-army NAME",
	Short: "Create an empty army",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateArmy,
}

var listArmiesCmd = &cobra.Command{
	Use:   "list-armies",
	Short: "List stored armies",
	RunE:  runListArmies,
}

var getArmyCmd = &cobra.Command{
	Use:   "get-army ARMY_ID",
	Short: "Show an army with its units and findings",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetArmy,
}

var deleteArmyCmd = &cobra.Command{
	Use:   "delete-army ARMY_ID",
	Short: "Delete an army",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteArmy,
}

var setDetachmentCmd = &cobra.Command{
	Use:   "set-detachment ARMY_ID [DETACHMENT_ID]",
	Short: "Choose or clear an army's detachment",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSetDetachment,
}

var validateArmyCmd = &cobra.Command{
	Use:   "validate-army ARMY_ID",
	Short: "Check an army against the army-building rules",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateArmy,
}

var exportArmyCmd = &cobra.Command{
	Use:   "export-army ARMY_ID",
	Short: "Print an army as shareable text",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportArmy,
}

func init() {
	createArmyCmd.Flags().IntVar(&pointsLimit, "points", 2000, "Points limit")
	setDetachmentCmd.Flags().BoolVar(&clearDetach, "clear", false, "Clear the detachment")
	validateArmyCmd.Flags().BoolVar(&strictValidation, "strict", false, "Exit with an error when the army has error findings")
}

func runCreateArmy(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().createArmy(ctx, args[0], pointsLimit)
	if err != nil {
		return fmt.Errorf("failed to create army: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runListArmies(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	armies, err := createClient().listArmies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list armies: %w", err)
	}

	renderArmies(os.Stdout, armies)
	return nil
}

func runGetArmy(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().getArmy(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get army: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runDeleteArmy(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := createClient().deleteArmy(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete army: %w", err)
	}

	fmt.Printf("Deleted army %s\n", args[0])
	return nil
}

func runSetDetachment(_ *cobra.Command, args []string) error {
	var detachmentID *string
	switch {
	case len(args) == 2:
		detachmentID = &args[1]
	case !clearDetach:
		return fmt.Errorf("a detachment id or --clear is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().setDetachment(ctx, args[0], detachmentID)
	if err != nil {
		return fmt.Errorf("failed to set detachment: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runValidateArmy(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	report, err := createClient().validateArmy(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to validate army: %w", err)
	}

	fmt.Printf("Points: %d/%d\n", report.TotalPoints, report.PointsLimit)
	renderValidation(os.Stdout, report.Results)

	if strictValidation && countErrors(report.Results) > 0 {
		return fmt.Errorf("army has %d error finding(s)", countErrors(report.Results))
	}
	return nil
}

func runExportArmy(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	text, err := createClient().exportArmy(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to export army: %w", err)
	}

	fmt.Println(text)
	return nil
}
