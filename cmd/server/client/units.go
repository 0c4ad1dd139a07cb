package client

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

var addUnitCmd = &cobra.Command{
	Use:   "add-unit ARMY_ID DATASHEET_ID",
	Short: "Add a unit at its minimum size",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddUnit,
}

var removeUnitCmd = &cobra.Command{
	Use:   "remove-unit ARMY_ID INSTANCE_ID",
	Short: "Remove a unit from an army",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveUnit,
}

var setModelsCmd = &cobra.Command{
	Use:   "set-models ARMY_ID INSTANCE_ID COUNT",
	Short: "Change how many models a unit fields",
	Args:  cobra.ExactArgs(3),
	RunE:  runSetModels,
}

var selectWargearCmd = &cobra.Command{
	Use:   "select-wargear ARMY_ID INSTANCE_ID OPTION_ID CHOICE_ID",
	Short: "Pick a choice for a wargear option",
	Args:  cobra.ExactArgs(4),
	RunE:  runSelectWargear,
}

var toggleEnhancementCmd = &cobra.Command{
	Use:   "toggle-enhancement ARMY_ID INSTANCE_ID ENHANCEMENT_ID",
	Short: "Give a unit an enhancement, or take it away if it already has it",
	Args:  cobra.ExactArgs(3),
	RunE:  runToggleEnhancement,
}

func runAddUnit(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().addUnit(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to add unit: %w", err)
	}

	if env.Unit != nil {
		fmt.Printf("Added %s as %s\n\n", env.Unit.DatasheetID, env.Unit.InstanceID)
	}
	renderArmy(os.Stdout, env)
	return nil
}

func runRemoveUnit(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().removeUnit(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to remove unit: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runSetModels(_ *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid model count %q: %w", args[2], err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().setModelCount(ctx, args[0], args[1], count)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runSelectWargear(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().selectWargear(ctx, args[0], args[1], args[2], args[3])
	if err != nil {
		return fmt.Errorf("failed to select wargear: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func runToggleEnhancement(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	env, err := createClient().setEnhancement(ctx, args[0], args[1], args[2])
	if err != nil {
		return fmt.Errorf("failed to set enhancement: %w", err)
	}

	renderArmy(os.Stdout, env)
	return nil
}

func countErrors(results []wh40k.ValidationResult) int {
	n := 0
	for _, r := range results {
		if r.Severity == wh40k.SeverityError {
			n++
		}
	}
	return n
}
