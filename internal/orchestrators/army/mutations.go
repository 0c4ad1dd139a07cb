package army

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/waaagh-api/internal/engine"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/clock"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
)

// mutation changes a private copy of an army. Returning an error abandons
// the change.
type mutation func(list *wh40k.ArmyList) error

// mutate loads an army, applies fn, stamps updatedAt and saves the whole
// record. Readers only ever see the army before or after fn.
func (o *Orchestrator) mutate(ctx context.Context, armyID, action string, fn mutation) (army.ArmySnapshot, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, err := o.load(ctx, armyID)
	if err != nil {
		return army.ArmySnapshot{}, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return army.ArmySnapshot{}, err
	}
	next.UpdatedAt = clock.UnixMilli(o.clock)

	if _, err := o.armyRepo.Update(ctx, armylistrepo.UpdateInput{Army: next}); err != nil {
		return army.ArmySnapshot{}, errors.Wrapf(err, "failed to save army after %s", action).
			WithMeta("army_id", armyID)
	}

	slog.Info("Updated army",
		"army_id", armyID,
		"action", action,
		"total_points", engine.TotalPoints(next))

	return o.snapshot(next), nil
}

// findUnit returns the unit with instanceID inside list
func findUnit(list *wh40k.ArmyList, instanceID string) (*wh40k.ArmyUnit, error) {
	if instanceID == "" {
		return nil, errors.InvalidArgument("unit instance ID is required")
	}
	idx := list.FindUnit(instanceID)
	if idx < 0 {
		return nil, errors.NotFoundf("unit %s not found in army %s", instanceID, list.ID)
	}
	return &list.Units[idx], nil
}

// UpdateArmy renames an army or changes its points limit
func (o *Orchestrator) UpdateArmy(ctx context.Context, input *army.UpdateArmyInput) (*army.UpdateArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name != nil {
		errors.ValidateRequired("name", *input.Name, vb)
	}
	if input.PointsLimit != nil {
		errors.ValidatePositive("pointsLimit", *input.PointsLimit, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	snap, err := o.mutate(ctx, input.ArmyID, "update army", func(list *wh40k.ArmyList) error {
		if input.Name != nil {
			list.Name = *input.Name
		}
		if input.PointsLimit != nil {
			list.PointsLimit = *input.PointsLimit
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.UpdateArmyOutput{ArmySnapshot: snap}, nil
}

// SetDetachment selects or clears the army's detachment. Enhancements
// already assigned are kept; validation reports any that no longer fit.
func (o *Orchestrator) SetDetachment(ctx context.Context, input *army.SetDetachmentInput) (*army.SetDetachmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var detachmentID *string
	if input.DetachmentID != nil && *input.DetachmentID != "" {
		if _, ok := o.catalogue.FindDetachment(*input.DetachmentID); !ok {
			return nil, errors.InvalidArgumentf("unknown detachment %s", *input.DetachmentID)
		}
		id := *input.DetachmentID
		detachmentID = &id
	}

	snap, err := o.mutate(ctx, input.ArmyID, "set detachment", func(list *wh40k.ArmyList) error {
		list.DetachmentID = detachmentID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.SetDetachmentOutput{ArmySnapshot: snap}, nil
}

// AddUnit appends a unit at its minimum size with default wargear
func (o *Orchestrator) AddUnit(ctx context.Context, input *army.AddUnitInput) (*army.AddUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DatasheetID == "" {
		return nil, errors.InvalidArgument("datasheet ID is required")
	}

	datasheet, ok := o.catalogue.FindUnit(input.DatasheetID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown datasheet %s", input.DatasheetID)
	}

	var added wh40k.ArmyUnit
	snap, err := o.mutate(ctx, input.ArmyID, "add unit", func(list *wh40k.ArmyList) error {
		modelCount := datasheet.UnitComposition.MinModels
		added = wh40k.ArmyUnit{
			InstanceID:     o.unitIDGen.Generate(),
			DatasheetID:    datasheet.ID,
			ModelCount:     modelCount,
			Wargear:        []wh40k.SelectedWargear{},
			ComputedPoints: engine.CalculateUnitPoints(modelCount, datasheet.UnitComposition),
		}
		list.Units = append(list.Units, added)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.AddUnitOutput{ArmySnapshot: snap, Unit: &added}, nil
}

// RemoveUnit drops a unit and detaches anything that was attached to it
func (o *Orchestrator) RemoveUnit(ctx context.Context, input *army.RemoveUnitInput) (*army.RemoveUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snap, err := o.mutate(ctx, input.ArmyID, "remove unit", func(list *wh40k.ArmyList) error {
		if _, err := findUnit(list, input.InstanceID); err != nil {
			return err
		}

		units := make([]wh40k.ArmyUnit, 0, len(list.Units)-1)
		for _, u := range list.Units {
			if u.InstanceID == input.InstanceID {
				continue
			}
			if u.AttachedToUnitID == input.InstanceID {
				u.AttachedToUnitID = ""
			}
			units = append(units, u)
		}
		list.Units = units
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.RemoveUnitOutput{ArmySnapshot: snap}, nil
}

// UpdateUnit edits a unit's size or descriptive fields and recomputes its cost
func (o *Orchestrator) UpdateUnit(ctx context.Context, input *army.UpdateUnitInput) (*army.UpdateUnitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ModelCount != nil && *input.ModelCount < 1 {
		return nil, errors.InvalidArgumentf("model count must be positive, got %d", *input.ModelCount)
	}

	snap, err := o.mutate(ctx, input.ArmyID, "update unit", func(list *wh40k.ArmyList) error {
		unit, err := findUnit(list, input.InstanceID)
		if err != nil {
			return err
		}

		if input.AttachedToUnitID != nil && *input.AttachedToUnitID != "" {
			target := *input.AttachedToUnitID
			if target == unit.InstanceID {
				return errors.InvalidArgument("a unit cannot be attached to itself")
			}
			if list.FindUnit(target) < 0 {
				return errors.InvalidArgumentf("unit %s not found in army %s", target, list.ID)
			}
		}

		if input.ModelCount != nil {
			unit.ModelCount = *input.ModelCount
		}
		if input.CustomName != nil {
			unit.CustomName = *input.CustomName
		}
		if input.Notes != nil {
			unit.Notes = *input.Notes
		}
		if input.AttachedToUnitID != nil {
			unit.AttachedToUnitID = *input.AttachedToUnitID
		}

		engine.RecomputeUnitPoints(unit, o.catalogue)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.UpdateUnitOutput{ArmySnapshot: snap}, nil
}

// SelectWargear picks a choice for one of a unit's wargear options
func (o *Orchestrator) SelectWargear(ctx context.Context, input *army.SelectWargearInput) (*army.SelectWargearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("optionId", input.OptionID, vb)
	errors.ValidateRequired("choiceId", input.ChoiceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	snap, err := o.mutate(ctx, input.ArmyID, "select wargear", func(list *wh40k.ArmyList) error {
		unit, err := findUnit(list, input.InstanceID)
		if err != nil {
			return err
		}

		datasheet, ok := o.catalogue.FindUnit(unit.DatasheetID)
		if !ok {
			return errors.NotFoundf("datasheet %s not found", unit.DatasheetID)
		}
		option, ok := datasheet.FindWargearOption(input.OptionID)
		if !ok {
			return errors.NotFoundf("wargear option %s not found on %s", input.OptionID, datasheet.Name)
		}
		if _, ok := option.FindChoice(input.ChoiceID); !ok {
			return errors.InvalidArgumentf("%s is not a choice for %s", input.ChoiceID, option.Name)
		}

		unit.Wargear = engine.SelectWargear(unit.Wargear, option, input.ChoiceID)
		engine.RecomputeUnitPoints(unit, o.catalogue)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.SelectWargearOutput{ArmySnapshot: snap}, nil
}

// SetEnhancement toggles an enhancement on a unit. It is not checked against
// the detachment or the unit's keywords; validation reports those problems.
func (o *Orchestrator) SetEnhancement(ctx context.Context, input *army.SetEnhancementInput) (*army.SetEnhancementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EnhancementID == "" {
		return nil, errors.InvalidArgument("enhancement ID is required")
	}

	snap, err := o.mutate(ctx, input.ArmyID, "set enhancement", func(list *wh40k.ArmyList) error {
		unit, err := findUnit(list, input.InstanceID)
		if err != nil {
			return err
		}
		unit.EnhancementID = engine.ToggleEnhancement(unit.EnhancementID, input.EnhancementID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &army.SetEnhancementOutput{ArmySnapshot: snap}, nil
}
