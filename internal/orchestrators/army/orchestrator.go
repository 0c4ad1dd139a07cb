// Package army implements the army orchestrator
package army

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/engine"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/clock"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/idgen"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
)

// Config holds the dependencies for the army orchestrator
type Config struct {
	ArmyRepo                      armylistrepo.Repository
	Catalogue                     catalogue.Catalogue
	ArmyIDGen                     idgen.Generator
	UnitIDGen                     idgen.Generator
	Clock                         clock.Clock
	EnforceEnhancementExclusivity bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.ArmyRepo == nil {
		vb.RequiredField("ArmyRepo")
	}
	if c.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}
	if c.ArmyIDGen == nil {
		vb.RequiredField("ArmyIDGen")
	}
	if c.UnitIDGen == nil {
		vb.RequiredField("UnitIDGen")
	}

	return vb.Build()
}

// Orchestrator implements the army.Service interface.
// It is the only writer of army lists: every mutation loads, changes and
// saves a whole army while holding mu.
type Orchestrator struct {
	mu sync.Mutex

	armyRepo  armylistrepo.Repository
	catalogue catalogue.Catalogue
	validator *engine.Validator
	armyIDGen idgen.Generator
	unitIDGen idgen.Generator
	clock     clock.Clock
}

// New creates a new army orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	validator, err := engine.NewValidator(&engine.ValidatorConfig{
		Catalogue:                     cfg.Catalogue,
		EnforceEnhancementExclusivity: cfg.EnforceEnhancementExclusivity,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create validator")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		armyRepo:  cfg.ArmyRepo,
		catalogue: cfg.Catalogue,
		validator: validator,
		armyIDGen: cfg.ArmyIDGen,
		unitIDGen: cfg.UnitIDGen,
		clock:     c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ army.Service = (*Orchestrator)(nil)

// Catalogue methods

// ListDatasheets returns every datasheet in catalogue order
func (o *Orchestrator) ListDatasheets(_ context.Context, input *army.ListDatasheetsInput) (*army.ListDatasheetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &army.ListDatasheetsOutput{
		Faction:    o.catalogue.Faction(),
		Datasheets: o.catalogue.ListUnits(),
	}, nil
}

// GetDatasheet returns one datasheet
func (o *Orchestrator) GetDatasheet(_ context.Context, input *army.GetDatasheetInput) (*army.GetDatasheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DatasheetID == "" {
		return nil, errors.InvalidArgument("datasheet ID is required")
	}

	datasheet, ok := o.catalogue.FindUnit(input.DatasheetID)
	if !ok {
		return nil, errors.NotFoundf("datasheet %s not found", input.DatasheetID)
	}

	return &army.GetDatasheetOutput{Datasheet: datasheet}, nil
}

// ListDetachments returns every detachment in catalogue order
func (o *Orchestrator) ListDetachments(_ context.Context, input *army.ListDetachmentsInput) (*army.ListDetachmentsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &army.ListDetachmentsOutput{Detachments: o.catalogue.ListDetachments()}, nil
}

// GetDetachment returns one detachment
func (o *Orchestrator) GetDetachment(_ context.Context, input *army.GetDetachmentInput) (*army.GetDetachmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DetachmentID == "" {
		return nil, errors.InvalidArgument("detachment ID is required")
	}

	detachment, ok := o.catalogue.FindDetachment(input.DetachmentID)
	if !ok {
		return nil, errors.NotFoundf("detachment %s not found", input.DetachmentID)
	}

	return &army.GetDetachmentOutput{Detachment: detachment}, nil
}

// Army lifecycle methods

// CreateArmy creates an empty army with no detachment
func (o *Orchestrator) CreateArmy(ctx context.Context, input *army.CreateArmyInput) (*army.CreateArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.PointsLimit
	if limit == 0 {
		limit = wh40k.DefaultPointsLimit
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidatePositive("pointsLimit", limit, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := clock.UnixMilli(o.clock)
	list := &wh40k.ArmyList{
		ID:          o.armyIDGen.Generate(),
		Name:        input.Name,
		PointsLimit: limit,
		Units:       []wh40k.ArmyUnit{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.armyRepo.Create(ctx, armylistrepo.CreateInput{Army: list}); err != nil {
		return nil, errors.Wrap(err, "failed to create army")
	}

	slog.Info("Created army",
		"army_id", list.ID,
		"name", list.Name,
		"points_limit", list.PointsLimit)

	return &army.CreateArmyOutput{ArmySnapshot: o.snapshot(list)}, nil
}

// GetArmy returns an army with its total and findings
func (o *Orchestrator) GetArmy(ctx context.Context, input *army.GetArmyInput) (*army.GetArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	list, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	return &army.GetArmyOutput{ArmySnapshot: o.snapshot(list)}, nil
}

// ListArmies summarises every stored army
func (o *Orchestrator) ListArmies(ctx context.Context, input *army.ListArmiesInput) (*army.ListArmiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.armyRepo.List(ctx, armylistrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list armies")
	}

	summaries := make([]*army.ArmySummary, 0, len(result.Armies))
	for _, list := range result.Armies {
		summaries = append(summaries, &army.ArmySummary{
			ID:           list.ID,
			Name:         list.Name,
			DetachmentID: list.DetachmentID,
			PointsLimit:  list.PointsLimit,
			TotalPoints:  engine.TotalPoints(list),
			UnitCount:    len(list.Units),
			UpdatedAt:    list.UpdatedAt,
		})
	}

	return &army.ListArmiesOutput{Armies: summaries}, nil
}

// DeleteArmy removes an army
func (o *Orchestrator) DeleteArmy(ctx context.Context, input *army.DeleteArmyInput) (*army.DeleteArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ArmyID == "" {
		return nil, errors.InvalidArgument("army ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.armyRepo.Delete(ctx, armylistrepo.DeleteInput{ID: input.ArmyID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete army").
			WithMeta("army_id", input.ArmyID)
	}

	slog.Info("Deleted army", "army_id", input.ArmyID)

	return &army.DeleteArmyOutput{}, nil
}

// Derived views

// ValidateArmy runs the army rules against a stored army
func (o *Orchestrator) ValidateArmy(ctx context.Context, input *army.ValidateArmyInput) (*army.ValidateArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	list, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	return &army.ValidateArmyOutput{
		TotalPoints: engine.TotalPoints(list),
		PointsLimit: list.PointsLimit,
		Results:     o.validator.Validate(list),
	}, nil
}

// ExportArmy renders a stored army as shareable text
func (o *Orchestrator) ExportArmy(ctx context.Context, input *army.ExportArmyInput) (*army.ExportArmyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	list, err := o.load(ctx, input.ArmyID)
	if err != nil {
		return nil, err
	}

	return &army.ExportArmyOutput{Text: engine.ExportText(list, o.catalogue)}, nil
}

func (o *Orchestrator) load(ctx context.Context, armyID string) (*wh40k.ArmyList, error) {
	if armyID == "" {
		return nil, errors.InvalidArgument("army ID is required")
	}

	result, err := o.armyRepo.Get(ctx, armylistrepo.GetInput{ID: armyID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get army").
			WithMeta("army_id", armyID)
	}

	return result.Army, nil
}

func (o *Orchestrator) snapshot(list *wh40k.ArmyList) army.ArmySnapshot {
	return army.ArmySnapshot{
		Army:        list,
		TotalPoints: engine.TotalPoints(list),
		Validation:  o.validator.Validate(list),
	}
}
