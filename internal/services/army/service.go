// Package army defines the interface for army list operations
package army

//go:generate mockgen -destination=mock/mock_service.go -package=armymock github.com/KirkDiggler/waaagh-api/internal/services/army Service

import (
	"context"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// Service defines the interface for army list operations
type Service interface {
	// Catalogue
	ListDatasheets(ctx context.Context, input *ListDatasheetsInput) (*ListDatasheetsOutput, error)
	GetDatasheet(ctx context.Context, input *GetDatasheetInput) (*GetDatasheetOutput, error)
	ListDetachments(ctx context.Context, input *ListDetachmentsInput) (*ListDetachmentsOutput, error)
	GetDetachment(ctx context.Context, input *GetDetachmentInput) (*GetDetachmentOutput, error)

	// Army lifecycle
	CreateArmy(ctx context.Context, input *CreateArmyInput) (*CreateArmyOutput, error)
	GetArmy(ctx context.Context, input *GetArmyInput) (*GetArmyOutput, error)
	ListArmies(ctx context.Context, input *ListArmiesInput) (*ListArmiesOutput, error)
	DeleteArmy(ctx context.Context, input *DeleteArmyInput) (*DeleteArmyOutput, error)

	// Army mutations. Each returns the saved army with its total and findings.
	UpdateArmy(ctx context.Context, input *UpdateArmyInput) (*UpdateArmyOutput, error)
	SetDetachment(ctx context.Context, input *SetDetachmentInput) (*SetDetachmentOutput, error)
	AddUnit(ctx context.Context, input *AddUnitInput) (*AddUnitOutput, error)
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error)
	UpdateUnit(ctx context.Context, input *UpdateUnitInput) (*UpdateUnitOutput, error)
	SelectWargear(ctx context.Context, input *SelectWargearInput) (*SelectWargearOutput, error)
	SetEnhancement(ctx context.Context, input *SetEnhancementInput) (*SetEnhancementOutput, error)

	// Derived views
	ValidateArmy(ctx context.Context, input *ValidateArmyInput) (*ValidateArmyOutput, error)
	ExportArmy(ctx context.Context, input *ExportArmyInput) (*ExportArmyOutput, error)
}

// ArmySnapshot is an army as saved, with its derived total and findings
type ArmySnapshot struct {
	Army        *wh40k.ArmyList
	TotalPoints int
	Validation  []wh40k.ValidationResult
}

// ArmySummary is the list view of an army
type ArmySummary struct {
	ID           string
	Name         string
	DetachmentID *string
	PointsLimit  int
	TotalPoints  int
	UnitCount    int
	UpdatedAt    int64
}

// Catalogue types

// ListDatasheetsInput defines the request for listing datasheets
type ListDatasheetsInput struct{}

// ListDatasheetsOutput defines the response for listing datasheets
type ListDatasheetsOutput struct {
	Faction    string
	Datasheets []*wh40k.UnitDatasheet
}

// GetDatasheetInput defines the request for getting a datasheet
type GetDatasheetInput struct {
	DatasheetID string
}

// GetDatasheetOutput defines the response for getting a datasheet
type GetDatasheetOutput struct {
	Datasheet *wh40k.UnitDatasheet
}

// ListDetachmentsInput defines the request for listing detachments
type ListDetachmentsInput struct{}

// ListDetachmentsOutput defines the response for listing detachments
type ListDetachmentsOutput struct {
	Detachments []*wh40k.Detachment
}

// GetDetachmentInput defines the request for getting a detachment
type GetDetachmentInput struct {
	DetachmentID string
}

// GetDetachmentOutput defines the response for getting a detachment
type GetDetachmentOutput struct {
	Detachment *wh40k.Detachment
}

// Army lifecycle types

// CreateArmyInput defines the request for creating an army.
// A zero PointsLimit means wh40k.DefaultPointsLimit.
type CreateArmyInput struct {
	Name        string
	PointsLimit int
}

// CreateArmyOutput defines the response for creating an army
type CreateArmyOutput struct {
	ArmySnapshot
}

// GetArmyInput defines the request for getting an army
type GetArmyInput struct {
	ArmyID string
}

// GetArmyOutput defines the response for getting an army
type GetArmyOutput struct {
	ArmySnapshot
}

// ListArmiesInput defines the request for listing armies
type ListArmiesInput struct{}

// ListArmiesOutput defines the response for listing armies
type ListArmiesOutput struct {
	Armies []*ArmySummary
}

// DeleteArmyInput defines the request for deleting an army
type DeleteArmyInput struct {
	ArmyID string
}

// DeleteArmyOutput defines the response for deleting an army
type DeleteArmyOutput struct{}

// Army mutation types

// UpdateArmyInput defines the request for renaming an army or changing its
// points limit. Nil fields are left unchanged.
type UpdateArmyInput struct {
	ArmyID      string
	Name        *string
	PointsLimit *int
}

// UpdateArmyOutput defines the response for updating an army
type UpdateArmyOutput struct {
	ArmySnapshot
}

// SetDetachmentInput defines the request for choosing a detachment.
// A nil DetachmentID clears the selection.
type SetDetachmentInput struct {
	ArmyID       string
	DetachmentID *string
}

// SetDetachmentOutput defines the response for choosing a detachment
type SetDetachmentOutput struct {
	ArmySnapshot
}

// AddUnitInput defines the request for adding a unit
type AddUnitInput struct {
	ArmyID      string
	DatasheetID string
}

// AddUnitOutput defines the response for adding a unit
type AddUnitOutput struct {
	ArmySnapshot
	Unit *wh40k.ArmyUnit
}

// RemoveUnitInput defines the request for removing a unit
type RemoveUnitInput struct {
	ArmyID     string
	InstanceID string
}

// RemoveUnitOutput defines the response for removing a unit
type RemoveUnitOutput struct {
	ArmySnapshot
}

// UpdateUnitInput defines the request for editing a unit.
// Nil fields are left unchanged; empty strings clear optional text fields.
type UpdateUnitInput struct {
	ArmyID           string
	InstanceID       string
	ModelCount       *int
	CustomName       *string
	Notes            *string
	AttachedToUnitID *string
}

// UpdateUnitOutput defines the response for editing a unit
type UpdateUnitOutput struct {
	ArmySnapshot
}

// SelectWargearInput defines the request for choosing a wargear option
type SelectWargearInput struct {
	ArmyID     string
	InstanceID string
	OptionID   string
	ChoiceID   string
}

// SelectWargearOutput defines the response for choosing a wargear option
type SelectWargearOutput struct {
	ArmySnapshot
}

// SetEnhancementInput defines the request for toggling an enhancement.
// Assigning the enhancement a unit already holds removes it.
type SetEnhancementInput struct {
	ArmyID        string
	InstanceID    string
	EnhancementID string
}

// SetEnhancementOutput defines the response for toggling an enhancement
type SetEnhancementOutput struct {
	ArmySnapshot
}

// Derived view types

// ValidateArmyInput defines the request for validating an army
type ValidateArmyInput struct {
	ArmyID string
}

// ValidateArmyOutput defines the response for validating an army
type ValidateArmyOutput struct {
	TotalPoints int
	PointsLimit int
	Results     []wh40k.ValidationResult
}

// ExportArmyInput defines the request for exporting an army
type ExportArmyInput struct {
	ArmyID string
}

// ExportArmyOutput defines the response for exporting an army
type ExportArmyOutput struct {
	Text string
}
