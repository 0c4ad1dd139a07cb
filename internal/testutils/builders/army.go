// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// ArmyBuilder provides a fluent interface for building test ArmyList instances
type ArmyBuilder struct {
	army *wh40k.ArmyList
}

// NewArmyBuilder creates a new builder with minimal defaults
func NewArmyBuilder() *ArmyBuilder {
	const createdAt = int64(1_700_000_000_000)
	return &ArmyBuilder{
		army: &wh40k.ArmyList{
			ID:          "army-test-001",
			Name:        "Da Green Tide",
			PointsLimit: wh40k.DefaultPointsLimit,
			Units:       []wh40k.ArmyUnit{},
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
	}
}

// WithID sets the army ID
func (b *ArmyBuilder) WithID(id string) *ArmyBuilder {
	b.army.ID = id
	return b
}

// WithName sets the army name
func (b *ArmyBuilder) WithName(name string) *ArmyBuilder {
	b.army.Name = name
	return b
}

// WithPointsLimit sets the points limit
func (b *ArmyBuilder) WithPointsLimit(limit int) *ArmyBuilder {
	b.army.PointsLimit = limit
	return b
}

// WithDetachment selects a detachment
func (b *ArmyBuilder) WithDetachment(id string) *ArmyBuilder {
	b.army.DetachmentID = &id
	return b
}

// WithTimestamps sets createdAt and updatedAt
func (b *ArmyBuilder) WithTimestamps(createdAt, updatedAt int64) *ArmyBuilder {
	b.army.CreatedAt = createdAt
	b.army.UpdatedAt = updatedAt
	return b
}

// WithUnit appends a unit with a generated instance id
func (b *ArmyBuilder) WithUnit(datasheetID string, modelCount, points int) *ArmyBuilder {
	return b.WithUnitInstance(NewUnitBuilder(datasheetID).
		WithInstanceID(fmt.Sprintf("unit-%d", len(b.army.Units)+1)).
		WithModelCount(modelCount).
		WithPoints(points).
		Build())
}

// WithUnitInstance appends a fully built unit
func (b *ArmyBuilder) WithUnitInstance(unit wh40k.ArmyUnit) *ArmyBuilder {
	b.army.Units = append(b.army.Units, unit)
	return b
}

// Build returns a copy of the built army
func (b *ArmyBuilder) Build() *wh40k.ArmyList {
	return b.army.Clone()
}

// UnitBuilder provides a fluent interface for building test ArmyUnit instances
type UnitBuilder struct {
	unit wh40k.ArmyUnit
}

// NewUnitBuilder creates a single-model unit of the given datasheet
func NewUnitBuilder(datasheetID string) *UnitBuilder {
	return &UnitBuilder{
		unit: wh40k.ArmyUnit{
			InstanceID:  "unit-test-001",
			DatasheetID: datasheetID,
			ModelCount:  1,
			Wargear:     []wh40k.SelectedWargear{},
		},
	}
}

// WithInstanceID sets the instance ID
func (b *UnitBuilder) WithInstanceID(id string) *UnitBuilder {
	b.unit.InstanceID = id
	return b
}

// WithModelCount sets the model count
func (b *UnitBuilder) WithModelCount(n int) *UnitBuilder {
	b.unit.ModelCount = n
	return b
}

// WithPoints sets the cached cost
func (b *UnitBuilder) WithPoints(points int) *UnitBuilder {
	b.unit.ComputedPoints = points
	return b
}

// WithCustomName sets the custom name
func (b *UnitBuilder) WithCustomName(name string) *UnitBuilder {
	b.unit.CustomName = name
	return b
}

// WithEnhancement assigns an enhancement
func (b *UnitBuilder) WithEnhancement(id string) *UnitBuilder {
	b.unit.EnhancementID = &id
	return b
}

// WithWargear records an explicit wargear selection
func (b *UnitBuilder) WithWargear(optionID, choiceID string) *UnitBuilder {
	b.unit.Wargear = append(b.unit.Wargear, wh40k.SelectedWargear{
		OptionID:         optionID,
		SelectedChoiceID: choiceID,
	})
	return b
}

// Build returns a copy of the built unit
func (b *UnitBuilder) Build() wh40k.ArmyUnit {
	return b.unit.Clone()
}
