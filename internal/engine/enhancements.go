package engine

import (
	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// MaxEnhancements is the most enhancements one army may carry
const MaxEnhancements = 3

// ToggleEnhancement returns the enhancement a unit holds after assigning id.
// Assigning the id it already holds clears it. Legality is left to validation.
func ToggleEnhancement(current *string, id string) *string {
	if current != nil && *current == id {
		return nil
	}
	next := id
	return &next
}

// FindEnhancement resolves a unit's enhancement through the army's selected
// detachment.
func FindEnhancement(army *wh40k.ArmyList, unit *wh40k.ArmyUnit, cat catalogue.Catalogue) (*wh40k.Enhancement, bool) {
	if !unit.HasEnhancement() || !army.HasDetachment() {
		return nil, false
	}
	detachment, ok := cat.FindDetachment(*army.DetachmentID)
	if !ok {
		return nil, false
	}
	return detachment.FindEnhancement(*unit.EnhancementID)
}
