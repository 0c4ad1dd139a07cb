package engine

import (
	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// CalculateUnitPoints returns the cost of a unit fielding modelCount models.
// The additional-model term applies only when both of its fields are set.
// Wargear and enhancements never change the result.
func CalculateUnitPoints(modelCount int, rule wh40k.CompositionRule) int {
	points := rule.PointsPerUnit

	if rule.PointsPerAdditionalModel != nil && rule.AdditionalModelMin != nil {
		extra := modelCount - *rule.AdditionalModelMin
		if extra > 0 {
			points += extra * *rule.PointsPerAdditionalModel
		}
	}

	return points
}

// RecomputeUnitPoints refreshes the cached cost of a unit. When the datasheet
// is unknown the cached value is left alone and false is returned.
func RecomputeUnitPoints(unit *wh40k.ArmyUnit, cat catalogue.Catalogue) bool {
	datasheet, ok := cat.FindUnit(unit.DatasheetID)
	if !ok {
		return false
	}
	unit.ComputedPoints = CalculateUnitPoints(unit.ModelCount, datasheet.UnitComposition)
	return true
}

// TotalPoints sums the cached unit costs of an army
func TotalPoints(army *wh40k.ArmyList) int {
	if army == nil {
		return 0
	}

	total := 0
	for i := range army.Units {
		total += army.Units[i].ComputedPoints
	}
	return total
}
