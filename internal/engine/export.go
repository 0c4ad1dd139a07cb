package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// UnitDisplayName is the custom name with the datasheet name in brackets, or
// just the datasheet name.
func UnitDisplayName(unit *wh40k.ArmyUnit, datasheet *wh40k.UnitDatasheet) string {
	if unit.CustomName != "" {
		return fmt.Sprintf("%s (%s)", unit.CustomName, datasheet.Name)
	}
	return datasheet.Name
}

// ExportText renders an army as a plain-text roster for sharing. Units with
// an unknown datasheet are left out.
func ExportText(army *wh40k.ArmyList, cat catalogue.Catalogue) string {
	total := TotalPoints(army)

	detachmentName := "None"
	if army.HasDetachment() {
		if d, ok := cat.FindDetachment(*army.DetachmentID); ok {
			detachmentName = d.Name
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", army.Name)
	fmt.Fprintf(&b, "Detachment: %s\n", detachmentName)
	fmt.Fprintf(&b, "Points: %d/%d\n", total, army.PointsLimit)
	b.WriteString("\n")

	for i := range army.Units {
		unit := &army.Units[i]
		datasheet, ok := cat.FindUnit(unit.DatasheetID)
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "+ %s [%dpts]\n", UnitDisplayName(unit, datasheet), unit.ComputedPoints)

		if !datasheet.UnitComposition.FixedSize() {
			fmt.Fprintf(&b, "  Models: %d\n", unit.ModelCount)
		}

		for j := range datasheet.WargearOptions {
			option := &datasheet.WargearOptions[j]
			selected, ok := unit.FindWargear(option.ID)
			if !ok {
				continue
			}
			choice, ok := option.FindChoice(selected.SelectedChoiceID)
			if ok && !IsDefaultChoice(option, choice.ID) {
				fmt.Fprintf(&b, "  %s: %s\n", option.Name, choice.Name)
			}
		}

		if e, ok := FindEnhancement(army, unit, cat); ok {
			fmt.Fprintf(&b, "  Enhancement: %s [%dpts]\n", e.Name, e.Cost)
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "TOTAL: %d/%dpts", total, army.PointsLimit)

	return b.String()
}
