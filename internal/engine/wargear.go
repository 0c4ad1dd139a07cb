package engine

import (
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// EffectiveChoice returns the choice a unit is using for an option: its
// explicit selection when that still names a valid choice, otherwise the
// option's default. Nil only when the option has no choices.
func EffectiveChoice(option *wh40k.WargearOption, unit *wh40k.ArmyUnit) *wh40k.WeaponProfile {
	if selected, ok := unit.FindWargear(option.ID); ok {
		if choice, ok := option.FindChoice(selected.SelectedChoiceID); ok {
			return choice
		}
	}
	return option.DefaultChoice()
}

// IsDefaultChoice reports whether choiceID is the option's first choice
func IsDefaultChoice(option *wh40k.WargearOption, choiceID string) bool {
	def := option.DefaultChoice()
	return def != nil && def.ID == choiceID
}

// SelectWargear returns the unit's wargear after picking choiceID for option.
// Picking the default drops the entry, anything else replaces the existing
// entry in place or appends one. The input slice is not modified.
func SelectWargear(current []wh40k.SelectedWargear, option *wh40k.WargearOption, choiceID string) []wh40k.SelectedWargear {
	out := make([]wh40k.SelectedWargear, 0, len(current)+1)

	if IsDefaultChoice(option, choiceID) {
		for _, w := range current {
			if w.OptionID != option.ID {
				out = append(out, w)
			}
		}
		return out
	}

	replaced := false
	for _, w := range current {
		if w.OptionID == option.ID {
			if replaced {
				continue
			}
			w.SelectedChoiceID = choiceID
			replaced = true
		}
		out = append(out, w)
	}
	if !replaced {
		out = append(out, wh40k.SelectedWargear{
			OptionID:         option.ID,
			SelectedChoiceID: choiceID,
		})
	}
	return out
}
