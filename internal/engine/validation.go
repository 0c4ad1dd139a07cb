package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

const (
	battlelineThreshold = 3
	efficientRatio      = 0.95
)

// ValidatorConfig configures a Validator
type ValidatorConfig struct {
	Catalogue catalogue.Catalogue

	// EnforceEnhancementExclusivity adds a check that reads the exclusiveWith
	// lists of enhancements. Off by default.
	EnforceEnhancementExclusivity bool
}

// Validate validates the configuration
func (cfg *ValidatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}

	return vb.Build()
}

// Validator checks army lists against the army construction rules
type Validator struct {
	catalogue          catalogue.Catalogue
	enforceExclusivity bool
}

// NewValidator creates a validator
func NewValidator(cfg *ValidatorConfig) (*Validator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Validator{
		catalogue:          cfg.Catalogue,
		enforceExclusivity: cfg.EnforceEnhancementExclusivity,
	}, nil
}

// Validate runs the default rule set against an army
func Validate(army *wh40k.ArmyList, cat catalogue.Catalogue) []wh40k.ValidationResult {
	v := &Validator{catalogue: cat}
	return v.Validate(army)
}

// Validate returns every finding for the army, errors first, then warnings,
// then info. It never fails and the same input always yields the same output.
func (v *Validator) Validate(army *wh40k.ArmyList) []wh40k.ValidationResult {
	results := []wh40k.ValidationResult{}
	if army == nil {
		return results
	}

	total := TotalPoints(army)

	if !army.HasDetachment() {
		results = append(results, errorResult(
			"No detachment selected — pick a Detachment before battling!", ""))
	}

	if total > army.PointsLimit {
		results = append(results, errorResult(
			fmt.Sprintf("Army is %dpts over the %dpt limit.", total-army.PointsLimit, army.PointsLimit), ""))
	}

	enhanced := enhancedUnits(army)
	if len(enhanced) > MaxEnhancements {
		results = append(results, errorResult(
			fmt.Sprintf("Too many enhancements (%d). Maximum %d allowed per army.", len(enhanced), MaxEnhancements), ""))
	}

	for _, unit := range enhanced {
		datasheet, ok := v.catalogue.FindUnit(unit.DatasheetID)
		if ok && !datasheet.HasKeyword(wh40k.KeywordCharacter) {
			results = append(results, errorResult(
				fmt.Sprintf("%s has an enhancement but is not a CHARACTER.", datasheet.Name), unit.InstanceID))
		}
	}

	results = append(results, v.checkDetachmentEnhancements(army, enhanced)...)

	if v.enforceExclusivity {
		results = append(results, v.checkExclusiveEnhancements(army, enhanced)...)
	}

	results = append(results, v.checkEpicHeroes(army)...)

	for i := range army.Units {
		unit := &army.Units[i]
		datasheet, ok := v.catalogue.FindUnit(unit.DatasheetID)
		if !ok {
			continue
		}
		comp := datasheet.UnitComposition
		if unit.ModelCount < comp.MinModels || unit.ModelCount > comp.MaxModels {
			results = append(results, errorResult(
				fmt.Sprintf("%s has %d models — must be %d–%d.", datasheet.Name, unit.ModelCount, comp.MinModels, comp.MaxModels),
				unit.InstanceID))
		}
	}

	if len(army.Units) >= battlelineThreshold && !v.hasBattleline(army) {
		results = append(results, wh40k.ValidationResult{
			Severity: wh40k.SeverityWarning,
			Message:  "No BATTLELINE units in the army. Consider adding Boyz for objective control.",
		})
	}

	if total > 0 && total <= army.PointsLimit {
		pct := float64(total) / float64(army.PointsLimit)
		if pct >= efficientRatio {
			results = append(results, wh40k.ValidationResult{
				Severity: wh40k.SeverityInfo,
				Message:  fmt.Sprintf("Army is at %d%% of the points limit — nicely efficient!", int(math.Floor(pct*100+0.5))),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Severity.Rank() < results[j].Severity.Rank()
	})

	return results
}

// checkDetachmentEnhancements flags enhancements that the selected detachment
// does not offer. An unknown detachment offers nothing.
func (v *Validator) checkDetachmentEnhancements(army *wh40k.ArmyList, enhanced []*wh40k.ArmyUnit) []wh40k.ValidationResult {
	if !army.HasDetachment() {
		return nil
	}

	detachment, _ := v.catalogue.FindDetachment(*army.DetachmentID)

	var results []wh40k.ValidationResult
	for _, unit := range enhanced {
		if detachment != nil {
			if _, ok := detachment.FindEnhancement(*unit.EnhancementID); ok {
				continue
			}
		}
		results = append(results, errorResult(
			"Enhancement on a unit is not valid for the selected detachment.", unit.InstanceID))
	}
	return results
}

// checkExclusiveEnhancements reports each pair of enhancements in the army
// that exclude one another, once per pair.
func (v *Validator) checkExclusiveEnhancements(army *wh40k.ArmyList, enhanced []*wh40k.ArmyUnit) []wh40k.ValidationResult {
	var resolved []*wh40k.Enhancement
	for _, unit := range enhanced {
		if e, ok := FindEnhancement(army, unit, v.catalogue); ok {
			resolved = append(resolved, e)
		}
	}

	var results []wh40k.ValidationResult
	for i := 0; i < len(resolved); i++ {
		for j := i + 1; j < len(resolved); j++ {
			a, b := resolved[i], resolved[j]
			if contains(a.ExclusiveWith, b.ID) || contains(b.ExclusiveWith, a.ID) {
				results = append(results, errorResult(
					fmt.Sprintf("%s cannot be taken alongside %s.", a.Name, b.Name), ""))
			}
		}
	}
	return results
}

// checkEpicHeroes reports each duplicated epic hero once, in order of first
// appearance.
func (v *Validator) checkEpicHeroes(army *wh40k.ArmyList) []wh40k.ValidationResult {
	counts := make(map[string]int)
	var order []*wh40k.UnitDatasheet

	for i := range army.Units {
		datasheet, ok := v.catalogue.FindUnit(army.Units[i].DatasheetID)
		if !ok || !datasheet.IsEpicHero {
			continue
		}
		if counts[datasheet.ID] == 0 {
			order = append(order, datasheet)
		}
		counts[datasheet.ID]++
	}

	var results []wh40k.ValidationResult
	for _, datasheet := range order {
		if counts[datasheet.ID] > 1 {
			results = append(results, errorResult(
				fmt.Sprintf("%s is an EPIC HERO and can only appear once.", datasheet.Name), ""))
		}
	}
	return results
}

func (v *Validator) hasBattleline(army *wh40k.ArmyList) bool {
	for i := range army.Units {
		datasheet, ok := v.catalogue.FindUnit(army.Units[i].DatasheetID)
		if ok && datasheet.HasKeyword(wh40k.KeywordBattleline) {
			return true
		}
	}
	return false
}

func enhancedUnits(army *wh40k.ArmyList) []*wh40k.ArmyUnit {
	var out []*wh40k.ArmyUnit
	for i := range army.Units {
		if army.Units[i].HasEnhancement() {
			out = append(out, &army.Units[i])
		}
	}
	return out
}

func errorResult(message, instanceID string) wh40k.ValidationResult {
	return wh40k.ValidationResult{
		Severity:       wh40k.SeverityError,
		Message:        message,
		UnitInstanceID: instanceID,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
