package catalogue

import (
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

// Validate checks catalogue data for duplicate ids, empty wargear options and
// broken composition rules.
func Validate(data *wh40k.CatalogueData) error {
	if data == nil {
		return errors.InvalidArgument("catalogue data is required")
	}

	vb := errors.NewValidationBuilder()

	seenUnits := make(map[string]bool, len(data.Units))
	for i := range data.Units {
		u := &data.Units[i]
		if u.ID == "" {
			vb.Fieldf("units", "unit at index %d has no id", i)
			continue
		}
		if seenUnits[u.ID] {
			vb.Fieldf("units", "duplicate unit id %q", u.ID)
		}
		seenUnits[u.ID] = true

		validateComposition(u, vb)

		for _, opt := range u.WargearOptions {
			if len(opt.Choices) == 0 {
				vb.Fieldf("units."+u.ID, "wargear option %q has no choices", opt.ID)
			}
		}
	}

	seenDetachments := make(map[string]bool, len(data.Detachments))
	for i := range data.Detachments {
		d := &data.Detachments[i]
		if d.ID == "" {
			vb.Fieldf("detachments", "detachment at index %d has no id", i)
			continue
		}
		if seenDetachments[d.ID] {
			vb.Fieldf("detachments", "duplicate detachment id %q", d.ID)
		}
		seenDetachments[d.ID] = true

		seenEnh := make(map[string]bool, len(d.Enhancements))
		for _, e := range d.Enhancements {
			if seenEnh[e.ID] {
				vb.Fieldf("detachments."+d.ID, "duplicate enhancement id %q", e.ID)
			}
			seenEnh[e.ID] = true
		}
	}

	return vb.Build()
}

func validateComposition(u *wh40k.UnitDatasheet, vb *errors.ValidationBuilder) {
	field := "units." + u.ID
	comp := u.UnitComposition

	if comp.MinModels < 1 {
		vb.Fieldf(field, "minModels must be at least 1, got %d", comp.MinModels)
	}
	if comp.MinModels > comp.MaxModels {
		vb.Fieldf(field, "minModels %d exceeds maxModels %d", comp.MinModels, comp.MaxModels)
	}
	if comp.PointsPerAdditionalModel != nil {
		if comp.AdditionalModelMin == nil {
			vb.Field(field, "pointsPerAdditionalModel requires additionalModelMin")
		} else if *comp.AdditionalModelMin > comp.MaxModels {
			vb.Fieldf(field, "additionalModelMin %d exceeds maxModels %d", *comp.AdditionalModelMin, comp.MaxModels)
		}
	}
}
