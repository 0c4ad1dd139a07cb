// Package catalogue holds the static datasheet and detachment reference data
// armies are built from.
package catalogue

import (
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// Catalogue is read-only lookup over one faction's reference data.
// Absent ids report false rather than an error.
type Catalogue interface {
	// Faction is the name of the faction the catalogue describes
	Faction() string

	FindUnit(id string) (*wh40k.UnitDatasheet, bool)
	FindDetachment(id string) (*wh40k.Detachment, bool)

	// ListUnits returns datasheets in document order
	ListUnits() []*wh40k.UnitDatasheet
	// ListDetachments returns detachments in document order
	ListDetachments() []*wh40k.Detachment
}

type indexed struct {
	faction     string
	units       []*wh40k.UnitDatasheet
	detachments []*wh40k.Detachment
	unitByID    map[string]*wh40k.UnitDatasheet
	detByID     map[string]*wh40k.Detachment
}

// New indexes catalogue data. The data is validated first; see Validate.
func New(data *wh40k.CatalogueData) (Catalogue, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	c := &indexed{
		faction:     data.Faction,
		units:       make([]*wh40k.UnitDatasheet, len(data.Units)),
		detachments: make([]*wh40k.Detachment, len(data.Detachments)),
		unitByID:    make(map[string]*wh40k.UnitDatasheet, len(data.Units)),
		detByID:     make(map[string]*wh40k.Detachment, len(data.Detachments)),
	}

	for i := range data.Units {
		u := &data.Units[i]
		c.units[i] = u
		c.unitByID[u.ID] = u
	}
	for i := range data.Detachments {
		d := &data.Detachments[i]
		c.detachments[i] = d
		c.detByID[d.ID] = d
	}

	return c, nil
}

func (c *indexed) Faction() string {
	return c.faction
}

func (c *indexed) FindUnit(id string) (*wh40k.UnitDatasheet, bool) {
	u, ok := c.unitByID[id]
	return u, ok
}

func (c *indexed) FindDetachment(id string) (*wh40k.Detachment, bool) {
	d, ok := c.detByID[id]
	return d, ok
}

func (c *indexed) ListUnits() []*wh40k.UnitDatasheet {
	out := make([]*wh40k.UnitDatasheet, len(c.units))
	copy(out, c.units)
	return out
}

func (c *indexed) ListDetachments() []*wh40k.Detachment {
	out := make([]*wh40k.Detachment, len(c.detachments))
	copy(out, c.detachments)
	return out
}
