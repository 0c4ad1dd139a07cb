package wh40k

// DefaultPointsLimit is the points limit of a new army when none is given
const DefaultPointsLimit = 2000

// SelectedWargear records a non-default choice for one wargear option
type SelectedWargear struct {
	OptionID         string `json:"optionId"`
	SelectedChoiceID string `json:"selectedChoiceId"`
}

// ArmyUnit is one unit instance inside an army list.
// ComputedPoints is a cached copy of the unit cost for the current ModelCount
// and is rewritten by every mutation that can change it.
type ArmyUnit struct {
	InstanceID       string            `json:"instanceId"`
	DatasheetID      string            `json:"datasheetId"`
	CustomName       string            `json:"customName,omitempty"`
	ModelCount       int               `json:"modelCount"`
	Wargear          []SelectedWargear `json:"wargear"`
	EnhancementID    *string           `json:"enhancementId,omitempty"`
	ComputedPoints   int               `json:"computedPoints"`
	AttachedToUnitID string            `json:"attachedToUnitId,omitempty"`
	Notes            string            `json:"notes,omitempty"`
}

// HasEnhancement reports whether an enhancement is assigned
func (u *ArmyUnit) HasEnhancement() bool {
	return u.EnhancementID != nil && *u.EnhancementID != ""
}

// FindWargear returns the explicit selection for an option, if any
func (u *ArmyUnit) FindWargear(optionID string) (SelectedWargear, bool) {
	for _, w := range u.Wargear {
		if w.OptionID == optionID {
			return w, true
		}
	}
	return SelectedWargear{}, false
}

// Clone returns a deep copy of the unit
func (u *ArmyUnit) Clone() ArmyUnit {
	c := *u
	if u.Wargear != nil {
		c.Wargear = make([]SelectedWargear, len(u.Wargear))
		copy(c.Wargear, u.Wargear)
	}
	if u.EnhancementID != nil {
		id := *u.EnhancementID
		c.EnhancementID = &id
	}
	return c
}

// ArmyList is the root aggregate of a user's roster. A nil DetachmentID means
// no detachment has been chosen. Timestamps are Unix milliseconds.
type ArmyList struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	DetachmentID *string    `json:"detachmentId"`
	PointsLimit  int        `json:"pointsLimit"`
	Units        []ArmyUnit `json:"units"`
	CreatedAt    int64      `json:"createdAt"`
	UpdatedAt    int64      `json:"updatedAt"`
}

// HasDetachment reports whether a detachment is selected
func (a *ArmyList) HasDetachment() bool {
	return a.DetachmentID != nil && *a.DetachmentID != ""
}

// FindUnit returns the index of a unit instance, or -1
func (a *ArmyList) FindUnit(instanceID string) int {
	for i := range a.Units {
		if a.Units[i].InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the army list
func (a *ArmyList) Clone() *ArmyList {
	if a == nil {
		return nil
	}
	c := *a
	if a.DetachmentID != nil {
		id := *a.DetachmentID
		c.DetachmentID = &id
	}
	c.Units = make([]ArmyUnit, len(a.Units))
	for i := range a.Units {
		c.Units[i] = a.Units[i].Clone()
	}
	return &c
}
