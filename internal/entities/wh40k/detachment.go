package wh40k

// Enhancement is an upgrade a single CHARACTER can take.
// ExclusiveWith lists enhancement IDs it cannot be combined with.
type Enhancement struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cost          int      `json:"cost"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords,omitempty"`
	ExclusiveWith []string `json:"exclusiveWith,omitempty"`
}

// StratagemType categorises stratagems
type StratagemType string

// Stratagem types
const (
	StratagemBattleTactic  StratagemType = "Battle Tactic"
	StratagemStrategicPloy StratagemType = "Strategic Ploy"
	StratagemWargear       StratagemType = "Wargear"
	StratagemEpicDeed      StratagemType = "Epic Deed"
)

// Stratagem is a command-point ability granted by a detachment
type Stratagem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Cost         int           `json:"cost"`
	Phase        string        `json:"phase"`
	Type         StratagemType `json:"type"`
	When         string        `json:"when"`
	Target       string        `json:"target"`
	Effect       string        `json:"effect"`
	Restrictions string        `json:"restrictions,omitempty"`
}

// DetachmentRule is the army-wide rule a detachment grants
type DetachmentRule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Detachment bundles a rule, enhancements and stratagems chosen once per army
type Detachment struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	DetachmentRule DetachmentRule `json:"detachmentRule"`
	Enhancements   []Enhancement  `json:"enhancements"`
	Stratagems     []Stratagem    `json:"stratagems"`
}

// FindEnhancement looks up one of the detachment's enhancements by ID
func (d *Detachment) FindEnhancement(id string) (*Enhancement, bool) {
	for i := range d.Enhancements {
		if d.Enhancements[i].ID == id {
			return &d.Enhancements[i], true
		}
	}
	return nil, false
}

// CatalogueData is the document shape the catalogue is loaded from
type CatalogueData struct {
	Faction     string          `json:"faction"`
	Units       []UnitDatasheet `json:"units"`
	Detachments []Detachment    `json:"detachments"`
}
