package wh40k

// Well-known datasheet keywords used by the army rules
const (
	KeywordCharacter  = "CHARACTER"
	KeywordBattleline = "BATTLELINE"
	KeywordVehicle    = "VEHICLE"
)

// WeaponType distinguishes melee from ranged profiles
type WeaponType string

// Weapon types
const (
	WeaponTypeMelee  WeaponType = "Melee"
	WeaponTypeRanged WeaponType = "Ranged"
)

// WeaponProfile is a single weapon line on a datasheet
type WeaponProfile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      WeaponType `json:"type"`
	Range     string     `json:"range,omitempty"`
	Attacks   string     `json:"attacks"`
	Skill     string     `json:"skill"`
	Strength  int        `json:"strength"`
	AP        int        `json:"ap"`
	Damage    string     `json:"damage"`
	Abilities []string   `json:"abilities,omitempty"`
}

// WargearOption is a slot on a datasheet offering mutually exclusive choices.
// The first choice is the default loadout.
type WargearOption struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	IsGroup           bool            `json:"isGroup"`
	ReplacementText   string          `json:"replacementText"`
	ReplacesWeaponIDs []string        `json:"replacesWeaponIds"`
	Choices           []WeaponProfile `json:"choices"`
	ModelScope        ModelScope      `json:"modelScope"`
}

// DefaultChoice returns the first choice, or nil when the option has none
func (o *WargearOption) DefaultChoice() *WeaponProfile {
	if len(o.Choices) == 0 {
		return nil
	}
	return &o.Choices[0]
}

// FindChoice looks up a choice by ID
func (o *WargearOption) FindChoice(id string) (*WeaponProfile, bool) {
	for i := range o.Choices {
		if o.Choices[i].ID == id {
			return &o.Choices[i], true
		}
	}
	return nil, false
}

// CompositionRule holds the model count bounds and the points formula for a datasheet.
// PointsPerAdditionalModel and AdditionalModelMin are only meaningful together.
type CompositionRule struct {
	MinModels                int  `json:"minModels"`
	MaxModels                int  `json:"maxModels"`
	PointsPerUnit            int  `json:"pointsPerUnit"`
	PointsPerAdditionalModel *int `json:"pointsPerAdditionalModel,omitempty"`
	AdditionalModelMin       *int `json:"additionalModelMin,omitempty"`
}

// FixedSize reports whether the unit always fields the same number of models
func (c CompositionRule) FixedSize() bool {
	return c.MinModels == c.MaxModels
}

// UnitStats is the profile line of a datasheet
type UnitStats struct {
	M         string `json:"M"`
	T         int    `json:"T"`
	Sv        string `json:"Sv"`
	W         int    `json:"W"`
	Ld        string `json:"Ld"`
	OC        int    `json:"OC"`
	InvulSave string `json:"invulSave,omitempty"`
}

// AbilityType categorises datasheet abilities
type AbilityType string

// Ability types
const (
	AbilityTypeCore    AbilityType = "Core"
	AbilityTypeFaction AbilityType = "Faction"
	AbilityTypeUnit    AbilityType = "Unit"
	AbilityTypeLeader  AbilityType = "Leader"
)

// UnitAbility is a named rule printed on a datasheet
type UnitAbility struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AbilityType `json:"type"`
	Description string      `json:"description"`
}

// UnitDatasheet describes a unit type in the catalogue
type UnitDatasheet struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Faction         string          `json:"faction"`
	Keywords        []string        `json:"keywords"`
	UnitComposition CompositionRule `json:"unitComposition"`
	Stats           UnitStats       `json:"stats"`
	BaseWeapons     []WeaponProfile `json:"baseWeapons"`
	WargearOptions  []WargearOption `json:"wargearOptions"`
	Abilities       []UnitAbility   `json:"abilities"`
	IsEpicHero      bool            `json:"isEpicHero"`
	IsLeader        bool            `json:"isLeader"`
	LeaderOf        []string        `json:"leaderOf,omitempty"`
	Fluff           string          `json:"fluff,omitempty"`
}

// HasKeyword reports whether the datasheet carries the given keyword
func (u *UnitDatasheet) HasKeyword(keyword string) bool {
	for _, k := range u.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// FindWargearOption looks up one of the datasheet's wargear options by ID
func (u *UnitDatasheet) FindWargearOption(id string) (*WargearOption, bool) {
	for i := range u.WargearOptions {
		if u.WargearOptions[i].ID == id {
			return &u.WargearOptions[i], true
		}
	}
	return nil, false
}
