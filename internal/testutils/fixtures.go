package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
)

// Datasheet and detachment ids in the test catalogue
const (
	UnitBoss      = "boss"
	UnitEpicHero  = "big-mek-epic"
	UnitMob       = "mob"
	UnitSquad     = "squad"
	UnitFixedFive = "fixed-five"
	UnitTank      = "tank"
	UnitGargant   = "gargant"

	OptionBossWeapon = "boss-weapon"
	ChoiceKlaw       = "klaw"
	ChoiceChoppa     = "big-choppa"
	ChoiceSquig      = "attack-squig"

	DetachmentHorde = "horde"
	DetachmentHunt  = "hunt"

	EnhancementFollowMe = "follow-me-ladz"
	EnhancementKillchop = "killchoppa"
	EnhancementKunnin   = "kunnin"
	EnhancementCybork   = "cybork"
	EnhancementGloryHog = "glory-hog"
	EnhancementKilly    = "proper-killy"
)

func intPtr(v int) *int {
	return &v
}

// TestCatalogueData returns a small catalogue covering every composition shape
func TestCatalogueData() *wh40k.CatalogueData {
	klaw := wh40k.WeaponProfile{ID: ChoiceKlaw, Name: "Power klaw", Type: wh40k.WeaponTypeMelee, Attacks: "4", Skill: "2+", Strength: 9, AP: -2, Damage: "2"}

	return &wh40k.CatalogueData{
		Faction: "Orks",
		Units: []wh40k.UnitDatasheet{
			{
				ID:              UnitBoss,
				Name:            "Warboss",
				Faction:         "Orks",
				Keywords:        []string{"INFANTRY", wh40k.KeywordCharacter},
				UnitComposition: wh40k.CompositionRule{MinModels: 1, MaxModels: 1, PointsPerUnit: 75},
				BaseWeapons:     []wh40k.WeaponProfile{klaw},
				WargearOptions: []wh40k.WargearOption{
					{
						ID:                OptionBossWeapon,
						Name:              "Melee weapon",
						ReplacesWeaponIDs: []string{ChoiceKlaw},
						Choices: []wh40k.WeaponProfile{
							klaw,
							{ID: ChoiceChoppa, Name: "Big choppa", Type: wh40k.WeaponTypeMelee, Attacks: "5", Skill: "2+", Strength: 7, AP: -1, Damage: "2"},
							{ID: ChoiceSquig, Name: "Attack squig", Type: wh40k.WeaponTypeMelee, Attacks: "2", Skill: "4+", Strength: 4, Damage: "1"},
						},
						ModelScope: wh40k.ModelScope{Kind: wh40k.ScopeOne},
					},
				},
				IsLeader: true,
				LeaderOf: []string{UnitMob},
			},
			{
				ID:              UnitEpicHero,
				Name:            "Mad Dok Grotsnik",
				Faction:         "Orks",
				Keywords:        []string{"INFANTRY", wh40k.KeywordCharacter, "EPIC HERO"},
				UnitComposition: wh40k.CompositionRule{MinModels: 1, MaxModels: 1, PointsPerUnit: 55},
				IsEpicHero:      true,
				IsLeader:        true,
			},
			{
				ID:       UnitMob,
				Name:     "Boyz",
				Faction:  "Orks",
				Keywords: []string{"INFANTRY", wh40k.KeywordBattleline},
				UnitComposition: wh40k.CompositionRule{
					MinModels:                10,
					MaxModels:                20,
					PointsPerUnit:            85,
					PointsPerAdditionalModel: intPtr(8),
					AdditionalModelMin:       intPtr(10),
				},
			},
			{
				ID:       UnitSquad,
				Name:     "Nobz",
				Faction:  "Orks",
				Keywords: []string{"INFANTRY"},
				UnitComposition: wh40k.CompositionRule{
					MinModels:                5,
					MaxModels:                20,
					PointsPerUnit:            100,
					PointsPerAdditionalModel: intPtr(20),
					AdditionalModelMin:       intPtr(5),
				},
			},
			{
				ID:       UnitFixedFive,
				Name:     "Burna Boyz",
				Faction:  "Orks",
				Keywords: []string{"INFANTRY"},
				UnitComposition: wh40k.CompositionRule{
					MinModels:                5,
					MaxModels:                5,
					PointsPerUnit:            90,
					PointsPerAdditionalModel: intPtr(10),
					AdditionalModelMin:       intPtr(5),
				},
			},
			{
				ID:              UnitTank,
				Name:            "Battlewagon",
				Faction:         "Orks",
				Keywords:        []string{wh40k.KeywordVehicle},
				UnitComposition: wh40k.CompositionRule{MinModels: 1, MaxModels: 1, PointsPerUnit: 160},
			},
			{
				ID:              UnitGargant,
				Name:            "Stompa",
				Faction:         "Orks",
				Keywords:        []string{wh40k.KeywordVehicle, "TITANIC"},
				UnitComposition: wh40k.CompositionRule{MinModels: 1, MaxModels: 1, PointsPerUnit: 2200},
			},
		},
		Detachments: []wh40k.Detachment{
			{
				ID:             DetachmentHorde,
				Name:           "War Horde",
				DetachmentRule: wh40k.DetachmentRule{Name: "Get Stuck In"},
				Enhancements: []wh40k.Enhancement{
					{ID: EnhancementFollowMe, Name: "Follow Me Ladz", Cost: 25},
					{ID: EnhancementKillchop, Name: "Headwoppa's Killchoppa", Cost: 20},
					{ID: EnhancementKunnin, Name: "Kunnin' But Brutal", Cost: 15},
					{ID: EnhancementCybork, Name: "Supa-Cybork Body", Cost: 15},
				},
			},
			{
				ID:             DetachmentHunt,
				Name:           "Da Big Hunt",
				DetachmentRule: wh40k.DetachmentRule{Name: "Da Hunt Is On"},
				Enhancements: []wh40k.Enhancement{
					{ID: EnhancementGloryHog, Name: "Glory Hog", Cost: 20, ExclusiveWith: []string{EnhancementKilly}},
					{ID: EnhancementKilly, Name: "Proper Killy", Cost: 20},
				},
			},
		},
	}
}

// TestCatalogue indexes TestCatalogueData
func TestCatalogue(t testing.TB) catalogue.Catalogue {
	t.Helper()

	c, err := catalogue.New(TestCatalogueData())
	require.NoError(t, err, "failed to build test catalogue")
	return c
}
