package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/waaagh-api/internal/engine"
	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/testutils"
	"github.com/KirkDiggler/waaagh-api/internal/testutils/builders"
)

func bossWeaponOption(t *testing.T) *wh40k.WargearOption {
	t.Helper()
	boss, ok := testutils.TestCatalogue(t).FindUnit(testutils.UnitBoss)
	require.True(t, ok)
	opt, ok := boss.FindWargearOption(testutils.OptionBossWeapon)
	require.True(t, ok)
	return opt
}

func TestEffectiveChoice(t *testing.T) {
	opt := bossWeaponOption(t)

	t.Run("no entry uses default", func(t *testing.T) {
		unit := builders.NewUnitBuilder(testutils.UnitBoss).Build()
		assert.Equal(t, testutils.ChoiceKlaw, engine.EffectiveChoice(opt, &unit).ID)
	})

	t.Run("explicit entry wins", func(t *testing.T) {
		unit := builders.NewUnitBuilder(testutils.UnitBoss).
			WithWargear(testutils.OptionBossWeapon, testutils.ChoiceSquig).
			Build()
		assert.Equal(t, testutils.ChoiceSquig, engine.EffectiveChoice(opt, &unit).ID)
	})

	t.Run("stale entry falls back to default", func(t *testing.T) {
		unit := builders.NewUnitBuilder(testutils.UnitBoss).
			WithWargear(testutils.OptionBossWeapon, "removed-choice").
			Build()
		assert.Equal(t, testutils.ChoiceKlaw, engine.EffectiveChoice(opt, &unit).ID)
	})
}

func TestSelectWargear(t *testing.T) {
	opt := bossWeaponOption(t)
	other := wh40k.SelectedWargear{OptionID: "other", SelectedChoiceID: "x"}

	t.Run("default choice leaves no entry", func(t *testing.T) {
		got := engine.SelectWargear(nil, opt, testutils.ChoiceKlaw)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("non default choice appends one entry", func(t *testing.T) {
		got := engine.SelectWargear([]wh40k.SelectedWargear{other}, opt, testutils.ChoiceChoppa)
		assert.Equal(t, []wh40k.SelectedWargear{
			other,
			{OptionID: testutils.OptionBossWeapon, SelectedChoiceID: testutils.ChoiceChoppa},
		}, got)
	})

	t.Run("second non default choice replaces in place", func(t *testing.T) {
		current := []wh40k.SelectedWargear{
			{OptionID: testutils.OptionBossWeapon, SelectedChoiceID: testutils.ChoiceChoppa},
			other,
		}
		got := engine.SelectWargear(current, opt, testutils.ChoiceSquig)
		assert.Equal(t, []wh40k.SelectedWargear{
			{OptionID: testutils.OptionBossWeapon, SelectedChoiceID: testutils.ChoiceSquig},
			other,
		}, got)
		assert.Equal(t, testutils.ChoiceChoppa, current[0].SelectedChoiceID, "input must not change")
	})

	t.Run("returning to default removes the entry", func(t *testing.T) {
		current := []wh40k.SelectedWargear{
			other,
			{OptionID: testutils.OptionBossWeapon, SelectedChoiceID: testutils.ChoiceChoppa},
		}
		got := engine.SelectWargear(current, opt, testutils.ChoiceKlaw)
		assert.Equal(t, []wh40k.SelectedWargear{other}, got)
	})
}

func TestIsDefaultChoice(t *testing.T) {
	opt := bossWeaponOption(t)

	assert.True(t, engine.IsDefaultChoice(opt, testutils.ChoiceKlaw))
	assert.False(t, engine.IsDefaultChoice(opt, testutils.ChoiceSquig))
	assert.False(t, engine.IsDefaultChoice(&wh40k.WargearOption{}, ""))
}
