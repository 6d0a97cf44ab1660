package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/harkonenbade/jadepunk/internal/game/character"
)

func device(name string, mastercrafted bool, mods ...character.Modifier) *character.Asset {
	return character.NewAsset(character.AssetParams{
		Kind:          character.Device,
		Name:          name,
		Functional:    "Sharp enough",
		Mastercrafted: mastercrafted,
		Modifiers:     mods,
	})
}

func TestRefresh_FourFeaturesOneFlaw(t *testing.T) {
	a := device("Blade", false, character.Harmful{Rank: 4}, character.Situational{Text: "Drawn"})

	r := a.Refresh()
	assert.Equal(t, character.Refresh{
		FeatureTotal:        4,
		FlawTotal:           1,
		RequiredFlaws:       1,
		FeaturesFromFlaws:   0,
		FeaturesFromRefresh: 4,
		Cost:                2,
	}, r)

	col := validateAsset(a, true)
	assert.Empty(t, col.Findings(), messages(col.Findings()))
}

func TestRefresh_ExceptionalRaisesRequiredFlaws(t *testing.T) {
	a := device("Lantern", false,
		character.Exceptional{Text: "Burns underwater"},
		character.Harmful{Rank: 3},
		character.Limited{Rank: 2},
	)

	r := a.Refresh()
	assert.Equal(t, 5, r.FeatureTotal)
	assert.Equal(t, 2, r.FlawTotal)
	assert.Equal(t, 2, r.RequiredFlaws)
	assert.Equal(t, 0, r.FeaturesFromFlaws)
	assert.Equal(t, 5, r.FeaturesFromRefresh)
	assert.Equal(t, 3, r.Cost)

	col := validateAsset(a, true)
	assert.True(t, col.Valid(), messages(col.Errors()))
	assert.True(t, containsMessage(col.Warnings(), "You are gaining 5 features from refresh, you could gain 6"))
}

func TestRefresh_MissingExtraFlaw(t *testing.T) {
	a := device("Lantern", false,
		character.Exceptional{Text: "Burns underwater"},
		character.Harmful{Rank: 1},
		character.Situational{Text: "At night"},
	)
	assertError(t, validateAsset(a, true), "Must have at least 2 flaws.")
}

func TestRefresh_Mastercrafted(t *testing.T) {
	tests := []struct {
		name  string
		rank  int
		plain int
		mc    int
	}{
		{"cost two drops to one", 4, 2, 1},
		{"cost one stays one", 2, 1, 1},
		{"cost three drops to two", 6, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := device("X", false, character.Harmful{Rank: tt.rank}, character.Situational{Text: "y"})
			mc := device("X", true, character.Harmful{Rank: tt.rank}, character.Situational{Text: "y"})
			assert.Equal(t, tt.plain, plain.RefreshCost())
			assert.Equal(t, tt.mc, mc.RefreshCost())
		})
	}
}

func TestRefresh_SurplusFlawsWarn(t *testing.T) {
	a := device("Blade", false,
		character.Harmful{Rank: 2},
		character.Limited{Rank: 2},
		character.Situational{Text: "Drawn"},
	)
	assert.Equal(t, 1, a.RefreshCost())

	col := validateAsset(a, true)
	assert.True(t, col.Valid(), messages(col.Errors()))
	assert.True(t, containsMessage(col.Warnings(), "Can have up to 2 features from flaws, currently only has 0."))
}

// Property: an asset never costs less than one refresh.
func TestPropertyRefreshCostAtLeastOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		var mods []character.Modifier
		n := rapid.IntRange(0, 6).Draw(rt, "n")
		for i := 0; i < n; i++ {
			rank := rapid.IntRange(1, 5).Draw(rt, "rank")
			switch rapid.IntRange(0, 3).Draw(rt, "which") {
			case 0:
				mods = append(mods, character.Harmful{Rank: rank})
			case 1:
				mods = append(mods, character.Limited{Rank: rank})
			case 2:
				mods = append(mods, character.Consuming{})
			default:
				mods = append(mods, character.Exceptional{Text: "x"})
			}
		}
		kind := rapid.SampledFrom(character.AssetKinds).Draw(rt, "kind")
		a := character.NewAsset(character.AssetParams{
			Kind:          kind,
			Mastercrafted: rapid.Bool().Draw(rt, "mastercrafted"),
			Modifiers:     mods,
		})
		if c := a.RefreshCost(); c < 1 {
			rt.Fatalf("refresh cost %d < 1 for %v", c, mods)
		}
	})
}

func TestNewAsset_AllyBaseline(t *testing.T) {
	a := character.NewAsset(character.AssetParams{
		Kind:       character.Ally,
		Functional: "Loyal",
		Modifiers:  []character.Modifier{character.Sturdy{Rank: 2}},
	})

	mods := a.Modifiers()
	require.Len(t, mods, 2)
	assert.Equal(t, character.Sturdy{Rank: 2}, mods[0])
	assert.Equal(t, character.Resilient{Rank: 1}, mods[1])
}

func TestNewAsset_AllyBaselineIsFree(t *testing.T) {
	a := character.NewAsset(character.AssetParams{
		Kind:       character.Ally,
		Functional: "Loyal",
		Modifiers: []character.Modifier{
			character.Professional{Rank: 1, Average: []character.AttrKind{character.Fighter}},
		},
	})
	assert.True(t, a.Has("Sturdy"))
	assert.True(t, a.Has("Resilient"))
	assert.Equal(t, 0, a.Refresh().FeatureTotal)
}

func TestNewAsset_DeviceHasNoBaseline(t *testing.T) {
	a := device("Blade", false)
	assert.Empty(t, a.Modifiers())
	assert.Equal(t, "Unnamed Technique", character.NewAsset(character.AssetParams{Kind: character.Technique}).Name())
}

func TestAsset_ModifiersIsACopy(t *testing.T) {
	a := device("Blade", false, character.Harmful{Rank: 1})
	mods := a.Modifiers()
	mods[0] = character.Harmful{Rank: 9}
	assert.Equal(t, character.Harmful{Rank: 1}, a.Modifiers()[0])
}

func TestAsset_FeaturesAndFlawsPartition(t *testing.T) {
	a := device("Blade", false,
		character.Harmful{Rank: 2},
		character.Situational{Text: "Drawn"},
		character.Focus{Attr: character.Fighter, Rank: 1},
	)
	assert.Len(t, a.Features(), 2)
	assert.Len(t, a.Flaws(), 1)
}

func TestAsset_AllyRequiresProfessional(t *testing.T) {
	a := character.NewAsset(character.AssetParams{
		Kind:       character.Ally,
		Functional: "Loyal",
		Modifiers:  []character.Modifier{character.Independent{}, character.Troubling{Text: "Owes money"}},
	})
	assertError(t, validateAsset(a, false), "Allies must have at least one rank of Professional.")
}

func TestAsset_TechniqueAspects(t *testing.T) {
	a := character.NewAsset(character.AssetParams{
		Kind: character.Technique,
		Name: "Iron Palm",
		Modifiers: []character.Modifier{
			character.Focus{Attr: character.Fighter, Rank: 2},
			character.Situational{Text: "Bare handed"},
		},
	})
	col := validateAsset(a, true)
	assertError(t, col, "Asset (Iron Palm): Techniques must have a guiding aspect.")
	assertNoError(t, col, "Requires Situational")
}

func TestAsset_TechniqueFunctionalAspectNeedsApproval(t *testing.T) {
	params := character.AssetParams{
		Kind:       character.Technique,
		Functional: "Fast hands",
		Guiding:    "Strike first",
		Modifiers:  []character.Modifier{character.Harmful{Rank: 2}, character.Situational{Text: "Unarmed"}},
	}
	assertError(t, validateAsset(character.NewAsset(params), true), "Techniques should only have functional aspects with GM approval.")

	params.GMApproved = true
	col := validateAsset(character.NewAsset(params), true)
	assert.True(t, col.Valid(), messages(col.Errors()))
}

func TestAsset_DeviceAspects(t *testing.T) {
	a := character.NewAsset(character.AssetParams{
		Kind:      character.Device,
		Guiding:   "Never used in anger",
		Modifiers: []character.Modifier{character.Harmful{Rank: 2}, character.Situational{Text: "x"}},
	})
	col := validateAsset(a, true)
	assertError(t, col, "Allies and Devices must have functional aspects.")
	assertError(t, col, "Allies and Devices should not have a guiding aspect.")
}

func TestAsset_ChargenMinimums(t *testing.T) {
	a := device("Trinket", false, character.Harmful{Rank: 1})
	col := validateAsset(a, true)
	assertError(t, col, "Assets created at chargen should have at least 2 features.")
	assertError(t, col, "Assets created at chargen should have at least one flaw.")

	col = validateAsset(a, false)
	assertNoError(t, col, "created at chargen")
}

func TestAsset_AdvancementNeedsAFeature(t *testing.T) {
	a := device("Trinket", false, character.Situational{Text: "x"})
	assertError(t, validateAsset(a, false), "Assets should have a feature.")
}

func TestAsset_ModifierFindingsAreScoped(t *testing.T) {
	a := device("Blade", false, character.Harmful{Rank: 2}, character.Focus{Attr: character.Fighter, Rank: 1})
	col := validateAsset(a, true)
	assertError(t, col, "Asset (Blade): Property (Focus): Requires Situational")
}
