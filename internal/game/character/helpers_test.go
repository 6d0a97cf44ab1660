package character_test

import (
	"strings"
	"testing"

	"github.com/harkonenbade/jadepunk/internal/game/character"
	"github.com/harkonenbade/jadepunk/internal/game/validation"
)

func messages(fs []validation.Finding) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

func containsMessage(fs []validation.Finding, substr string) bool {
	for _, f := range fs {
		if strings.Contains(f.String(), substr) {
			return true
		}
	}
	return false
}

func assertError(t testing.TB, col *validation.Collector, substr string) {
	t.Helper()
	if !containsMessage(col.Errors(), substr) {
		t.Errorf("expected an error containing %q, got %q", substr, messages(col.Errors()))
	}
}

func assertNoError(t testing.TB, col *validation.Collector, substr string) {
	t.Helper()
	if containsMessage(col.Errors(), substr) {
		t.Errorf("expected no error containing %q, got %q", substr, messages(col.Errors()))
	}
}

func validateAsset(a *character.Asset, newChar bool) *validation.Collector {
	col := validation.NewCollector(newChar, nil)
	a.Validate(col.Scope(""))
	return col
}

func validAttributes() character.Attributes {
	return character.Attributes{
		character.Aristocrat: 3,
		character.Engineer:   0,
		character.Explorer:   1,
		character.Fighter:    2,
		character.Scholar:    2,
		character.Scoundrel:  1,
	}
}

func validAspects() character.Aspects {
	return character.Aspects{
		character.Portrayal:        `I am but a "simple musician"`,
		character.Background:       "Jewel in their father's crown",
		character.IncitingIncident: "Trying to leave it all behind",
		character.Belief:           "The corrupt elite only think of themselves",
		character.Trouble:          "Runaway child of a councillor",
	}
}

// mitsune is a legal starting character with two assets costing one refresh each.
func mitsune() *character.Character {
	c := character.New("Kaneko Mitsune", validAspects(), validAttributes(),
		character.NewAsset(character.AssetParams{
			Kind:       character.Device,
			Name:       "Kashi-dori",
			Functional: "White-Jade Shamisen",
			Modifiers: []character.Modifier{
				character.Focus{Attr: character.Aristocrat, Rank: 2},
				character.Harmful{Rank: 1},
				character.Situational{Text: "While being played"},
				character.Troubling{Text: "The prize of a treasury"},
			},
		}),
		character.NewAsset(character.AssetParams{
			Kind:       character.Technique,
			Name:       "School of the Desert Sirocco",
			Functional: "Student of the Desert Sirocco",
			Guiding:    "Jewel in their father's crown",
			GMApproved: true,
			Modifiers: []character.Modifier{
				character.Flexible{Replacing: character.Fighter, Replaced: character.Explorer},
				character.Situational{Text: "I need space to perform"},
			},
		}),
	)
	c.Background = "Daughter of a councillor, kept like a bird in a cage."
	return c
}
