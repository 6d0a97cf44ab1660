package character_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/harkonenbade/jadepunk/internal/game/character"
)

func TestParseAttrKind(t *testing.T) {
	for _, in := range []string{"FIGHTER", "fighter", "Fighter", " fighter "} {
		k, err := character.ParseAttrKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, character.Fighter, k)
	}
	_, err := character.ParseAttrKind("Bard")
	assert.ErrorIs(t, err, character.ErrUnknownKind)
}

func TestParseAspectKind(t *testing.T) {
	for _, in := range []string{"INCITING_INCIDENT", "inciting incident", "Inciting-Incident"} {
		k, err := character.ParseAspectKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, character.IncitingIncident, k)
	}
	_, err := character.ParseAspectKind("Motto")
	assert.ErrorIs(t, err, character.ErrUnknownKind)
}

func TestParseAssetKind(t *testing.T) {
	tests := map[string]character.AssetKind{
		"DEVICE":    character.Device,
		"technique": character.Technique,
		"TECH":      character.Technique,
		"Ally":      character.Ally,
	}
	for in, want := range tests {
		k, err := character.ParseAssetKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, k, in)
	}
	_, err := character.ParseAssetKind("Vehicle")
	assert.ErrorIs(t, err, character.ErrUnknownKind)
}

// Property: every attribute name parses back to itself in upper and lower case.
func TestPropertyAttrKindCaseInsensitive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.SampledFrom(character.AttrKinds).Draw(rt, "kind")
		for _, in := range []string{strings.ToUpper(string(k)), strings.ToLower(string(k))} {
			got, err := character.ParseAttrKind(in)
			if err != nil || got != k {
				rt.Fatalf("ParseAttrKind(%q) = %q, %v", in, got, err)
			}
		}
	})
}
