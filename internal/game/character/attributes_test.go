package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/harkonenbade/jadepunk/internal/game/character"
	"github.com/harkonenbade/jadepunk/internal/game/validation"
)

func validateAttrs(a character.Attributes, newChar bool) *validation.Collector {
	col := validation.NewCollector(newChar, nil)
	a.Validate(col.Scope(""))
	return col
}

func TestAttributes_ValidSpread(t *testing.T) {
	col := validateAttrs(validAttributes(), true)
	assert.True(t, col.Valid(), messages(col.Findings()))
}

func TestAttributes_WrongSpreadNamesCounts(t *testing.T) {
	a := validAttributes()
	a[character.Engineer] = 1 // now 0x0 3x1 2x2 1x3

	col := validateAttrs(a, true)
	require.False(t, col.Valid())
	assertError(t, col, "Should have 1x0 2x1 2x2 1x3, you have 0x0 3x1 2x2 1x3")
}

func TestAttributes_CreationRankAboveThree(t *testing.T) {
	a := validAttributes()
	a[character.Aristocrat] = 4

	col := validateAttrs(a, true)
	assertError(t, col, "Aristocrat attribute is 4")
	assertNoError(t, col, "Incorrect attribute spread")
}

func TestAttributes_MissingAttribute(t *testing.T) {
	a := validAttributes()
	delete(a, character.Scholar)

	col := validateAttrs(a, false)
	assertError(t, col, "Missing attribute: Scholar")
}

func TestAttributes_AdvancementRange(t *testing.T) {
	a := character.Attributes{
		character.Aristocrat: 5, character.Engineer: 5, character.Explorer: 5,
		character.Fighter: 0, character.Scholar: 4, character.Scoundrel: 6,
	}
	col := validateAttrs(a, false)
	require.Len(t, col.Errors(), 1)
	assertError(t, col, "Scoundrel attribute has value 6")
}

func TestAttributes_Spread(t *testing.T) {
	assert.Equal(t, [4]int{1, 2, 2, 1}, validAttributes().Spread())

	a := validAttributes()
	a["Bard"] = 1
	delete(a, character.Aristocrat)
	assert.Equal(t, [4]int{1, 2, 2, 0}, a.Spread())
	assertError(t, validateAttrs(a, true), "Should have 1x0 2x1 2x2 1x3, you have 1x0 2x1 2x2 0x3")
}

// Property: every permutation of 0,1,1,2,2,3 over the six attributes passes creation rules.
func TestPropertyAnyPermutationOfSpreadIsValid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ranks := rapid.Permutation([]int{0, 1, 1, 2, 2, 3}).Draw(rt, "ranks")
		a := character.Attributes{}
		for i, k := range character.AttrKinds {
			a[k] = ranks[i]
		}
		col := validateAttrs(a, true)
		if !col.Valid() {
			rt.Fatalf("ranks %v rejected: %v", ranks, messages(col.Errors()))
		}
	})
}

// Property: creation rules pass iff the histogram over ranks 0-3 is exactly [1,2,2,1].
func TestPropertyCreationValidIffSpreadMatches(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := character.Attributes{}
		for _, k := range character.AttrKinds {
			a[k] = rapid.IntRange(0, 3).Draw(rt, string(k))
		}
		want := a.Spread() == [4]int{1, 2, 2, 1}
		col := validateAttrs(a, true)
		if col.Valid() != want {
			rt.Fatalf("attrs %v: Valid()=%v want %v (%v)", a, col.Valid(), want, messages(col.Errors()))
		}
		if !want && !containsMessage(col.Errors(), "you have") {
			rt.Fatalf("error does not name the actual spread: %v", messages(col.Errors()))
		}
	})
}

// Property: advancement rules accept any rank in 0-5 independently.
func TestPropertyAdvancementAcceptsZeroToFive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := character.Attributes{}
		for _, k := range character.AttrKinds {
			a[k] = rapid.IntRange(0, 5).Draw(rt, string(k))
		}
		col := validateAttrs(a, false)
		if !col.Valid() {
			rt.Fatalf("attrs %v rejected: %v", a, messages(col.Errors()))
		}
	})
}

func TestAspects_MissingSlots(t *testing.T) {
	a := validAspects()
	delete(a, character.Trouble)
	delete(a, character.Belief)

	col := validation.NewCollector(true, nil)
	a.Validate(col.Scope(""))
	assertError(t, col, "Missing a Trouble aspect")
	assertError(t, col, "Missing a Belief aspect")
}

func TestAspects_EmptyTextIsAllowed(t *testing.T) {
	a := validAspects()
	a[character.Belief] = ""

	col := validation.NewCollector(true, nil)
	a.Validate(col.Scope(""))
	assert.True(t, col.Valid())
}
