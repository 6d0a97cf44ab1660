package character

import (
	"errors"
	"fmt"
)

// New returns a character in creation mode with StartingRefresh.
func New(name string, aspects Aspects, attrs Attributes, assets ...*Asset) *Character {
	return &Character{
		Name:         name,
		Aspects:      aspects,
		Attributes:   attrs,
		Assets:       assets,
		MaxRefresh:   StartingRefresh,
		NewCharacter: true,
	}
}

// Params holds the loaded parts of a character.
type Params struct {
	Name       string
	Background string
	Aspects    Aspects
	Attributes Attributes
	Assets     []*Asset
	// MaxRefresh defaults to StartingRefresh when nil.
	MaxRefresh   *int
	NewCharacter bool
}

// Build assembles a Character from loaded parts.
//
// Rule violations are not errors here; they are reported by Validate.
//
// Precondition: Aspects and Attributes must be non-nil; no asset may be nil.
// Postcondition: Returns a Character ready for validation, or a non-nil error.
func Build(p Params) (*Character, error) {
	if p.Aspects == nil {
		return nil, errors.New("aspects must not be nil")
	}
	if p.Attributes == nil {
		return nil, errors.New("attributes must not be nil")
	}
	for i, a := range p.Assets {
		if a == nil {
			return nil, fmt.Errorf("asset %d must not be nil", i)
		}
	}
	maxRefresh := StartingRefresh
	if p.MaxRefresh != nil {
		maxRefresh = *p.MaxRefresh
	}
	return &Character{
		Name:         p.Name,
		Background:   p.Background,
		Aspects:      p.Aspects,
		Attributes:   p.Attributes,
		Assets:       p.Assets,
		MaxRefresh:   maxRefresh,
		NewCharacter: p.NewCharacter,
	}, nil
}
