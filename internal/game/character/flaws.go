package character

import (
	"fmt"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Consuming costs a fate point to activate.
type Consuming struct {
	flawBase
}

func (Consuming) Name() string                      { return "Consuming" }
func (Consuming) Cost(AssetKind) int                { return 2 }
func (Consuming) Describe(render.Emphasizer) string { return "Costs a fate point to activate" }

func (c Consuming) Validate(o Owner, s validation.Scope) {
	ValidateModifier(c, o, s)
}

// Demanding requires an action or a roll of Attr to use.
type Demanding struct {
	flawBase
	Rank int
	Attr AttrKind
}

func (Demanding) Name() string                   { return "Demanding" }
func (Demanding) MaxRanks(AssetKind) (int, bool) { return 2, true }
func (d Demanding) Ranks() (int, bool)           { return d.Rank, true }
func (d Demanding) Cost(AssetKind) int           { return d.Rank }

func (d Demanding) Describe(render.Emphasizer) string {
	if d.Rank <= 1 {
		return fmt.Sprintf("One action or a Fair (+2) %s roll", d.Attr)
	}
	return fmt.Sprintf("One action and a Fair (+2) %s roll, one scene, or a Great (+4) %s roll", d.Attr, d.Attr)
}

func (d Demanding) Validate(o Owner, s validation.Scope) {
	ValidateModifier(d, o, s)
}

// Limited restricts how often the asset can be used.
type Limited struct {
	flawBase
	Rank int
}

func (Limited) Name() string                   { return "Limited" }
func (Limited) MaxRanks(AssetKind) (int, bool) { return 2, true }
func (l Limited) Ranks() (int, bool)           { return l.Rank, true }
func (l Limited) Cost(AssetKind) int           { return l.Rank }

func (l Limited) Describe(render.Emphasizer) string {
	if l.Rank <= 1 {
		return "Once per scene"
	}
	return "Once per session"
}

func (l Limited) Validate(o Owner, s validation.Scope) {
	ValidateModifier(l, o, s)
}

// Situational means the asset only works when Text is true.
type Situational struct {
	flawBase
	Text string
}

func (Situational) Name() string                           { return "Situational" }
func (st Situational) Describe(e render.Emphasizer) string { return e.BoldItalic(st.Text) }

func (st Situational) Validate(o Owner, s validation.Scope) {
	ValidateModifier(st, o, s)
}

// Troubling attaches a trouble aspect to an Ally or Device.
type Troubling struct {
	flawBase
	Text string
}

func (Troubling) Name() string                          { return "Troubling" }
func (Troubling) AllowedKinds() []AssetKind             { return allyOrDevice }
func (t Troubling) Describe(e render.Emphasizer) string { return e.BoldItalic(t.Text) }

func (t Troubling) Validate(o Owner, s validation.Scope) {
	ValidateModifier(t, o, s)
}
