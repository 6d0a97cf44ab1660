package character

import (
	"fmt"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Role partitions modifiers into features and flaws.
type Role int

// Modifier roles.
const (
	FeatureRole Role = iota
	FlawRole
)

// String returns "Feature" or "Flaw".
func (r Role) String() string {
	if r == FlawRole {
		return "Flaw"
	}
	return "Feature"
}

// Modifier is a feature or flaw attached to an Asset.
//
// Modifiers are plain values built without knowledge of their asset. Anything
// that depends on the owning asset receives it as an Owner at call time.
type Modifier interface {
	// Name is the modifier's rule name, e.g. "Focus".
	Name() string
	Role() Role
	// Ranks returns the modifier's degree, or false if it is unranked.
	Ranks() (int, bool)
	// AllowedKinds lists the asset kinds the modifier may attach to; empty means any.
	AllowedKinds() []AssetKind
	// MaxRanks returns the rank ceiling on an asset of kind, or false if uncapped.
	MaxRanks(kind AssetKind) (int, bool)
	// Cost is the feature or flaw points the modifier is worth on an asset of kind.
	Cost(kind AssetKind) int
	// ExtraFlaw reports whether the modifier raises the asset's minimum flaw count by one.
	ExtraFlaw(kind AssetKind) bool
	// Validate reports rule violations for the modifier attached to o.
	Validate(o Owner, s validation.Scope)
	// Describe returns the descriptive clause shown after the name, or "".
	Describe(e render.Emphasizer) string
}

// Owner is the read-only view of an asset that a modifier is validated against.
// It is the modifier's back-reference, resolved by the owning asset rather than stored on the modifier.
type Owner struct {
	Kind AssetKind

	modifiers []Modifier
}

// Has reports whether the owner carries a modifier with the given rule name.
// Modifiers wrapped by Talented do not count.
func (o Owner) Has(name string) bool {
	for _, m := range o.modifiers {
		if m.Name() == name {
			return true
		}
	}
	return false
}

// As returns a copy of o that claims to be an asset of kind, with the same modifiers.
func (o Owner) As(kind AssetKind) Owner {
	o.Kind = kind
	return o
}

// ValidateModifier runs the checks shared by every modifier: kind applicability
// and the rank ceiling for the owner's kind.
func ValidateModifier(m Modifier, o Owner, s validation.Scope) {
	checkKind(m, o.Kind, s)
	checkRanks(m, o.Kind, s)
}

func checkKind(m Modifier, kind AssetKind, s validation.Scope) {
	allowed := m.AllowedKinds()
	if len(allowed) > 0 && !containsKind(allowed, kind) {
		s.Errorf("Can only be applied to %s", joinKinds(allowed))
	}
}

func checkRanks(m Modifier, kind AssetKind, s validation.Scope) {
	ranks, ok := m.Ranks()
	if !ok {
		return
	}
	if ranks < 1 {
		s.Errorf("Must have at least one rank, has %d", ranks)
	}
	if ceiling, capped := m.MaxRanks(kind); capped && ranks > ceiling {
		s.Errorf("May not be applied to %s more than %s", article(kind), times(ceiling))
	}
}

func requireSituational(o Owner, s validation.Scope) {
	if !o.Has("Situational") {
		s.Errorf("Requires Situational")
	}
}

// RenderModifier formats m as "<italic name>[ <ranks>][ (<description>)]".
func RenderModifier(m Modifier, e render.Emphasizer) string {
	out := e.Italic(m.Name())
	if ranks, ok := m.Ranks(); ok {
		out = fmt.Sprintf("%s %d", out, ranks)
	}
	if desc := m.Describe(e); desc != "" {
		out = fmt.Sprintf("%s (%s)", out, desc)
	}
	return out
}

func article(kind AssetKind) string {
	if kind == Ally {
		return "an Ally"
	}
	return "a " + string(kind)
}

func times(n int) string {
	switch n {
	case 1:
		return "once"
	case 2:
		return "twice"
	case 3:
		return "three times"
	default:
		return fmt.Sprintf("%d times", n)
	}
}

// base supplies the defaults for an unranked modifier usable on any asset:
// cost 1, no rank ceiling, no extra flaw, no description.
type base struct{}

func (base) Ranks() (int, bool)                { return 0, false }
func (base) MaxRanks(AssetKind) (int, bool)    { return 0, false }
func (base) Cost(AssetKind) int                { return 1 }
func (base) ExtraFlaw(AssetKind) bool          { return false }
func (base) AllowedKinds() []AssetKind         { return nil }
func (base) Describe(render.Emphasizer) string { return "" }

type featureBase struct{ base }

func (featureBase) Role() Role { return FeatureRole }

type flawBase struct{ base }

func (flawBase) Role() Role { return FlawRole }

var (
	allyOrDevice      = []AssetKind{Ally, Device}
	deviceOrTechnique = []AssetKind{Device, Technique}
	allyOnly          = []AssetKind{Ally}
)
