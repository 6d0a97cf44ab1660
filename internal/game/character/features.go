package character

import (
	"fmt"
	"strings"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Aspect grants an Ally or Device an extra aspect.
type Aspect struct {
	featureBase
	Text string
}

func (Aspect) Name() string                          { return "Aspect" }
func (Aspect) AllowedKinds() []AssetKind             { return allyOrDevice }
func (a Aspect) Describe(e render.Emphasizer) string { return e.BoldItalic(a.Text) }

func (a Aspect) Validate(o Owner, s validation.Scope) {
	ValidateModifier(a, o, s)
	if a.Text == "" {
		s.Errorf("Missing details for Aspect.")
	}
}

// Exceptional bends a rule for the asset. It always costs an extra flaw.
type Exceptional struct {
	featureBase
	Text string
}

func (Exceptional) Name() string                        { return "Exceptional" }
func (Exceptional) Cost(AssetKind) int                  { return 2 }
func (Exceptional) ExtraFlaw(AssetKind) bool            { return true }
func (x Exceptional) Describe(render.Emphasizer) string { return x.Text }

func (x Exceptional) Validate(o Owner, s validation.Scope) {
	ValidateModifier(x, o, s)
}

// Flexible lets one attribute stand in for another.
type Flexible struct {
	featureBase
	Replacing AttrKind
	Replaced  AttrKind
}

func (Flexible) Name() string              { return "Flexible" }
func (Flexible) Cost(AssetKind) int        { return 2 }
func (Flexible) AllowedKinds() []AssetKind { return deviceOrTechnique }

func (f Flexible) Describe(render.Emphasizer) string {
	return fmt.Sprintf("Use %s instead of %s", f.Replacing, f.Replaced)
}

func (f Flexible) Validate(o Owner, s validation.Scope) {
	ValidateModifier(f, o, s)
	if f.Replacing == f.Replaced {
		s.Errorf("Replacing and Replaced must be different")
	}
	requireSituational(o, s)
}

// Focus adds a bonus to one attribute.
type Focus struct {
	featureBase
	Attr AttrKind
	Rank int
}

func (Focus) Name() string              { return "Focus" }
func (Focus) AllowedKinds() []AssetKind { return deviceOrTechnique }
func (f Focus) Ranks() (int, bool)      { return f.Rank, true }
func (f Focus) Cost(AssetKind) int      { return f.Rank }

func (f Focus) Describe(render.Emphasizer) string {
	return fmt.Sprintf("%s +%d", f.Attr, f.Rank)
}

func (f Focus) Validate(o Owner, s validation.Scope) {
	ValidateModifier(f, o, s)
	requireSituational(o, s)
}

// Harmful lets the asset deal stress.
type Harmful struct {
	featureBase
	Rank int
}

func (Harmful) Name() string              { return "Harmful" }
func (Harmful) AllowedKinds() []AssetKind { return deviceOrTechnique }
func (h Harmful) Ranks() (int, bool)      { return h.Rank, true }
func (h Harmful) Cost(AssetKind) int      { return h.Rank }

func (h Harmful) Validate(o Owner, s validation.Scope) {
	ValidateModifier(h, o, s)
}

// Independent lets an Ally act without direction.
type Independent struct {
	featureBase
}

func (Independent) Name() string              { return "Independent" }
func (Independent) AllowedKinds() []AssetKind { return allyOnly }

func (i Independent) Validate(o Owner, s validation.Scope) {
	ValidateModifier(i, o, s)
}

// Numerous doubles the number of copies per rank.
type Numerous struct {
	featureBase
	Rank int
}

func (Numerous) Name() string              { return "Numerous" }
func (Numerous) AllowedKinds() []AssetKind { return allyOrDevice }
func (n Numerous) Ranks() (int, bool)      { return n.Rank, true }
func (n Numerous) Cost(AssetKind) int      { return n.Rank }

// Copies returns 2^Rank.
func (n Numerous) Copies() int {
	if n.Rank <= 0 {
		return 1
	}
	return 1 << min(n.Rank, 30)
}

func (n Numerous) Describe(render.Emphasizer) string {
	return fmt.Sprintf("%d copies", n.Copies())
}

func (n Numerous) Validate(o Owner, s validation.Scope) {
	ValidateModifier(n, o, s)
}

// Professional gives an Ally trained attributes: Fair (+2) and Average (+1).
//
// Rank 1: one Average, no Fair. Rank 2: one Fair and one Average. Rank 3: one Fair and three Average.
type Professional struct {
	featureBase
	Rank    int
	Fair    AttrKind
	Average []AttrKind
}

// MaxProfessionalRanks is the Professional ceiling on any Ally.
const MaxProfessionalRanks = 3

func (Professional) Name() string                   { return "Professional" }
func (Professional) AllowedKinds() []AssetKind      { return allyOnly }
func (Professional) MaxRanks(AssetKind) (int, bool) { return MaxProfessionalRanks, true }
func (p Professional) Ranks() (int, bool)           { return p.Rank, true }

// Cost is one less than the rank; the first rank is free.
func (p Professional) Cost(AssetKind) int { return p.Rank - 1 }

func (p Professional) Describe(render.Emphasizer) string {
	var parts []string
	if p.Fair != "" {
		parts = append(parts, fmt.Sprintf("%s +2", p.Fair))
	}
	for _, a := range p.Average {
		parts = append(parts, fmt.Sprintf("%s +1", a))
	}
	return strings.Join(parts, ", ")
}

func (p Professional) Validate(o Owner, s validation.Scope) {
	ValidateModifier(p, o, s)
	hasFair := p.Fair != ""
	switch p.Rank {
	case 1:
		if hasFair || len(p.Average) != 1 {
			s.Errorf("Professional 1 must have a single profession at average (+1)")
		}
	case 2:
		if !hasFair || len(p.Average) != 1 {
			s.Errorf("Professional 2 must have a single profession at fair (+2) and a single at average (+1)")
		}
	case 3:
		if !hasFair || len(p.Average) != 3 {
			s.Errorf("Professional 3 must have a single profession at fair (+2) and three at average (+1)")
		}
	}
}

// Protective grants armor. On a Technique it demands an extra flaw.
type Protective struct {
	featureBase
	Rank int
}

// MaxDeviceProtective is the Protective ceiling on a Device.
const MaxDeviceProtective = 2

func (Protective) Name() string              { return "Protective" }
func (Protective) AllowedKinds() []AssetKind { return deviceOrTechnique }
func (p Protective) Ranks() (int, bool)      { return p.Rank, true }
func (p Protective) Cost(AssetKind) int      { return p.Rank * 2 }

func (Protective) MaxRanks(kind AssetKind) (int, bool) {
	if kind == Device {
		return MaxDeviceProtective, true
	}
	return 0, false
}

func (Protective) ExtraFlaw(kind AssetKind) bool { return kind == Technique }

func (p Protective) Validate(o Owner, s validation.Scope) {
	ValidateModifier(p, o, s)
}

// Resilient gives an Ally extra consequences. The first rank is free.
type Resilient struct {
	featureBase
	Rank int
}

func (Resilient) Name() string                   { return "Resilient" }
func (Resilient) AllowedKinds() []AssetKind      { return allyOnly }
func (Resilient) MaxRanks(AssetKind) (int, bool) { return 2, true }
func (r Resilient) Ranks() (int, bool)           { return r.Rank, true }
func (r Resilient) Cost(AssetKind) int           { return r.Rank - 1 }

func (r Resilient) Validate(o Owner, s validation.Scope) {
	ValidateModifier(r, o, s)
}

// Sturdy gives extra stress boxes. The first rank is free on an Ally.
type Sturdy struct {
	featureBase
	Rank int
}

func (Sturdy) Name() string              { return "Sturdy" }
func (Sturdy) AllowedKinds() []AssetKind { return allyOrDevice }
func (st Sturdy) Ranks() (int, bool)     { return st.Rank, true }

func (Sturdy) MaxRanks(kind AssetKind) (int, bool) {
	switch kind {
	case Ally:
		return 3, true
	case Device:
		return 2, true
	default:
		return 0, false
	}
}

func (st Sturdy) Cost(kind AssetKind) int {
	if kind == Ally {
		return st.Rank - 1
	}
	return st.Rank
}

func (st Sturdy) Validate(o Owner, s validation.Scope) {
	ValidateModifier(st, o, s)
}

// Talented lets an Ally carry a modifier meant for another asset kind. The
// wrapped modifier is costed and validated as if it were on an asset of kind As.
type Talented struct {
	featureBase
	As       AssetKind
	Modifier Modifier
}

func (Talented) Name() string              { return "Talented" }
func (Talented) AllowedKinds() []AssetKind { return allyOnly }

// Ranks reports the wrapped modifier's cost, which is what Talented is worth.
func (t Talented) Ranks() (int, bool) { return t.Cost(t.As), true }

func (t Talented) Cost(AssetKind) int {
	if t.Modifier == nil {
		return 0
	}
	return t.Modifier.Cost(t.As)
}

func (t Talented) ExtraFlaw(AssetKind) bool {
	return t.Modifier != nil && t.Modifier.ExtraFlaw(t.As)
}

func (t Talented) Describe(e render.Emphasizer) string {
	if t.Modifier == nil {
		return ""
	}
	return RenderModifier(t.Modifier, e)
}

// Validate checks Talented itself against the real owner, then the wrapped
// modifier against the same asset viewed as kind As.
func (t Talented) Validate(o Owner, s validation.Scope) {
	checkKind(t, o.Kind, s)
	if !containsKind(AssetKinds, t.As) {
		s.Errorf("Talented must name the asset type it imitates, got %q", string(t.As))
	}
	if t.Modifier == nil {
		s.Errorf("Talented requires a modifier to apply")
		return
	}
	t.Modifier.Validate(o.As(t.As), s.Scope(fmt.Sprintf("Property (%s)", t.Modifier.Name())))
}
