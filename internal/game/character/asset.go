package character

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Baseline requirements for an asset's feature and flaw budget.
const (
	StartingFeatures = 2
	StartingFlaws    = 1
)

// AssetParams describes an asset before construction.
type AssetParams struct {
	Kind AssetKind
	// Name is optional; the sheet falls back to "Unnamed <Kind>".
	Name string
	// Functional is the functional aspect, required on Allies and Devices.
	Functional string
	// Guiding is the guiding aspect, required on Techniques.
	Guiding string
	// GMApproved silences the warning for a Technique with a functional aspect.
	GMApproved    bool
	Mastercrafted bool
	Modifiers     []Modifier
}

// Asset is a Device, Technique or Ally owned by a character.
type Asset struct {
	ID            uuid.UUID
	Kind          AssetKind
	Functional    string
	Guiding       string
	GMApproved    bool
	Mastercrafted bool

	name      string
	modifiers []Modifier
}

// NewAsset builds an asset and attaches its modifiers.
//
// Every Ally gains Sturdy 1 and Resilient 1 unless the caller supplied them.
//
// Postcondition: Returns an Asset with a fresh ID; the modifiers slice is copied.
func NewAsset(p AssetParams) *Asset {
	a := &Asset{
		ID:            uuid.New(),
		Kind:          p.Kind,
		Functional:    p.Functional,
		Guiding:       p.Guiding,
		GMApproved:    p.GMApproved,
		Mastercrafted: p.Mastercrafted,
		name:          p.Name,
	}
	for _, m := range p.Modifiers {
		a.Attach(m)
	}
	if a.Kind == Ally {
		if !a.Has("Sturdy") {
			a.Attach(Sturdy{Rank: 1})
		}
		if !a.Has("Resilient") {
			a.Attach(Resilient{Rank: 1})
		}
	}
	return a
}

// Attach appends m to the asset. The modifier is bound to this asset from then on.
//
// Precondition: m must be non-nil.
func (a *Asset) Attach(m Modifier) {
	a.modifiers = append(a.modifiers, m)
}

// Name returns the asset's name, or "Unnamed <Kind>" if none was given.
func (a *Asset) Name() string {
	if a.name != "" {
		return a.name
	}
	return "Unnamed " + string(a.Kind)
}

// Owner returns the view modifiers are validated against.
func (a *Asset) Owner() Owner {
	return Owner{Kind: a.Kind, modifiers: a.modifiers}
}

// Has reports whether a modifier with the given rule name is attached.
func (a *Asset) Has(name string) bool {
	return a.Owner().Has(name)
}

// Modifiers returns the attached modifiers in attach order.
func (a *Asset) Modifiers() []Modifier {
	out := make([]Modifier, len(a.modifiers))
	copy(out, a.modifiers)
	return out
}

// Features returns the attached features in attach order.
func (a *Asset) Features() []Modifier {
	return a.byRole(FeatureRole)
}

// Flaws returns the attached flaws in attach order.
func (a *Asset) Flaws() []Modifier {
	return a.byRole(FlawRole)
}

func (a *Asset) byRole(r Role) []Modifier {
	var out []Modifier
	for _, m := range a.modifiers {
		if m.Role() == r {
			out = append(out, m)
		}
	}
	return out
}

// Refresh is the breakdown of an asset's refresh cost.
type Refresh struct {
	FeatureTotal int
	FlawTotal    int
	// RequiredFlaws is StartingFlaws, plus one if any modifier demands an extra flaw.
	RequiredFlaws       int
	FeaturesFromFlaws   int
	FeaturesFromRefresh int
	// Cost is the refresh spent on the asset, never below 1.
	Cost int
}

// Refresh computes the asset's refresh breakdown from its modifiers.
//
// Postcondition: Cost >= 1.
func (a *Asset) Refresh() Refresh {
	var r Refresh
	extra := false
	for _, m := range a.modifiers {
		switch m.Role() {
		case FeatureRole:
			r.FeatureTotal += m.Cost(a.Kind)
		case FlawRole:
			r.FlawTotal += m.Cost(a.Kind)
		}
		if m.ExtraFlaw(a.Kind) {
			extra = true
		}
	}
	r.RequiredFlaws = StartingFlaws
	if extra {
		r.RequiredFlaws++
	}
	r.FeaturesFromFlaws = r.FlawTotal - r.RequiredFlaws
	r.FeaturesFromRefresh = r.FeatureTotal - r.FeaturesFromFlaws

	r.Cost = max(ceilHalf(r.FeaturesFromRefresh), 1)
	if a.Mastercrafted {
		r.Cost = max(r.Cost-1, 1)
	}
	return r
}

// RefreshCost is the refresh the asset costs its character.
func (a *Asset) RefreshCost() int {
	return a.Refresh().Cost
}

// ceilHalf returns ceil(n/2) for any sign of n.
func ceilHalf(n int) int {
	if n > 0 {
		return (n + 1) / 2
	}
	return n / 2
}

// Validate reports every asset and modifier rule violation into parent.
// Each finding carries the asset's ID.
func (a *Asset) Validate(parent validation.Scope) {
	s := parent.Asset(a.ID, fmt.Sprintf("Asset (%s)", a.Name()))
	r := a.Refresh()

	if s.NewCharacter() {
		if r.FeatureTotal < StartingFeatures {
			s.Errorf("Assets created at chargen should have at least %d features.", StartingFeatures)
		}
		if len(a.Flaws()) < 1 {
			s.Errorf("Assets created at chargen should have at least one flaw.")
		}
	} else if len(a.Features()) < 1 {
		s.Errorf("Assets should have a feature.")
	}

	a.validateAspects(s)
	a.validateRefresh(r, s)

	if a.Kind == Ally && !a.Has("Professional") {
		s.Errorf("Allies must have at least one rank of Professional.")
	}

	o := a.Owner()
	for _, m := range a.modifiers {
		m.Validate(o, s.Scope(fmt.Sprintf("Property (%s)", m.Name())))
	}
}

func (a *Asset) validateAspects(s validation.Scope) {
	switch a.Kind {
	case Ally, Device:
		if a.Functional == "" {
			s.Errorf("Allies and Devices must have functional aspects.")
		}
		if a.Guiding != "" {
			s.Errorf("Allies and Devices should not have a guiding aspect.")
		}
	case Technique:
		if a.Guiding == "" {
			s.Errorf("Techniques must have a guiding aspect.")
		}
		if a.Functional != "" {
			if a.GMApproved {
				s.Logger().Debug("technique functional aspect approved by GM",
					zap.String("asset", a.Name()),
					zap.Stringer("asset_id", a.ID),
				)
			} else {
				s.Errorf("Techniques should only have functional aspects with GM approval. (set gm_approved to silence this warning.)")
			}
		}
	default:
		s.Errorf("Unknown asset type %q", string(a.Kind))
	}
}

func (a *Asset) validateRefresh(r Refresh, s validation.Scope) {
	if r.FlawTotal < r.RequiredFlaws {
		s.Errorf("Must have at least %d flaws.", r.RequiredFlaws)
	}
	if r.FeatureTotal < StartingFeatures {
		s.Warnf("Assets start with %d features, currently only has %d", StartingFeatures, r.FeatureTotal)
	}
	if r.FeatureTotal-StartingFeatures < r.FeaturesFromFlaws {
		s.Warnf("Can have up to %d features from flaws, currently only has %d.",
			r.FeaturesFromFlaws, r.FeatureTotal-StartingFeatures)
	}
	if r.FeaturesFromRefresh%2 != 0 {
		s.Warnf("You are gaining %d features from refresh, you could gain %d for the same cost.",
			r.FeaturesFromRefresh, r.FeaturesFromRefresh+1)
	}
}

// Render writes the asset block.
func (a *Asset) Render(e render.Engine) {
	e.Subheading(a.Name())
	e.KV("Type", string(a.Kind))
	if a.Functional != "" {
		e.Aspect("Functional Aspect", a.Functional)
	}
	if a.Guiding != "" {
		e.Aspect("Guiding Aspect", a.Guiding)
	}
	e.KV("Features", renderList(a.Features(), e))
	e.KV("Flaws", renderList(a.Flaws(), e))
	e.KV("Cost", fmt.Sprintf("%d refresh", a.RefreshCost()))
}

func renderList(mods []Modifier, e render.Emphasizer) string {
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = RenderModifier(m, e)
	}
	return strings.Join(parts, ", ")
}
