package character

import (
	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Aspects maps each aspect slot to its text.
type Aspects map[AspectKind]string

// Validate reports every missing aspect slot. Empty text is not checked here.
func (a Aspects) Validate(s validation.Scope) {
	for _, k := range AspectKinds {
		if _, ok := a[k]; !ok {
			s.Errorf("Missing a %s aspect", k)
		}
	}
}

// Render writes the aspects section in sheet order.
func (a Aspects) Render(e render.Engine) {
	e.Heading("Aspects")
	for _, k := range AspectKinds {
		e.Aspect(string(k), a[k])
	}
}
