// Package character defines the Jadepunk character model and the chargen and
// advancement rules it is validated against.
package character

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// StartingRefresh is the maximum refresh of a newly generated character.
const StartingRefresh = 7

// MinRefresh is the lowest available refresh a character may be left with.
const MinRefresh = 2

// Character is a player character: aspects, attributes and assets.
type Character struct {
	Name string
	// Background is optional free text shown under its own heading.
	Background string
	Aspects    Aspects
	Attributes Attributes
	Assets     []*Asset
	MaxRefresh int
	// NewCharacter selects chargen rules over advancement rules.
	NewCharacter bool
}

// AvailableRefresh is MaxRefresh minus the refresh cost of every asset.
func (c *Character) AvailableRefresh() int {
	spent := 0
	for _, a := range c.Assets {
		spent += a.RefreshCost()
	}
	return c.MaxRefresh - spent
}

// Validate walks the whole character and reports every finding into col.
// Every check runs regardless of earlier failures.
//
// Precondition: col must be non-nil.
func (c *Character) Validate(col *validation.Collector) {
	s := col.Scope("")
	if c.Name == "" {
		s.Errorf("Character must have a name.")
	}
	c.Aspects.Validate(s)
	c.Attributes.Validate(s)
	for _, a := range c.Assets {
		a.Validate(s)
	}
	if col.NewCharacter() && c.MaxRefresh != StartingRefresh {
		s.Errorf("Starting characters have %d refresh max, got %d", StartingRefresh, c.MaxRefresh)
	}
	if r := c.AvailableRefresh(); r < MinRefresh {
		s.Errorf("Characters must keep at least %d refresh, has %d", MinRefresh, r)
	}
}

// Check runs one validation pass in the character's own rules mode.
//
// Postcondition: Returns the collector holding every finding from the pass.
func (c *Character) Check(logger *zap.Logger) *validation.Collector {
	col := validation.NewCollector(c.NewCharacter, logger)
	c.Validate(col)
	col.Logger().Info("validated character",
		zap.String("name", c.Name),
		zap.Bool("new_character", c.NewCharacter),
		zap.Int("available_refresh", c.AvailableRefresh()),
		zap.Int("errors", len(col.Errors())),
		zap.Int("warnings", len(col.Warnings())),
	)
	return col
}

// Render writes the full character sheet through e.
func (c *Character) Render(e render.Engine) {
	e.Title(c.Name)
	if c.Background != "" {
		e.Heading("Background")
		e.Text(c.Background)
	}
	c.Aspects.Render(e)
	c.Attributes.Render(e)
	c.renderStats(e)
	e.Heading("Assets")
	for _, a := range c.Assets {
		a.Render(e)
	}
}

func (c *Character) renderStats(e render.Engine) {
	e.Heading("Stats")
	e.KV("Refresh", strconv.Itoa(c.AvailableRefresh()))
	e.KV("Stress", "")
	e.KV("Mild Consequence", "")
	e.KV("Major Consequence", "")
	e.KV("Severe Consequence", "")
}
