package character

import (
	"fmt"
	"strings"

	"github.com/harkonenbade/jadepunk/internal/game/validation"
	"github.com/harkonenbade/jadepunk/internal/render"
)

// Attribute rank bounds.
const (
	MaxCreationRank    = 3
	MaxAdvancementRank = 5
)

// creationSpread is the required count of attributes at ranks 0 through 3 for a new character.
var creationSpread = [MaxCreationRank + 1]int{1, 2, 2, 1}

// Attributes maps each attribute kind to its rank.
type Attributes map[AttrKind]int

// Validate reports attribute problems into s.
//
// In creation mode every rank must be within 0-3 and the six ranks must form
// exactly one 0, two 1s, two 2s and one 3. Otherwise each rank must be within 0-5.
func (a Attributes) Validate(s validation.Scope) {
	var missing []string
	for _, k := range AttrKinds {
		if _, ok := a[k]; !ok {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		s.Errorf("Missing attribute: %s", strings.Join(missing, ", "))
	}
	for k := range a {
		if !isAttrKind(k) {
			s.Errorf("Unknown attribute %q", string(k))
		}
	}

	if s.NewCharacter() {
		a.validateSpread(s)
		return
	}
	for _, k := range AttrKinds {
		v, ok := a[k]
		if ok && (v < 0 || v > MaxAdvancementRank) {
			s.Errorf("%s attribute has value %d, it should be within 0-%d", k, v, MaxAdvancementRank)
		}
	}
}

func (a Attributes) validateSpread(s validation.Scope) {
	inRange := true
	for _, k := range AttrKinds {
		if v, ok := a[k]; ok && (v < 0 || v > MaxCreationRank) {
			s.Errorf("%s attribute is %d, starting attributes must be within 0-%d", k, v, MaxCreationRank)
			inRange = false
		}
	}
	if !inRange {
		return
	}
	if counts := a.Spread(); counts != creationSpread {
		s.Errorf("Incorrect attribute spread. Should have %s, you have %s",
			formatSpread(creationSpread), formatSpread(counts))
	}
}

// Spread returns how many of the six attributes sit at each rank from 0 to 3;
// missing attributes and ranks outside that range are ignored.
func (a Attributes) Spread() [MaxCreationRank + 1]int {
	var counts [MaxCreationRank + 1]int
	for _, k := range AttrKinds {
		if v, ok := a[k]; ok && v >= 0 && v <= MaxCreationRank {
			counts[v]++
		}
	}
	return counts
}

func formatSpread(counts [MaxCreationRank + 1]int) string {
	parts := make([]string, len(counts))
	for rank, n := range counts {
		parts[rank] = fmt.Sprintf("%dx%d", n, rank)
	}
	return strings.Join(parts, " ")
}

func isAttrKind(k AttrKind) bool {
	for _, c := range AttrKinds {
		if c == k {
			return true
		}
	}
	return false
}

// Render writes the attributes section in sheet order.
func (a Attributes) Render(e render.Engine) {
	e.Heading("Attributes")
	for _, k := range AttrKinds {
		e.KV(string(k), fmt.Sprintf("+%d", a[k]))
	}
}
