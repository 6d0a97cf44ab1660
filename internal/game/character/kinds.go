package character

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownKind is returned when a name does not match any member of an enumeration.
var ErrUnknownKind = errors.New("unknown kind")

// AttrKind names one of the six skill attributes.
type AttrKind string

// Attribute kinds, in sheet order.
const (
	Aristocrat AttrKind = "Aristocrat"
	Engineer   AttrKind = "Engineer"
	Explorer   AttrKind = "Explorer"
	Fighter    AttrKind = "Fighter"
	Scholar    AttrKind = "Scholar"
	Scoundrel  AttrKind = "Scoundrel"
)

// AttrKinds lists every attribute kind in sheet order.
var AttrKinds = []AttrKind{Aristocrat, Engineer, Explorer, Fighter, Scholar, Scoundrel}

// AspectKind names one of the five character aspect slots.
type AspectKind string

// Aspect kinds, in sheet order.
const (
	Portrayal        AspectKind = "Portrayal"
	Background       AspectKind = "Background"
	IncitingIncident AspectKind = "Inciting Incident"
	Belief           AspectKind = "Belief"
	Trouble          AspectKind = "Trouble"
)

// AspectKinds lists every aspect kind in sheet order.
var AspectKinds = []AspectKind{Portrayal, Background, IncitingIncident, Belief, Trouble}

// AssetKind determines which modifiers an asset may carry.
type AssetKind string

// Asset kinds.
const (
	Device    AssetKind = "Device"
	Technique AssetKind = "Technique"
	Ally      AssetKind = "Ally"
)

// AssetKinds lists every asset kind.
var AssetKinds = []AssetKind{Device, Technique, Ally}

// assetAliases maps legacy short names onto asset kinds.
var assetAliases = map[string]AssetKind{"Tech": Technique}

// canonical folds separators and casing so "INCITING_INCIDENT" and
// "inciting incident" both become "Inciting Incident".
func canonical(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return cases.Title(language.English).String(strings.ToLower(s))
}

// ParseAttrKind resolves an attribute name in any casing.
//
// Postcondition: Returns a member of AttrKinds or an error wrapping ErrUnknownKind.
func ParseAttrKind(s string) (AttrKind, error) {
	c := canonical(s)
	for _, k := range AttrKinds {
		if string(k) == c {
			return k, nil
		}
	}
	return "", fmt.Errorf("attribute %q: %w", s, ErrUnknownKind)
}

// ParseAspectKind resolves an aspect slot name in any casing, with spaces or underscores.
//
// Postcondition: Returns a member of AspectKinds or an error wrapping ErrUnknownKind.
func ParseAspectKind(s string) (AspectKind, error) {
	c := canonical(s)
	for _, k := range AspectKinds {
		if string(k) == c {
			return k, nil
		}
	}
	return "", fmt.Errorf("aspect %q: %w", s, ErrUnknownKind)
}

// ParseAssetKind resolves an asset kind name in any casing. "TECH" is accepted for Technique.
//
// Postcondition: Returns a member of AssetKinds or an error wrapping ErrUnknownKind.
func ParseAssetKind(s string) (AssetKind, error) {
	c := canonical(s)
	if k, ok := assetAliases[c]; ok {
		return k, nil
	}
	for _, k := range AssetKinds {
		if string(k) == c {
			return k, nil
		}
	}
	return "", fmt.Errorf("asset type %q: %w", s, ErrUnknownKind)
}

func joinKinds(kinds []AssetKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, " and ")
}

func containsKind(kinds []AssetKind, k AssetKind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
