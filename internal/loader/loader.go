// Package loader reads character documents from YAML.
//
// A document names the character, its aspects and attributes, and a list of
// assets. Inside an asset, lowercase keys are fields and capitalised keys are
// modifiers, kept in document order.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/harkonenbade/jadepunk/internal/game/character"
)

// yamlCharacter is the top-level YAML structure of a character document.
type yamlCharacter struct {
	Name         string            `yaml:"name"`
	Background   string            `yaml:"background"`
	MaxRefresh   *int              `yaml:"max_refresh"`   // nil = StartingRefresh
	NewCharacter *bool             `yaml:"new_character"` // nil = loader default
	Aspects      map[string]string `yaml:"aspects"`
	Attrs        map[string]int    `yaml:"attrs"`
	Assets       []yaml.Node       `yaml:"assets"`
}

// Loader turns YAML documents into characters.
type Loader struct {
	logger       *zap.Logger
	newCharacter bool
}

// New returns a Loader.
//
// newCharacter is the rules mode used when a document has no new_character key.
// A nil logger is replaced by a no-op logger.
func New(logger *zap.Logger, newCharacter bool) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger, newCharacter: newCharacter}
}

// LoadFile reads and parses a single character file.
//
// Precondition: path must point to a readable YAML file.
// Postcondition: Returns a Character ready for validation or a non-nil error.
func (l *Loader) LoadFile(path string) (*character.Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading character file %s: %w", path, err)
	}
	c, err := l.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// LoadBytes parses a character from YAML bytes. Parsing stops at the first problem.
//
// Rule violations are left for validation; only structural problems are errors.
//
// Postcondition: Returns a Character ready for validation or a non-nil error.
func (l *Loader) LoadBytes(data []byte) (*character.Character, error) {
	var doc yamlCharacter
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parsing character YAML: empty document")
		}
		return nil, fmt.Errorf("parsing character YAML: %w", err)
	}

	aspects, err := convertAspects(doc.Aspects)
	if err != nil {
		return nil, err
	}
	attrs, err := convertAttrs(doc.Attrs)
	if err != nil {
		return nil, err
	}

	assets := make([]*character.Asset, 0, len(doc.Assets))
	for i := range doc.Assets {
		a, err := convertAsset(&doc.Assets[i])
		if err != nil {
			return nil, fmt.Errorf("asset %d: %w", i+1, err)
		}
		l.logger.Debug("parsed asset",
			zap.String("asset", a.Name()),
			zap.String("type", string(a.Kind)),
			zap.Stringer("asset_id", a.ID),
			zap.Int("modifiers", len(a.Modifiers())),
		)
		assets = append(assets, a)
	}

	newCharacter := l.newCharacter
	if doc.NewCharacter != nil {
		newCharacter = *doc.NewCharacter
	}

	c, err := character.Build(character.Params{
		Name:         doc.Name,
		Background:   strings.TrimSpace(doc.Background),
		Aspects:      aspects,
		Attributes:   attrs,
		Assets:       assets,
		MaxRefresh:   doc.MaxRefresh,
		NewCharacter: newCharacter,
	})
	if err != nil {
		return nil, fmt.Errorf("building character: %w", err)
	}
	l.logger.Info("loaded character",
		zap.String("name", c.Name),
		zap.Int("assets", len(c.Assets)),
		zap.Bool("new_character", c.NewCharacter),
	)
	return c, nil
}

// LoadDir loads every *.yaml and *.yml file in dir, in name order.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns at least one Character or a non-nil error.
func (l *Loader) LoadDir(dir string) ([]*character.Character, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading character directory %s: %w", dir, err)
	}

	var chars []*character.Character
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		c, err := l.LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}

	if len(chars) == 0 {
		return nil, fmt.Errorf("no character files found in %s", dir)
	}
	return chars, nil
}

func convertAspects(in map[string]string) (character.Aspects, error) {
	out := make(character.Aspects, len(in))
	for key, text := range in {
		k, err := character.ParseAspectKind(key)
		if err != nil {
			return nil, err
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("aspect %s given twice", k)
		}
		out[k] = strings.TrimSpace(text)
	}
	return out, nil
}

func convertAttrs(in map[string]int) (character.Attributes, error) {
	out := make(character.Attributes, len(in))
	for key, rank := range in {
		k, err := character.ParseAttrKind(key)
		if err != nil {
			return nil, err
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("attribute %s given twice", k)
		}
		out[k] = rank
	}
	return out, nil
}

// convertAsset walks an asset mapping in document order.
func convertAsset(n *yaml.Node) (*character.Asset, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: asset must be a mapping", n.Line)
	}

	var p character.AssetParams
	haveType := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		if isModifierKey(key.Value) {
			m, err := buildModifier(key.Value, val)
			if err != nil {
				return nil, err
			}
			p.Modifiers = append(p.Modifiers, m)
			continue
		}

		var err error
		switch key.Value {
		case "type":
			p.Kind, err = assetKind(val)
			haveType = true
		case "name":
			p.Name, err = text(val)
		case "functional":
			p.Functional, err = text(val)
		case "guiding":
			p.Guiding, err = text(val)
		case "mastercrafted":
			err = val.Decode(&p.Mastercrafted)
		case "gm_approved":
			err = val.Decode(&p.GMApproved)
		default:
			err = fmt.Errorf("unknown asset field %q", key.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
	}
	if !haveType {
		return nil, fmt.Errorf("line %d: asset has no type", n.Line)
	}
	return character.NewAsset(p), nil
}

// isModifierKey reports whether key starts with an upper-case letter.
func isModifierKey(key string) bool {
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsUpper(r)
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// text reads a scalar as a string, ignoring any custom tag.
func text(n *yaml.Node) (string, error) {
	n = resolve(n)
	if isNull(n) {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", errors.New("expected a scalar")
	}
	return strings.TrimSpace(n.Value), nil
}

func assetKind(n *yaml.Node) (character.AssetKind, error) {
	s, err := text(n)
	if err != nil {
		return "", err
	}
	return character.ParseAssetKind(s)
}

func attrKind(n *yaml.Node) (character.AttrKind, error) {
	s, err := text(n)
	if err != nil {
		return "", err
	}
	return character.ParseAttrKind(s)
}
