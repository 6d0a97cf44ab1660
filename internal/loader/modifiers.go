package loader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harkonenbade/jadepunk/internal/game/character"
)

// ErrUnknownModifier is returned for a capitalised asset key that names no modifier.
var ErrUnknownModifier = errors.New("unknown modifier")

// args holds a modifier's arguments keyed by parameter name.
type args struct {
	params []string
	named  map[string]*yaml.Node
}

// factory builds one modifier kind. params lists the argument names in positional order.
type factory struct {
	params []string
	build  func(a args) (character.Modifier, error)
}

var factories = map[string]factory{
	"Aspect": {[]string{"aspect"}, func(a args) (character.Modifier, error) {
		t, err := a.text(0)
		return character.Aspect{Text: t}, err
	}},
	"Exceptional": {[]string{"txt"}, func(a args) (character.Modifier, error) {
		t, err := a.text(0)
		return character.Exceptional{Text: t}, err
	}},
	"Flexible": {[]string{"replacing", "replaced"}, func(a args) (character.Modifier, error) {
		replacing, err := a.attr(0)
		if err != nil {
			return nil, err
		}
		replaced, err := a.attr(1)
		return character.Flexible{Replacing: replacing, Replaced: replaced}, err
	}},
	"Focus": {[]string{"attr", "ranks"}, func(a args) (character.Modifier, error) {
		attr, err := a.attr(0)
		if err != nil {
			return nil, err
		}
		rank, err := a.intOr(1, 1)
		return character.Focus{Attr: attr, Rank: rank}, err
	}},
	"Harmful": ranked(func(r int) character.Modifier { return character.Harmful{Rank: r} }),
	"Independent": {nil, func(args) (character.Modifier, error) {
		return character.Independent{}, nil
	}},
	"Numerous": ranked(func(r int) character.Modifier { return character.Numerous{Rank: r} }),
	"Professional": {[]string{"ranks", "avg", "fair"}, func(a args) (character.Modifier, error) {
		rank, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		avg, err := a.attrList(1)
		if err != nil {
			return nil, err
		}
		var fair character.AttrKind
		if a.has(2) {
			if fair, err = a.attr(2); err != nil {
				return nil, err
			}
		}
		return character.Professional{Rank: rank, Fair: fair, Average: avg}, nil
	}},
	"Protective": ranked(func(r int) character.Modifier { return character.Protective{Rank: r} }),
	"Resilient":  ranked(func(r int) character.Modifier { return character.Resilient{Rank: r} }),
	"Sturdy":     ranked(func(r int) character.Modifier { return character.Sturdy{Rank: r} }),
	"Consuming": {nil, func(args) (character.Modifier, error) {
		return character.Consuming{}, nil
	}},
	"Demanding": {[]string{"ranks", "attr"}, func(a args) (character.Modifier, error) {
		rank, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		attr, err := a.attr(1)
		return character.Demanding{Rank: rank, Attr: attr}, err
	}},
	"Limited": ranked(func(r int) character.Modifier { return character.Limited{Rank: r} }),
	"Situational": {[]string{"aspect"}, func(a args) (character.Modifier, error) {
		t, err := a.text(0)
		return character.Situational{Text: t}, err
	}},
	"Troubling": {[]string{"aspect"}, func(a args) (character.Modifier, error) {
		t, err := a.text(0)
		return character.Troubling{Text: t}, err
	}},
}

func ranked(mk func(rank int) character.Modifier) factory {
	return factory{[]string{"ranks"}, func(a args) (character.Modifier, error) {
		r, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return mk(r), nil
	}}
}

// ModifierNames lists every modifier name the loader accepts, sorted.
func ModifierNames() []string {
	names := make([]string, 0, len(factories)+1)
	for name := range factories {
		names = append(names, name)
	}
	names = append(names, "Talented")
	sort.Strings(names)
	return names
}

// buildModifier constructs the modifier called name from its YAML value.
func buildModifier(name string, n *yaml.Node) (character.Modifier, error) {
	if name == "Talented" {
		return buildTalented(n)
	}
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("line %d: %q: %w", n.Line, name, ErrUnknownModifier)
	}
	a, err := newArgs(name, n, f.params)
	if err != nil {
		return nil, err
	}
	m, err := f.build(a)
	if err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, name, err)
	}
	return m, nil
}

// buildTalented reads {type: <asset kind>, <Modifier>: <value>}.
func buildTalented(n *yaml.Node) (character.Modifier, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: Talented: expected a mapping with type and one modifier", n.Line)
	}
	var t character.Talented
	haveType := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		switch {
		case isModifierKey(key.Value):
			if t.Modifier != nil {
				return nil, fmt.Errorf("line %d: Talented: only one modifier may be wrapped", key.Line)
			}
			m, err := buildModifier(key.Value, val)
			if err != nil {
				return nil, err
			}
			t.Modifier = m
		case key.Value == "type":
			kind, err := assetKind(val)
			if err != nil {
				return nil, fmt.Errorf("line %d: Talented: %w", key.Line, err)
			}
			t.As = kind
			haveType = true
		default:
			return nil, fmt.Errorf("line %d: Talented: unknown argument %q", key.Line, key.Value)
		}
	}
	if !haveType {
		return nil, fmt.Errorf("line %d: Talented: missing type", n.Line)
	}
	if t.Modifier == nil {
		return nil, fmt.Errorf("line %d: Talented: missing wrapped modifier", n.Line)
	}
	return t, nil
}

// newArgs binds n to params: a scalar fills the first parameter, a sequence
// fills them in order, a mapping names them (case-insensitively).
func newArgs(name string, n *yaml.Node, params []string) (args, error) {
	a := args{params: params, named: make(map[string]*yaml.Node, len(params))}
	var positional []*yaml.Node
	switch {
	case isNull(n):
	case n.Kind == yaml.ScalarNode:
		positional = []*yaml.Node{n}
	case n.Kind == yaml.SequenceNode:
		positional = n.Content
	case n.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := strings.ToLower(n.Content[i].Value)
			if !contains(params, key) {
				return a, fmt.Errorf("line %d: %s: unknown argument %q", n.Content[i].Line, name, n.Content[i].Value)
			}
			a.named[key] = resolve(n.Content[i+1])
		}
	default:
		return a, fmt.Errorf("line %d: %s: unsupported value", n.Line, name)
	}
	if len(positional) > len(params) {
		return a, fmt.Errorf("line %d: %s takes at most %d arguments, got %d", n.Line, name, len(params), len(positional))
	}
	for i, p := range positional {
		a.named[params[i]] = resolve(p)
	}
	return a, nil
}

func (a args) node(pos int) *yaml.Node {
	if pos >= len(a.params) {
		return nil
	}
	return a.named[a.params[pos]]
}

func (a args) has(pos int) bool {
	return !isNull(a.node(pos))
}

func (a args) require(pos int) (*yaml.Node, error) {
	n := a.node(pos)
	if isNull(n) {
		return nil, fmt.Errorf("missing argument %q", a.params[pos])
	}
	return n, nil
}

func (a args) text(pos int) (string, error) {
	n, err := a.require(pos)
	if err != nil {
		return "", err
	}
	return text(n)
}

func (a args) attr(pos int) (character.AttrKind, error) {
	n, err := a.require(pos)
	if err != nil {
		return "", err
	}
	return attrKind(n)
}

func (a args) integer(pos int) (int, error) {
	n, err := a.require(pos)
	if err != nil {
		return 0, err
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, fmt.Errorf("argument %q: %w", a.params[pos], err)
	}
	return v, nil
}

func (a args) intOr(pos, def int) (int, error) {
	if !a.has(pos) {
		return def, nil
	}
	return a.integer(pos)
}

// attrList reads one attribute or a sequence of them.
func (a args) attrList(pos int) ([]character.AttrKind, error) {
	n := a.node(pos)
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		k, err := attrKind(n)
		if err != nil {
			return nil, err
		}
		return []character.AttrKind{k}, nil
	}
	out := make([]character.AttrKind, 0, len(n.Content))
	for _, item := range n.Content {
		k, err := attrKind(item)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
