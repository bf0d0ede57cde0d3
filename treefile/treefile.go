// Package treefile loads UI trees described in YAML.
//
//	state:
//	  name: Ada
//	root:
//	  tag: label
//	  attrs:
//	    className: greeting
//	    onClick: greet
//	  children:
//	    - "Hello "
//	    - state: name
//	    - tag: input
//	      attrs:
//	        value: {state: name, mode: twoway}
//
// A node is a scalar (text), a sequence (flattened into its parent), a
// mapping with a tag, or a reference to a declared state cell. Attribute
// order is kept as written.
package treefile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

// ErrInvalid is wrapped by every error caused by the shape of the input.
var ErrInvalid = errors.New("invalid tree file")

// Handlers resolves handler names used by on* attributes to functions.
type Handlers interface {
	Lookup(name string) (fn any, ok bool)
}

// HandlerMap is a fixed set of named handlers.
type HandlerMap map[string]any

func (m HandlerMap) Lookup(name string) (any, bool) {
	fn, ok := m[name]
	return fn, ok
}

// HandlerFunc resolves every name through a function.
type HandlerFunc func(name string) (any, bool)

func (f HandlerFunc) Lookup(name string) (any, bool) { return f(name) }

// Document is a loaded tree file.
type Document struct {
	Root vdom.Node
	// Cells are the declared state cells, by name. Every reference in the
	// tree is a handle on one of these.
	Cells map[string]*signals.Cell[any]
}

// Component returns a component rendering the loaded tree.
func (d *Document) Component() vdom.Component {
	return func(vdom.Props) vdom.Node { return d.Root }
}

type file struct {
	State yaml.Node `yaml:"state"`
	Root  yaml.Node `yaml:"root"`
}

// Load reads one YAML document from r and builds its tree. Handler names
// are looked up in h, which may be nil.
func Load(r io.Reader, h Handlers) (*Document, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	l := &loader{handlers: h, cells: make(map[string]*signals.Cell[any])}
	if err := l.loadState(&f.State); err != nil {
		return nil, err
	}
	if f.Root.Kind == 0 {
		return nil, fmt.Errorf("%w: missing root", ErrInvalid)
	}
	root, err := l.node(&f.Root)
	if err != nil {
		return nil, err
	}
	n, ok := root.(vdom.Node)
	if !ok {
		return nil, errorAt(&f.Root, "root must be an element")
	}
	return &Document{Root: n, Cells: l.cells}, nil
}

type loader struct {
	handlers Handlers
	cells    map[string]*signals.Cell[any]
}

func (l *loader) loadState(n *yaml.Node) error {
	n = resolve(n)
	switch n.Kind {
	case 0:
		return nil
	case yaml.MappingNode:
	default:
		return errorAt(n, "state must be a mapping of names to initial values")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		var v any
		if err := resolve(n.Content[i+1]).Decode(&v); err != nil {
			return errorAt(n.Content[i+1], "state %s: %v", name, err)
		}
		if _, exists := l.cells[name]; exists {
			return errorAt(n.Content[i], "state %s declared twice", name)
		}
		l.cells[name] = signals.NewCell(v)
	}
	return nil
}

// node converts n into a builder child value: a string, a vdom.Node, a
// state cell or a []any.
func (l *loader) node(n *yaml.Node) (any, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.SequenceNode:
		children := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := l.node(c)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return children, nil
	case yaml.MappingNode:
		if field(n, "state") != nil {
			return l.stateRef(n)
		}
		return l.element(n)
	}
	return nil, errorAt(n, "unexpected node")
}

func (l *loader) element(n *yaml.Node) (vdom.Node, error) {
	var (
		tag   string
		props vdom.Props
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, resolve(n.Content[i+1])
		switch key {
		case "tag":
			tag = val.Value
		case "attrs":
			if val.Kind != yaml.MappingNode {
				return nil, errorAt(val, "attrs of <%s> must be a mapping", tag)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				name := val.Content[j].Value
				v, err := l.attr(name, val.Content[j+1])
				if err != nil {
					return nil, err
				}
				props = append(props, vdom.Attr(name, v))
			}
		case "children":
			children, err := l.node(val)
			if err != nil {
				return nil, err
			}
			props = append(props, vdom.Children(children))
		default:
			return nil, errorAt(n.Content[i], "unknown key %q", key)
		}
	}
	if tag == "" {
		return nil, errorAt(n, "element without tag")
	}

	el, err := vdom.Create(tag, props)
	if err != nil {
		return nil, errorAt(n, "%v", err)
	}
	return el, nil
}

func (l *loader) attr(name string, n *yaml.Node) (any, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		return l.stateRef(n)
	case yaml.ScalarNode:
		if isEvent(name) {
			var (
				fn any
				ok bool
			)
			if l.handlers != nil {
				fn, ok = l.handlers.Lookup(n.Value)
			}
			if !ok {
				return nil, errorAt(n, "unknown handler %q for %s", n.Value, name)
			}
			return fn, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errorAt(n, "attribute %s: %v", name, err)
		}
		return v, nil
	}
	return nil, errorAt(n, "attribute %s must be a scalar or a state reference", name)
}

func (l *loader) stateRef(n *yaml.Node) (*signals.Cell[any], error) {
	var ref struct {
		State string `yaml:"state"`
		Mode  string `yaml:"mode"`
	}
	if err := n.Decode(&ref); err != nil {
		return nil, errorAt(n, "state reference: %v", err)
	}
	cell, ok := l.cells[ref.State]
	if !ok {
		return nil, errorAt(n, "undeclared state %q", ref.State)
	}
	return cell.WithMode(signals.Mode(ref.Mode)), nil
}

func isEvent(name string) bool {
	return len(name) > 2 && strings.EqualFold(name[:2], "on")
}

func field(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func errorAt(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalid, n.Line, fmt.Sprintf(format, args...))
}
