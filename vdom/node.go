package vdom

import (
	"strings"

	"github.com/vcrobe/pui/signals"
)

// Kind discriminates the node variants.
type Kind int

const (
	KindText Kind = iota
	KindElement
	KindState
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	case KindState:
		return "state"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Node is a node of a UI tree. The set of implementations is closed:
// *Text, *Element, *Custom and *State.
type Node interface {
	Kind() Kind
	// Tag is the literal text for text nodes, the tag name for elements and
	// custom elements, and the binding key for state nodes.
	Tag() string
	node()
}

// Text is literal text content.
type Text struct {
	Value string
}

// NewText creates a text node.
func NewText(s string) *Text { return &Text{Value: s} }

func (t *Text) Kind() Kind { return KindText }
func (t *Text) Tag() string { return t.Value }
func (*Text) node() {}

// Element is an HTML element. Attribute order is the declared order and is
// reproduced verbatim in templates.
type Element struct {
	Name     string
	Attrs    []Attribute // Literal, handler and object attributes
	States   []StateAttr // Attributes bound to state cells, kept apart for their binding mode
	Children []Node
}

func (e *Element) Kind() Kind { return KindElement }
func (e *Element) Tag() string { return e.Name }
func (*Element) node() {}

// Custom is an embedded sub-component. Its subtree compiles into its own model.
type Custom struct {
	Element
}

func (c *Custom) Kind() Kind { return KindCustom }
func (*Custom) node() {}

// State is a state cell placed in the tree as a lone interpolation.
type State struct {
	Cell signals.Binding
}

// NewState wraps a cell as a node.
func NewState(cell signals.Binding) *State { return &State{Cell: cell} }

func (s *State) Kind() Kind { return KindState }
func (s *State) Tag() string { return s.Cell.Key() }
func (*State) node() {}

// IsCustomTag reports whether tag names a custom element.
func IsCustomTag(tag string) bool {
	return strings.Contains(tag, "-")
}

// AsElement returns the element fields of an *Element or *Custom.
func AsElement(n Node) (*Element, bool) {
	switch t := n.(type) {
	case *Element:
		return t, true
	case *Custom:
		return &t.Element, true
	default:
		return nil, false
	}
}

// Attribute is a named attribute value.
type Attribute struct {
	Name  string
	Value AttrValue
}

// AttrValue is one of Literal, Handler or Object.
type AttrValue interface {
	attrValue()
}

// Literal is a scalar attribute value: string, bool, integer, float or *big.Int.
type Literal struct {
	Value any
}

// Handler is a callable attribute value, passed to the rendering engine
// untouched.
type Handler struct {
	Fn any
}

// Object is any other attribute value. The compiler rejects it; the static
// renderer stringifies it when it can.
type Object struct {
	Value any
}

func (Literal) attrValue() {}
func (Handler) attrValue() {}
func (Object) attrValue() {}

// StateAttr is an attribute bound to a state cell.
type StateAttr struct {
	Name string
	Cell signals.Binding
}
