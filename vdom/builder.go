package vdom

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"

	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/signals"
)

var (
	// ErrFragment is returned when an element is created without a tag.
	ErrFragment = errors.New("a tag is required, fragments are not supported")
	// ErrUnknownTag is returned for tags that are neither a string nor a Component.
	ErrUnknownTag = errors.New("unknown tag type")
)

// IterationTag is the one custom element accepted as a child by the tree
// builder. Other custom elements must be the root of their own compile.
const IterationTag = "pui-for"

// Prop is a named property passed to Create, in declaration order.
type Prop struct {
	Name  string
	Value any
}

// Props is an ordered property list, the equivalent of a JSX props object.
type Props []Prop

// Get returns the value of the first property named name.
func (p Props) Get(name string) (any, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return nil, false
}

// Attr builds an attribute property.
func Attr(name string, value any) Prop {
	return Prop{Name: name, Value: value}
}

// Children builds the children property. Values follow BuildChildren rules.
func Children(children ...any) Prop {
	return Prop{Name: "children", Value: children}
}

// Component is a function component: it receives its props and returns the
// tree it renders.
type Component func(props Props) Node

// Create builds a node from a tag and its props. tag is either a tag name or
// a Component. An empty tag is a fragment, which is not supported.
func Create(tag any, props Props) (Node, error) {
	switch t := tag.(type) {
	case Component:
		return t(props), nil
	case func(Props) Node:
		return t(props), nil
	case nil:
		return nil, ErrFragment
	case string:
		if t == "" {
			return nil, ErrFragment
		}
		return elementFromTag(t, props), nil
	default:
		return nil, fmt.Errorf("create %T: %w", tag, ErrUnknownTag)
	}
}

// Fragment always fails: fragments need a tag to attach bindings to.
func Fragment(props Props) (Node, error) {
	return Create(nil, props)
}

// El is Create for a tag name that panics on error. It suits trees written
// by hand, where the tag is a literal.
//
//	vdom.El("div", vdom.Attr("class", "flex"), vdom.Children(
//		vdom.El("span", vdom.Children("Lorem ipsum")),
//	))
func El(tag string, props ...Prop) Node {
	n, err := Create(tag, Props(props))
	if err != nil {
		panic(fmt.Sprintf("vdom.El(%q): %v", tag, err))
	}
	return n
}

func elementFromTag(tag string, props Props) Node {
	el := Element{Name: tag}
	var children any
	for _, p := range props {
		name := p.Name
		if name == "children" {
			children = p.Value
			continue
		}
		if name == "className" {
			name = "class"
		}
		if p.Value == nil {
			continue
		}
		if cell, ok := p.Value.(signals.Binding); ok {
			if isNil(cell) {
				continue
			}
			cell.SetKey(name)
			el.States = append(el.States, StateAttr{Name: name, Cell: cell})
			continue
		}
		el.setAttr(name, classify(p.Value))
	}
	el.Children = BuildChildren(children)

	if IsTagSelfClosing(tag) && len(el.Children) > 0 {
		console.Errorf(nil, "void-children", "self closing tag can't have children: <%s />", tag)
	}
	if IsCustomTag(tag) {
		return &Custom{Element: el}
	}
	return &el
}

// setAttr appends an attribute, or replaces the value of an existing one
// (className and class both target "class").
func (e *Element) setAttr(name string, v AttrValue) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = v
			return
		}
	}
	e.Attrs = append(e.Attrs, Attribute{Name: name, Value: v})
}

// classify resolves a raw property value into its attribute variant.
func classify(v any) AttrValue {
	if isScalar(v) {
		return Literal{Value: v}
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return Handler{Fn: v}
	}
	return Object{Value: v}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, *big.Int:
		return true
	}
	return false
}

// BuildChildren flattens a children value into an ordered node list.
//
//   - nil contributes nothing
//   - a func taking nothing and returning a Node is invoked once and its
//     node used
//   - scalars become text nodes
//   - state cells become state nodes; nil cells contribute nothing
//   - nodes pass through, except custom elements other than IterationTag
//   - slices and arrays are flattened recursively
//
// Anything else is dropped with a diagnostic. BuildChildren never panics.
func BuildChildren(v any) []Node {
	var out []Node
	appendChildren(&out, v)
	return out
}

func appendChildren(out *[]Node, v any) {
	switch c := v.(type) {
	case nil:
		return
	case func() Node:
		if c != nil {
			appendChildren(out, c())
		}
		return
	case signals.Binding:
		if !isNil(c) {
			*out = append(*out, NewState(c))
		}
		return
	case Node:
		if isNil(c) {
			return
		}
		if cu, ok := c.(*Custom); ok && cu.Name != IterationTag {
			console.Errorf(nil, "unsupported-custom-child", "custom elements are not supported as children yet: <%s>", cu.Name)
			return
		}
		*out = append(*out, c)
		return
	case []Node:
		for _, n := range c {
			appendChildren(out, n)
		}
		return
	case []any:
		for _, n := range c {
			appendChildren(out, n)
		}
		return
	}
	if isScalar(v) {
		if b, ok := v.(*big.Int); ok && b == nil {
			return
		}
		*out = append(*out, NewText(fmt.Sprint(v)))
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendChildren(out, rv.Index(i).Interface())
		}
	case reflect.Func:
		t := rv.Type()
		if t.NumIn() != 0 || t.NumOut() != 1 || !t.Out(0).Implements(nodeType) {
			console.Errorf(nil, "unsupported-child", "unsupported children type: %T", v)
			return
		}
		if !rv.IsNil() {
			appendChildren(out, rv.Call(nil)[0].Interface())
		}
	default:
		console.Errorf(nil, "unsupported-child", "unsupported children type: %T", v)
	}
}

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
