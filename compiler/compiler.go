package compiler

import (
	"strings"

	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/vdom"
)

// Compile walks the tree rooted at root once, depth-first and left to right,
// and returns the model with its template. Compilation never fails: problems
// are reported as diagnostics and the offending item is left out.
//
//	m := compiler.Compile(vdom.El("span", vdom.Children(count)))
//	m.Template // "<span>${ __child_0__ }</span>"
func Compile(root vdom.Node, opts ...Option) *Model {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}
	return compile(root, o)
}

// scope tells the emitters which namespace an element's own bindings use:
// the root namespace, or the positional identifiers of marker.
type scope struct {
	root   bool
	marker Marker
}

// childMarker returns the marker of the i-th child of the element in s.
func (s scope) childMarker(i int) Marker {
	if s.root {
		return Marker{Index: i}
	}
	return s.marker.Child(i)
}

type compiler struct {
	opts  compileOptions
	model *Model
	out   strings.Builder
}

func compile(root vdom.Node, o compileOptions) *Model {
	c := &compiler{opts: o, model: newModel()}

	el, ok := vdom.AsElement(root)
	if !ok {
		kind := "nil"
		if root != nil {
			kind = root.Kind().String()
		}
		c.errorf("unsupported-root", "only elements can be compiled, got a %s node", kind)
		return c.model
	}

	c.writeElement(el, scope{root: true})
	c.model.Template = c.out.String()
	return c.model
}

func (c *compiler) warnf(code, format string, args ...any) {
	console.Warnf(c.opts.Reporter, code, format, args...)
}

func (c *compiler) errorf(code, format string, args ...any) {
	console.Errorf(c.opts.Reporter, code, format, args...)
}

// bind stores b in the model, reporting identifiers that are already taken.
func (c *compiler) bind(id string, b Binding) {
	if !c.model.add(id, b) {
		c.errorf("duplicate-identifier", "identifier %s is already bound, keeping the first binding", id)
	}
}
