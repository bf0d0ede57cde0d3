// Package static renders a tree to plain HTML with every dynamic value frozen
// to its current snapshot. No model is produced and no binding syntax is
// emitted.
package static

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/htmlesc"
	"github.com/vcrobe/pui/vdom"
)

type options struct {
	reporter console.Reporter
}

// Option configures a render.
type Option func(*options)

// WithReporter routes diagnostics to r instead of the console.
func WithReporter(r console.Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// RenderComponent renders the tree returned by c called with empty props.
func RenderComponent(c vdom.Component, opts ...Option) string {
	return RenderHTML(c(vdom.Props{vdom.Children()}), opts...)
}

// RenderHTML renders root and its subtree.
func RenderHTML(root vdom.Node, opts ...Option) string {
	r := &renderer{}
	for _, opt := range opts {
		opt(&r.opts)
	}
	r.writeNode(root)
	return r.out.String()
}

type renderer struct {
	opts options
	out  strings.Builder
}

func (r *renderer) writeNode(n vdom.Node) {
	switch t := n.(type) {
	case *vdom.Text:
		r.out.WriteString(htmlesc.Child(t.Value))
	case *vdom.State:
		r.out.WriteString(htmlesc.Child(t.Cell.String()))
	case *vdom.Custom:
		r.writeElement(&t.Element)
	case *vdom.Element:
		r.writeElement(t)
	}
}

func (r *renderer) writeElement(el *vdom.Element) {
	r.out.WriteString("<" + el.Name)
	for _, a := range el.Attrs {
		switch v := a.Value.(type) {
		case vdom.Literal:
			r.writeAttr(a.Name, v.Value)
		case vdom.Object:
			r.writeAttr(a.Name, v.Value)
		case vdom.Handler:
			// Handlers have no static form.
		}
	}
	for _, sa := range el.States {
		r.writeAttr(sa.Name, sa.Cell.Value())
	}

	if vdom.IsTagSelfClosing(el.Name) {
		if len(el.Children) > 0 {
			console.Errorf(r.opts.reporter, "void-children", "self closing tag can't have children: <%s />", el.Name)
		}
		r.out.WriteString(" />")
		return
	}

	r.out.WriteString(">")
	for _, child := range el.Children {
		r.writeNode(child)
	}
	r.out.WriteString("</" + el.Name + ">")
}

// writeAttr writes name="value" for values that have a string form. nil and
// functions are skipped.
func (r *renderer) writeAttr(name string, v any) {
	s, ok := r.attrString(name, v)
	if !ok {
		return
	}
	r.out.WriteString(" " + name + `="` + htmlesc.Attr(s) + `"`)
}

func (r *renderer) attrString(name string, v any) (string, bool) {
	if v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case error:
		return t.Error(), true
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			console.Errorf(r.opts.reporter, "unsupported-attribute-value", "attribute %s: %v", name, err)
			return "", false
		}
		return string(b), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return "", false
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return fmt.Sprint(v), true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}
		return r.attrString(name, rv.Elem().Interface())
	}
	console.Errorf(r.opts.reporter, "unsupported-attribute-value", "unsupported attribute value type on HTML render: %s=%T", name, v)
	return "", false
}
