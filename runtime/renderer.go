package runtime

import (
	"errors"
	"fmt"

	"github.com/vcrobe/pui/compiler"
	"github.com/vcrobe/pui/vdom"
)

// ErrNoTree is returned when a component renders nothing.
var ErrNoTree = errors.New("component returned no tree")

// UI is the external rendering engine. It receives the compiled model and
// the template and owns everything from there: DOM creation, reactive
// updates, event dispatch. template is empty when the engine should bind
// to markup already present under parent.
//
// This interface has no build tags, so both browser and native test engines
// can implement it.
type UI[V any] interface {
	Create(parent any, model *compiler.Model, template string) (V, error)
}

// Render builds c with empty props, compiles the tree and hands the model
// and its template to ui.
func Render[V any](ui UI[V], parent any, c vdom.Component, opts ...compiler.Option) (V, error) {
	model, err := build(c, opts)
	if err != nil {
		var zero V
		return zero, err
	}
	return ui.Create(parent, model, model.Template)
}

// BindToDOM is like Render but passes an empty template. The engine uses the
// markup already under parent, which must match the component's tree.
func BindToDOM[V any](ui UI[V], parent any, c vdom.Component, opts ...compiler.Option) (V, error) {
	model, err := build(c, opts)
	if err != nil {
		var zero V
		return zero, err
	}
	return ui.Create(parent, model, "")
}

func build(c vdom.Component, opts []compiler.Option) (*compiler.Model, error) {
	if c == nil {
		return nil, fmt.Errorf("render: %w", ErrNoTree)
	}
	root, err := callComponent(c)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("render: %w", ErrNoTree)
	}
	if devMode {
		opts = append([]compiler.Option{compiler.WithDevMode(true)}, opts...)
	}
	return compiler.Compile(root, opts...), nil
}
