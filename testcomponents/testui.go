package testcomponents

import (
	"github.com/vcrobe/pui/compiler"
	"github.com/vcrobe/pui/runtime"
)

// TestUI is a minimal rendering engine for in-memory tests. It implements
// runtime.UI without any browser dependency.
//
// It records every Create call and lets tests:
// - Inspect the template and model handed over
// - Fire events through the registered handlers
// - Read and write accessors the way a view would
type TestUI struct {
	Calls []Call
	// Err, when set, is returned by Create instead of a view.
	Err error
}

// Call is one recorded Create invocation.
type Call struct {
	Parent   any
	Model    *compiler.Model
	Template string
}

// Compile-time assertion to ensure TestUI implements runtime.UI.
var _ runtime.UI[*View] = (*TestUI)(nil)

// NewTestUI creates an empty engine.
func NewTestUI() *TestUI {
	return &TestUI{}
}

// Create records the call and returns a view over model.
func (u *TestUI) Create(parent any, model *compiler.Model, template string) (*View, error) {
	u.Calls = append(u.Calls, Call{Parent: parent, Model: model, Template: template})
	if u.Err != nil {
		return nil, u.Err
	}
	return &View{Model: model, Template: template}, nil
}

// LastCall returns the most recent Create call.
func (u *TestUI) LastCall() (Call, bool) {
	if len(u.Calls) == 0 {
		return Call{}, false
	}
	return u.Calls[len(u.Calls)-1], true
}

// View is what TestUI hands back for a created component.
type View struct {
	Model    *compiler.Model
	Template string
}

// Read returns the current value behind accessor id.
func (v *View) Read(id string) (any, bool) {
	a, ok := v.Model.Accessor(id)
	if !ok {
		return nil, false
	}
	return a.Get(), true
}

// Write stores value through accessor id, as an input element bound two-way
// would.
func (v *View) Write(id string, value any) error {
	a, ok := v.Model.Accessor(id)
	if !ok {
		return &MissingBindingError{ID: id}
	}
	return a.Set(value)
}

// Fire invokes handler id. Handlers may take no arguments, the event, or
// the event and the model.
func (v *View) Fire(id string, event any) error {
	fn, ok := v.Model.Handler(id)
	if !ok {
		return &MissingBindingError{ID: id}
	}
	switch h := fn.(type) {
	case func():
		h()
	case func(any):
		h(event)
	case func(any, *compiler.Model):
		h(event, v.Model)
	default:
		return &UnsupportedHandlerError{ID: id, Fn: fn}
	}
	return nil
}

// Sub returns a view over the nested model id.
func (v *View) Sub(id string) (*View, bool) {
	m, ok := v.Model.Sub(id)
	if !ok {
		return nil, false
	}
	return &View{Model: m, Template: m.Template}, true
}
