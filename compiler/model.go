package compiler

import (
	"github.com/vcrobe/pui/signals"
)

// Binding is a model entry: an Accessor, a Handler or a SubModel.
type Binding interface {
	binding()
}

// Accessor proxies a state cell's value slot. Reads and writes go straight
// to the cell, so changes made elsewhere are visible immediately.
type Accessor interface {
	Binding
	Get() any
	Set(v any) error
}

// Handler is an event handler exactly as the author supplied it. The
// rendering engine invokes it with (event, model scope).
type Handler struct {
	Fn any
}

// SubModel is the independently compiled model of an embedded component.
type SubModel struct {
	Model *Model
}

func (Handler) binding() {}
func (SubModel) binding() {}

type cellAccessor struct {
	cell signals.Binding
}

func (cellAccessor) binding() {}
func (a cellAccessor) Get() any { return a.cell.Value() }
func (a cellAccessor) Set(v any) error { return a.cell.SetValue(v) }

// Model is the flat binding object handed to the rendering engine together
// with its template.
type Model struct {
	Template string

	keys    []string
	entries map[string]Binding
}

func newModel() *Model {
	return &Model{entries: make(map[string]Binding)}
}

// add stores b under id. It reports false if id is already taken.
func (m *Model) add(id string, b Binding) bool {
	if _, exists := m.entries[id]; exists {
		return false
	}
	m.keys = append(m.keys, id)
	m.entries[id] = b
	return true
}

// Len returns the number of bindings.
func (m *Model) Len() int { return len(m.keys) }

// Keys returns the identifiers in the order the compiler produced them.
func (m *Model) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Lookup returns the binding stored under id.
func (m *Model) Lookup(id string) (Binding, bool) {
	b, ok := m.entries[id]
	return b, ok
}

// Accessor returns the accessor stored under id.
func (m *Model) Accessor(id string) (Accessor, bool) {
	a, ok := m.entries[id].(Accessor)
	return a, ok
}

// Handler returns the handler function stored under id.
func (m *Model) Handler(id string) (any, bool) {
	h, ok := m.entries[id].(Handler)
	if !ok {
		return nil, false
	}
	return h.Fn, true
}

// Sub returns the nested model stored under id.
func (m *Model) Sub(id string) (*Model, bool) {
	s, ok := m.entries[id].(SubModel)
	if !ok {
		return nil, false
	}
	return s.Model, true
}

// Describe returns a JSON-friendly view of the model: identifiers mapped to
// "accessor" or "handler", and nested models described recursively together
// with their template.
func (m *Model) Describe() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, id := range m.keys {
		switch b := m.entries[id].(type) {
		case Accessor:
			out[id] = "accessor"
		case Handler:
			out[id] = "handler"
		case SubModel:
			out[id] = map[string]any{
				"template": b.Model.Template,
				"bindings": b.Model.Describe(),
			}
		}
	}
	return out
}
