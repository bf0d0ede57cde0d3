package signals

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned by SetValue when the value does not have the
// cell's element type.
var ErrTypeMismatch = errors.New("value type does not match cell type")

// Mode selects how a cell bound to an attribute synchronizes with the view.
type Mode string

const (
	ModeDefault Mode = ""         // model to view, value only
	ModeTwoWay  Mode = "twoway"   // ${ name <=> id }
	ModeOneTime Mode = "onetime"  // ${ name <=| id }
	ModeModel   Mode = "model"    // ${ name <== id }
	ModeAttr    Mode = "attr"     // ${ name ==> id }
	ModeRefView Mode = "ref.view" // recognised, not supported by the compiler
	ModeRefElem Mode = "ref.elem" // recognised, not supported by the compiler
)

// Binding is the untyped view of a cell used by the node tree and the compiler.
type Binding interface {
	Key() string
	SetKey(key string)
	Mode() Mode
	Value() any
	SetValue(v any) error
	String() string
}

// Compile-time assertion that cells can be placed in a node tree.
var _ Binding = (*Cell[int])(nil)

// Cell is a handle on a shared Signal carrying a binding mode. Handles are
// cheap: Sync, Once, Model and Attr return new handles over the same slot.
type Cell[T any] struct {
	slot *Signal[T]
	mode Mode
	key  string
}

// NewCell creates a cell with its own slot and the default mode.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{slot: NewSignal(initial)}
}

// ModelData creates a cell and a setter for it.
//
//	count, setCount := signals.ModelData(0)
//	vdom.El("input", vdom.Attr("value", count.Sync()))
//	setCount(3)
func ModelData[T any](initial T) (*Cell[T], func(T)) {
	c := NewCell(initial)
	return c, c.Set
}

// WithMode returns a new handle over the same slot with the given mode.
func (c *Cell[T]) WithMode(m Mode) *Cell[T] {
	return &Cell[T]{slot: c.slot, mode: m, key: c.key}
}

// Sync binds two-way.
func (c *Cell[T]) Sync() *Cell[T] { return c.WithMode(ModeTwoWay) }

// Once binds one time.
func (c *Cell[T]) Once() *Cell[T] { return c.WithMode(ModeOneTime) }

// Model binds model to attribute.
func (c *Cell[T]) Model() *Cell[T] { return c.WithMode(ModeModel) }

// Attr binds attribute to model.
func (c *Cell[T]) Attr() *Cell[T] { return c.WithMode(ModeAttr) }

func (c *Cell[T]) Get() T { return c.slot.Get() }
func (c *Cell[T]) Set(v T) { c.slot.Set(v) }
func (c *Cell[T]) Update(fn func(T) T) { c.slot.Update(fn) }
func (c *Cell[T]) Mode() Mode { return c.mode }
func (c *Cell[T]) Key() string { return c.key }
func (c *Cell[T]) SetKey(key string) { c.key = key }
func (c *Cell[T]) Value() any { return c.slot.Get() }
func (c *Cell[T]) Signal() *Signal[T] { return c.slot }
func (c *Cell[T]) String() string { return fmt.Sprint(c.slot.Get()) }
func (c *Cell[T]) Subscribe(fn func()) func() { return c.slot.Subscribe(fn) }

// SetValue stores v if it is a T. A nil v stores the zero value.
func (c *Cell[T]) SetValue(v any) error {
	if v == nil {
		var zero T
		c.slot.Set(zero)
		return nil
	}
	tv, ok := v.(T)
	if !ok {
		var zero T
		return fmt.Errorf("cannot store %T in Cell[%T]: %w", v, zero, ErrTypeMismatch)
	}
	c.slot.Set(tv)
	return nil
}
