package compiler

import (
	"strconv"
	"strings"
)

// Marker is the position of a dynamic point: the child indices of its
// ancestors below the compile root, and its own index among its siblings.
// Indices count every child kind, text included.
type Marker struct {
	Path  []int
	Index int
}

// ID returns the identifier for the marker with an optional suffix:
//
//	__child_<path>_<index>__
//	__child_<path>_<index>_<suffix>__
//
// It depends only on (Path, Index, suffix).
func (m Marker) ID(suffix string) string {
	var b strings.Builder
	b.WriteString("__child_")
	for _, p := range m.Path {
		b.WriteString(strconv.Itoa(p))
		b.WriteByte('_')
	}
	b.WriteString(strconv.Itoa(m.Index))
	if suffix != "" {
		b.WriteByte('_')
		b.WriteString(suffix)
	}
	b.WriteString("__")
	return b.String()
}

// attrPrefix marks identifiers of state cells bound to attributes. Handler
// identifiers never start with it.
const attrPrefix = "attr_"

// AttrID is the identifier of a state cell bound to attribute name.
func (m Marker) AttrID(name string) string {
	return m.ID(attrPrefix + name)
}

// Child returns the marker of the child at index i below m.
func (m Marker) Child(i int) Marker {
	path := make([]int, len(m.Path)+1)
	copy(path, m.Path)
	path[len(m.Path)] = m.Index
	return Marker{Path: path, Index: i}
}

// RootEvent is the identifier of an event handler on the compile root.
func RootEvent(name string) string {
	return "__root_" + name + "__"
}

// RootAttr is the identifier of a state cell bound to an attribute of the
// compile root.
func RootAttr(name string) string {
	return "__root_" + attrPrefix + name + "__"
}
