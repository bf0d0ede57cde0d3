package compiler

import (
	"strings"

	"github.com/vcrobe/pui/htmlesc"
	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

// bindingOperators maps binding modes to their template operator.
var bindingOperators = map[signals.Mode]string{
	signals.ModeTwoWay:  "<=>",
	signals.ModeOneTime: "<=|",
	signals.ModeModel:   "<==",
	signals.ModeAttr:    "==>",
}

// writeAttributes emits the plain attributes of el followed by its state
// bound attributes.
func (c *compiler) writeAttributes(el *vdom.Element, s scope) {
	for _, a := range el.Attrs {
		c.writeAttribute(el, a, s)
	}
	for _, sa := range el.States {
		c.writeStateAttribute(sa, s)
	}
}

func (c *compiler) writeAttribute(el *vdom.Element, a vdom.Attribute, s scope) {
	if a.Name == "children" {
		return
	}

	event, hasPrefix := eventName(a.Name)
	switch v := a.Value.(type) {
	case vdom.Handler:
		if !hasPrefix && strings.HasPrefix(a.Name, attrPrefix) {
			c.errorf("reserved-handler-name",
				"handler %s of <%s> would share its identifier with the state attribute %s, use the 'on' prefix",
				a.Name, el.Name, strings.TrimPrefix(a.Name, attrPrefix))
			return
		}
		if !hasPrefix {
			c.warnf("handler-without-on-prefix",
				"setting property %s of <%s> as event handler without the 'on' prefix makes it unclear, it's recommended to use the 'on' prefix for events",
				a.Name, el.Name)
			event = a.Name
		}
		id := c.handlerID(a.Name, s)
		c.out.WriteString(" ${ " + event + " @=> " + id + " }")
		c.bind(id, Handler{Fn: v.Fn})
	case vdom.Object:
		c.errorf("object-attribute", "objects are not supported as attribute values (<%s %s>), bind a state cell instead", el.Name, a.Name)
	case vdom.Literal:
		if hasPrefix {
			c.errorf("non-callable-handler", "expected a function for property %s of <%s>, got %T", a.Name, el.Name, v.Value)
			return
		}
		if v.Value == nil {
			return
		}
		c.out.WriteString(" " + a.Name + `="` + htmlesc.Attr(literalString(v.Value)) + `"`)
	case nil:
		// Absent value: nothing to write.
	}
}

func (c *compiler) handlerID(name string, s scope) string {
	if s.root {
		return RootEvent(name)
	}
	return s.marker.ID(name)
}

func (c *compiler) writeStateAttribute(sa vdom.StateAttr, s scope) {
	mode := sa.Cell.Mode()
	if mode == signals.ModeRefView || mode == signals.ModeRefElem {
		c.warnf("unsupported-binding-mode", "%s bindings are not supported yet, skipping attribute %s", mode, sa.Name)
		return
	}

	id := RootAttr(sa.Name)
	if !s.root {
		id = s.marker.AttrID(sa.Name)
	}
	c.bind(id, cellAccessor{cell: sa.Cell})

	if mode == signals.ModeDefault {
		c.out.WriteString(" " + sa.Name + `="${ ` + id + ` }"`)
		return
	}
	op, ok := bindingOperators[mode]
	if !ok {
		c.errorf("unknown-binding-mode", "unknown binding mode %q on attribute %s, using a one-way binding", string(mode), sa.Name)
		c.out.WriteString(" " + sa.Name + `="${ ` + id + ` }"`)
		return
	}
	c.out.WriteString(" ${ " + sa.Name + " " + op + " " + id + " }")
}
