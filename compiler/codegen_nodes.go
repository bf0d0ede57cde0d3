package compiler

import (
	"strings"

	"github.com/vcrobe/pui/htmlesc"
	"github.com/vcrobe/pui/vdom"
)

// writeElement emits el: open tag, attributes, then children or the
// self-closing form. s is the namespace of el's own bindings.
func (c *compiler) writeElement(el *vdom.Element, s scope) {
	if c.opts.DevMode && !vdom.IsKnownTag(el.Name) && !vdom.IsCustomTag(el.Name) {
		msg := "<" + el.Name + "> is not a standard HTML element"
		if similar := vdom.SuggestTags(el.Name); len(similar) > 0 {
			msg += ", did you mean <" + strings.Join(similar, ">, <") + ">?"
		}
		c.warnf("unknown-tag", "%s", msg)
	}

	c.out.WriteString("<" + el.Name)
	c.writeAttributes(el, s)

	if len(el.Children) == 0 {
		c.out.WriteString(" />")
		return
	}
	if vdom.IsTagSelfClosing(el.Name) {
		c.errorf("void-children", "self closing tag can't have children: <%s />", el.Name)
		c.out.WriteString(" />")
		return
	}

	c.out.WriteString(">")
	for i, child := range el.Children {
		c.writeChild(child, s.childMarker(i), s.root)
	}
	c.out.WriteString("</" + el.Name + ">")
}

// writeChild emits one child at marker m. atRoot is true for direct children
// of the compile root.
func (c *compiler) writeChild(child vdom.Node, m Marker, atRoot bool) {
	switch n := child.(type) {
	case *vdom.Text:
		if atRoot {
			c.out.WriteString(n.Value)
		} else {
			c.out.WriteString(htmlesc.Template(n.Value))
		}
	case *vdom.Custom:
		id := m.ID("")
		sub := compile(n, c.opts)
		c.bind(id, SubModel{Model: sub})
		if atRoot {
			c.out.WriteString("<${ " + id + " === }>")
		} else {
			c.out.WriteString("<${ " + id + " === } />")
		}
	case *vdom.State:
		id := m.ID("")
		c.bind(id, cellAccessor{cell: n.Cell})
		c.out.WriteString("${ " + id + " }")
	case *vdom.Element:
		c.writeElement(n, scope{marker: m})
	case nil:
		c.errorf("unsupported-child", "nil child at %s", m.ID(""))
	}
}
