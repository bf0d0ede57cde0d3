package databinding

import (
	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

// Counter is a click counter with an editable label.
type Counter struct {
	Count *signals.Cell[int]
	Label *signals.Cell[string]
}

// NewCounter creates a counter starting at count.
func NewCounter(count int, label string) *Counter {
	return &Counter{
		Count: signals.NewCell(count),
		Label: signals.NewCell(label),
	}
}

// Increment is the click handler of the +1 button.
func (c *Counter) Increment() {
	c.Count.Update(func(n int) int { return n + 1 })
}

// Render implements vdom.Component.
func (c *Counter) Render(vdom.Props) vdom.Node {
	return vdom.El("div",
		vdom.Attr("className", "counter"),
		vdom.Children(
			vdom.El("p", vdom.Children("Count: ", c.Count)),
			vdom.El("input", vdom.Attr("value", c.Label.Sync())),
			vdom.El("button", vdom.Attr("onClick", c.Increment), vdom.Children("+1")),
		),
	)
}
