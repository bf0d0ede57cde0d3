package trackby

import (
	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

// TagList renders a list through the iteration element. The row template
// is a nested component; Current is the per-row value slot.
type TagList struct {
	Tags    *signals.Cell[[]string]
	Current *signals.Cell[string]
}

func NewTagList(tags ...string) *TagList {
	return &TagList{
		Tags:    signals.NewCell(tags),
		Current: signals.NewCell(""),
	}
}

func (t *TagList) AddTag(newTag string) {
	t.Tags.Update(func(tags []string) []string { return append(tags, newTag) })
}

func (t *TagList) ClearTags() {
	t.Tags.Set([]string{})
}

func (t *TagList) Render(vdom.Props) vdom.Node {
	return vdom.El("div", vdom.Children(
		vdom.El("h2", vdom.Children("Tags")),
		vdom.El("ul", vdom.Children(
			vdom.El(vdom.IterationTag,
				vdom.Attr("each", "tag"),
				vdom.Children(vdom.El("li", vdom.Children(t.Current))),
			),
		)),
		vdom.El("button", vdom.Attr("onClick", t.ClearTags), vdom.Children("Clear")),
	))
}
