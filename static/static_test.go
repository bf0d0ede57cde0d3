package static

import (
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/pui/compiler"
	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

var (
	El       = vdom.El
	Attr     = vdom.Attr
	Children = vdom.Children
)

func render(root vdom.Node) (string, *console.Collector) {
	diags := &console.Collector{}
	return RenderHTML(root, WithReporter(diags)), diags
}

func TestRenderHTML(t *testing.T) {
	cell := signals.NewCell("flex")
	count := signals.NewCell(3)

	cases := []struct {
		name string
		root vdom.Node
		want string
	}{
		{
			"empty element uses a close pair",
			El("div"),
			"<div></div>",
		},
		{
			"void element self closes",
			El("input", Attr("type", "number")),
			`<input type="number" />`,
		},
		{
			"text is escaped",
			El("p", Children("a <b> & 'c'")),
			"<p>a &lt;b&gt; &amp; &#39;c&#39;</p>",
		},
		{
			"newline becomes a line break",
			El("p", Children("line1\nline2")),
			"<p>line1<br />line2</p>",
		},
		{
			"attribute quotes are escaped",
			El("a", Attr("title", `say "hi"`), Children("x")),
			`<a title="say &quot;hi&quot;">x</a>`,
		},
		{
			"state cells render their snapshot",
			El("div", Attr("class", cell.Model()), Children("Count: ", count)),
			`<div class="flex">Count: 3</div>`,
		},
		{
			"handlers are skipped",
			El("button", Attr("onClick", func() {}), Attr("type", "button"), Children("Go")),
			`<button type="button">Go</button>`,
		},
		{
			"scalars are formatted",
			El("meter", Attr("value", 0.5), Attr("max", 1), Attr("hidden", false)),
			`<meter value="0.5" max="1" hidden="false"></meter>`,
		},
		{
			"objects use their string form",
			El("div", Attr("data-ip", net.IPv4(10, 0, 0, 1)), Attr("data-err", errors.New("bad <input>"))),
			`<div data-ip="10.0.0.1" data-err="bad &lt;input&gt;"></div>`,
		},
		{
			"custom elements render as markup",
			El("ul", Children(El("pui-for", Children(El("li", Children("one")))))),
			"<ul><pui-for><li>one</li></pui-for></ul>",
		},
	}

	for _, c := range cases {
		got, diags := render(c.root)
		if got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
		if len(diags.Diagnostics()) != 0 {
			t.Errorf("%s: expected no diagnostics, got %v", c.name, diags.Diagnostics())
		}
	}
}

func TestRenderHTML_Diagnostics(t *testing.T) {
	root := &vdom.Element{
		Name: "div",
		Attrs: []vdom.Attribute{
			{Name: "style", Value: vdom.Object{Value: map[string]string{"color": "red"}}},
			{Name: "id", Value: vdom.Literal{Value: "main"}},
		},
		Children: []vdom.Node{
			&vdom.Element{Name: "br", Children: []vdom.Node{vdom.NewText("lost")}},
		},
	}

	got, diags := render(root)

	if want := `<div id="main"><br /></div>`; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if diff := cmp.Diff([]string{"unsupported-attribute-value", "void-children"}, diags.Codes()); diff != "" {
		t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

// The static renderer and the compiler diverge only in how they treat
// text: escaped with line breaks here, raw in binding templates.
func TestRenderHTML_DivergesFromTemplate(t *testing.T) {
	root := El("p", Children("line1\nline2"))

	html, _ := render(root)
	m := compiler.Compile(root, compiler.WithReporter(&console.Collector{}))

	if html != "<p>line1<br />line2</p>" {
		t.Errorf("Unexpected HTML %q", html)
	}
	if m.Template != "<p>line1\nline2</p>" {
		t.Errorf("Unexpected template %q", m.Template)
	}
}

func TestRenderComponent(t *testing.T) {
	greeting := vdom.Component(func(props vdom.Props) vdom.Node {
		return El("h1", Children("Hello"))
	})
	if got := RenderComponent(greeting); got != "<h1>Hello</h1>" {
		t.Errorf("Expected <h1>Hello</h1>, got %q", got)
	}
}
