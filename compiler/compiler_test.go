package compiler

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/pui/console"
	"github.com/vcrobe/pui/signals"
	"github.com/vcrobe/pui/vdom"
)

var (
	El       = vdom.El
	Attr     = vdom.Attr
	Children = vdom.Children
)

// compileCollect compiles root and returns the model with the diagnostics it produced.
func compileCollect(root vdom.Node, opts ...Option) (*Model, *console.Collector) {
	diags := &console.Collector{}
	m := Compile(root, append([]Option{WithReporter(diags)}, opts...)...)
	return m, diags
}

func TestCompile_Templates(t *testing.T) {
	name := signals.NewCell("name")
	count := signals.NewCell(0)

	cases := []struct {
		name string
		root vdom.Node
		want string
	}{
		{
			"element without attributes or children",
			El("div"),
			"<div />",
		},
		{
			"single child",
			El("div", Children(El("span"))),
			"<div><span /></div>",
		},
		{
			"children array",
			El("div", Children(El("span"), "Urmom", El("span"))),
			"<div><span />Urmom<span /></div>",
		},
		{
			"attribute without children",
			El("input", Attr("type", "text")),
			`<input type="text" />`,
		},
		{
			"attribute with text child",
			El("p", Attr("class", "text-left"), Children("Lorem ipsum")),
			`<p class="text-left">Lorem ipsum</p>`,
		},
		{
			"attributes with mixed children",
			El("div",
				Attr("class", "flex"), Attr("lorem", 32), Attr("ipsum", 32),
				Children(
					El("span", Attr("class", "text-center"), Children("Lorem ipsum")),
					"Lorem picsum",
					El("input", Attr("type", "number")),
				),
			),
			`<div class="flex" lorem="32" ipsum="32"><span class="text-center">Lorem ipsum</span>Lorem picsum<input type="number" /></div>`,
		},
		{
			"state as lone child",
			El("span", Children(count)),
			"<span>${ __child_0__ }</span>",
		},
		{
			"state between nodes",
			El("p", Children("Foo ", count, El("span", Children("bar")))),
			"<p>Foo ${ __child_1__ }<span>bar</span></p>",
		},
		{
			"state as a child of a child",
			El("div", Children(
				El("h2", Children("Names")),
				El("p", Children("Is your name ", name, "?")),
			)),
			"<div><h2>Names</h2><p>Is your name ${ __child_1_1__ }?</p></div>",
		},
		{
			"escaped attribute value",
			El("a", Attr("title", `say "hi"`)),
			`<a title="say &quot;hi&quot;" />`,
		},
		{
			"nested text is escaped, root text is raw",
			El("div", Children("1 < 2", El("p", Children("3 > 2")))),
			"<div>1 < 2<p>3 &gt; 2</p></div>",
		},
		{
			"newline stays raw in templates",
			El("p", Children("line1\nline2")),
			"<p>line1\nline2</p>",
		},
	}

	for _, c := range cases {
		m, diags := compileCollect(c.root)
		if m.Template != c.want {
			t.Errorf("%s: expected template %q, got %q", c.name, c.want, m.Template)
		}
		if len(diags.Diagnostics()) != 0 {
			t.Errorf("%s: expected no diagnostics, got %v", c.name, diags.Diagnostics())
		}
	}
}

func TestCompile_StateAttributeModes(t *testing.T) {
	cell := signals.NewCell("flex")

	cases := []struct {
		name string
		root vdom.Node
		want string
	}{
		{
			"default one-way",
			El("div", Attr("class", cell), Children("Hello, World")),
			`<div class="${ __root_attr_class__ }">Hello, World</div>`,
		},
		{
			"model to attribute",
			El("div", Attr("class", cell.Model()), Children("Hello, World")),
			"<div ${ class <== __root_attr_class__ }>Hello, World</div>",
		},
		{
			"attribute to model",
			El("input", Attr("value", cell.Attr()), Attr("type", "number")),
			`<input type="number" ${ value ==> __root_attr_value__ } />`,
		},
		{
			"one time",
			El("input", Attr("value", cell.Once()), Attr("type", "number")),
			`<input type="number" ${ value <=| __root_attr_value__ } />`,
		},
		{
			"two-way",
			El("input", Attr("value", cell.Sync()), Attr("type", "number")),
			`<input type="number" ${ value <=> __root_attr_value__ } />`,
		},
		{
			"nested two-way",
			El("form", Children(El("label", Children("Name", El("input", Attr("value", cell.Sync())))))),
			"<form><label>Name<input ${ value <=> __child_0_1_attr_value__ } /></label></form>",
		},
	}

	for _, c := range cases {
		m, diags := compileCollect(c.root)
		if m.Template != c.want {
			t.Errorf("%s: expected template %q, got %q", c.name, c.want, m.Template)
		}
		if len(diags.Diagnostics()) != 0 {
			t.Errorf("%s: expected no diagnostics, got %v", c.name, diags.Diagnostics())
		}
	}
}

func TestCompile_UnsupportedAndUnknownModes(t *testing.T) {
	cell := signals.NewCell("x")

	m, diags := compileCollect(El("div",
		Attr("ref", cell.WithMode(signals.ModeRefElem)),
		Attr("title", cell.WithMode("sideways")),
	))

	if want := `<div title="${ __root_attr_title__ }" />`; m.Template != want {
		t.Errorf("Expected template %q, got %q", want, m.Template)
	}
	if diff := cmp.Diff([]string{"__root_attr_title__"}, m.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"unsupported-binding-mode", "unknown-binding-mode"}, diags.Codes()); diff != "" {
		t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_EventHandlers(t *testing.T) {
	onClick := func() {}

	t.Run("root", func(t *testing.T) {
		m, _ := compileCollect(El("button", Attr("onClick", onClick), Children("Don't click on me!")))

		want := "<button ${ click @=> __root_onClick__ }>Don't click on me!</button>"
		if m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
		fn, ok := m.Handler("__root_onClick__")
		if !ok {
			t.Fatalf("Expected a handler under __root_onClick__")
		}
		if reflect.ValueOf(fn).Pointer() != reflect.ValueOf(onClick).Pointer() {
			t.Errorf("Expected the stored handler to be the author's function")
		}
	})

	t.Run("nested", func(t *testing.T) {
		m, _ := compileCollect(El("div", Children(
			El("label", Attr("for", "gae-btn"), Children(
				"Click if gae ",
				El("button", Attr("id", "gae-btn"), Attr("onClick", onClick), Children("GAE")),
			)),
		)))

		want := `<div><label for="gae-btn">Click if gae <button id="gae-btn" ${ click @=> __child_0_1_onClick__ }>GAE</button></label></div>`
		if m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
		if _, ok := m.Handler("__child_0_1_onClick__"); !ok {
			t.Errorf("Expected a handler under __child_0_1_onClick__")
		}
	})

	t.Run("without on prefix", func(t *testing.T) {
		m, diags := compileCollect(El("form", Attr("submit", func(event any, scope any) {})))

		if want := "<form ${ submit @=> __root_submit__ } />"; m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
		if diff := cmp.Diff([]string{"handler-without-on-prefix"}, diags.Codes()); diff != "" {
			t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("non-callable under on prefix", func(t *testing.T) {
		m, diags := compileCollect(El("button", Attr("onClick", "alert(1)")))

		if want := "<button />"; m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
		if diff := cmp.Diff([]string{"non-callable-handler"}, diags.Codes()); diff != "" {
			t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("handler named like a state attribute", func(t *testing.T) {
		value := signals.NewCell("v")
		nested := El("section", Children(El("div", Attr("attr_value", func() {}), Attr("value", value))))

		for _, root := range []vdom.Node{
			El("div", Attr("attr_value", func() {}), Attr("value", value)),
			nested,
		} {
			m, diags := compileCollect(root)

			if diff := cmp.Diff([]string{"reserved-handler-name"}, diags.Codes()); diff != "" {
				t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
			}
			if m.Len() != 1 {
				t.Fatalf("Expected only the state accessor, got keys %v", m.Keys())
			}
			if _, ok := m.Accessor(m.Keys()[0]); !ok {
				t.Errorf("Expected %s to stay bound to the state cell", m.Keys()[0])
			}
		}
	})

	t.Run("lowercase event name", func(t *testing.T) {
		m, _ := compileCollect(El("div", Attr("OnMouseOver", onClick)))
		if want := "<div ${ mouseOver @=> __root_OnMouseOver__ } />"; m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
	})
}

func TestCompile_ObjectAttributeDropped(t *testing.T) {
	m, diags := compileCollect(El("div", Attr("style", map[string]string{"color": "red"}), Attr("id", "a")))

	if want := `<div id="a" />`; m.Template != want {
		t.Errorf("Expected template %q, got %q", want, m.Template)
	}
	if diff := cmp.Diff([]string{"object-attribute"}, diags.Codes()); diff != "" {
		t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_Accessors(t *testing.T) {
	// Arrange: one cell bound as a lone child and as an attribute
	cell, setCell := signals.ModelData(0)
	root := El("label", Children(
		cell,
		El("input", Attr("value", cell.Sync())),
	))

	// Act
	m, _ := compileCollect(root)

	// Assert
	if diff := cmp.Diff([]string{"__child_0__", "__child_1_attr_value__"}, m.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}
	child, _ := m.Accessor("__child_0__")
	attr, _ := m.Accessor("__child_1_attr_value__")
	if child.Get() != 0 {
		t.Errorf("Expected initial value 0, got %v", child.Get())
	}

	setCell(5)
	if child.Get() != 5 || attr.Get() != 5 {
		t.Errorf("Expected cell changes to be visible through accessors, got %v and %v", child.Get(), attr.Get())
	}

	if err := attr.Set(9); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cell.Get() != 9 || child.Get() != 9 {
		t.Errorf("Expected accessor writes to reach the cell, got %d", cell.Get())
	}

	if err := attr.Set("nine"); err == nil {
		t.Errorf("Expected a type mismatch error")
	}
}

func TestCompile_CustomComponent(t *testing.T) {
	// Arrange: a list item component embedded at root and at a nested position
	item := signals.NewCell("milk")
	newItem := func() vdom.Node {
		return &vdom.Custom{Element: vdom.Element{
			Name:     "pui-for",
			Children: []vdom.Node{vdom.NewState(item)},
		}}
	}
	root := El("ul", Children(newItem(), El("li", Children(newItem()))))

	// Act
	m, _ := compileCollect(root)

	// Assert
	want := "<ul><${ __child_0__ === }><li><${ __child_1_0__ === } /></li></ul>"
	if m.Template != want {
		t.Errorf("Expected template %q, got %q", want, m.Template)
	}
	for _, id := range []string{"__child_0__", "__child_1_0__"} {
		sub, ok := m.Sub(id)
		if !ok {
			t.Fatalf("Expected a sub-model under %s", id)
		}
		if sub.Template != "<pui-for>${ __child_0__ }</pui-for>" {
			t.Errorf("Unexpected sub-model template %q", sub.Template)
		}
		acc, ok := sub.Accessor("__child_0__")
		if !ok || acc.Get() != "milk" {
			t.Errorf("Expected sub-model accessor to read the cell")
		}
	}

	desc := m.Describe()
	inner, ok := desc["__child_0__"].(map[string]any)
	if !ok || inner["template"] != "<pui-for>${ __child_0__ }</pui-for>" {
		t.Errorf("Unexpected description %v", desc)
	}
}

func TestCompile_VoidTagLaw(t *testing.T) {
	for _, tag := range []string{"input", "br", "img", "hr", "meta"} {
		root := &vdom.Element{Name: "div", Children: []vdom.Node{
			&vdom.Element{Name: tag, Children: []vdom.Node{vdom.NewText("x")}},
		}}
		m, diags := compileCollect(root)

		want := "<div><" + tag + " /></div>"
		if m.Template != want {
			t.Errorf("Expected template %q, got %q", want, m.Template)
		}
		if diff := cmp.Diff([]string{"void-children"}, diags.Codes()); diff != "" {
			t.Errorf("%s: diagnostic codes mismatch (-want +got):\n%s", tag, diff)
		}
	}
}

func TestCompile_Determinism(t *testing.T) {
	build := func() vdom.Node {
		cell := signals.NewCell(1)
		return El("section",
			Attr("onScroll", func() {}),
			Attr("title", cell.Once()),
			Children(
				El("header", Children(cell, El("button", Attr("onClick", func() {}), Attr("disabled", cell)))),
				"text",
				El("p", Children("a", cell, El("em", Children(cell)))),
			),
		)
	}

	first, _ := compileCollect(build())
	second, _ := compileCollect(build())

	if first.Template != second.Template {
		t.Errorf("Expected identical templates, got %q and %q", first.Template, second.Template)
	}
	if diff := cmp.Diff(first.Keys(), second.Keys()); diff != "" {
		t.Errorf("Identifier sets differ (-first +second):\n%s", diff)
	}

	seen := map[string]bool{}
	for _, id := range first.Keys() {
		if seen[id] {
			t.Errorf("Duplicate identifier %s", id)
		}
		seen[id] = true
	}
	want := []string{
		"__root_onScroll__",
		"__root_attr_title__",
		"__child_0_0__",
		"__child_0_1_onClick__",
		"__child_0_1_attr_disabled__",
		"__child_2_1__",
		"__child_2_2_0__",
	}
	if diff := cmp.Diff(want, first.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_UnsupportedRoot(t *testing.T) {
	m, diags := compileCollect(vdom.NewText("just text"))
	if m.Template != "" || m.Len() != 0 {
		t.Errorf("Expected an empty model, got %q with %d bindings", m.Template, m.Len())
	}
	if diff := cmp.Diff([]string{"unsupported-root"}, diags.Codes()); diff != "" {
		t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_DevModeUnknownTag(t *testing.T) {
	root := El("div", Children(El("fancybox"), El("span")))

	_, quiet := compileCollect(root)
	_, dev := compileCollect(root, WithDevMode(true))

	if len(quiet.Diagnostics()) != 0 {
		t.Errorf("Expected no diagnostics outside dev mode, got %v", quiet.Diagnostics())
	}
	if diff := cmp.Diff([]string{"unknown-tag"}, dev.Codes()); diff != "" {
		t.Errorf("Diagnostic codes mismatch (-want +got):\n%s", diff)
	}
}

func TestCompile_DevModeSuggestsTags(t *testing.T) {
	_, diags := compileCollect(El("div", Children(El("buton"))), WithDevMode(true))

	got := diags.Diagnostics()
	if len(got) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %v", got)
	}
	if want := "<buton> is not a standard HTML element, did you mean <button>?"; got[0].Message != want {
		t.Errorf("Expected message %q, got %q", want, got[0].Message)
	}
}
