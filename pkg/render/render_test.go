package render

import (
	"fmt"
	"testing"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/errors"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

func newTestRenderer() (*Renderer, *memdom.Document) {
	doc := memdom.NewDocument()
	return New(doc, core.NewStore()), doc
}

func mustRender(t *testing.T, r *Renderer, value any) host.Node {
	t.Helper()
	n, err := r.Render(value)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return n
}

func TestRender_NilIsEmptyText(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, nil)
	text, ok := n.(*memdom.Text)
	if !ok {
		t.Fatalf("expected text node, got %T", n)
	}
	if text.Data != "" {
		t.Errorf("expected empty text, got %q", text.Data)
	}
}

func TestRender_StringsAndNumbers(t *testing.T) {
	r, _ := newTestRenderer()
	cases := []struct {
		value any
		want  string
	}{
		{"hello", "hello"},
		{42, "42"},
		{3.5, "3.5"},
	}
	for _, tc := range cases {
		n := mustRender(t, r, tc.value)
		text, ok := n.(*memdom.Text)
		if !ok {
			t.Fatalf("expected text node for %v, got %T", tc.value, n)
		}
		if text.Data != tc.want {
			t.Errorf("expected %q, got %q", tc.want, text.Data)
		}
	}
}

func TestRender_HostElementWithClassAndText(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{"className": "test"}, "Hello"))

	el, ok := n.(*memdom.Element)
	if !ok {
		t.Fatalf("expected element node, got %T", n)
	}
	if el.TagName != "div" {
		t.Errorf("expected tag div, got %q", el.TagName)
	}
	if class, _ := el.Attribute("class"); class != "test" {
		t.Errorf("expected class test, got %q", class)
	}
	children := el.ChildNodes()
	if len(children) != 1 {
		t.Fatalf("expected one child, got %d", len(children))
	}
	if text, ok := children[0].(*memdom.Text); !ok || text.Data != "Hello" {
		t.Errorf("expected text child Hello, got %v", children[0])
	}
}

func TestRender_FragmentGroupsChildrenInOrder(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.Fragment(nil, "A", "B", "C"))

	if _, ok := n.(*memdom.Fragment); !ok {
		t.Fatalf("expected fragment node, got %T", n)
	}
	children := n.ChildNodes()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	want := []string{"A", "B", "C"}
	for i, c := range children {
		text, ok := c.(*memdom.Text)
		if !ok || text.Data != want[i] {
			t.Errorf("child %d: expected %q, got %v", i, want[i], c)
		}
	}
}

func TestRender_BooleanAttributeLaw(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{
		"hidden":    true,
		"draggable": false,
		"title":     nil,
	}))

	if v, ok := n.Attribute("hidden"); !ok || v != "" {
		t.Errorf("expected hidden to be a present valueless attribute, got %q (present %v)", v, ok)
	}
	if _, ok := n.Attribute("draggable"); ok {
		t.Error("expected false attribute to be entirely absent")
	}
	if _, ok := n.Attribute("title"); ok {
		t.Error("expected nil attribute to be entirely absent")
	}
}

func TestRender_DisabledFalseHasNoAttribute(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("input", core.Props{"type": "text", "disabled": false}))

	if v, ok := n.Property("disabled"); !ok || v != false {
		t.Errorf("expected disabled property false, got %v (present %v)", v, ok)
	}
	if _, ok := n.Attribute("disabled"); ok {
		t.Error("expected no disabled attribute when false")
	}
}

func TestRender_ValueMirroredOnFormTags(t *testing.T) {
	r, _ := newTestRenderer()
	input := mustRender(t, r, core.H("input", core.Props{"value": "abc"}))
	if v, _ := input.Property("value"); v != "abc" {
		t.Errorf("expected value property abc, got %v", v)
	}
	if v, ok := input.Attribute("value"); !ok || v != "abc" {
		t.Errorf("expected value attribute mirrored on input, got %q (present %v)", v, ok)
	}

	div := mustRender(t, r, core.H("div", core.Props{"value": "abc"}))
	if _, ok := div.Attribute("value"); ok {
		t.Error("expected no value attribute on non-form tags")
	}
	if v, _ := div.Property("value"); v != "abc" {
		t.Errorf("expected value property on non-form tags, got %v", v)
	}
}

func TestRender_EventBinding(t *testing.T) {
	r, _ := newTestRenderer()
	clicks := 0
	n := mustRender(t, r, core.H("button", core.Props{
		"onClick": func() { clicks++ },
	}))

	memdom.Click(n)
	memdom.Click(n)
	if clicks != 2 {
		t.Errorf("expected 2 clicks, got %d", clicks)
	}
}

func TestRender_EventNameStrippedAndLowercased(t *testing.T) {
	r, _ := newTestRenderer()
	fired := ""
	n := mustRender(t, r, core.H("div", core.Props{
		"onMouseDown": func(ev host.Event) { fired = ev.Type() },
	}))

	memdom.Dispatch(n, "mousedown")
	if fired != "mousedown" {
		t.Errorf("expected mousedown listener, got %q", fired)
	}
	if _, ok := n.Attribute("onMouseDown"); ok {
		t.Error("expected event prop not to be applied as an attribute")
	}
}

func TestRender_NonCallableEventIgnored(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{"onClick": "not callable"}))
	if _, ok := n.Attribute("onClick"); ok {
		t.Error("expected non-callable event value to be ignored silently")
	}
}

func TestRender_StyleString(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{"style": "color: red"}))
	if v, _ := n.Attribute("style"); v != "color: red" {
		t.Errorf("expected raw style attribute, got %q", v)
	}
}

func TestRender_StyleMapTranslatesCamelCase(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{
		"style": map[string]string{"backgroundColor": "red", "width": "10px"},
	}))

	if v, ok := n.Style().Get("background-color"); !ok || v != "red" {
		t.Errorf("expected background-color red, got %q (present %v)", v, ok)
	}
	if v, _ := n.Style().Get("width"); v != "10px" {
		t.Errorf("expected width 10px, got %q", v)
	}
}

func TestRender_ReservedKeysNotApplied(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H("div", core.Props{
		"key": "k1",
		"ref": "anything",
	}))
	for _, reserved := range []string{"key", "ref"} {
		if _, ok := n.Attribute(reserved); ok {
			t.Errorf("expected reserved key %q not to be applied", reserved)
		}
	}
}

func TestRender_PostMountCallbackRunsOnceAfterChildren(t *testing.T) {
	r, _ := newTestRenderer()
	calls := 0
	childrenSeen := -1
	n := mustRender(t, r, core.H("div", core.Props{
		core.PropPostMount: func(n host.Node) {
			calls++
			childrenSeen = len(n.ChildNodes())
		},
	}, "a", "b"))

	if calls != 1 {
		t.Fatalf("expected post-mount callback to run exactly once, got %d", calls)
	}
	if childrenSeen != 2 {
		t.Errorf("expected children already attached during callback, saw %d", childrenSeen)
	}
	if _, ok := n.Attribute(core.PropPostMount); ok {
		t.Error("expected post-mount key not to be applied as an attribute")
	}
}

func TestRender_InvalidKindFailsTyped(t *testing.T) {
	r, _ := newTestRenderer()
	_, err := r.Render(core.H(123, nil))
	if err == nil {
		t.Fatal("expected an error for an invalid kind")
	}
	rerr, ok := err.(*errors.RuntimeError)
	if !ok {
		t.Fatalf("expected *errors.RuntimeError, got %T", err)
	}
	if rerr.Kind != errors.KindInvalidKind {
		t.Errorf("expected KindInvalidKind, got %v", rerr.Kind)
	}
}

func TestRender_ZeroNodeIsInvalid(t *testing.T) {
	r, _ := newTestRenderer()
	if _, err := r.Render(core.Node{}); err == nil {
		t.Fatal("expected the zero descriptor to be rejected")
	}
}

func greetingComponent(p core.Props) core.Node {
	name, _ := p["name"].(string)
	return core.H("p", nil, fmt.Sprintf("Hello, %s", name))
}

func TestRender_ComponentInvocation(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H(greetingComponent, core.Props{"name": "Ada"}))

	el, ok := n.(*memdom.Element)
	if !ok {
		t.Fatalf("expected element node, got %T", n)
	}
	if el.TagName != "p" {
		t.Errorf("expected tag p, got %q", el.TagName)
	}
	if got := memdom.TextContent(el); got != "Hello, Ada" {
		t.Errorf("expected rendered greeting, got %q", got)
	}
}

func statefulProbe(core.Props) core.Node {
	get, _ := core.UseState("stateful")
	return core.H("span", nil, get())
}

func TestRender_HookResolvesDuringComponentInvocation(t *testing.T) {
	r, _ := newTestRenderer()
	n := mustRender(t, r, core.H(statefulProbe, nil))
	if got := memdom.TextContent(n); got != "stateful" {
		t.Errorf("expected hook-backed content, got %q", got)
	}
}

func panickyComponent(core.Props) core.Node {
	panic("boom")
}

func TestRender_CursorDoesNotLeakAfterPanic(t *testing.T) {
	r, _ := newTestRenderer()
	func() {
		defer func() { _ = recover() }()
		_, _ = r.Render(core.H(panickyComponent, nil))
	}()

	// The cursor must be fully cleared: a hook call outside a render still
	// fails with the typed error rather than landing in a stale slot.
	defer func() {
		r := recover()
		err, ok := r.(*errors.RuntimeError)
		if !ok || err.Kind != errors.KindHookOutsideRender {
			t.Errorf("expected KindHookOutsideRender after panicked render, got %v", r)
		}
	}()
	core.UseState(0)
}
