package engine

import (
	"fmt"
	"testing"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/errors"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

// counterHooks captures the hooks of the most recent counter render so tests
// can drive state from outside the tree.
var counterHooks struct {
	get func() int
	set func(int)
}

func counterComponent(p core.Props) core.Node {
	get, set := core.UseState(0)
	counterHooks.get = get
	counterHooks.set = set
	return core.H("div", core.Props{"className": "counter"},
		fmt.Sprintf("Count: %d", get()))
}

func staticComponent(core.Props) core.Node {
	return core.H("span", nil, "static")
}

func newMountedCounter(t *testing.T) (*Runtime, host.Node) {
	t.Helper()
	doc := memdom.NewDocument()
	rt := New(doc)
	container := doc.NewContainer()
	if err := rt.Mount(core.H(counterComponent, nil), container); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	return rt, container
}

func TestMount_AppendsUnderContainer(t *testing.T) {
	_, container := newMountedCounter(t)
	children := container.ChildNodes()
	if len(children) != 1 {
		t.Fatalf("expected one mounted child, got %d", len(children))
	}
	if got := memdom.TextContent(children[0]); got != "Count: 0" {
		t.Errorf("expected initial render, got %q", got)
	}
}

func TestMount_NilContainerFails(t *testing.T) {
	rt := New(memdom.NewDocument())
	err := rt.Mount(core.H(staticComponent, nil), nil)
	if err == nil {
		t.Fatal("expected an error for a nil container")
	}
	rerr, ok := err.(*errors.RuntimeError)
	if !ok || rerr.Kind != errors.KindMissingContainer {
		t.Errorf("expected KindMissingContainer, got %v", err)
	}
}

func TestCounter_ThreeIncrements(t *testing.T) {
	rt, container := newMountedCounter(t)

	for i := 0; i < 3; i++ {
		counterHooks.set(counterHooks.get() + 1)
	}

	if got := memdom.TextContent(rt.LastNode()); got != "Count: 3" {
		t.Errorf("expected Count: 3 after three increments, got %q", got)
	}
	if len(container.ChildNodes()) != 1 {
		t.Errorf("expected exactly one root node, got %d", len(container.ChildNodes()))
	}
}

func TestSet_ReplacesRootOncePerWrite(t *testing.T) {
	rt, _ := newMountedCounter(t)

	first := rt.LastNode()
	counterHooks.set(1)
	second := rt.LastNode()
	if second == first {
		t.Fatal("expected a brand-new native node after a state write")
	}
	counterHooks.set(2)
	if rt.LastNode() == second {
		t.Fatal("expected another new node for the second write")
	}
}

func TestSet_EqualValueTriggersNoRerender(t *testing.T) {
	rt, _ := newMountedCounter(t)

	before := rt.LastNode()
	counterHooks.set(counterHooks.get())
	if rt.LastNode() != before {
		t.Error("expected no re-render for an equal value write")
	}
}

func TestRerender_PreservesRootPosition(t *testing.T) {
	doc := memdom.NewDocument()
	rt := New(doc)
	container := doc.NewContainer()

	sibling := doc.CreateElement("header")
	container.AppendChild(sibling)

	if err := rt.Mount(core.H(counterComponent, nil), container); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	counterHooks.set(5)

	children := container.ChildNodes()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	if children[0] != sibling {
		t.Error("expected sibling to keep position 0")
	}
	if children[1] != rt.LastNode() {
		t.Error("expected new root node at position 1")
	}
}

func TestUpdate_DetachedLastNodeClearsContainer(t *testing.T) {
	rt, container := newMountedCounter(t)

	// Simulate the host tearing the node out from under the runtime.
	container.RemoveChild(rt.LastNode())
	container.AppendChild(memdom.NewDocument().CreateElement("junk"))

	counterHooks.set(9)

	children := container.ChildNodes()
	if len(children) != 1 {
		t.Fatalf("expected container cleared and re-filled, got %d children", len(children))
	}
	if got := memdom.TextContent(children[0]); got != "Count: 9" {
		t.Errorf("expected fresh render, got %q", got)
	}
}

func TestRerender_RebindsRoot(t *testing.T) {
	rt, container := newMountedCounter(t)

	if err := rt.Rerender(core.H(staticComponent, nil), container); err != nil {
		t.Fatalf("Rerender failed: %v", err)
	}
	if got := memdom.TextContent(rt.LastNode()); got != "static" {
		t.Errorf("expected rebound root, got %q", got)
	}
	if len(container.ChildNodes()) != 1 {
		t.Errorf("expected one child after rebinding, got %d", len(container.ChildNodes()))
	}
}

func eagerWriter(core.Props) core.Node {
	get, set := core.UseState(0)
	if get() == 0 {
		// State write during an in-progress render.
		set(1)
	}
	return core.H("div", nil, "never reached")
}

func TestReentrantWriteDuringRenderPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a reentrant write to panic")
		}
		err, ok := r.(*errors.RuntimeError)
		if !ok {
			t.Fatalf("expected *errors.RuntimeError, got %T", r)
		}
		if err.Kind != errors.KindReentrantRender {
			t.Errorf("expected KindReentrantRender, got %v", err.Kind)
		}
	}()

	doc := memdom.NewDocument()
	rt := New(doc)
	_ = rt.Mount(core.H(eagerWriter, nil), doc.NewContainer())
}

func TestRuntimes_HaveIndependentStores(t *testing.T) {
	doc := memdom.NewDocument()

	rt1 := New(doc)
	if err := rt1.Mount(core.H(counterComponent, nil), doc.NewContainer()); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	counterHooks.set(3)

	rt2 := New(doc)
	if err := rt2.Mount(core.H(counterComponent, nil), doc.NewContainer()); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	if got := memdom.TextContent(rt2.LastNode()); got != "Count: 0" {
		t.Errorf("expected fresh store in second runtime, got %q", got)
	}
}
