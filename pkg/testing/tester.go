// Package testing provides a harness for exercising rendered trees without
// a platform backend.
//
// RenderTester mounts descriptors into an in-memory host tree, dispatches
// events, and queries the produced nodes:
//
//	rt := flinttest.NewRenderTester(t)
//	rt.Mount(core.H(app.Counter, nil))
//	rt.Click(rt.FindByTag("button").First())
//	if got := rt.Text(); got != "Count: 1" { ... }
package testing

import (
	"testing"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/engine"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

// RenderTester drives a runtime against an in-memory host tree.
type RenderTester struct {
	t         *testing.T
	doc       *memdom.Document
	runtime   *engine.Runtime
	container host.Node
}

// NewRenderTester creates a tester with its own document, runtime, and
// detached container. Each tester is fully independent.
func NewRenderTester(t *testing.T) *RenderTester {
	doc := memdom.NewDocument()
	return &RenderTester{
		t:         t,
		doc:       doc,
		runtime:   engine.New(doc),
		container: doc.NewContainer(),
	}
}

// Mount renders root into the tester's container, failing the test on error.
func (rt *RenderTester) Mount(root core.Node) {
	rt.t.Helper()
	if err := rt.runtime.Mount(root, rt.container); err != nil {
		rt.t.Fatalf("Mount failed: %v", err)
	}
}

// Rerender rebinds the root and forces an immediate render.
func (rt *RenderTester) Rerender(root core.Node) {
	rt.t.Helper()
	if err := rt.runtime.Rerender(root, rt.container); err != nil {
		rt.t.Fatalf("Rerender failed: %v", err)
	}
}

// Runtime exposes the underlying runtime.
func (rt *RenderTester) Runtime() *engine.Runtime {
	return rt.runtime
}

// Container returns the mount container.
func (rt *RenderTester) Container() host.Node {
	return rt.container
}

// Root returns the most recently produced root host node.
func (rt *RenderTester) Root() host.Node {
	return rt.runtime.LastNode()
}

// Click dispatches a click event on n, triggering any bound handlers and
// the re-renders they cause.
func (rt *RenderTester) Click(n host.Node) {
	rt.t.Helper()
	if n == nil {
		rt.t.Fatalf("Click: nil node")
	}
	memdom.Click(n)
}

// Type writes value into an input node and dispatches its input event.
func (rt *RenderTester) Type(n host.Node, value string) {
	rt.t.Helper()
	if n == nil {
		rt.t.Fatalf("Type: nil node")
	}
	memdom.Input(n, value)
}

// Text returns the concatenated text content of the rendered tree.
func (rt *RenderTester) Text() string {
	if rt.Root() == nil {
		return ""
	}
	return memdom.TextContent(rt.Root())
}
