// Package engine owns the mount/update controller for a rendered tree.
package engine

import (
	"fmt"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/errors"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/render"
)

// Runtime owns the currently active root binding: the root descriptor, its
// host container, and the most recently produced native node. On any state
// mutation it reruns the renderer over the unchanged root descriptor and
// replaces the previously produced subtree wholesale.
//
// This is whole-subtree replacement, not incremental patching: every
// re-render discards and rebuilds the entire native tree from the root,
// regardless of how localized the state change was. Cost is proportional to
// total tree size on every update, an explicit trade-off of this design.
//
// Runtime is single-threaded and synchronous. There is no batching and no
// deferral: each effective state write triggers one full re-render inline.
type Runtime struct {
	doc      host.Document
	store    *core.Store
	renderer *render.Renderer

	root      core.Node
	container host.Node
	last      host.Node
	mounted   bool
	rendering bool
}

// New creates a runtime rendering into doc with its own state store.
// Independent runtimes have fully independent stores, so tests can run
// side by side.
func New(doc host.Document) *Runtime {
	store := core.NewStore()
	rt := &Runtime{
		doc:      doc,
		store:    store,
		renderer: render.New(doc, store),
	}
	store.OnInvalidate(rt.invalidate)
	return rt
}

// Store exposes the runtime's state store.
func (rt *Runtime) Store() *core.Store {
	return rt.store
}

// LastNode returns the most recently produced root host node.
func (rt *Runtime) LastNode() host.Node {
	return rt.last
}

// Mount records (root, container) as the root binding, renders the
// descriptor, and appends the produced node under the container.
func (rt *Runtime) Mount(root core.Node, container host.Node) error {
	if container == nil {
		return errors.New("engine.Runtime.Mount", errors.KindMissingContainer,
			fmt.Errorf("mount container cannot accept children"))
	}
	rt.root = root
	rt.container = container
	rt.mounted = true
	node, err := rt.renderPass()
	if err != nil {
		return err
	}
	container.AppendChild(node)
	rt.last = node
	return nil
}

// Rerender rebinds the root and forces an immediate render. It exists for
// the case where the root descriptor itself changes shape, not just state
// inside it.
func (rt *Runtime) Rerender(root core.Node, container host.Node) error {
	if container == nil {
		return errors.New("engine.Runtime.Rerender", errors.KindMissingContainer,
			fmt.Errorf("mount container cannot accept children"))
	}
	rt.root = root
	rt.container = container
	rt.mounted = true
	return rt.update()
}

// invalidate is wired to the store: any effective slot write lands here and
// synchronously re-renders the unchanged root descriptor. A write arriving
// while a render pass is still on the call stack is a reentrancy hazard this
// design forbids outright, so it fails fast with a typed error.
func (rt *Runtime) invalidate() {
	if rt.rendering {
		panic(errors.New("engine.Runtime", errors.KindReentrantRender,
			fmt.Errorf("state write during an in-progress render")))
	}
	if !rt.mounted {
		return
	}
	if err := rt.update(); err != nil {
		if re, ok := err.(*errors.RuntimeError); ok {
			errors.Report(re)
		}
		panic(err)
	}
}

// update re-renders the root from scratch and swaps the produced node in.
// If the previously produced node still has a parent it is replaced in
// place, same position, same parent; otherwise the container is cleared and
// the new node appended fresh.
func (rt *Runtime) update() error {
	node, err := rt.renderPass()
	if err != nil {
		return err
	}
	if rt.last != nil && rt.last.Parent() != nil {
		rt.last.Parent().ReplaceChild(node, rt.last)
	} else {
		for _, c := range rt.container.ChildNodes() {
			rt.container.RemoveChild(c)
		}
		rt.container.AppendChild(node)
	}
	rt.last = node
	return nil
}

func (rt *Runtime) renderPass() (host.Node, error) {
	rt.rendering = true
	defer func() { rt.rendering = false }()
	return rt.renderer.Render(rt.root)
}
