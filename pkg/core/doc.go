// Package core provides the node descriptor model and the hook state store.
//
// This package defines the foundational types of the Flint runtime: Node,
// Props, Component, and Store. It follows a declarative UI model where an
// immutable descriptor tree describes what the UI should look like and the
// renderer materializes it into the host tree.
//
// # Descriptors
//
// H builds a descriptor from a kind, a property bag, and children:
//
//	core.H("div", core.Props{"className": "row"},
//	    core.H("span", nil, "Hello"),
//	    "world",
//	)
//
// The kind is either a host tag string (including the reserved tag
// "fragment") or a Component function. Descriptors are cheap, immutable
// configuration values built fresh on every render pass.
//
// # Components and state
//
// A Component is a plain function from Props to Node. Inside a component
// invocation, UseState registers a positional state slot:
//
//	func Counter(p core.Props) core.Node {
//	    count, setCount := core.UseState(0)
//	    return core.H("button", core.Props{
//	        "onClick": func() { setCount(count() + 1) },
//	    }, fmt.Sprintf("Count: %d", count()))
//	}
//
// State slots are keyed by the component function itself: two descriptors
// built from the same function share the same slots regardless of where
// they appear in the tree. Hook calls must be unconditional and order
// stable; reordering or conditionally skipping them corrupts slot alignment
// on the next render.
//
// # Stores
//
// A Store is an explicitly owned object rather than a hidden singleton, so
// tests can construct independent stores. The engine wires a store to its
// renderer and marks it active for the duration of each render pass.
package core
