// Package host defines the port into the host UI tree.
//
// The renderer is written against these interfaces only: create element and
// text nodes by tag, append children, set and remove attributes, subscribe
// listeners by event name, and write a settable per-property style map. The
// memdom package provides the in-memory implementation used by tests and the
// demo applications; a platform backend implements the same surface.
package host

// Document creates nodes in the host UI tree.
type Document interface {
	// CreateElement creates a native element node of the given tag.
	CreateElement(tag string) Node
	// CreateTextNode creates a text node holding text.
	CreateTextNode(text string) Node
	// CreateFragment creates a grouping node with no tag identity.
	CreateFragment() Node
}

// Node is one node in the host UI tree.
type Node interface {
	// AppendChild attaches child as the last child of this node.
	AppendChild(child Node)
	// RemoveChild detaches child from this node.
	RemoveChild(child Node)
	// ReplaceChild swaps oldChild for newChild, keeping its position.
	ReplaceChild(newChild, oldChild Node)
	// Parent returns the current parent, or nil for a detached node.
	Parent() Node
	// ChildNodes returns the children in order.
	ChildNodes() []Node

	// SetAttribute writes a string attribute. An empty value written through
	// SetAttribute is a valueless presence attribute.
	SetAttribute(name, value string)
	// RemoveAttribute deletes an attribute if present.
	RemoveAttribute(name string)
	// Attribute reads an attribute and reports whether it is present.
	Attribute(name string) (string, bool)

	// SetProperty writes a live object property (value, checked, disabled).
	SetProperty(name string, value any)
	// Property reads a live object property.
	Property(name string) (any, bool)

	// AddEventListener subscribes fn to the named event and returns an
	// unsubscribe function.
	AddEventListener(event string, fn func(Event)) func()

	// Style returns the settable per-property style map.
	Style() Style
}

// Style is a settable per-property style map. Properties are written
// individually so later writes overwrite earlier ones.
type Style interface {
	Set(property, value string)
	Get(property string) (string, bool)
}

// Event is delivered to listeners subscribed on a node.
type Event interface {
	// Type is the event name, e.g. "click" or "input".
	Type() string
	// Target is the node the event was dispatched on.
	Target() Node
}
