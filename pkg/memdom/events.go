package memdom

import "github.com/go-flint/flint/pkg/host"

// domEvent is the event value delivered to listeners.
type domEvent struct {
	typ    string
	target host.Node
}

func (e *domEvent) Type() string      { return e.typ }
func (e *domEvent) Target() host.Node { return e.target }

type dispatcher interface {
	dispatch(event string)
}

// Dispatch synchronously invokes the listeners subscribed on n for the named
// event. It is a no-op for nodes that are not memdom nodes.
func Dispatch(n host.Node, event string) {
	if d, ok := n.(dispatcher); ok {
		d.dispatch(event)
	}
}

// Click dispatches a "click" event on n.
func Click(n host.Node) {
	Dispatch(n, "click")
}

// Input writes the value property on n and dispatches an "input" event,
// mimicking a user typing into a controlled input.
func Input(n host.Node, value string) {
	n.SetProperty("value", value)
	Dispatch(n, "input")
}

// TextContent returns the concatenated text data under n, depth first.
func TextContent(n host.Node) string {
	if t, ok := n.(*Text); ok {
		return t.Data
	}
	out := ""
	for _, c := range n.ChildNodes() {
		out += TextContent(c)
	}
	return out
}
