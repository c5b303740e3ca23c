// Package memdom is an in-memory implementation of the host tree.
//
// It backs the test harness and the demo applications: a full node tree with
// ordered children, attribute and property maps, an ordered style map, and
// synchronous event dispatch.
package memdom

import "github.com/go-flint/flint/pkg/host"

// Document creates in-memory host nodes.
type Document struct{}

// NewDocument creates an in-memory host document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates an element node with the given tag.
func (d *Document) CreateElement(tag string) host.Node {
	e := &Element{node: newNode(), TagName: tag}
	e.self = e
	return e
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(text string) host.Node {
	t := &Text{node: newNode(), Data: text}
	t.self = t
	return t
}

// CreateFragment creates a grouping node with no tag identity.
func (d *Document) CreateFragment() host.Node {
	f := &Fragment{node: newNode()}
	f.self = f
	return f
}

// NewContainer creates a detached element node usable as a mount container.
func (d *Document) NewContainer() host.Node {
	return d.CreateElement("root")
}

// Element is a tagged in-memory host node.
type Element struct {
	node
	TagName string
}

// Text is an in-memory text node.
type Text struct {
	node
	Data string
}

// Fragment is an in-memory grouping node.
type Fragment struct {
	node
}

// node carries the tree, attribute, property, style, and listener machinery
// shared by all in-memory node types. self points back at the embedding
// struct so children record the right parent.
type node struct {
	self      host.Node
	parent    host.Node
	children  []host.Node
	attrs     map[string]string
	attrOrder []string
	props     map[string]any
	style     *styleMap
	listeners map[string][]*listenerEntry
}

// listenerEntry wraps a callback so unsubscription can match by identity.
type listenerEntry struct {
	fn func(host.Event)
}

func newNode() node {
	return node{
		attrs:     make(map[string]string),
		props:     make(map[string]any),
		style:     newStyleMap(),
		listeners: make(map[string][]*listenerEntry),
	}
}

type parentSetter interface {
	setParent(p host.Node)
}

func (n *node) setParent(p host.Node) { n.parent = p }

func setParentOf(child, parent host.Node) {
	if ps, ok := child.(parentSetter); ok {
		ps.setParent(parent)
	}
}

func (n *node) AppendChild(child host.Node) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	n.children = append(n.children, child)
	setParentOf(child, n.self)
}

func (n *node) RemoveChild(child host.Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			setParentOf(child, nil)
			return
		}
	}
}

func (n *node) ReplaceChild(newChild, oldChild host.Node) {
	for i, c := range n.children {
		if c == oldChild {
			if p := newChild.Parent(); p != nil {
				p.RemoveChild(newChild)
			}
			n.children[i] = newChild
			setParentOf(oldChild, nil)
			setParentOf(newChild, n.self)
			return
		}
	}
}

func (n *node) Parent() host.Node { return n.parent }

func (n *node) ChildNodes() []host.Node {
	out := make([]host.Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) SetAttribute(name, value string) {
	if _, ok := n.attrs[name]; !ok {
		n.attrOrder = append(n.attrOrder, name)
	}
	n.attrs[name] = value
}

func (n *node) RemoveAttribute(name string) {
	if _, ok := n.attrs[name]; !ok {
		return
	}
	delete(n.attrs, name)
	for i, a := range n.attrOrder {
		if a == name {
			n.attrOrder = append(n.attrOrder[:i], n.attrOrder[i+1:]...)
			return
		}
	}
}

func (n *node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// AttributeNames returns the attribute names in the order first written.
func (n *node) AttributeNames() []string {
	out := make([]string, len(n.attrOrder))
	copy(out, n.attrOrder)
	return out
}

func (n *node) SetProperty(name string, value any) {
	n.props[name] = value
}

func (n *node) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

func (n *node) AddEventListener(event string, fn func(host.Event)) func() {
	entry := &listenerEntry{fn: fn}
	n.listeners[event] = append(n.listeners[event], entry)
	return func() {
		list := n.listeners[event]
		for i, cur := range list {
			if cur == entry {
				n.listeners[event] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

func (n *node) Style() host.Style { return n.style }

// dispatch invokes the listeners for the named event, in subscription order.
func (n *node) dispatch(event string) {
	ev := &domEvent{typ: event, target: n.self}
	list := make([]*listenerEntry, len(n.listeners[event]))
	copy(list, n.listeners[event])
	for _, entry := range list {
		entry.fn(ev)
	}
}

// styleMap is an ordered per-property style map.
type styleMap struct {
	values map[string]string
	order  []string
}

func newStyleMap() *styleMap {
	return &styleMap{values: make(map[string]string)}
}

func (s *styleMap) Set(property, value string) {
	if _, ok := s.values[property]; !ok {
		s.order = append(s.order, property)
	}
	s.values[property] = value
}

func (s *styleMap) Get(property string) (string, bool) {
	v, ok := s.values[property]
	return v, ok
}

// Properties returns the style property names in first-write order.
func (s *styleMap) Properties() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
