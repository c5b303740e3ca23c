package core

// Props is the property bag attached to a node descriptor.
type Props map[string]any

// Component is a callable mapping a props bag to a node descriptor.
//
// The function value itself is the component's identity: every descriptor
// built from the same function shares the same state slots, no matter where
// it appears in the tree. Components should therefore be top-level functions,
// not closures built per render.
type Component func(Props) Node

// Kind discriminates the variants of a node descriptor.
type Kind int

const (
	// KindInvalid marks a descriptor built from a value that is neither a
	// tag string nor a component. The factory accepts it; the renderer
	// rejects it with a typed error.
	KindInvalid Kind = iota
	// KindHost names a native element type in the host UI tree.
	KindHost
	// KindFragment is a grouping descriptor with no host identity of its own.
	KindFragment
	// KindComponent wraps a component function invocation.
	KindComponent
)

// FragmentTag is the reserved host tag naming a fragment.
const FragmentTag = "fragment"

// Reserved prop keys that are never applied as host attributes.
const (
	// PropKey is reserved for stable child identity. The runtime does not
	// diff, so the key is carried but never consulted.
	PropKey = "key"
	// PropRef is reserved and never applied to the host tree.
	PropRef = "ref"
	// PropPostMount holds a func(host.Node) invoked exactly once after the
	// element and all of its children are attached. Used for deferred work
	// that needs the finished node, such as acquiring a drawing surface.
	PropPostMount = "__postMount"
)

// Node is an immutable description of one UI element or component
// invocation, prior to being materialized. Descriptors are created fresh on
// every render pass and are never diffed or reused across passes.
type Node struct {
	// Kind selects the variant.
	Kind Kind
	// Tag is the host tag when Kind is KindHost.
	Tag string
	// Fn is the component function when Kind is KindComponent.
	Fn Component
	// Raw preserves the original kind value for error reporting when Kind
	// is KindInvalid.
	Raw any
	// Props is the property bag. Never nil.
	Props Props
	// Children holds Node descriptors, strings, and numeric values in call
	// order.
	Children []any
}

// H builds a node descriptor from a kind, a property bag, and children.
//
// A nil props bag is normalized to an empty one. Children are flattened
// exactly one level, so a slice argument is spliced in place, and nil
// entries are dropped. The kind is classified but not validated: anything
// that is neither a string nor a component function yields a KindInvalid
// descriptor that fails later, inside the renderer.
func H(kind any, props Props, children ...any) Node {
	if props == nil {
		props = Props{}
	}
	n := Node{Props: props, Children: flattenChildren(children)}
	switch k := kind.(type) {
	case string:
		if k == FragmentTag {
			n.Kind = KindFragment
		} else {
			n.Kind = KindHost
		}
		n.Tag = k
	case Component:
		n.Kind = KindComponent
		n.Fn = k
	case func(Props) Node:
		n.Kind = KindComponent
		n.Fn = k
	default:
		n.Kind = KindInvalid
		n.Raw = kind
	}
	return n
}

// Fragment is sugar for H(FragmentTag, props, children...).
func Fragment(props Props, children ...any) Node {
	return H(FragmentTag, props, children...)
}

// flattenChildren splices slice arguments one level deep and drops nils.
func flattenChildren(children []any) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		switch c := child.(type) {
		case nil:
			continue
		case []any:
			for _, nested := range c {
				if nested != nil {
					out = append(out, nested)
				}
			}
		case []Node:
			for _, nested := range c {
				out = append(out, nested)
			}
		default:
			out = append(out, child)
		}
	}
	return out
}
