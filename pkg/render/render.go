// Package render materializes node descriptors into host trees.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/errors"
	"github.com/go-flint/flint/pkg/host"
)

// Renderer is a pure recursive materializer: descriptor in, host node out.
// It holds no tree state of its own; the engine owns the root binding.
type Renderer struct {
	doc   host.Document
	store *core.Store
}

// New creates a renderer writing into doc and resolving hooks against store.
func New(doc host.Document, store *core.Store) *Renderer {
	return &Renderer{doc: doc, store: store}
}

// Render materializes value, which may be a core.Node descriptor, a string,
// a numeric value, or nil. It activates the store for the duration of the
// pass so hook calls inside component invocations resolve against it.
func (r *Renderer) Render(value any) (host.Node, error) {
	restore := r.store.Activate()
	defer restore()
	return r.render(value)
}

func (r *Renderer) render(value any) (host.Node, error) {
	switch v := value.(type) {
	case nil:
		return r.doc.CreateTextNode(""), nil
	case string:
		return r.doc.CreateTextNode(v), nil
	case core.Node:
		return r.renderNode(v)
	default:
		return r.doc.CreateTextNode(formatScalar(v)), nil
	}
}

func (r *Renderer) renderNode(n core.Node) (host.Node, error) {
	switch n.Kind {
	case core.KindFragment:
		return r.renderFragment(n)
	case core.KindComponent:
		return r.renderComponent(n)
	case core.KindHost:
		return r.renderHost(n)
	default:
		return nil, errors.New("render.Render", errors.KindInvalidKind,
			fmt.Errorf("element kind %T is neither a tag string nor a component", n.Raw))
	}
}

// renderFragment renders each child into a grouping node with no identity
// of its own.
func (r *Renderer) renderFragment(n core.Node) (host.Node, error) {
	group := r.doc.CreateFragment()
	for _, child := range n.Children {
		rendered, err := r.render(child)
		if err != nil {
			return nil, err
		}
		group.AppendChild(rendered)
	}
	return group, nil
}

// renderComponent positions the render cursor at (fn, slot 0), invokes the
// component, and recurses into its output. The cursor is restored on return,
// including when the invocation panics, so it never leaks into unrelated
// renders.
func (r *Renderer) renderComponent(n core.Node) (host.Node, error) {
	restore := r.store.BeginComponent(n.Fn)
	defer restore()
	return r.render(n.Fn(n.Props))
}

func (r *Renderer) renderHost(n core.Node) (host.Node, error) {
	el := r.doc.CreateElement(n.Tag)
	for name, value := range n.Props {
		bindProp(el, n.Tag, name, value)
	}
	for _, child := range n.Children {
		rendered, err := r.render(child)
		if err != nil {
			return nil, err
		}
		el.AppendChild(rendered)
	}
	if cb, ok := n.Props[core.PropPostMount].(func(host.Node)); ok {
		cb(el)
	}
	return el, nil
}

// bindProp translates one declarative prop into a host-tree operation.
func bindProp(el host.Node, tag, name string, value any) {
	switch {
	case name == core.PropKey || name == core.PropRef || name == core.PropPostMount:
		// Reserved; never applied as host attributes.
	case strings.HasPrefix(name, "on") && len(name) > 2:
		bindEvent(el, strings.ToLower(name[2:]), value)
	case name == "className":
		if value == nil || value == false || value == "" {
			return
		}
		el.SetAttribute("class", stringify(value))
	case name == "style":
		bindStyle(el, value)
	case name == "value" || name == "checked" || name == "disabled":
		el.SetProperty(name, value)
		if name == "value" && isFormTag(tag) {
			el.SetAttribute("value", stringify(value))
		}
	default:
		bindAttribute(el, name, value)
	}
}

// bindEvent subscribes a callable listener. Non-callable values are ignored
// silently.
func bindEvent(el host.Node, event string, value any) {
	switch fn := value.(type) {
	case func(host.Event):
		el.AddEventListener(event, fn)
	case func():
		el.AddEventListener(event, func(host.Event) { fn() })
	}
}

// bindStyle applies a string value verbatim as the raw style attribute, or
// an object value key by key, translating camelCase property names. Each
// property is set individually so later writes overwrite earlier ones.
func bindStyle(el host.Node, value any) {
	switch style := value.(type) {
	case string:
		el.SetAttribute("style", style)
	case map[string]string:
		for k, v := range style {
			el.Style().Set(kebabCase(k), v)
		}
	case map[string]any:
		for k, v := range style {
			el.Style().Set(kebabCase(k), stringify(v))
		}
	case core.Props:
		for k, v := range style {
			el.Style().Set(kebabCase(k), stringify(v))
		}
	}
}

// bindAttribute applies the boolean attribute law: true sets a valueless
// presence attribute, false and nil omit it entirely; everything else is
// stringified.
func bindAttribute(el host.Node, name string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			el.SetAttribute(name, "")
		}
	default:
		el.SetAttribute(name, stringify(value))
	}
}

// isFormTag reports whether value writes on tag must be mirrored onto the
// string attribute for controlled-input fidelity.
func isFormTag(tag string) bool {
	switch tag {
	case "input", "select", "textarea":
		return true
	}
	return false
}

// kebabCase translates camelCase style property names to their per-property
// host equivalents: backgroundColor becomes background-color.
func kebabCase(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// stringify renders a prop value the way the host tree expects attributes.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return formatScalar(value)
	}
}

// formatScalar renders a numeric or other scalar child as text.
func formatScalar(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprint(value)
	}
}
