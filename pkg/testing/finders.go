package testing

import (
	"fmt"
	"strings"

	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes       []host.Node
	description string
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() host.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("finder found no nodes: %s", r.description))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() host.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) host.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("finder index %d out of range (found %d): %s",
			index, len(r.nodes), r.description))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []host.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// FindByTag returns all elements with the given tag, depth-first pre-order.
func (rt *RenderTester) FindByTag(tag string) FinderResult {
	return rt.find(fmt.Sprintf("tag %q", tag), func(el *memdom.Element) bool {
		return el.TagName == tag
	})
}

// FindByClass returns all elements whose class list contains class.
func (rt *RenderTester) FindByClass(class string) FinderResult {
	return rt.find(fmt.Sprintf("class %q", class), func(el *memdom.Element) bool {
		attr, ok := el.Attribute("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(attr) {
			if c == class {
				return true
			}
		}
		return false
	})
}

// FindText returns all elements whose text content contains substr.
func (rt *RenderTester) FindText(substr string) FinderResult {
	return rt.find(fmt.Sprintf("text containing %q", substr), func(el *memdom.Element) bool {
		return strings.Contains(memdom.TextContent(el), substr)
	})
}

func (rt *RenderTester) find(description string, match func(*memdom.Element) bool) FinderResult {
	result := FinderResult{description: description}
	if rt.Root() == nil {
		return result
	}
	walk(rt.Root(), func(n host.Node) {
		if el, ok := n.(*memdom.Element); ok && match(el) {
			result.nodes = append(result.nodes, n)
		}
	})
	return result
}

// walk visits n and its descendants depth-first, pre-order.
func walk(n host.Node, visit func(host.Node)) {
	visit(n)
	for _, c := range n.ChildNodes() {
		walk(c, visit)
	}
}
