package main

import (
	"fmt"
	"log"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/engine"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
	"github.com/go-flint/flint/pkg/term"
)

// session holds one mounted application and the helpers that drive it.
type session struct {
	doc       *memdom.Document
	runtime   *engine.Runtime
	container host.Node
}

func newSession() *session {
	doc := memdom.NewDocument()
	return &session{
		doc:       doc,
		runtime:   engine.New(doc),
		container: doc.NewContainer(),
	}
}

func (s *session) mount(root core.Node) {
	if err := s.runtime.Mount(root, s.container); err != nil {
		log.Fatalf("mount: %v", err)
	}
}

// print renders the current tree to the terminal under a step caption.
func (s *session) print(step string) {
	fmt.Printf("--- %s ---\n", step)
	fmt.Println(term.Render(s.runtime.LastNode()))
}

// clickButton clicks the first button whose text content matches label.
func (s *session) clickButton(label string) {
	for _, n := range s.findAll(func(el *memdom.Element) bool {
		return el.TagName == "button" && memdom.TextContent(el) == label
	}) {
		memdom.Click(n)
		return
	}
	log.Fatalf("no button labeled %q", label)
}

// typeInto types value into the first input element in the tree.
func (s *session) typeInto(value string) {
	for _, n := range s.findAll(func(el *memdom.Element) bool {
		return el.TagName == "input"
	}) {
		memdom.Input(n, value)
		return
	}
	log.Fatal("no input element")
}

// choose sets the first select element's value and dispatches its change event.
func (s *session) choose(value string) {
	for _, n := range s.findAll(func(el *memdom.Element) bool {
		return el.TagName == "select"
	}) {
		n.SetProperty("value", value)
		memdom.Dispatch(n, "change")
		return
	}
	log.Fatal("no select element")
}

func (s *session) findAll(match func(*memdom.Element) bool) []host.Node {
	var out []host.Node
	var walk func(host.Node)
	walk = func(n host.Node) {
		if el, ok := n.(*memdom.Element); ok && match(el) {
			out = append(out, n)
		}
		for _, c := range n.ChildNodes() {
			walk(c)
		}
	}
	if root := s.runtime.LastNode(); root != nil {
		walk(root)
	}
	return out
}
