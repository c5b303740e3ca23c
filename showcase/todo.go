package main

import (
	"fmt"

	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/widgets"
)

func todoApp(core.Props) core.Node {
	items, setItems := core.UseState([]string{"buy milk"})
	draft, setDraft := core.UseState("")

	list := make([]any, 0, len(items()))
	for _, item := range items() {
		list = append(list, core.H("li", nil, item))
	}

	return widgets.Column(
		widgets.HeadingOf("Todo", 2),
		widgets.Row(
			core.H(widgets.TextInput, core.Props{
				"value":       draft(),
				"placeholder": "new item",
				"onInput": func(ev host.Event) {
					v, _ := ev.Target().Property("value")
					setDraft(fmt.Sprint(v))
				},
			}),
			widgets.ButtonOf("Add", func() {
				if draft() == "" {
					return
				}
				setItems(append(items(), draft()))
				setDraft("")
			}),
		),
		core.H("ul", nil, list),
		core.H("p", core.Props{"className": "muted"}, len(items()), " item(s)"),
	)
}

func runTodo(s *session) {
	s.mount(core.H(todoApp, nil))
	s.print("initial")

	s.typeInto("water the plants")
	s.clickButton("Add")
	s.print("after adding an item")
}
