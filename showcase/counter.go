package main

import (
	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/widgets"
)

func counterApp(core.Props) core.Node {
	count, setCount := core.UseState(0)
	return widgets.Column(
		widgets.HeadingOf("Counter", 2),
		core.H("p", nil, "Count: ", count()),
		widgets.Row(
			widgets.ButtonOf("-", func() { setCount(count() - 1) }),
			widgets.ButtonOf("+", func() { setCount(count() + 1) }),
		),
	)
}

func runCounter(s *session) {
	s.mount(core.H(counterApp, nil))
	s.print("initial")

	s.clickButton("+")
	s.clickButton("+")
	s.clickButton("+")
	s.clickButton("-")
	s.print("after three increments and one decrement")
}
