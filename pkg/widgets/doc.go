// Package widgets is a reusable widget library built on the public core
// surface.
//
// Every widget is a plain functional component: a func(core.Props) core.Node
// usable directly as an element kind. XxxOf helpers build the descriptor for
// the common case:
//
//	widgets.ButtonOf("Submit", handleSubmit)
//	core.H(widgets.Button, core.Props{"label": "Submit", "onClick": handleSubmit})
//
// Widgets hold no state of their own; stateful behavior belongs to the
// application components that compose them.
package widgets
