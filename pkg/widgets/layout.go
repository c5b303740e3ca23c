package widgets

import "github.com/go-flint/flint/pkg/core"

// Row lays out its children horizontally.
func Row(children ...any) core.Node {
	return core.H("div", core.Props{
		"className": "row",
		"style":     map[string]string{"display": "flex", "flexDirection": "row"},
	}, children)
}

// Column lays out its children vertically.
func Column(children ...any) core.Node {
	return core.H("div", core.Props{
		"className": "column",
		"style":     map[string]string{"display": "flex", "flexDirection": "column"},
	}, children)
}

// Card wraps children in a titled panel.
//
// Props: "title" (string); children are passed through.
func Card(p core.Props) core.Node {
	title, _ := p["title"].(string)
	children, _ := p["children"].([]any)
	body := core.H("div", core.Props{"className": "card-body"}, children)
	if title == "" {
		return core.H("div", core.Props{"className": "card"}, body)
	}
	return core.H("div", core.Props{"className": "card"},
		core.H("div", core.Props{"className": "card-title"}, title),
		body,
	)
}

// CardOf builds a Card descriptor with a title and body children.
func CardOf(title string, children ...any) core.Node {
	return core.H(Card, core.Props{"title": title, "children": children})
}
