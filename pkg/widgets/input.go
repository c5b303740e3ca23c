package widgets

import "github.com/go-flint/flint/pkg/core"

// TextInput is a controlled text input.
//
// Props:
//   - "value": string, the controlled value.
//   - "onInput": func(host.Event) invoked when the value changes; read the
//     new value from the event target's "value" property.
//   - "placeholder": string hint.
//   - "disabled": bool.
func TextInput(p core.Props) core.Node {
	return core.H("input", core.Props{
		"type":        "text",
		"value":       p["value"],
		"onInput":     p["onInput"],
		"placeholder": p["placeholder"],
		"disabled":    p["disabled"] == true,
	})
}

// Checkbox is a controlled checkbox.
//
// Props: "checked" (bool), "onChange" (func or func(host.Event)),
// "label" (string).
func Checkbox(p core.Props) core.Node {
	box := core.H("input", core.Props{
		"type":     "checkbox",
		"checked":  p["checked"] == true,
		"onChange": p["onChange"],
	})
	label, _ := p["label"].(string)
	if label == "" {
		return box
	}
	return core.H("label", core.Props{"className": "checkbox"}, box, label)
}

// Select is a controlled dropdown.
//
// Props: "value" (string), "options" ([]string), "onChange".
func Select(p core.Props) core.Node {
	options, _ := p["options"].([]string)
	children := make([]any, 0, len(options))
	for _, opt := range options {
		props := core.Props{"value": opt}
		if opt == p["value"] {
			props["selected"] = true
		}
		children = append(children, core.H("option", props, opt))
	}
	return core.H("select", core.Props{
		"value":    p["value"],
		"onChange": p["onChange"],
	}, children)
}
