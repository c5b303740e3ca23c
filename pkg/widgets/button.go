package widgets

import "github.com/go-flint/flint/pkg/core"

// Button is a clickable button component.
//
// Props:
//   - "label": string displayed on the button.
//   - "onClick": func() or func(host.Event) invoked on click.
//   - "disabled": bool disabling the button when true.
//   - "variant": string appended to the class list ("primary", "danger").
func Button(p core.Props) core.Node {
	class := "btn"
	if variant, ok := p["variant"].(string); ok && variant != "" {
		class += " btn-" + variant
	}
	label := p["label"]
	return core.H("button", core.Props{
		"className": class,
		"onClick":   p["onClick"],
		"disabled":  p["disabled"] == true,
	}, label)
}

// ButtonOf builds a Button descriptor with the given label and click handler.
func ButtonOf(label string, onClick func()) core.Node {
	return core.H(Button, core.Props{"label": label, "onClick": onClick})
}
