package widgets

import "github.com/go-flint/flint/pkg/core"

// Label renders a span of text.
//
// Props: "text" (string) and optional "className".
func Label(p core.Props) core.Node {
	return core.H("span", core.Props{"className": p["className"]}, p["text"])
}

// LabelOf builds a Label descriptor.
func LabelOf(text string) core.Node {
	return core.H(Label, core.Props{"text": text})
}

// Heading renders a section heading.
//
// Props: "text" (string) and optional "level" (int, 1..6, default 1).
func Heading(p core.Props) core.Node {
	level, ok := p["level"].(int)
	if !ok || level < 1 || level > 6 {
		level = 1
	}
	tags := [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}
	return core.H(tags[level-1], nil, p["text"])
}

// HeadingOf builds a Heading descriptor.
func HeadingOf(text string, level int) core.Node {
	return core.H(Heading, core.Props{"text": text, "level": level})
}
