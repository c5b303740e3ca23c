// Package term renders an in-memory host tree to styled terminal text.
//
// It is a presentation layer for the demo applications: the runtime mounts
// into a memdom tree, and term pretty-prints that tree after each update.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/memdom"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	buttonStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	disabledStyle = lipgloss.NewStyle().Faint(true)
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
)

// Render walks a memdom tree and returns its terminal representation.
func Render(n host.Node) string {
	return strings.TrimRight(renderNode(n), "\n")
}

func renderNode(n host.Node) string {
	switch v := n.(type) {
	case *memdom.Text:
		return v.Data
	case *memdom.Fragment:
		return renderChildren(v)
	case *memdom.Element:
		return renderElement(v)
	default:
		return ""
	}
}

func renderChildren(n host.Node) string {
	var sb strings.Builder
	for _, c := range n.ChildNodes() {
		sb.WriteString(renderNode(c))
	}
	return sb.String()
}

func renderElement(el *memdom.Element) string {
	switch el.TagName {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return headingStyle.Render(renderChildren(el)) + "\n"
	case "button":
		label := "[ " + renderChildren(el) + " ]"
		if disabled, _ := el.Property("disabled"); disabled == true {
			return disabledStyle.Render(label)
		}
		return buttonStyle.Render(label)
	case "input":
		return renderInput(el)
	case "li":
		return "  • " + renderChildren(el) + "\n"
	case "ul", "ol":
		return renderChildren(el)
	case "canvas":
		return renderCanvas(el)
	case "div", "section", "p", "form", "label":
		return renderBlock(el)
	default:
		return renderInline(el)
	}
}

func renderBlock(el *memdom.Element) string {
	body := renderChildren(el)
	class, _ := el.Attribute("class")
	if strings.Contains(class, "card") && !strings.Contains(class, "card-") {
		return cardStyle.Render(strings.TrimRight(body, "\n")) + "\n"
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return body
}

func renderInline(el *memdom.Element) string {
	body := renderChildren(el)
	class, _ := el.Attribute("class")
	if strings.Contains(class, "danger") {
		return dangerStyle.Render(body)
	}
	return body
}

func renderInput(el *memdom.Element) string {
	if typ, _ := el.Attribute("type"); typ == "checkbox" {
		if checked, _ := el.Property("checked"); checked == true {
			return "[x]"
		}
		return "[ ]"
	}
	value := ""
	if v, ok := el.Property("value"); ok {
		value = fmt.Sprint(v)
	}
	if value == "" {
		if placeholder, ok := el.Attribute("placeholder"); ok {
			return mutedStyle.Render("<" + placeholder + ">")
		}
	}
	return "<" + value + ">"
}

// renderCanvas reports the drawing surface dimensions; terminal output
// cannot display the bitmap itself.
func renderCanvas(el *memdom.Element) string {
	w, _ := el.Attribute("width")
	h, _ := el.Attribute("height")
	return mutedStyle.Render(fmt.Sprintf("(canvas %sx%s)", w, h)) + "\n"
}
