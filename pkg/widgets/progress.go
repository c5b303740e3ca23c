package widgets

import (
	"fmt"

	"github.com/go-flint/flint/pkg/core"
)

// ProgressBar renders a horizontal progress indicator.
//
// Props: "value" (float64 in [0, 1]); values outside the range are clamped.
func ProgressBar(p core.Props) core.Node {
	value, _ := p["value"].(float64)
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	percent := fmt.Sprintf("%.0f%%", value*100)
	return core.H("div", core.Props{"className": "progress", "role": "progressbar"},
		core.H("div", core.Props{
			"className": "progress-fill",
			"style":     map[string]string{"width": percent},
		}),
		core.H("span", core.Props{"className": "progress-label"}, percent),
	)
}

// ProgressBarOf builds a ProgressBar descriptor.
func ProgressBarOf(value float64) core.Node {
	return core.H(ProgressBar, core.Props{"value": value})
}
