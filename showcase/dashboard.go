package main

import (
	"fmt"

	"github.com/go-flint/flint/pkg/chart"
	"github.com/go-flint/flint/pkg/core"
	"github.com/go-flint/flint/pkg/host"
	"github.com/go-flint/flint/pkg/widgets"
)

var requestsByPeriod = map[string][]float64{
	"day":  {12, 80, 230, 410, 360, 190, 40},
	"week": {1800, 2100, 1950, 2400, 2600, 1200, 900},
}

var errorsByPeriod = map[string][]float64{
	"day":  {0, 1, 4, 9, 6, 2, 0},
	"week": {14, 9, 22, 31, 18, 7, 5},
}

func dashboardApp(core.Props) core.Node {
	period, setPeriod := core.UseState("week")

	return widgets.Column(
		widgets.HeadingOf("Dashboard", 1),
		core.H(widgets.Select, core.Props{
			"value":   period(),
			"options": []string{"day", "week"},
			"onChange": func(ev host.Event) {
				v, _ := ev.Target().Property("value")
				setPeriod(fmt.Sprint(v))
			},
		}),
		widgets.Row(
			widgets.CardOf("Requests",
				chart.LineChartOf("requests/"+period(), chart.Series{
					Name:   period(),
					Values: requestsByPeriod[period()],
				}),
			),
			widgets.CardOf("Errors",
				chart.BarChartOf("errors/"+period(), chart.Series{
					Name:   period(),
					Values: errorsByPeriod[period()],
				}),
			),
		),
		widgets.CardOf("Capacity",
			widgets.LabelOf("storage used"),
			widgets.ProgressBarOf(0.62),
		),
	)
}

func runDashboard(s *session) {
	s.mount(core.H(dashboardApp, nil))
	s.print("weekly view")

	s.choose("day")
	s.print("daily view")
}
