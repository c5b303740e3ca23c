package main

// Demo is one runnable showcase page.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	Run      func(*session)
}

// demos is the registry of all showcase pages.
// Add new demos here to make them runnable from the command line.
var demos = []Demo{
	{"counter", "Counter", "Click handlers driving state", runCounter},
	{"todo", "Todo", "Controlled input and list rendering", runTodo},
	{"dashboard", "Dashboard", "Charts, cards, and a period selector", runDashboard},
}
