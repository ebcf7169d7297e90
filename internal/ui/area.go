package ui

import "github.com/pterm/pterm"

// Area is a terminal region that can be redrawn in place.
type Area struct {
	area *pterm.AreaPrinter
}

func StartArea() *Area {
	area, _ := pterm.DefaultArea.Start()
	return &Area{area: area}
}

func (a *Area) Update(content string) {
	a.area.Update(content)
}

func (a *Area) Stop() {
	_ = a.area.Stop()
}
