package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const historyTitle = "Measurement History"

// HistoryPanel lists recent measurements, oldest first
type HistoryPanel struct {
	card  *widget.Card
	list  *fyne.Container
	lines []string
}

func NewHistoryPanel() *HistoryPanel {
	list := container.NewVBox()
	return &HistoryPanel{
		card: widget.NewCard(historyTitle, "", list),
		list: list,
	}
}

func (hp *HistoryPanel) GetContainer() fyne.CanvasObject {
	return hp.card
}

// SetLines rebuilds the list from lines.
func (hp *HistoryPanel) SetLines(lines []string) {
	hp.lines = append(hp.lines[:0], lines...)

	objects := make([]fyne.CanvasObject, len(lines))
	for i, line := range lines {
		objects[i] = widget.NewLabel(line)
	}
	hp.list.Objects = objects
	hp.list.Refresh()
}

// Lines returns the rendered history lines.
func (hp *HistoryPanel) Lines() []string {
	return append([]string(nil), hp.lines...)
}
