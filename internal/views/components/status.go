package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the measurement time and an inline diagnostic line
type StatusBar struct {
	container   *fyne.Container
	timeLabel   *widget.Label
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	timeLabel := widget.NewLabelWithStyle("Time: --", fyne.TextAlignCenter, fyne.TextStyle{})
	statusLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	statusLabel.Importance = widget.WarningImportance

	return &StatusBar{
		container:   container.NewVBox(timeLabel, statusLabel),
		timeLabel:   timeLabel,
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetTime updates the time label to "Time: <timestamp>".
func (sb *StatusBar) SetTime(timestamp string) {
	sb.timeLabel.SetText("Time: " + timestamp)
}

func (sb *StatusBar) GetTime() string {
	return sb.timeLabel.Text
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}
