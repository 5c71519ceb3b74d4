package views

import (
	"bladder-monitor/internal/models"
	"bladder-monitor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle  = "Bladder App"
	WindowWidth  = 450
	WindowHeight = 700

	titleText  = "Bladder Monitoring"
	buttonText = "Measure Bladder"
)

// MainView owns the widgets of the main window and renders the measurement view-model
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	title         *widget.Label
	measureButton *widget.Button
	imageDisplay  *components.ImageDisplay
	statusBar     *components.StatusBar
	history       *components.HistoryPanel

	measureHandler func()
}

// NewMainView builds the layout and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.title = widget.NewLabelWithStyle(titleText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mv.title.SizeName = theme.SizeNameHeadingText

	mv.measureButton = widget.NewButton(buttonText, func() {
		if mv.measureHandler != nil {
			mv.measureHandler()
		}
	})
	mv.measureButton.Importance = widget.HighImportance

	mv.imageDisplay = components.NewImageDisplay()
	mv.statusBar = components.NewStatusBar()
	mv.history = components.NewHistoryPanel()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewPadded(container.NewVBox(
		mv.title,
		container.NewCenter(mv.measureButton),
		layout.NewSpacer(),
		mv.imageDisplay.GetContainer(),
		mv.statusBar.GetContainer(),
		mv.history.GetContainer(),
	))

	mv.window.SetContent(mv.mainContainer)
}

// SetMeasureHandler sets the handler for the Measure button
func (mv *MainView) SetMeasureHandler(handler func()) {
	mv.measureHandler = handler
}

// Render redraws the image, time label and history list from m.
func (mv *MainView) Render(m *models.Measurement) {
	if m == nil {
		return
	}

	mv.imageDisplay.SetImage(m.Image())
	mv.statusBar.SetTime(m.Timestamp())
	mv.history.SetLines(m.History().Lines())
}

// SetStatus shows an inline diagnostic under the time label
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) MeasureButton() *widget.Button {
	return mv.measureButton
}

func (mv *MainView) ImageDisplay() *components.ImageDisplay {
	return mv.imageDisplay
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) History() *components.HistoryPanel {
	return mv.history
}

// Show sizes, centers and shows the window
func (mv *MainView) Show() {
	mv.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	mv.window.SetFixedSize(true)
	mv.window.CenterOnScreen()
	mv.window.Show()
}
