package controllers

import (
	"image"
	"time"

	"bladder-monitor/internal/imaging"
	"bladder-monitor/internal/logger"
	"bladder-monitor/internal/models"
)

const component = "MainController"

// TimestampLayout renders month/day/year and a 12-hour clock, e.g. "Oct 18, 2026 03:04 PM".
const TimestampLayout = "Jan 02, 2006 03:04 PM"

// StateReader returns the raw last line of the state file, "" on failure.
type StateReader interface {
	Read() string
}

// View renders the measurement view-model.
type View interface {
	Render(m *models.Measurement)
	SetStatus(status string)
}

// Settings holds the image lookup parameters.
type Settings struct {
	AssetPath   func(name string) string
	ImageWidth  int
	ImageHeight int
}

// MainController handles the Measure action. All methods run on the UI event goroutine.
type MainController struct {
	reader   StateReader
	loader   imaging.Loader
	settings Settings
	logger   logger.Logger
	clock    func() time.Time

	measurement *models.Measurement
	view        View
}

func NewMainController(reader StateReader, loader imaging.Loader, settings Settings, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOp{}
	}
	return &MainController{
		reader:   reader,
		loader:   loader,
		settings: settings,
		logger:   log,
		clock:    time.Now,
	}
}

// SetClock replaces the time source.
func (mc *MainController) SetClock(clock func() time.Time) {
	mc.clock = clock
}

// SetMainView associates the view and renders the idle state.
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	mc.Start()
}

// Start loads the idle image and renders the no-measurement state.
func (mc *MainController) Start() {
	placeholder := mc.loadImage(models.IdleImageName)
	mc.measurement = models.NewMeasurement(placeholder, FormatTimestamp(mc.clock()))
	mc.render()

	mc.logger.Info(component, "ready", map[string]interface{}{
		"placeholder": placeholder != nil,
	})
}

// Measure reads the state file and, for a recognized state, records and renders it.
// It reports whether a new history entry was recorded.
func (mc *MainController) Measure() bool {
	if mc.measurement == nil {
		mc.Start()
	}

	raw := mc.reader.Read()
	timestamp := FormatTimestamp(mc.clock())

	state := models.ParseState(raw)
	if !state.Recognized() {
		mc.logger.Warning(component, "bladder state not found", map[string]interface{}{
			"value": raw,
		})
		if mc.view != nil {
			mc.view.SetStatus("Bladder state not found")
		}
		return false
	}

	img := mc.loadImage(state.ImageName())
	entry := mc.measurement.Record(state, timestamp, img)

	mc.logger.Info(component, "measurement recorded", map[string]interface{}{
		"entry":   entry.String(),
		"history": mc.measurement.History().Len(),
	})

	if mc.view != nil {
		mc.view.SetStatus("")
	}
	mc.render()
	return true
}

// Measurement exposes the current view-model.
func (mc *MainController) Measurement() *models.Measurement {
	return mc.measurement
}

func (mc *MainController) Shutdown() {
	mc.logger.Info(component, "shutdown", map[string]interface{}{
		"measured": mc.measurement != nil && mc.measurement.HasMeasurement(),
	})
}

func (mc *MainController) loadImage(name string) image.Image {
	path := name
	if mc.settings.AssetPath != nil {
		path = mc.settings.AssetPath(name)
	}
	return mc.loader.Load(path, mc.settings.ImageWidth, mc.settings.ImageHeight)
}

func (mc *MainController) render() {
	if mc.view != nil {
		mc.view.Render(mc.measurement)
	}
}

// FormatTimestamp formats t for the time label and history entries.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
