package models

import "image"

// Measurement is the view-model behind the main window. It starts with no
// measurement and only changes through Record.
type Measurement struct {
	history   *HistoryBuffer
	state     BladderState
	timestamp string
	image     image.Image
}

// NewMeasurement creates an empty view-model showing the placeholder image.
func NewMeasurement(placeholder image.Image, timestamp string) *Measurement {
	return &Measurement{
		history:   NewHistoryBuffer(),
		timestamp: timestamp,
		image:     placeholder,
	}
}

// Record applies a recognized measurement. A nil img keeps the current image.
func (m *Measurement) Record(state BladderState, timestamp string, img image.Image) HistoryEntry {
	entry := HistoryEntry{Timestamp: timestamp, State: state}
	m.history.Push(entry)
	m.state = state
	m.timestamp = timestamp
	if img != nil {
		m.image = img
	}
	return entry
}

// HasMeasurement reports whether any recognized state has been recorded.
func (m *Measurement) HasMeasurement() bool {
	return m.state.Recognized()
}

func (m *Measurement) State() BladderState {
	return m.state
}

// Timestamp is the time shown in the time label.
func (m *Measurement) Timestamp() string {
	return m.timestamp
}

func (m *Measurement) Image() image.Image {
	return m.image
}

func (m *Measurement) History() *HistoryBuffer {
	return m.history
}
