package controllers

import (
	"bytes"
	"image"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"bladder-monitor/internal/logger"
	"bladder-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	value string
	calls int
}

func (r *fakeReader) Read() string {
	r.calls++
	return r.value
}

type loadCall struct {
	path          string
	width, height int
}

type fakeLoader struct {
	calls  []loadCall
	images map[string]image.Image
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{images: make(map[string]image.Image)}
}

func (l *fakeLoader) Load(path string, width, height int) image.Image {
	l.calls = append(l.calls, loadCall{path: path, width: width, height: height})
	if img, ok := l.images[path]; ok {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

type fakeView struct {
	renders int
	status  string
	last    *models.Measurement
}

func (v *fakeView) Render(m *models.Measurement) {
	v.renders++
	v.last = m
}

func (v *fakeView) SetStatus(status string) {
	v.status = status
}

func newTestController(t *testing.T, reader *fakeReader, loader *fakeLoader, log logger.Logger) (*MainController, *fakeView) {
	t.Helper()
	mc := NewMainController(reader, loader, Settings{
		AssetPath:   func(name string) string { return filepath.Join("assets", name) },
		ImageWidth:  300,
		ImageHeight: 300,
	}, log)

	now := time.Date(2026, time.October, 18, 14, 5, 0, 0, time.UTC)
	mc.SetClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	})

	view := &fakeView{}
	mc.SetMainView(view)
	return mc, view
}

func TestStartRendersPlaceholder(t *testing.T) {
	loader := newFakeLoader()
	mc, view := newTestController(t, &fakeReader{}, loader, nil)

	require.Len(t, loader.calls, 1)
	assert.Equal(t, filepath.Join("assets", "BladderSize.png"), loader.calls[0].path)
	assert.Equal(t, 1, view.renders)
	assert.False(t, mc.Measurement().HasMeasurement())
	assert.Equal(t, "Oct 18, 2026 02:06 PM", mc.Measurement().Timestamp())
}

func TestMeasureFullScenario(t *testing.T) {
	reader := &fakeReader{value: "Full"}
	loader := newFakeLoader()
	fullImg := image.NewRGBA(image.Rect(0, 0, 300, 300))
	loader.images[filepath.Join("assets", "Full.png")] = fullImg
	mc, view := newTestController(t, reader, loader, nil)

	recorded := mc.Measure()

	require.True(t, recorded)
	require.Len(t, loader.calls, 2)
	assert.Equal(t, loadCall{path: filepath.Join("assets", "Full.png"), width: 300, height: 300}, loader.calls[1])

	m := mc.Measurement()
	assert.Same(t, fullImg, m.Image())
	assert.Equal(t, models.StateFull, m.State())

	lines := m.History().Lines()
	require.Len(t, lines, 1)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]{2} \d{2}, \d{4} \d{2}:\d{2} (AM|PM) - Full$`), lines[0])
	assert.Equal(t, "Oct 18, 2026 02:07 PM - Full", lines[0])
	assert.Equal(t, "Oct 18, 2026 02:07 PM", m.Timestamp())
	assert.Equal(t, 2, view.renders)
	assert.Empty(t, view.status)
}

func TestMeasureUnrecognizedIsNoOp(t *testing.T) {
	for _, raw := range []string{"Unknown", "", "full", "Full "} {
		t.Run(raw, func(t *testing.T) {
			var buf bytes.Buffer
			reader := &fakeReader{value: raw}
			loader := newFakeLoader()
			mc, view := newTestController(t, reader, loader, logger.NewFileLogger(logger.DebugLevel, &buf))

			before := mc.Measurement().Image()
			beforeTime := mc.Measurement().Timestamp()

			assert.False(t, mc.Measure())
			assert.False(t, mc.Measure())

			assert.Equal(t, 2, reader.calls)
			assert.Len(t, loader.calls, 1, "only the placeholder is loaded")
			assert.Same(t, before, mc.Measurement().Image())
			assert.Equal(t, beforeTime, mc.Measurement().Timestamp())
			assert.Zero(t, mc.Measurement().History().Len())
			assert.Equal(t, 1, view.renders)
			assert.Equal(t, "Bladder state not found", view.status)
			assert.Contains(t, buf.String(), "bladder state not found")
		})
	}
}

func TestMeasureKeepsLastThree(t *testing.T) {
	reader := &fakeReader{}
	mc, _ := newTestController(t, reader, newFakeLoader(), nil)

	for _, s := range []string{"Empty", "Half-Full", "Full", "Empty"} {
		reader.value = s
		require.True(t, mc.Measure())
	}

	assert.Equal(t, []string{
		"Oct 18, 2026 02:08 PM - Half-Full",
		"Oct 18, 2026 02:09 PM - Full",
		"Oct 18, 2026 02:10 PM - Empty",
	}, mc.Measurement().History().Lines())
}

func TestMeasureImageFailureStillRecords(t *testing.T) {
	reader := &fakeReader{value: "Half-Full"}
	loader := newFakeLoader()
	placeholder := image.NewRGBA(image.Rect(0, 0, 300, 300))
	loader.images[filepath.Join("assets", "BladderSize.png")] = placeholder
	loader.images[filepath.Join("assets", "Half-Full.png")] = nil
	mc, _ := newTestController(t, reader, loader, nil)

	require.True(t, mc.Measure())

	assert.Same(t, placeholder, mc.Measurement().Image())
	assert.Equal(t, 1, mc.Measurement().History().Len())
}

func TestMeasureWithoutViewStartsLazily(t *testing.T) {
	mc := NewMainController(&fakeReader{value: "Empty"}, newFakeLoader(), Settings{ImageWidth: 10, ImageHeight: 10}, nil)

	assert.True(t, mc.Measure())
	assert.Equal(t, models.StateEmpty, mc.Measurement().State())
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 05, 2024 09:07 AM", FormatTimestamp(ts))

	ts = time.Date(2024, time.December, 25, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "Dec 25, 2024 12:30 AM", FormatTimestamp(ts))
}
