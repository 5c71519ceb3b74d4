package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"bladder-monitor/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "Full.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestNativeLoaderScalesToTarget(t *testing.T) {
	path := writePNG(t, 64, 32)

	img := NewNativeLoader(nil).Load(path, 300, 300)

	require.NotNil(t, img)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	r, g, b, a := img.At(150, 150).RGBA()
	assert.InDelta(t, 0xffff, a, 0x200)
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)
}

func TestNativeLoaderMissingFileReturnsNil(t *testing.T) {
	var buf bytes.Buffer
	loader := NewNativeLoader(logger.NewFileLogger(logger.DebugLevel, &buf))

	img := loader.Load(filepath.Join(t.TempDir(), "missing.png"), 300, 300)

	assert.Nil(t, img)
	assert.Contains(t, buf.String(), "open image")
}

func TestNativeLoaderDecodeFailureReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	var buf bytes.Buffer
	img := NewNativeLoader(logger.NewFileLogger(logger.DebugLevel, &buf)).Load(path, 300, 300)

	assert.Nil(t, img)
	assert.Contains(t, buf.String(), "decode image")
}

func TestNativeLoaderRejectsBadDimensions(t *testing.T) {
	path := writePNG(t, 4, 4)
	assert.Nil(t, NewNativeLoader(nil).Load(path, 0, 300))
}

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(300, 300, "test"))
	assert.Error(t, ValidateDimensions(-1, 300, "test"))
	assert.Error(t, ValidateDimensions(300, 0, "test"))
	assert.Error(t, ValidateDimensions(MaxDimension+1, 10, "test"))
}

func TestNativeLoaderDecodesFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	encoders := map[string]func(f *os.File) error{
		"Full.png": func(f *os.File) error { return png.Encode(f, src) },
		"Full.jpg": func(f *os.File) error { return jpeg.Encode(f, src, nil) },
		"Full.gif": func(f *os.File) error { return gif.Encode(f, src, nil) },
		"Full.bmp": func(f *os.File) error { return bmp.Encode(f, src) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, encode(f))
			require.NoError(t, f.Close())

			img := NewNativeLoader(nil).Load(path, 300, 300)

			require.NotNil(t, img)
			assert.Equal(t, image.Rect(0, 0, 300, 300), img.Bounds())
		})
	}
}
