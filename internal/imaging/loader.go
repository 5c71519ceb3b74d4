// Package imaging decodes the state images and scales them to the display size.
package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"bladder-monitor/internal/logger"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

const (
	component = "ImageLoader"

	// MaxDimension bounds the requested display size.
	MaxDimension = 8192
)

// Loader decodes the image at path and scales it to width x height.
// A nil result means no image is available; the cause has already been logged.
type Loader interface {
	Load(path string, width, height int) image.Image
}

// NativeLoader decodes PNG, JPEG, GIF and BMP and scales with Catmull-Rom resampling.
type NativeLoader struct {
	logger logger.Logger
}

func NewNativeLoader(log logger.Logger) *NativeLoader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &NativeLoader{logger: log}
}

func (l *NativeLoader) Load(path string, width, height int) image.Image {
	img, err := l.load(path, width, height)
	if err != nil {
		l.logger.Error(component, err, map[string]interface{}{
			"path": path,
		})
		return nil
	}

	l.logger.Debug(component, "image loaded", map[string]interface{}{
		"path":   path,
		"width":  width,
		"height": height,
	})
	return img
}

func (l *NativeLoader) load(path string, width, height int) (image.Image, error) {
	if err := ValidateDimensions(width, height, "load"); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return Scale(src, width, height), nil
}

// Scale resamples src to exactly width x height.
func Scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// ValidateDimensions rejects non-positive or oversized target sizes.
func ValidateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d for operation: %s", width, height, operation)
	}

	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum size for operation: %s", width, height, operation)
	}

	return nil
}
