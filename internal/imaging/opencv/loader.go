// Package opencv scales state images with OpenCV area interpolation.
package opencv

import (
	"fmt"
	"image"

	"bladder-monitor/internal/imaging"
	"bladder-monitor/internal/logger"

	"gocv.io/x/gocv"
)

const component = "OpenCVLoader"

type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Loader{logger: log}
}

func (l *Loader) Load(path string, width, height int) image.Image {
	img, err := l.load(path, width, height)
	if err != nil {
		l.logger.Error(component, err, map[string]interface{}{
			"path": path,
		})
		return nil
	}
	return img
}

func (l *Loader) load(path string, width, height int) (image.Image, error) {
	if err := imaging.ValidateDimensions(width, height, "resize"); err != nil {
		return nil, err
	}

	src := gocv.IMRead(path, gocv.IMReadColor)
	defer src.Close()
	if src.Empty() {
		return nil, fmt.Errorf("decode image: %s could not be read", path)
	}

	dst := gocv.NewMat()
	defer dst.Close()

	// Area interpolation gives the smoothest result when shrinking.
	gocv.Resize(src, &dst, image.Pt(width, height), 0, 0, gocv.InterpolationArea)
	if dst.Empty() {
		return nil, fmt.Errorf("resize image to %dx%d failed", width, height)
	}

	img, err := dst.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert Mat to image: %w", err)
	}

	l.logger.Debug(component, "image loaded", map[string]interface{}{
		"path":     path,
		"source":   fmt.Sprintf("%dx%d", src.Cols(), src.Rows()),
		"channels": dst.Channels(),
	})
	return img, nil
}
