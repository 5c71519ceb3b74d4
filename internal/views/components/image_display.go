package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ImageAreaWidth  = 300
	ImageAreaHeight = 300
)

// ImageDisplay shows the bladder image at a fixed size
type ImageDisplay struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder image.Image
	hasImage    bool
}

// NewImageDisplay creates the image area with a blank placeholder
func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{
		placeholder: createPlaceholderImage(ImageAreaWidth, ImageAreaHeight),
	}

	display.image = canvas.NewImageFromImage(display.placeholder)
	display.image.FillMode = canvas.ImageFillContain
	display.image.ScaleMode = canvas.ImageScaleSmooth
	display.image.SetMinSize(fyne.NewSize(ImageAreaWidth, ImageAreaHeight))

	display.container = container.NewCenter(display.image)
	return display
}

func (id *ImageDisplay) GetContainer() *fyne.Container {
	return id.container
}

// SetImage shows img, or the blank placeholder when img is nil.
func (id *ImageDisplay) SetImage(img image.Image) {
	id.hasImage = img != nil
	if img == nil {
		img = id.placeholder
	}
	if id.image.Image == img {
		return
	}

	id.image.Image = img
	id.image.Refresh()
}

// Image returns the displayed image, nil when the placeholder is shown.
func (id *ImageDisplay) Image() image.Image {
	if !id.hasImage {
		return nil
	}
	return id.image.Image
}

func createPlaceholderImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	background := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	borderColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.Set(x, y, borderColor)
				continue
			}
			img.Set(x, y, background)
		}
	}
	return img
}
