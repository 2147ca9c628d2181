package ink

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular grayscale pixel buffer.
// Intensity 0 is ink-absent (black), 255 is full ink (white).
type Pixmap struct {
	width  int
	height int
	data   []uint8 // one intensity byte per pixel, row-major
}

// NewPixmap creates a new pixmap with the given dimensions, filled with 0.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw intensity data (one byte per pixel, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the intensity of a single pixel.
func (p *Pixmap) SetPixel(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = v
}

// GetPixel returns the intensity of a single pixel.
// Out-of-bounds coordinates read as 0.
func (p *Pixmap) GetPixel(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[y*p.width+x]
}

// BlendMax raises the intensity of a pixel to v if v is higher.
// Overlapping strokes accumulate with max, so ink never exceeds full
// intensity and anti-aliased edges never darken on repeated passes.
func (p *Pixmap) BlendMax(x, y int, v uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := y*p.width + x
	if v > p.data[i] {
		p.data[i] = v
	}
}

// Clear fills the entire pixmap with an intensity.
func (p *Pixmap) Clear(v uint8) {
	for i := range p.data {
		p.data[i] = v
	}
}

// ToImage converts the pixmap to an image.Gray.
func (p *Pixmap) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return color.Gray{Y: p.GetPixel(x, y)}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.GrayModel
}
