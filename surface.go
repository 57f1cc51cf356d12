package idle

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// ImageSurface is an in memory raster surface.
type ImageSurface struct {
	width  int
	height int
	dc     *gg.Context
}

// NewImageSurface returns a blank (transparent) surface of width x height pixels
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{width: width, height: height, dc: gg.NewContext(width, height)}
}

// Width in pixels
func (s *ImageSurface) Width() int {
	return s.width
}

// Height in pixels
func (s *ImageSurface) Height() int {
	return s.height
}

// Context returns a drawing context that paints onto this surface
func (s *ImageSurface) Context() Context2D {
	return &ggContext{dc: s.dc}
}

// Image returns the current pixels
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// Scaled returns the surface image resized by `scale`.
// Nearest neighbour is used so tile edges stay sharp.
func (s *ImageSurface) Scaled(scale float64) (image.Image, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", scale)
	}
	if scale == 1 {
		return s.Image(), nil
	}
	w := uint(float64(s.width) * scale)
	h := uint(float64(s.height) * scale)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("scale %v shrinks %dx%d surface to nothing", scale, s.width, s.height)
	}
	return resize.Resize(w, h, s.Image(), resize.NearestNeighbor), nil
}

// EncodePNG writes the surface (resized by `scale`) to w as a png
func (s *ImageSurface) EncodePNG(w io.Writer, scale float64) error {
	img, err := s.Scaled(scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG to disk
func (s *ImageSurface) SavePNG(fpath string, scale float64) error {
	buff := new(bytes.Buffer)
	err := s.EncodePNG(buff, scale)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// ggContext adapts a gg.Context to Context2D
type ggContext struct {
	dc *gg.Context
}

func (c *ggContext) SetFillStyle(style string) {
	c.dc.SetHexColor(style)
}

func (c *ggContext) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}
