// SPDX-License-Identifier: MIT

// Package grid - binary rasterization.
//
// Rasterize classifies each cell as "on" iff its value equals a positive value
// and hands the result to a Sink, visiting x = 0..w-1 outer, y = 0..h-1 inner.
// Encoding and display are the sink's business; Raster and ImageSink are the
// two sinks shipped here.

package grid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
)

// Sink receives one boolean pixel per grid cell.
type Sink interface {
	SetPixel(x, y int, on bool)
}

// Rasterize writes src into sink: pixel (x,y) is on iff src.Get(x,y) == positive.
//
// Errors:
//   - ErrNilSink if sink is nil.
//   - any error from src.Get (never for a well-behaved GridLike).
//
// Complexity: O(w*h).
func Rasterize[T comparable](src GridLike[T], positive T, sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	w, h := src.Width(), src.Height()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			v, err := src.Get(x, y)
			if err != nil {
				return fmt.Errorf("Rasterize: %w", err)
			}
			sink.SetPixel(x, y, v == positive)
		}
	}
	return nil
}

// ToRaster rasterizes src into a freshly allocated Raster of the same shape.
func ToRaster[T comparable](src GridLike[T], positive T) (*Raster, error) {
	r, err := NewRaster(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	if err = Rasterize(src, positive, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Raster is a width×height array of boolean pixels.
type Raster struct {
	width, height int
	pix           []bool // y*width + x
}

// NewRaster allocates an all-off raster. Returns ErrInvalidDimensions on a
// non-positive or overflowing shape.
func NewRaster(width, height int) (*Raster, error) {
	if !validShape(width, height) {
		return nil, dimErrorf("NewRaster", width, height)
	}
	return &Raster{width: width, height: height, pix: make([]bool, width*height)}, nil
}

// Width returns the raster width.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height.
func (r *Raster) Height() int { return r.height }

// SetPixel implements Sink. Pixels outside the raster are ignored, as with image.Image.Set.
func (r *Raster) SetPixel(x, y int, on bool) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.pix[y*r.width+x] = on
}

// At reports the pixel state at (x,y); false outside the raster.
func (r *Raster) At(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	return r.pix[y*r.width+x]
}

// Count returns the number of on pixels.
func (r *Raster) Count() int {
	n := 0
	for _, on := range r.pix {
		if on {
			n++
		}
	}
	return n
}

// Image renders the raster as grayscale: on = white, off = black.
// The y axis points up (row 0 of the image is y = height-1).
func (r *Raster) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.width, r.height))
	sink := &ImageSink{Dst: img}
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			sink.SetPixel(x, y, r.pix[y*r.width+x])
		}
	}
	return img
}

// EncodePNG writes Image() to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("Raster.EncodePNG: %w", err)
	}
	return nil
}

// ImageSink paints pixels onto a draw.Image. On and Off default to white and
// black. Lattice y grows upward, so y is flipped against the image bounds.
type ImageSink struct {
	Dst     draw.Image
	On, Off color.Color
}

// SetPixel implements Sink.
func (s *ImageSink) SetPixel(x, y int, on bool) {
	b := s.Dst.Bounds()
	c := s.Off
	if c == nil {
		c = color.Black
	}
	if on {
		c = s.On
		if c == nil {
			c = color.White
		}
	}
	s.Dst.Set(b.Min.X+x, b.Max.Y-1-y, c)
}
