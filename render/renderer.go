// Package render draws the tag input into raster images with fogleman/gg.
// It implements the engine's Renderer (text metrics and off-screen chip
// snapshots) and renders whole frames for the CLI and tests.
package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/agiangrant/tagflow/retained"
)

// Renderer measures and rasterizes text with one TrueType font at one
// logical size. Faces are cached per device scale.
type Renderer struct {
	font *truetype.Font
	size float64

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewRenderer uses the Go regular font at size points.
func NewRenderer(size float64) (*Renderer, error) {
	return NewRendererFromTTF(goregular.TTF, size)
}

// NewRendererFromTTF parses a TrueType font.
func NewRendererFromTTF(data []byte, size float64) (*Renderer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Renderer{font: f, size: size, faces: make(map[float64]font.Face)}, nil
}

// face returns the font face for drawing at scale device pixels per
// logical pixel.
func (r *Renderer) face(scale float64) font.Face {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[scale]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    r.size * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[scale] = f
	return f
}

// TextWidth returns the advance of text in logical pixels.
func (r *Renderer) TextWidth(text string) int {
	return font.MeasureString(r.face(1), text).Ceil()
}

// Ascent returns the logical distance from the top of a line to its baseline.
func (r *Renderer) Ascent() float64 {
	return float64(r.face(1).Metrics().Ascent.Ceil())
}

// Offscreen renders paint into a transparent bitmap.
func (r *Renderer) Offscreen(width, height int, scale float64, paint func(retained.Canvas)) retained.Bitmap {
	dc := gg.NewContext(deviceSize(width, scale), deviceSize(height, scale))
	paint(newCanvas(dc, r, scale))
	return retained.Bitmap{Image: dc.Image(), Scale: scale}
}

func deviceSize(logical int, scale float64) int {
	return max(1, int(math.Ceil(float64(logical)*scale)))
}

var _ retained.Renderer = (*Renderer)(nil)
