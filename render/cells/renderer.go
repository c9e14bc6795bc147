package cells

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/tagflow/retained"
)

// Renderer measures text in terminal columns. Snapshots are grids at one
// cell per CellWidth x CellHeight block whatever scale is requested.
type Renderer struct{}

// NewRenderer returns a cell renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// TextWidth returns the display width of text in logical pixels.
func (r *Renderer) TextWidth(text string) int {
	return lipgloss.Width(text) * CellWidth
}

// Offscreen paints into a fresh grid covering width x height.
func (r *Renderer) Offscreen(width, height int, _ float64, paint func(retained.Canvas)) retained.Bitmap {
	g := NewGrid(cols(width), rows(height))
	paint(NewCanvas(g))
	return retained.Bitmap{Image: g, Scale: 1.0 / CellWidth}
}

type fieldView interface {
	Text() string
	DisplayText() string
	Geometry() (x, y, width int)
}

// Frame paints the visible part of c into a grid filled with the window
// background.
func (r *Renderer) Frame(c *retained.Container) *Grid {
	w, h := c.Width(), c.VisibleHeight()
	g := NewGrid(cols(w), rows(h))
	colors := c.Colors()
	g.Fill(colors.WindowBg)

	cv := NewCanvas(g)
	top := c.ScrollHost().ScrollTop()
	cv.Translate(0, float64(-top))
	c.Paint(cv, retained.Rect{X: 0, Y: top, Width: w, Height: h})

	if f, ok := c.Field().(fieldView); ok {
		x, y, fw := f.Geometry()
		col := colors.TextFg
		if f.Text() == "" {
			col = colors.IconFg
		}
		fh := float64(c.Layout().Field.Height)
		cv.DrawTextElided(f.DisplayText(), float64(x), float64(y)+(fh-CellHeight)/2, float64(fw), col)
	}
	return g
}

func cols(width int) int  { return int(math.Ceil(float64(max(0, width)) / CellWidth)) }
func rows(height int) int { return int(math.Ceil(float64(max(0, height)) / CellHeight)) }

var _ retained.Renderer = (*Renderer)(nil)
