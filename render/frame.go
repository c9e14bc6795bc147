package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/agiangrant/tagflow/retained"
)

// fieldView is implemented by fields that can report what they show, such
// as retained.TextField.
type fieldView interface {
	Text() string
	DisplayText() string
	Geometry() (x, y, width int)
}

// Frame paints the visible part of c over the window background at scale
// device pixels per logical pixel. Fields that report their text are
// drawn too.
func (r *Renderer) Frame(c *retained.Container, scale float64) image.Image {
	w, h := c.Width(), c.VisibleHeight()
	dc := gg.NewContext(deviceSize(w, scale), deviceSize(h, scale))
	colors := c.Colors()
	dc.SetColor(colors.WindowBg)
	dc.Clear()

	cv := newCanvas(dc, r, scale)
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
		lh := float64(r.face(1).Metrics().Height.Ceil())
		cv.DrawTextElided(f.DisplayText(), float64(x), float64(y)+(fh-lh)/2, float64(fw), col)
	}
	return dc.Image()
}

// PlusIcon paints a plus sign of the given size, used as the empty-state
// field icon.
func PlusIcon(col color.Color, size int) retained.IconPainter {
	return func(c retained.Canvas, x, y int) {
		s := float64(size)
		arm := s / 3
		bar := s / 8
		cx, cy := float64(x)+s/2, float64(y)+s/2
		c.FillPath([]retained.PointF{
			{X: cx - bar, Y: cy - arm}, {X: cx + bar, Y: cy - arm},
			{X: cx + bar, Y: cy - bar}, {X: cx + arm, Y: cy - bar},
			{X: cx + arm, Y: cy + bar}, {X: cx + bar, Y: cy + bar},
			{X: cx + bar, Y: cy + arm}, {X: cx - bar, Y: cy + arm},
			{X: cx - bar, Y: cy + bar}, {X: cx - arm, Y: cy + bar},
			{X: cx - arm, Y: cy - bar}, {X: cx - bar, Y: cy - bar},
		}, col)
	}
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
