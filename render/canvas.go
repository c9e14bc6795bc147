package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/agiangrant/tagflow/retained"
)

const ellipsis = "…"

// Canvas implements retained.Canvas on a gg context. The context carries
// the transform and clip; opacity is tracked here since gg has none.
type Canvas struct {
	dc    *gg.Context
	r     *Renderer
	scale float64

	opacity float64
	stack   []float64
}

func newCanvas(dc *gg.Context, r *Renderer, scale float64) *Canvas {
	dc.Scale(scale, scale)
	return &Canvas{dc: dc, r: r, scale: scale, opacity: 1}
}

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Save() {
	c.dc.Push()
	c.stack = append(c.stack, c.opacity)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.dc.Pop()
	c.opacity = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) { c.dc.Translate(dx, dy) }

// SetOpacity multiplies into the opacity inherited from the saved state.
func (c *Canvas) SetOpacity(opacity float64) {
	base := 1.0
	if n := len(c.stack); n > 0 {
		base = c.stack[n-1]
	}
	c.opacity = base * max(0, min(1, opacity))
}

func (c *Canvas) ClipRect(r retained.RectF) {
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.Clip()
}

func (c *Canvas) FillRoundedRect(r retained.RectF, radius float64, col color.Color) {
	if radius <= 0 {
		c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	} else {
		c.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, radius)
	}
	c.fill(col)
}

func (c *Canvas) FillEllipse(r retained.RectF, col color.Color) {
	c.dc.DrawEllipse(r.X+r.Width/2, r.Y+r.Height/2, r.Width/2, r.Height/2)
	c.fill(col)
}

func (c *Canvas) FillPath(points []retained.PointF, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.fill(col)
}

func (c *Canvas) fill(col color.Color) {
	c.dc.SetColor(fade(col, c.opacity))
	c.dc.Fill()
}

// DrawTextElided draws text at a device-sized face so glyphs stay sharp
// under the scale transform.
func (c *Canvas) DrawTextElided(text string, x, y, maxWidth float64, col color.Color) {
	text = Elide(c.r.face(1), text, maxWidth)
	if text == "" {
		return
	}
	bx, by := c.dc.TransformPoint(x, y+c.r.Ascent())
	c.dc.Push()
	c.dc.Identity()
	c.dc.SetFontFace(c.r.face(c.scale))
	c.dc.SetColor(fade(col, c.opacity))
	c.dc.DrawString(text, math.Round(bx), math.Round(by))
	c.dc.Pop()
}

// DrawBitmap resamples b to the device size of dst, applies the opacity
// and composites it through the current clip.
func (c *Canvas) DrawBitmap(b retained.Bitmap, dst retained.RectF) {
	if !b.Valid() || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	x0, y0 := c.dc.TransformPoint(dst.X, dst.Y)
	x1, y1 := c.dc.TransformPoint(dst.X+dst.Width, dst.Y+dst.Height)
	w, h := int(math.Round(x1-x0)), int(math.Round(y1-y0))
	if w <= 0 || h <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), b.Image, b.Image.Bounds(), draw.Src, nil)
	if c.opacity < 1 {
		faded := image.NewRGBA(scaled.Bounds())
		mask := image.NewUniform(color.Alpha{A: uint8(math.Round(c.opacity * 255))})
		draw.DrawMask(faded, faded.Bounds(), scaled, image.Point{}, mask, image.Point{}, draw.Src)
		scaled = faded
	}

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(scaled, int(math.Round(x0)), int(math.Round(y0)))
	c.dc.Pop()
}

// fade scales a colour's alpha (and, premultiplied, its channels) by opacity.
func fade(col color.Color, opacity float64) color.Color {
	if opacity >= 1 {
		return col
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * opacity),
		G: uint16(float64(g) * opacity),
		B: uint16(float64(b) * opacity),
		A: uint16(float64(a) * opacity),
	}
}

// Elide cuts text to fit maxWidth, ending it with an ellipsis when cut.
func Elide(face font.Face, text string, maxWidth float64) string {
	if maxWidth <= 0 {
		return ""
	}
	if measure(face, text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := string(runes[:n]) + ellipsis
		if measure(face, s) <= maxWidth {
			return s
		}
	}
	if measure(face, ellipsis) <= maxWidth {
		return ellipsis
	}
	return ""
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

var _ retained.Canvas = (*Canvas)(nil)
