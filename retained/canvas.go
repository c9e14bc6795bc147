package retained

import (
	"image"
	"image/color"
)

// ============================================================================
// Geometry
// ============================================================================

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// TopLeft returns the origin corner.
func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains checks if a point is within the bounds.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether both rectangles share any area.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate moves the rectangle by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.X + d.X, r.Y + d.Y, r.Width, r.Height}
}

// Grow expands each edge by the given amounts.
func (r Rect) Grow(left, top, right, bottom int) Rect {
	return Rect{r.X - left, r.Y - top, r.Width + left + right, r.Height + top + bottom}
}

// RectF converts to float coordinates.
func (r Rect) RectF() RectF {
	return RectF{float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height)}
}

// PointF is a sub-pixel position used for path geometry.
type PointF struct {
	X, Y float64
}

// RectF is a sub-pixel rectangle.
type RectF struct {
	X, Y          float64
	Width, Height float64
}

// ============================================================================
// Rendering contracts
// ============================================================================

// Bitmap is an off-screen rendering. Scale is the number of device pixels
// per logical pixel it was rendered at.
type Bitmap struct {
	Image image.Image
	Scale float64
}

// Valid reports whether the bitmap holds pixels.
func (b Bitmap) Valid() bool { return b.Image != nil }

// LogicalSize returns the size in logical pixels.
func (b Bitmap) LogicalSize() (w, h float64) {
	if b.Image == nil || b.Scale <= 0 {
		return 0, 0
	}
	sz := b.Image.Bounds().Size()
	return float64(sz.X) / b.Scale, float64(sz.Y) / b.Scale
}

// Canvas accepts draw commands in logical pixels. Opacity, translation and
// clipping are part of the state saved by Save and restored by Restore.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	// SetOpacity sets the opacity applied to subsequent commands.
	SetOpacity(opacity float64)
	ClipRect(r RectF)

	FillRoundedRect(r RectF, radius float64, c color.Color)
	FillEllipse(r RectF, c color.Color)
	FillPath(points []PointF, c color.Color)
	// DrawTextElided draws text with its top-left corner at (x, y), cutting
	// it with an ellipsis when wider than maxWidth.
	DrawTextElided(text string, x, y, maxWidth float64, c color.Color)
	// DrawBitmap blits b scaled into dst.
	DrawBitmap(b Bitmap, dst RectF)
}

// TextMeasurer reports the rendered width of a label in logical pixels.
type TextMeasurer interface {
	TextWidth(text string) int
}

// Renderer is the drawing backend the engine consumes: text metrics and
// off-screen rendering for chip snapshots.
type Renderer interface {
	TextMeasurer

	// Offscreen renders paint into a transparent bitmap of width x height
	// logical pixels at the given device scale.
	Offscreen(width, height int, scale float64, paint func(Canvas)) Bitmap
}

// Avatar paints the round image at a chip's leading edge.
type Avatar interface {
	PaintAvatar(c Canvas, x, y, size int)
}

// AvatarFunc adapts a function to Avatar.
type AvatarFunc func(c Canvas, x, y, size int)

// PaintAvatar calls f.
func (f AvatarFunc) PaintAvatar(c Canvas, x, y, size int) { f(c, x, y, size) }

// CircleAvatar fills the leading circle with a flat colour.
type CircleAvatar struct {
	Color color.Color
}

// PaintAvatar fills a size x size circle at (x, y).
func (a CircleAvatar) PaintAvatar(c Canvas, x, y, size int) {
	c.FillEllipse(Rect{x, y, size, size}.RectF(), a.Color)
}

// IconPainter draws the field icon shown while no chips are present.
type IconPainter func(c Canvas, x, y int)
