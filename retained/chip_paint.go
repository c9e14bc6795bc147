package retained

import (
	"math"
	"time"
)

// Paint draws the chip at every placement it currently occupies and prunes
// slides that have finished. Coordinates are inner (padding already
// applied by the caller).
func (c *Chip) Paint(cv Canvas, outerWidth int, now time.Time) {
	c.syncVisibility(now)
	if c.strategy == PaintCached && !c.visibility.Animating(now) && c.state == Hiding {
		return
	}

	pts := acquirePlacements()
	pts = c.placements(now, pts)
	for _, p := range pts {
		switch c.strategy {
		case PaintCached:
			c.paintCached(cv, p.X, p.Y, now)
		case PaintDirect:
			c.paintOnce(cv, p.X, p.Y, now)
		}
	}
	releasePlacements(pts)

	c.slides.prune(now)
}

// paintOnce is the full paint: pill background clipped past the leading
// circle, avatar and/or delete button cross-faded by hover, elided label.
func (c *Chip) paintOnce(cv Canvas, x, y int, now time.Time) {
	it := c.st.item
	h := it.Height
	radius := float64(h) / 2

	bg := c.st.colors.TextBg
	fg := c.st.colors.TextFg
	if c.active {
		bg = c.st.colors.TextActiveBg
		fg = c.st.colors.TextActiveFg
	}

	cv.Save()
	cv.ClipRect(RectF{float64(x) + radius, float64(y), float64(c.width) - radius, float64(h)})
	cv.FillRoundedRect(Rect{x, y, c.width, h}.RectF(), radius, bg)
	cv.Restore()

	over := c.overOpacity(now)
	if over < 1 {
		avatar := c.visual.Avatar
		if avatar == nil {
			avatar = CircleAvatar{Color: c.visual.Color}
		}
		avatar.PaintAvatar(cv, x, y, h)
	}
	if over > 0 {
		c.paintDeleteButton(cv, x, y, over)
	}

	textLeft := h + it.Padding.Left
	textWidth := c.width - textLeft - it.Padding.Right
	cv.DrawTextElided(c.text, float64(x+textLeft), float64(y+it.Padding.Top), float64(textWidth), fg)
}

func (c *Chip) paintDeleteButton(cv Canvas, x, y int, over float64) {
	h := c.st.item.Height
	cv.Save()
	cv.SetOpacity(over)
	cv.FillEllipse(Rect{x, y, h, h}.RectF(), c.visual.Color)
	glyph := deleteGlyph(float64(x), float64(y), float64(h),
		float64(c.st.item.DeleteLeft), c.st.item.DeleteStroke, c.st.item.MinScale, over)
	cv.FillPath(glyph[:], c.st.colors.DeleteFg)
	cv.Restore()
}

// deleteGlyph computes the outline of the "×" drawn in the delete circle at
// (x, y) of size h. At over = 1 it is full size and upright; as over falls
// it shrinks toward minScale and rotates up to a quarter turn.
func deleteGlyph(x, y, h, deleteLeft, stroke, minScale, over float64) [12]PointF {
	scale := over + minScale*(1-over)
	skip := scale*deleteLeft + (1-scale)*(h/2)
	left := x + skip
	top := y + skip
	w := h - 2*skip
	ht := h - 2*skip
	s := stroke / math.Sqrt2

	pts := [12]PointF{
		{left, top + s},
		{left + s, top},
		{left + w/2, top + ht/2 - s},
		{left + w - s, top},
		{left + w, top + s},
		{left + w/2 + s, top + ht/2},
		{left + w, top + ht - s},
		{left + w - s, top + ht},
		{left + w/2, top + ht/2 + s},
		{left + s, top + ht},
		{left, top + ht - s},
		{left + w/2 - s, top + ht/2},
	}
	if over < 1 {
		alpha := (1 - over) * math.Pi / 2
		cos, sin := math.Cos(alpha), math.Sin(alpha)
		cx, cy := left+w/2, top+ht/2
		for i, p := range pts {
			dx, dy := p.X-cx, p.Y-cy
			pts[i] = PointF{cx + dx*cos - dy*sin, cy + dy*cos + dx*sin}
		}
	}
	return pts
}

// paintCached blits the snapshot centred on the chip, scaled between
// minScale and full size by the visibility value and faded by it.
func (c *Chip) paintCached(cv Canvas, x, y int, now time.Time) {
	end := 1.0
	if c.state == Hiding {
		end = 0
	}
	opacity := c.visibility.Current(now, end)
	scale := lerp(c.st.item.MinScale, 1, opacity)

	w := float64(c.width) * scale
	h := float64(c.st.item.Height) * scale
	dst := RectF{
		X:      float64(x) + (float64(c.width)-w)/2,
		Y:      float64(y) + (float64(c.st.item.Height)-h)/2,
		Width:  w,
		Height: h,
	}

	cv.Save()
	cv.SetOpacity(clamp(opacity, 0, 1))
	cv.DrawBitmap(c.snapshot, dst)
	cv.Restore()
}
