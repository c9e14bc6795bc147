package retained

import (
	"image/color"
	"time"
)

// ChipID identifies a chip. Stable across reflows; chosen by the host.
type ChipID uint64

// VisibilityState is a chip's lifecycle stage.
type VisibilityState uint8

const (
	// Appearing: show animation in flight.
	Appearing VisibilityState = iota
	// Visible: fully shown, painted directly.
	Visible
	// Hiding: hide animation in flight or finished and awaiting removal.
	Hiding
	// Removed: gone for good.
	Removed
)

func (s VisibilityState) String() string {
	switch s {
	case Appearing:
		return "appearing"
	case Visible:
		return "visible"
	case Hiding:
		return "hiding"
	default:
		return "removed"
	}
}

// PaintStrategy selects how a chip is painted.
type PaintStrategy uint8

const (
	// PaintDirect runs the full paint: pill, avatar or delete glyph, label.
	PaintDirect PaintStrategy = iota
	// PaintCached blits the snapshot scaled and faded by visibility.
	PaintCached
)

// snapshotScale is the oversampling factor of chip snapshots, keeping the
// scaled blit anti-aliased.
const snapshotScale = 3

// Visual carries the per-chip paint parameters.
type Visual struct {
	// Color fills the delete circle (and the default avatar).
	Color color.Color
	// Avatar paints the leading round image; nil paints a Color circle.
	Avatar Avatar
}

// Chip is one removable entry. It owns its geometry and every animation
// acting on it; the container and layout only reach it through its methods.
type Chip struct {
	st *style

	id     ChipID
	text   string
	width  int
	visual Visual

	// Authoritative position, always the target of the latest slide.
	x, y   int
	placed bool

	slides slideList

	active     bool
	over       bool
	overDelete bool
	overTween  Tween

	state      VisibilityState
	visibility Tween
	strategy   PaintStrategy
	snapshot   Bitmap
}

func newChip(st *style, id ChipID, text string, visual Visual, m TextMeasurer) *Chip {
	if visual.Color == nil {
		visual.Color = st.colors.TextActiveBg
	}
	c := &Chip{
		st:     st,
		id:     id,
		visual: visual,
		state:  Visible,
	}
	c.setText(text, m)
	return c
}

// ID returns the chip identifier.
func (c *Chip) ID() ChipID { return c.id }

// Text returns the label.
func (c *Chip) Text() string { return c.text }

// Width returns the clamped chip width.
func (c *Chip) Width() int { return c.width }

// Position returns the authoritative position inside the flow.
func (c *Chip) Position() Point { return Point{c.x, c.y} }

// Rect returns the chip bounds at its authoritative position.
func (c *Chip) Rect() Rect { return Rect{c.x, c.y, c.width, c.st.item.Height} }

// Active reports keyboard focus.
func (c *Chip) Active() bool { return c.active }

// Hovered reports pointer hover.
func (c *Chip) Hovered() bool { return c.over }

// OverDelete reports whether the pointer is over the delete zone.
func (c *Chip) OverDelete() bool { return c.overDelete }

// Strategy returns the current paint strategy.
func (c *Chip) Strategy() PaintStrategy { return c.strategy }

// SlideCount returns the number of position transitions being tracked.
func (c *Chip) SlideCount() int { return c.slides.len() }

func (c *Chip) setText(text string, m TextMeasurer) {
	c.text = text
	w := c.st.item.Height + c.st.item.Padding.Left + m.TextWidth(text) + c.st.item.Padding.Right
	c.width = min(w, c.st.item.MaxWidth)
}

func (c *Chip) setActive(active bool) {
	c.active = active
}

// ============================================================================
// Position transitions
// ============================================================================

// setPosition moves the chip. The first placement is immediate. Later
// moves glide: within a row one slide, across rows an exit slide on the old
// row plus an entry slide on the new one. In-flight slides on the target
// row are retargeted from their current value; slides on other rows are
// sent off-screen to finish leaving.
func (c *Chip) setPosition(now time.Time, x, y, outerWidth, maxVisiblePadding int) {
	if c.placed && (c.x != x || c.y != y) {
		leftHidden := -c.width - maxVisiblePadding
		rightHidden := outerWidth + maxVisiblePadding

		c.slides.prune(now)
		if c.slides.len() == 0 {
			if c.y == y {
				c.pushSlide(now, c.x, x, y)
			} else {
				exitTo, entryFrom := leftHidden, rightHidden
				if y > c.y {
					exitTo, entryFrom = rightHidden, leftHidden
				}
				c.pushSlide(now, c.x, exitTo, c.y)
				c.pushSlide(now, entryFrom, x, y)
			}
		} else {
			found := false
			for i := 0; i < c.slides.len(); i++ {
				s := c.slides.at(i)
				if s.y == y {
					s.restart(now, x, c.st)
					found = true
				} else if s.toX > s.fromX {
					s.restart(now, rightHidden, c.st)
				} else {
					s.restart(now, leftHidden, c.st)
				}
			}
			if !found {
				entryFrom := rightHidden
				if y > c.y {
					entryFrom = leftHidden
				}
				c.pushSlide(now, entryFrom, x, y)
			}
		}
	}
	c.x, c.y = x, y
	c.placed = true
}

func (c *Chip) pushSlide(now time.Time, fromX, toX, y int) {
	var s slide
	s.start(now, fromX, toX, y, c.st)
	c.slides.push(s)
}

// placements appends the positions the chip is painted at: the
// authoritative one when no slide is tracked, otherwise one per slide that
// is still moving or has settled on the current row.
func (c *Chip) placements(now time.Time, dst []Point) []Point {
	if c.slides.len() == 0 {
		return append(dst, Point{c.x, c.y})
	}
	for i := 0; i < c.slides.len(); i++ {
		s := c.slides.at(i)
		if s.animating(now) || s.y == c.y {
			dst = append(dst, Point{s.current(now), s.y})
		}
	}
	return dst
}

// PaintArea is the region the chip may paint into: its own rect, or the
// whole inner width across every row it is sliding on.
func (c *Chip) PaintArea(outerWidth int) Rect {
	if c.slides.len() == 0 {
		return c.Rect()
	}
	minY, maxY := c.slides.rowSpan()
	return Rect{0, minY, outerWidth, maxY - minY + c.st.item.Height}
}

// ============================================================================
// Visibility
// ============================================================================

// State returns the lifecycle stage at now.
func (c *Chip) State(now time.Time) VisibilityState {
	c.syncVisibility(now)
	return c.state
}

// showAnimated pops a new chip into view.
func (c *Chip) showAnimated(now time.Time, r Renderer) {
	from := 0.0
	if c.visibility.Animating(now) {
		from = c.visibility.Value(now)
	}
	c.prepareSnapshot(now, r)
	c.state = Appearing
	c.visibility.Start(now, from, 1, c.st.duration, EaseBumpy)
}

// hideAnimated shrinks and fades the chip out.
func (c *Chip) hideAnimated(now time.Time, r Renderer) {
	from := c.visibilityValue(now)
	c.prepareSnapshot(now, r)
	c.state = Hiding
	c.visibility.Start(now, from, 0, c.st.duration, EaseLinear)
}

// hideNow removes the chip without animation.
func (c *Chip) hideNow() {
	c.visibility.Finish()
	c.dropSnapshot()
	c.state = Removed
}

// HideFinished reports a chip whose hide animation has run out.
func (c *Chip) HideFinished(now time.Time) bool {
	return c.state == Hiding && !c.visibility.Animating(now)
}

// visibilityValue is the opacity a new visibility tween starts from.
func (c *Chip) visibilityValue(now time.Time) float64 {
	if c.visibility.Animating(now) {
		return c.visibility.Value(now)
	}
	switch c.state {
	case Visible:
		return 1
	case Appearing:
		return c.visibility.To()
	default:
		return 0
	}
}

// syncVisibility settles a finished show animation.
func (c *Chip) syncVisibility(now time.Time) {
	if c.state == Appearing && !c.visibility.Animating(now) {
		c.state = Visible
		c.dropSnapshot()
	}
}

// prepareSnapshot renders the chip once into an oversampled bitmap. While
// the snapshot is valid the chip is painted from it and must not change.
func (c *Chip) prepareSnapshot(now time.Time, r Renderer) {
	if c.strategy == PaintCached {
		return
	}
	invariant(!c.visibility.Animating(now), "snapshot started while visibility animates")

	h := c.st.item.Height
	c.snapshot = r.Offscreen(c.width, h, snapshotScale, func(cv Canvas) {
		c.paintOnce(cv, 0, 0, now)
	})
	c.strategy = PaintCached
}

func (c *Chip) dropSnapshot() {
	c.snapshot = Bitmap{}
	c.strategy = PaintDirect
}

// ============================================================================
// Hover
// ============================================================================

// pointerMove handles a pointer at local chip coordinates. Ignored while a
// snapshot is active.
func (c *Chip) pointerMove(now time.Time, local Point) {
	if c.strategy == PaintCached {
		return
	}
	c.overDelete = c.inDeleteZone(local)
	c.setOver(now, true)
}

// pointerLeave clears hover.
func (c *Chip) pointerLeave(now time.Time) {
	c.overDelete = false
	c.setOver(now, false)
}

// inDeleteZone tests the circular hot-zone at the leading edge.
func (c *Chip) inDeleteZone(local Point) bool {
	h := c.st.item.Height
	r := float64(h) / 2
	dx := float64(local.X) + 0.5 - r
	dy := float64(local.Y) + 0.5 - r
	return dx*dx+dy*dy <= r*r
}

func (c *Chip) setOver(now time.Time, over bool) {
	if over == c.over {
		return
	}
	from := 0.0
	if c.overTween.Animating(now) {
		from = c.overTween.Value(now)
	} else if c.over {
		from = 1
	}
	c.over = over
	to := 0.0
	if over {
		to = 1
	}
	c.overTween.Start(now, from, to, c.st.duration, EaseLinear)
}

// overOpacity is the delete-button visibility at now.
func (c *Chip) overOpacity(now time.Time) float64 {
	def := 0.0
	if c.over {
		def = 1
	}
	return c.overTween.Current(now, def)
}

// Animating reports whether any of the chip's animations is in flight.
func (c *Chip) Animating(now time.Time) bool {
	return c.slides.anyAnimating(now) ||
		c.visibility.Animating(now) ||
		c.overTween.Animating(now)
}
