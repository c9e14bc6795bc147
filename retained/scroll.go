package retained

// ============================================================================
// Scroll host
// ============================================================================

// ScrollHost is the outer scroll view the widget sits in. Offsets are in
// widget pixels.
type ScrollHost interface {
	ScrollTop() int
	ViewportHeight() int
	ScrollTopMax() int
	ScrollTo(top int)
}

// Viewport is a ScrollHost for hosts without a scroll view of their own.
// The container keeps it sized to its visible and content heights.
type Viewport struct {
	top     int
	height  int
	content int
}

// ScrollTop returns the first visible content row.
func (v *Viewport) ScrollTop() int { return v.top }

// ViewportHeight returns the visible height.
func (v *Viewport) ViewportHeight() int { return v.height }

// ScrollTopMax returns the largest valid scroll offset.
func (v *Viewport) ScrollTopMax() int { return max(0, v.content-v.height) }

// ScrollTo moves the viewport, clamped to the content.
func (v *Viewport) ScrollTo(top int) {
	v.top = max(0, min(top, v.ScrollTopMax()))
}

// resize updates the viewport and content heights and reclamps the offset.
func (v *Viewport) resize(height, content int) {
	v.height, v.content = height, content
	v.ScrollTo(v.top)
}

// scrollTarget computes the scroll offset that brings [top, bottom) into a
// viewport of the given height. When the range is taller than the viewport
// its top wins. Reports false when the range is already visible.
func scrollTarget(top, bottom, scrollTop, viewport int) (int, bool) {
	switch {
	case top < scrollTop:
		return top, true
	case bottom > scrollTop+viewport:
		return min(bottom-viewport, top), true
	default:
		return scrollTop, false
	}
}

// ensureVisible asks the scroll host to show [top, bottom) of the widget.
func (c *Container) ensureVisible(top, bottom int) {
	target, ok := scrollTarget(top, bottom, c.scroll.ScrollTop(), c.scroll.ViewportHeight())
	if !ok {
		return
	}
	c.scroll.ScrollTo(max(0, min(target, c.scroll.ScrollTopMax())))
}

// scrollToBottom shows the last row, where the field lives.
func (c *Container) scrollToBottom() {
	c.scroll.ScrollTo(c.scroll.ScrollTopMax())
}
