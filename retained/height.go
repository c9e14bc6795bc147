package retained

import "time"

// HeightAnimator tweens the container height toward the latest layout
// height. Displayed heights are whole pixels.
type HeightAnimator struct {
	tween    Tween
	current  int
	target   int
	duration time.Duration
	easing   EasingFunc
}

// NewHeightAnimator returns an animator resting at 0.
func NewHeightAnimator(duration time.Duration, easing EasingFunc) *HeightAnimator {
	return &HeightAnimator{duration: duration, easing: easing}
}

// Current returns the displayed height.
func (h *HeightAnimator) Current() int { return h.current }

// Target returns the latest layout height.
func (h *HeightAnimator) Target() int { return h.target }

// Animating reports an in-flight tween.
func (h *HeightAnimator) Animating(now time.Time) bool {
	return h.tween.Animating(now)
}

// Retarget starts a tween from the displayed height to target. It reports
// false, leaving any tween alone, when target is unchanged.
func (h *HeightAnimator) Retarget(now time.Time, target int) bool {
	if target == h.target {
		return false
	}
	h.target = target
	h.tween.Start(now, float64(h.current), float64(target), h.duration, h.easing)
	return true
}

// Finish ends the tween; the next Step lands on the target.
func (h *HeightAnimator) Finish() {
	h.tween.Finish()
}

// Step samples the tween and returns the change in displayed height.
func (h *HeightAnimator) Step(now time.Time) int {
	v := roundInt(h.tween.Current(now, float64(h.target)))
	if h.tween.Animating(now) {
		lo, hi := roundInt(h.tween.From()), h.target
		if lo > hi {
			lo, hi = hi, lo
		}
		v = max(lo, min(hi, v))
	}
	delta := v - h.current
	h.current = v
	return delta
}
