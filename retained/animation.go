package retained

import (
	"math"
	"time"
)

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is value progress; it may leave
// [0, 1] for overshooting curves but must return 1 at t = 1.
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// EaseOutCubic - smooth deceleration
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseOutBack - slight overshoot then settle
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}

	// EaseBumpy - rises to 1.125 at t = 0.75 and settles back to 1.
	// Used for chips popping into view.
	EaseBumpy = Bumpy(1.125)
)

// Bumpy returns a parabolic easing that peaks at ratio (> 1) and lands on 1.
func Bumpy(ratio float64) EasingFunc {
	if ratio <= 1 {
		return EaseLinear
	}
	t0 := ratio - math.Sqrt(ratio*(ratio-1))
	k := 1 / (2*t0 - 1)
	return func(t float64) float64 {
		return ratio - k*(t-t0)*(t-t0)
	}
}

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-in":
		return EaseInQuad
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseInOutCubic
	case "ease-out-cubic":
		return EaseOutCubic
	case "back":
		return EaseOutBack
	case "bumpy":
		return EaseBumpy
	default:
		return nil
	}
}

// ============================================================================
// Tween
// ============================================================================

// Tween interpolates a scalar between two values over a fixed duration.
// It never schedules anything: callers sample it against the clock from a
// paint pass or a host timer step. The zero value is a finished tween at 0.
type Tween struct {
	from, to  float64
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
	running   bool
}

// Start begins a new interpolation, discarding any previous one.
// A non-positive duration finishes immediately at to.
func (t *Tween) Start(now time.Time, from, to float64, duration time.Duration, easing EasingFunc) {
	if easing == nil {
		easing = EaseLinear
	}
	*t = Tween{
		from:      from,
		to:        to,
		startTime: now,
		duration:  duration,
		easing:    easing,
		running:   duration > 0,
	}
}

// Retarget restarts the tween toward to from its value at now, keeping the
// duration and easing.
func (t *Tween) Retarget(now time.Time, to float64) {
	t.Start(now, t.Value(now), to, t.duration, t.easing)
}

// Finish jumps to the target.
func (t *Tween) Finish() {
	t.running = false
}

// Animating reports whether the tween is still in flight at now.
func (t *Tween) Animating(now time.Time) bool {
	return t.running && now.Sub(t.startTime) < t.duration
}

// Value returns the eased value at now. Once finished it returns the target.
func (t *Tween) Value(now time.Time) float64 {
	if !t.Animating(now) {
		return t.to
	}
	p := clamp(float64(now.Sub(t.startTime))/float64(t.duration), 0, 1)
	return t.from + (t.to-t.from)*t.easing(p)
}

// Current returns the eased value while animating and def otherwise.
func (t *Tween) Current(now time.Time, def float64) float64 {
	if !t.Animating(now) {
		return def
	}
	return t.Value(now)
}

// From returns the start value of the latest interpolation.
func (t *Tween) From() float64 { return t.from }

// To returns the target value of the latest interpolation.
func (t *Tween) To() float64 { return t.to }

// ============================================================================
// Helper Functions
// ============================================================================

// lerp linearly interpolates between two values.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundInt rounds to the nearest integer pixel.
func roundInt(v float64) int {
	return int(math.Round(v))
}
