package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	names := []string{"linear", "ease-in", "ease-out", "ease", "ease-in-out", "cubic", "ease-out-cubic", "back", "bumpy"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			fn := EasingByName(name)
			if assert.NotNil(t, fn) {
				assert.InDelta(t, 0, fn(0), 1e-9)
				assert.InDelta(t, 1, fn(1), 1e-9)
			}
		})
	}
	assert.Nil(t, EasingByName("wobble"))
	assert.InDelta(t, 0.875, EasingByName("ease-out-cubic")(0.5), 1e-9)
}

func TestBumpyPeak(t *testing.T) {
	assert.InDelta(t, 1.125, EaseBumpy(0.75), 1e-9)
	for _, p := range []float64{0.1, 0.5, 0.7, 0.8, 0.95} {
		assert.Less(t, EaseBumpy(p), 1.125)
	}
	assert.Greater(t, EaseBumpy(0.9), 1.0, "overshoots before settling")
	assert.InDelta(t, 0.5, Bumpy(1)(0.5), 1e-9, "no bump degrades to linear")
}

func TestTweenLifecycle(t *testing.T) {
	var tw Tween
	assert.False(t, tw.Animating(epoch))
	assert.Equal(t, 0.0, tw.Value(epoch))

	tw.Start(epoch, 10, 20, 100*time.Millisecond, EaseLinear)
	assert.True(t, tw.Animating(epoch))
	assert.InDelta(t, 15, tw.Value(epoch.Add(50*time.Millisecond)), 1e-9)
	assert.InDelta(t, 15, tw.Current(epoch.Add(50*time.Millisecond), -1), 1e-9)

	end := epoch.Add(100 * time.Millisecond)
	assert.False(t, tw.Animating(end))
	assert.Equal(t, 20.0, tw.Value(end))
	assert.Equal(t, -1.0, tw.Current(end, -1))
}

func TestTweenRetargetStartsFromCurrentValue(t *testing.T) {
	var tw Tween
	tw.Start(epoch, 0, 100, 100*time.Millisecond, EaseLinear)

	mid := epoch.Add(25 * time.Millisecond)
	tw.Retarget(mid, 0)
	assert.InDelta(t, 25, tw.From(), 1e-9)
	assert.Equal(t, 0.0, tw.To())
	assert.InDelta(t, 25, tw.Value(mid), 1e-9)
	assert.InDelta(t, 12.5, tw.Value(mid.Add(50*time.Millisecond)), 1e-9)
}

func TestTweenZeroDurationFinishes(t *testing.T) {
	var tw Tween
	tw.Start(epoch, 0, 1, 0, nil)
	assert.False(t, tw.Animating(epoch))
	assert.Equal(t, 1.0, tw.Value(epoch))

	tw.Start(epoch, 0, 1, time.Second, EaseLinear)
	tw.Finish()
	assert.False(t, tw.Animating(epoch))
	assert.Equal(t, 1.0, tw.Value(epoch))
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	assert.Equal(t, epoch, c.Now())
	c.Advance(time.Second)
	assert.Equal(t, epoch.Add(time.Second), c.Now())
}
