package retained

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrLoopRunning is returned by Run when the loop is already running.
var ErrLoopRunning = errors.New("loop already running")

// LoopConfig configures the frame loop behavior.
type LoopConfig struct {
	// TargetFPS is the desired frames per second (default: 60).
	TargetFPS int

	// QueueSize bounds the posted input waiting for the loop (default: 100).
	QueueSize int
}

// DefaultLoopConfig returns sensible defaults.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{TargetFPS: 60, QueueSize: 100}
}

// Frame provides context for each loop iteration that has something to show.
type Frame struct {
	// Number is the monotonically increasing frame counter.
	Number uint64

	// DeltaTime is seconds since the previous frame.
	DeltaTime float64

	// Time is seconds since loop start.
	Time float64

	// Container is safe to use for the duration of the callback.
	Container *Container

	// Notes holds the notifications drained for this frame.
	Notes []Notification
}

// Loop owns a Container on a single goroutine. Other goroutines hand it
// input through Post; the loop ticks animations at the target rate and
// reports frames whenever the container has notifications or animates.
type Loop struct {
	c               *Container
	config          LoopConfig
	targetFrameTime time.Duration
	posted          chan func(*Container)

	onFrame func(*Frame)

	running atomic.Bool
	paused  atomic.Bool

	// Stats
	frameCount    atomic.Uint64
	droppedFrames atomic.Uint64
}

// NewLoop creates a frame loop for c.
func NewLoop(c *Container, config LoopConfig) *Loop {
	if config.TargetFPS < 1 {
		config.TargetFPS = 60
	}
	if config.QueueSize < 1 {
		config.QueueSize = 100
	}
	return &Loop{
		c:               c,
		config:          config,
		targetFrameTime: time.Second / time.Duration(config.TargetFPS),
		posted:          make(chan func(*Container), config.QueueSize),
	}
}

// OnFrame sets the frame callback. It runs on the loop goroutine.
func (l *Loop) OnFrame(fn func(*Frame)) {
	l.onFrame = fn
}

// Post queues fn to run against the container on the loop goroutine. It
// blocks while the queue is full and gives up when ctx is done.
func (l *Loop) Post(ctx context.Context, fn func(*Container)) error {
	select {
	case l.posted <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the container until ctx is done, returning its error.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.targetFrameTime)
	defer ticker.Stop()

	start := l.c.clock.Now()
	last := start
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posted:
			fn(l.c)
		case <-ticker.C:
			if l.paused.Load() {
				continue
			}
			last = l.tick(start, last)
		}
	}
}

// tick advances animations and emits a frame when there is anything to
// report. It returns the time of the last emitted frame.
func (l *Loop) tick(start, last time.Time) time.Time {
	l.c.Tick()
	notes := l.c.Drain()
	if len(notes) == 0 {
		return last
	}
	now := l.c.clock.Now()
	delta := now.Sub(last)
	if l.frameCount.Load() > 0 && delta > 2*l.targetFrameTime {
		l.droppedFrames.Add(uint64(delta/l.targetFrameTime) - 1)
	}
	n := l.frameCount.Add(1)
	if l.onFrame != nil {
		l.onFrame(&Frame{
			Number:    n,
			DeltaTime: delta.Seconds(),
			Time:      now.Sub(start).Seconds(),
			Container: l.c,
			Notes:     notes,
		})
	}
	return now
}

// Pause stops frame callbacks; posted input still runs.
func (l *Loop) Pause() {
	l.paused.Store(true)
}

// Resume resumes a paused loop.
func (l *Loop) Resume() {
	l.paused.Store(false)
}

// IsPaused returns whether the loop is paused.
func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// IsRunning returns whether the loop is running.
func (l *Loop) IsRunning() bool {
	return l.running.Load()
}

// Stats returns loop statistics.
func (l *Loop) Stats() LoopStats {
	return LoopStats{
		FrameCount:    l.frameCount.Load(),
		DroppedFrames: l.droppedFrames.Load(),
		TargetFPS:     l.config.TargetFPS,
	}
}

// LoopStats contains performance metrics.
type LoopStats struct {
	FrameCount    uint64
	DroppedFrames uint64
	TargetFPS     int
}
