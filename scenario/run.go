package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

// Epoch is the simulated time a run starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// FrameFunc receives the container at every frame step.
type FrameFunc func(name string, c *retained.Container) error

// Runner replays scenarios through a renderer.
type Runner struct {
	Renderer retained.Renderer
	// OnFrame is called for frame steps; nil skips them.
	OnFrame FrameFunc
	// Icon is painted while the list is empty.
	Icon   retained.IconPainter
	Logger *slog.Logger
	// Options are applied after the runner's own.
	Options []retained.Option
}

// Result is the state left by a run.
type Result struct {
	Container *retained.Container
	Field     *retained.TextField
	Clock     *retained.ManualClock
	// Notes holds every notification drained during the run, in order.
	Notes []retained.Notification
	// Frames counts the frame steps passed to OnFrame.
	Frames int
}

// Run replays s from an empty container. It stops at the first failing
// step or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	th, err := s.LoadTheme()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Field: retained.NewTextField(""),
		Clock: retained.NewManualClock(Epoch),
	}
	opts := []retained.Option{
		retained.WithClock(res.Clock),
		retained.WithField(res.Field),
		retained.WithLogger(log),
	}
	if r.Icon != nil {
		opts = append(opts, retained.WithIcon(r.Icon))
	}
	opts = append(opts, r.Options...)
	res.Container, err = retained.NewContainer(r.Renderer, retained.Config{Theme: th, Dark: s.Dark}, opts...)
	if err != nil {
		return nil, err
	}
	if s.Width > 0 {
		res.Container.Resize(s.Width)
	}
	res.Notes = append(res.Notes, res.Container.Drain()...)

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := r.apply(res, step); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Notes = append(res.Notes, res.Container.Drain()...)
	}
	log.Info("scenario replayed", "steps", len(s.Steps), "frames", res.Frames, "chips", res.Container.Chips().Len())
	return res, nil
}

func (r *Runner) apply(res *Result, step Step) error {
	c := res.Container
	switch {
	case step.Add != nil:
		visual := retained.Visual{}
		if step.Add.Color != "" {
			col, err := theme.ParseColor(step.Add.Color)
			if err != nil {
				return err
			}
			visual.Color = col
		}
		return c.AddChip(retained.ChipID(step.Add.ID), step.Add.Text, visual, step.Add.Animate)

	case step.Remove != nil:
		if step.Remove.Instant {
			c.RemoveChipInstant(retained.ChipID(step.Remove.ID))
		} else {
			c.RemoveChip(retained.ChipID(step.Remove.ID))
		}

	case step.Rename != nil:
		return c.SetChipText(retained.ChipID(step.Rename.ID), step.Rename.Text)

	case step.Resize != nil:
		c.Resize(*step.Resize)

	case step.Advance != nil:
		res.Clock.Advance(time.Duration(*step.Advance))
		c.Tick()

	case step.Key != "":
		pressKey(res, retained.KeyByName(step.Key))

	case step.Move != nil:
		c.PointerMove(retained.Point{X: step.Move.X, Y: step.Move.Y})

	case step.Press != nil:
		c.PointerPress(retained.Point{X: step.Press.X, Y: step.Press.Y})

	case step.Leave:
		c.PointerLeave()

	case step.Type != "":
		c.FieldFocused()
		res.Field.Insert(step.Type)
		c.FieldChanged()

	case step.Submit != nil:
		mods, err := ParseModifiers(*step.Submit)
		if err != nil {
			return err
		}
		c.FieldSubmitted(mods)

	case step.Frame != "":
		res.Frames++
		if r.OnFrame != nil {
			return r.OnFrame(step.Frame, c)
		}
	}
	return nil
}

// pressKey offers key to the container and falls back to editing the field
// the way a host text box would.
func pressKey(res *Result, key retained.Key) {
	c := res.Container
	if c.KeyPress(key) {
		return
	}
	switch key {
	case retained.KeyBackspace:
		if res.Field.Backspace() {
			c.FieldChanged()
		}
	case retained.KeyLeft:
		res.Field.MoveCursor(-1)
	case retained.KeyRight:
		res.Field.MoveCursor(1)
	case retained.KeyEnter:
		c.FieldSubmitted(0)
	case retained.KeyEscape:
		c.ClearQuery()
	}
}
