// Package tagflow is a headless chip (tag) input: it lays chips out in
// wrapping rows, animates them between positions, in and out of view,
// and tracks selection, hover and the container height. Hosts feed it
// input, drain its notifications and paint it through a Canvas.
//
// The engine lives in the retained package; this package re-exports the
// types a host needs and adds a theme-file constructor.
package tagflow

import (
	"github.com/agiangrant/tagflow/retained"
)

type (
	Container    = retained.Container
	Option       = retained.Option
	ChipID       = retained.ChipID
	Visual       = retained.Visual
	Renderer     = retained.Renderer
	Canvas       = retained.Canvas
	Notification = retained.Notification
	Key          = retained.Key
	Modifiers    = retained.Modifiers
	Point        = retained.Point
	Rect         = retained.Rect
)

var (
	WithLogger     = retained.WithLogger
	WithClock      = retained.WithClock
	WithField      = retained.WithField
	WithScrollHost = retained.WithScrollHost
	WithIcon       = retained.WithIcon

	ErrDuplicateChip = retained.ErrDuplicateChip
	ErrUnknownChip   = retained.ErrUnknownChip
)

// New builds a container drawing through r, styled by the theme file at
// themePath (defaults when empty or missing).
func New(r Renderer, themePath string, dark bool, opts ...Option) (*Container, error) {
	cfg, err := LoadConfig(themePath, dark)
	if err != nil {
		return nil, err
	}
	return retained.NewContainer(r, cfg, opts...)
}
