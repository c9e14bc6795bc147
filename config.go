package tagflow

import (
	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

// Config selects the theme and palette of a container.
// This is a re-export of retained.Config for consumer convenience.
type Config = retained.Config

// Theme is a re-export of theme.Theme.
type Theme = theme.Theme

// DefaultConfig returns the built-in light theme.
func DefaultConfig() Config {
	return retained.DefaultConfig()
}

// LoadConfig reads a theme file on top of the defaults. An empty path or a
// missing file yields the defaults.
func LoadConfig(themePath string, dark bool) (Config, error) {
	cfg := DefaultConfig()
	cfg.Dark = dark
	if themePath == "" {
		return cfg, nil
	}
	t, err := theme.Load(themePath)
	if err != nil {
		return cfg, err
	}
	cfg.Theme = t
	return cfg, nil
}
