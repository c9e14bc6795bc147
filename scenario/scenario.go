// Package scenario replays scripted interactions against a tag input. A
// scenario is a YAML document holding the widget width, an optional theme
// file and a list of steps, each performing exactly one action:
//
//	width: 320
//	theme: theme.toml
//	steps:
//	  - add: {id: 1, text: Ada Lovelace, color: "#c83232", animate: true}
//	  - advance: 75ms
//	  - frame: mid-show
//	  - key: left
//	  - remove: {id: 1}
//
// Time only moves on advance steps, so every run of a scenario produces
// the same frames.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agiangrant/tagflow/retained"
	"github.com/agiangrant/tagflow/theme"
)

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a parsed script.
type Scenario struct {
	Width int  `yaml:"width"`
	Dark  bool `yaml:"dark"`
	// Theme is a TOML theme file, relative to the scenario file when loaded
	// with Load.
	Theme string `yaml:"theme"`
	Steps []Step `yaml:"steps"`

	dir string
}

// Step holds one action; exactly one field is set.
type Step struct {
	Add     *AddStep    `yaml:"add,omitempty"`
	Remove  *RemoveStep `yaml:"remove,omitempty"`
	Rename  *RenameStep `yaml:"rename,omitempty"`
	Resize  *int        `yaml:"resize,omitempty"`
	Advance *Duration   `yaml:"advance,omitempty"`
	Key     string      `yaml:"key,omitempty"`
	Move    *Point      `yaml:"move,omitempty"`
	Press   *Point      `yaml:"press,omitempty"`
	Leave   bool        `yaml:"leave,omitempty"`
	Type    string      `yaml:"type,omitempty"`
	Submit  *string     `yaml:"submit,omitempty"`
	Frame   string      `yaml:"frame,omitempty"`
}

// AddStep adds a chip.
type AddStep struct {
	ID      uint64 `yaml:"id"`
	Text    string `yaml:"text"`
	Color   string `yaml:"color"`
	Animate bool   `yaml:"animate"`
}

// RemoveStep removes a chip, animated unless Instant.
type RemoveStep struct {
	ID      uint64 `yaml:"id"`
	Instant bool   `yaml:"instant"`
}

// RenameStep changes a chip's label.
type RenameStep struct {
	ID   uint64 `yaml:"id"`
	Text string `yaml:"text"`
}

// Point is a pointer position in widget coordinates.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Duration accepts Go duration strings ("150ms") or integer milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if ms, err := strconv.Atoi(s); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// actions lists the names of the actions set on s.
func (s Step) actions() []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(s.Add != nil, "add")
	add(s.Remove != nil, "remove")
	add(s.Rename != nil, "rename")
	add(s.Resize != nil, "resize")
	add(s.Advance != nil, "advance")
	add(s.Key != "", "key")
	add(s.Move != nil, "move")
	add(s.Press != nil, "press")
	add(s.Leave, "leave")
	add(s.Type != "", "type")
	add(s.Submit != nil, "submit")
	add(s.Frame != "", "frame")
	return names
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scenario file. A relative theme path is resolved against
// the file's directory.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Validate checks the width and that every step names one action.
func (s *Scenario) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("%w: negative width %d", ErrInvalidScenario, s.Width)
	}
	for i, step := range s.Steps {
		switch names := step.actions(); len(names) {
		case 0:
			return fmt.Errorf("%w: step %d has no action", ErrInvalidScenario, i+1)
		case 1:
		default:
			return fmt.Errorf("%w: step %d has several actions (%s)",
				ErrInvalidScenario, i+1, strings.Join(names, ", "))
		}
		if step.Key != "" && retained.KeyByName(step.Key) == retained.KeyOther {
			return fmt.Errorf("%w: step %d: unknown key %q", ErrInvalidScenario, i+1, step.Key)
		}
		if step.Submit != nil {
			if _, err := ParseModifiers(*step.Submit); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidScenario, i+1, err)
			}
		}
		if step.Add != nil && step.Add.Color != "" {
			if _, err := theme.ParseColor(step.Add.Color); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalidScenario, i+1, err)
			}
		}
		if step.Resize != nil && *step.Resize < 0 {
			return fmt.Errorf("%w: step %d: negative width", ErrInvalidScenario, i+1)
		}
	}
	return nil
}

// LoadTheme returns the scenario's theme, or the defaults when none is set.
func (s *Scenario) LoadTheme() (theme.Theme, error) {
	if s.Theme == "" {
		return theme.Default(), nil
	}
	path := s.Theme
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	return theme.Load(path)
}

// ParseModifiers reads "+" separated modifier names such as "ctrl+shift".
// The empty string means no modifiers.
func ParseModifiers(s string) (retained.Modifiers, error) {
	var m retained.Modifiers
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	for _, part := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "shift":
			m |= retained.ModShift
		case "ctrl", "control":
			m |= retained.ModCtrl
		case "alt", "option":
			m |= retained.ModAlt
		case "super", "cmd", "meta":
			m |= retained.ModSuper
		default:
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}
