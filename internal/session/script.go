package session

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gallery/internal/gallery"
)

var ErrInvalidScript = errors.New("session: invalid script")

// Step issues Command on Repeat consecutive frames starting at Frame.
type Step struct {
	Frame   int             `yaml:"frame"`
	Command gallery.Command `yaml:"command"`
	Repeat  int             `yaml:"repeat,omitempty"`
}

// Script is a scripted headless session: a frame count, a fixed step, and
// the input to apply on each frame.
type Script struct {
	Name   string  `yaml:"name"`
	Frames int     `yaml:"frames"`
	Dt     float64 `yaml:"dt"`
	Steps  []Step  `yaml:"steps"`
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	if s.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidScript, s.Frames)
	}
	if s.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidScript, s.Dt)
	}
	for i, st := range s.Steps {
		if st.Frame < 0 || st.Frame >= s.Frames {
			return fmt.Errorf("%w: step %d at frame %d outside [0, %d)", ErrInvalidScript, i, st.Frame, s.Frames)
		}
		if st.Command == gallery.CmdNone {
			return fmt.Errorf("%w: step %d has no command", ErrInvalidScript, i)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("%w: step %d repeat %d", ErrInvalidScript, i, st.Repeat)
		}
	}
	return nil
}

// schedule expands the steps into per-frame command lists. Steps landing
// on the same frame keep their order in the script.
func (s *Script) schedule() map[int][]gallery.Command {
	steps := make([]Step, len(s.Steps))
	copy(steps, s.Steps)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Frame < steps[j].Frame })

	out := make(map[int][]gallery.Command)
	for _, st := range steps {
		n := st.Repeat
		if n == 0 {
			n = 1
		}
		for f := st.Frame; f < st.Frame+n && f < s.Frames; f++ {
			out[f] = append(out[f], st.Command)
		}
	}
	return out
}

// Sweep is the built-in script: the gun swings across the gallery and back
// while firing at a steady cadence.
func Sweep(frames int, dt float64) *Script {
	s := &Script{Name: "sweep", Frames: frames, Dt: dt}
	const swing = 60
	s.Steps = append(s.Steps, Step{Frame: 0, Command: gallery.CmdYawRight, Repeat: swing / 2})
	left := true
	for f := swing / 2; f < frames; f += swing {
		cmd := gallery.CmdYawRight
		if left {
			cmd = gallery.CmdYawLeft
		}
		s.Steps = append(s.Steps, Step{Frame: f, Command: cmd, Repeat: swing})
		left = !left
	}
	for f := 5; f < frames; f += 15 {
		s.Steps = append(s.Steps, Step{Frame: f, Command: gallery.CmdFire})
	}
	return s
}
