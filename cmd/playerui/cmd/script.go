package cmd

import (
	"os"
	"time"

	"emperror.dev/errors"
	"gopkg.in/yaml.v3"
)

// script is a recorded input session.
//
//	steps:
//	  - rect: {select: .vjs-progress-holder, left: 10, width: 300, height: 10}
//	  - event: {select: .vjs-progress-control, type: mousemove, pageX: 50}
//	  - advance: 30ms
//	  - print: .vjs-mouse-display-tooltip
type script struct {
	Steps []step `yaml:"steps"`
}

// step holds exactly one action.
type step struct {
	Rect    *rectStep  `yaml:"rect,omitempty"`
	Event   *eventStep `yaml:"event,omitempty"`
	Click   string     `yaml:"click,omitempty"`
	Tap     string     `yaml:"tap,omitempty"`
	Focus   string     `yaml:"focus,omitempty"`
	Blur    string     `yaml:"blur,omitempty"`
	Key     int        `yaml:"key,omitempty"`
	Media   *mediaStep `yaml:"media,omitempty"`
	Play    bool       `yaml:"play,omitempty"`
	Pause   bool       `yaml:"pause,omitempty"`
	Advance duration   `yaml:"advance,omitempty"`
	Print   string     `yaml:"print,omitempty"`
}

type rectStep struct {
	Select string  `yaml:"select"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type eventStep struct {
	Select  string  `yaml:"select"`
	Type    string  `yaml:"type"`
	PageX   float64 `yaml:"pageX"`
	PageY   float64 `yaml:"pageY"`
	Which   int     `yaml:"which"`
	Bubbles *bool   `yaml:"bubbles"`
}

type mediaStep struct {
	Duration    *float64 `yaml:"duration"`
	CurrentTime *float64 `yaml:"currentTime"`
}

// duration is a time.Duration written as "30ms" or "1.5s".
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return errors.Wrap(err, "cannot decode duration")
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q (line %d)", s, value.Line)
	}
	if v < 0 {
		return errors.Errorf("negative duration %q (line %d)", s, value.Line)
	}
	*d = duration(v)
	return nil
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	return parseScript(data)
}

func parseScript(data []byte) (*script, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to decode script")
	}
	for i, st := range s.Steps {
		if n := st.actions(); n != 1 {
			return nil, errors.Errorf("step %d: want exactly one action, got %d", i+1, n)
		}
		if st.Event != nil && st.Event.Type == "" {
			return nil, errors.Errorf("step %d: event needs a type", i+1)
		}
	}
	return &s, nil
}

func (s step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Rect != nil, s.Event != nil, s.Click != "", s.Tap != "",
		s.Focus != "", s.Blur != "", s.Key != 0, s.Media != nil,
		s.Play, s.Pause, s.Advance != 0, s.Print != "",
	} {
		if set {
			n++
		}
	}
	return n
}
