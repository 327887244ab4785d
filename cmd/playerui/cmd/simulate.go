package cmd

import (
	"flag"
	"fmt"
	"io"
	"time"

	"emperror.dev/errors"
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/events"
)

// tapHold is how long a scripted tap keeps the finger down.
const tapHold = 50 * time.Millisecond

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay a scripted input session",
		Long: `Build the player and replay the steps of a YAML script against it.

Each step performs one action: set the layout box of an element (rect),
dispatch an event, click, tap, focus or blur an element, press a key,
change the media state, play, pause, advance the clock, or print an
element as HTML. Elements are chosen with selectors such as
".vjs-progress-control" or "div.vjs-mouse-display".

The clock only moves on advance steps and taps, so runs are repeatable.`,
		Usage: "playerui simulate -script file [-config file] [flags]",
		Run:   runSimulate,
	})
}

func runSimulate(args []string, stdout io.Writer) error {
	var path string
	cfg, err := parseConfig("simulate", args, func(fs *flag.FlagSet) {
		fs.StringVar(&path, "script", "", "path to the YAML script")
	})
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("simulate: -script is required")
	}
	sc, err := loadScript(path)
	if err != nil {
		return err
	}

	s := newSession(cfg)
	defer s.close()
	return s.replay(sc, stdout)
}

func (s *session) replay(sc *script, stdout io.Writer) error {
	for i, st := range sc.Steps {
		if err := s.run(st, stdout); err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

func (s *session) run(st step, stdout io.Writer) error {
	switch {
	case st.Rect != nil:
		n, err := s.find(st.Rect.Select)
		if err != nil {
			return err
		}
		s.doc.SetRect(n, dom.Rect{Left: st.Rect.Left, Top: st.Rect.Top, Width: st.Rect.Width, Height: st.Rect.Height})
	case st.Event != nil:
		n, err := s.find(st.Event.Select)
		if err != nil {
			return err
		}
		evt := &events.Event{Type: st.Event.Type, Bubbles: true, PageX: st.Event.PageX, PageY: st.Event.PageY, Which: st.Event.Which}
		if st.Event.Bubbles != nil {
			evt.Bubbles = *st.Event.Bubbles
		}
		s.doc.Events().Trigger(n, evt)
	case st.Click != "":
		n, err := s.find(st.Click)
		if err != nil {
			return err
		}
		x, y := s.center(n)
		s.doc.Events().Trigger(n, events.NewMouse("click", x, y))
	case st.Tap != "":
		n, err := s.find(st.Tap)
		if err != nil {
			return err
		}
		x, y := s.center(n)
		touch := events.Touch{PageX: x, PageY: y}
		s.doc.Events().Trigger(n, events.NewTouch("touchstart", touch))
		s.advance(tapHold)
		s.doc.Events().Trigger(n, &events.Event{Type: "touchend", Bubbles: true, ChangedTouches: []events.Touch{touch}})
	case st.Focus != "", st.Blur != "":
		sel, typ := st.Focus, "focus"
		if sel == "" {
			sel, typ = st.Blur, "blur"
		}
		n, err := s.find(sel)
		if err != nil {
			return err
		}
		s.doc.Events().Trigger(n, &events.Event{Type: typ})
	case st.Key != 0:
		s.doc.Events().Trigger(s.doc.Root(), events.NewKey("keydown", st.Key))
	case st.Media != nil:
		if st.Media.Duration != nil {
			s.player.SetDuration(*st.Media.Duration)
		}
		if st.Media.CurrentTime != nil {
			s.player.SetCurrentTime(*st.Media.CurrentTime)
		}
	case st.Play:
		s.player.Play()
	case st.Pause:
		s.player.Pause()
	case st.Advance != 0:
		s.advance(time.Duration(st.Advance))
	case st.Print != "":
		n, err := s.find(st.Print)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stdout, dom.OuterHTML(n)); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func (s *session) find(selector string) (*html.Node, error) {
	matches, err := dom.Select(s.doc.Body(), selector)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no element matches %q", selector)
	}
	return matches[0], nil
}

func (s *session) center(n *html.Node) (float64, float64) {
	r, ok := s.doc.RectOf(n)
	if !ok {
		return 0, 0
	}
	return r.Left + r.Width/2, r.Top + r.Height/2
}
