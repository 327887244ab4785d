package widgets

import (
	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/events"
	"github.com/go-drift/playerui/pkg/fn"
)

// PlayToggle is a Button that plays or pauses the player.
type PlayToggle struct {
	*Button
}

// NewPlayToggle creates a play toggle reflecting the player's state.
func NewPlayToggle(p component.Player, opts component.Options) *PlayToggle {
	t := &PlayToggle{}
	t.Button = NewButtonWith(p, opts, ButtonConfig{
		Self:      t,
		Defaults:  component.Options{Name: "PlayToggle", ControlText: "Play"},
		ClassName: "vjs-play-control",
		HandleClick: func(*events.Event) {
			t.toggle()
		},
	})
	t.AddClass("vjs-paused")
	t.On(p, "play", fn.Bind(t, (*PlayToggle).handlePlay))
	t.On(p, "pause", fn.Bind(t, (*PlayToggle).handlePause))
	return t
}

func (t *PlayToggle) toggle() {
	p := t.Player()
	if p == nil {
		return
	}
	if p.Paused() {
		p.Play()
	} else {
		p.Pause()
	}
}

func (t *PlayToggle) handlePlay(*events.Event) {
	t.RemoveClass("vjs-paused")
	t.AddClass("vjs-playing")
	t.SetControlText("Pause")
}

func (t *PlayToggle) handlePause(*events.Event) {
	t.RemoveClass("vjs-playing")
	t.AddClass("vjs-paused")
	t.SetControlText("Play")
}
