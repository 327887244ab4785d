// Package player provides the player the controls are composed under.
//
// A Player owns the root element (div.video-js), the component registry,
// the logger and the scheduler, and a snapshot of the media state. Media
// changes are announced with the events the controls listen for: "play",
// "pause", "ended", "timeupdate" and "durationchange".
package player

import (
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/go-drift/playerui/pkg/component"
	"github.com/go-drift/playerui/pkg/config"
	"github.com/go-drift/playerui/pkg/dom"
	"github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/fn"
	"github.com/go-drift/playerui/pkg/widgets"
)

// Version is the core version plugins are checked against.
const Version = "v1.2.0"

// Player is the root component and the collaborator every control reads
// shared state from.
type Player struct {
	*component.Component

	id       string
	cfg      *config.Config
	doc      *dom.Document
	registry *component.Registry
	logger   zerolog.Logger
	sched    fn.Scheduler
	loop     *fn.Loop
	parent   *html.Node
	plugins  []component.Plugin

	state       PlaybackState
	duration    float64
	currentTime float64
}

// Option configures a Player.
type Option func(*Player)

// WithScheduler sets the scheduler used for timers and throttling. The
// default fires system timers onto the player's Loop.
func WithScheduler(s fn.Scheduler) Option {
	return func(p *Player) { p.sched = s }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Player) { p.logger = l }
}

// WithRegistry replaces the default registry.
func WithRegistry(r *component.Registry) Option {
	return func(p *Player) { p.registry = r }
}

// WithParent sets the node the player element is appended to. Defaults to
// the document body.
func WithParent(n *html.Node) Option {
	return func(p *Player) { p.parent = n }
}

// WithPlugins installs plugins before the children are composed.
func WithPlugins(plugins ...component.Plugin) Option {
	return func(p *Player) { p.plugins = append(p.plugins, plugins...) }
}

// New builds a player in doc from cfg, composes its children and triggers
// ready. A nil cfg uses the embedded defaults.
func New(doc *dom.Document, cfg *config.Config, opts ...Option) *Player {
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			cfg = &config.Config{}
		}
	}
	loop := fn.NewLoop()
	p := &Player{
		id:     cfg.ID,
		cfg:    cfg,
		doc:    doc,
		logger: zerolog.Nop(),
		sched:  fn.SystemScheduler{Post: loop.Dispatch},
		loop:   loop,
		parent: doc.Body(),
		state:  PlaybackStateIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.id == "" {
		p.id = "vjs_player"
	}
	if p.registry == nil {
		p.registry = component.NewRegistry(Version)
		widgets.Register(p.registry)
	}
	for _, plugin := range p.plugins {
		if err := p.registry.RegisterPlugin(plugin); err != nil {
			errors.Report(&errors.ComponentError{
				Op:        "player.New",
				Kind:      errors.KindPlugin,
				Component: plugin.Name,
				Err:       err,
			})
		}
	}
	p.duration = sanitize(cfg.Media.Duration)
	p.currentTime = sanitize(cfg.Media.CurrentTime)

	p.Component = component.New(p, component.Options{
		ID:           p.id,
		Name:         "Player",
		Children:     cfg.Children,
		SkipChildren: true,
	}, component.Hooks{
		Self:     p,
		CreateEl: p.createEl,
	})
	dom.AppendChild(p.parent, p.El())
	p.InitChildren()
	p.TriggerReady()
	return p
}

func (p *Player) createEl(c *component.Component) *html.Node {
	return c.CreateEl("div", dom.Props{
		ClassName: component.BuildCSSClass("video-js", "vjs-paused", c.Options().ClassName),
		ID:        p.id,
		TabIndex:  dom.TabIndex(-1),
	}, dom.Attrs{"lang": p.cfg.Language, "role": "region"})
}

// Loop returns the queue system timer callbacks are posted to. The goroutine
// that owns the player calls Drain when Wake fires.
func (p *Player) Loop() *fn.Loop { return p.loop }

// ID returns the player id.
func (p *Player) ID() string { return p.id }

// Document returns the document the player lives in.
func (p *Player) Document() *dom.Document { return p.doc }

// Registry returns the component registry.
func (p *Player) Registry() *component.Registry { return p.registry }

// Logger returns the player logger.
func (p *Player) Logger() zerolog.Logger { return p.logger }

// Scheduler returns the scheduler.
func (p *Player) Scheduler() fn.Scheduler { return p.sched }

// Config returns the configuration the player was built from.
func (p *Player) Config() *config.Config { return p.cfg }

// Duration returns the media duration in seconds.
func (p *Player) Duration() float64 { return p.duration }

// CurrentTime returns the playback position in seconds.
func (p *Player) CurrentTime() float64 { return p.currentTime }

// PlaybackState returns the playback state.
func (p *Player) PlaybackState() PlaybackState { return p.state }

// Paused reports whether the media is not playing.
func (p *Player) Paused() bool { return p.state != PlaybackStatePlaying }

// Play starts playback and triggers "play".
func (p *Player) Play() {
	if p.IsDisposed() || p.state == PlaybackStatePlaying {
		return
	}
	if p.state == PlaybackStateEnded {
		p.currentTime = 0
	}
	p.setState(PlaybackStatePlaying)
	p.Trigger("play", nil)
}

// Pause pauses playback and triggers "pause".
func (p *Player) Pause() {
	if p.IsDisposed() || p.state != PlaybackStatePlaying {
		return
	}
	p.setState(PlaybackStatePaused)
	p.Trigger("pause", nil)
}

// SetDuration updates the duration and triggers "durationchange".
func (p *Player) SetDuration(seconds float64) {
	if p.IsDisposed() {
		return
	}
	p.duration = sanitize(seconds)
	p.Trigger("durationchange", nil)
}

// SetCurrentTime moves the playback position and triggers "timeupdate".
// Reaching the duration while playing ends playback.
func (p *Player) SetCurrentTime(seconds float64) {
	if p.IsDisposed() {
		return
	}
	t := sanitize(seconds)
	if p.duration > 0 {
		t = math.Min(t, p.duration)
	}
	p.currentTime = t
	p.Trigger("timeupdate", nil)
	if p.state == PlaybackStatePlaying && p.duration > 0 && t >= p.duration {
		p.setState(PlaybackStateEnded)
		p.Trigger("ended", nil)
	}
}

func (p *Player) setState(s PlaybackState) {
	p.state = s
	p.ToggleClass("vjs-playing", s == PlaybackStatePlaying)
	p.ToggleClass("vjs-paused", s != PlaybackStatePlaying)
	p.ToggleClass("vjs-ended", s == PlaybackStateEnded)
	p.logger.Debug().Stringer("state", s).Msg("playback state changed")
}

// Localize translates key with the configured language.
func (p *Player) Localize(key string) string { return p.cfg.Localize(key) }

// TooltipsEnabled reports the player-wide tooltip flag.
func (p *Player) TooltipsEnabled() bool { return p.cfg.Tooltips }

// ComponentOptions returns the player-level options for a component name.
func (p *Player) ComponentOptions(name string) component.Options {
	return p.cfg.ComponentOptions(name)
}

// ControlBar returns the control bar, if composed.
func (p *Player) ControlBar() *widgets.ControlBar {
	cb, _ := p.Lookup("ControlBar").(*widgets.ControlBar)
	return cb
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
