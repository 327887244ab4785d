package cmd

import (
	"flag"
	"io"
	"os"
	"time"

	"emperror.dev/errors"

	"github.com/go-drift/playerui/pkg/config"
	"github.com/go-drift/playerui/pkg/dom"
	rterrors "github.com/go-drift/playerui/pkg/errors"
	"github.com/go-drift/playerui/pkg/fn"
	"github.com/go-drift/playerui/pkg/player"
)

// frame is how far a session advances its clock to settle pending work.
const frame = 16 * time.Millisecond

// session is a player mounted in a headless document whose clock only
// moves when the session advances it.
type session struct {
	cfg    *config.Config
	doc    *dom.Document
	sched  *fn.ManualScheduler
	player *player.Player
	prev   rterrors.ErrorHandler
}

// parseConfig parses args with the shared config flags plus any extra
// flags bound by the caller, and loads the resulting configuration.
func parseConfig(name string, args []string, bind func(fs *flag.FlagSet)) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := config.BindFlags(fs)
	if bind != nil {
		bind(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrapf(err, "%s: invalid arguments", name)
	}
	cfg, err := flags.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// newSession mounts a player for cfg and lets it become ready. Runtime
// reports are logged to stderr until close.
func newSession(cfg *config.Config) *session {
	logger := cfg.Logger(os.Stderr)
	s := &session{
		cfg:   cfg,
		sched: fn.NewManualScheduler(time.Now()),
	}
	s.prev = rterrors.SetHandler(rterrors.NewLogHandler(logger, cfg.Debug))
	s.doc = dom.NewDocument(dom.WithClock(s.sched))
	s.player = player.New(s.doc, cfg,
		player.WithScheduler(s.sched),
		player.WithLogger(logger),
	)
	s.advance(frame)
	logger.Debug().Str("player", s.player.ID()).Msg("session ready")
	return s
}

func (s *session) advance(d time.Duration) {
	s.sched.Advance(d)
}

func (s *session) close() {
	s.player.Dispose()
	rterrors.SetHandler(s.prev)
}
