package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/chronox22/eco-gamer-collective/internal/clock"
	"github.com/chronox22/eco-gamer-collective/internal/config"
	"github.com/chronox22/eco-gamer-collective/internal/daily"
	"github.com/chronox22/eco-gamer-collective/internal/features"
	"github.com/chronox22/eco-gamer-collective/internal/kv"
	"github.com/chronox22/eco-gamer-collective/internal/logger"
	"github.com/chronox22/eco-gamer-collective/internal/session"
)

// Context is handed to every command's Run method.
type Context struct {
	Config  *config.Config
	Backend kv.Backend
	Store   *daily.Store
	Deriver *daily.Deriver
	Clock   *clock.Clock
	Session *session.Flags
	Suite   *features.Suite
	Out     io.Writer

	// LoadErr is why Backend could not be loaded, when it could not. The
	// Store then keeps today's values for this process only.
	LoadErr error
}

// NewContext wires the daily state engine over backend.
func NewContext(cfg *config.Config, backend kv.Backend, flags *session.Flags) (*Context, error) {
	return newContext(cfg, backend, backend, flags)
}

// Open builds the backend named by cfg and, when load is set, loads it. A
// backend that fails to load does not stop the command: the store falls
// back to session-only values and LoadErr records why.
func Open(cfg *config.Config, flags *session.Flags, load bool) (*Context, error) {
	backend, err := OpenBackend(cfg.Storage)
	if err != nil {
		return nil, err
	}

	live := backend
	var loadErr error
	if load {
		if loadErr = backend.Load(); loadErr != nil {
			logger.Warn("Storage unavailable, values will not be saved", "backend", backend.Describe(), "error", loadErr)
			live = nil
		}
	}

	ctx, err := newContext(cfg, backend, live, flags)
	if err != nil {
		return nil, err
	}
	ctx.LoadErr = loadErr
	return ctx, nil
}

func newContext(cfg *config.Config, backend, live kv.Backend, flags *session.Flags) (*Context, error) {
	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	store := daily.NewStore(live)
	deriver := daily.NewDeriver(store)
	return &Context{
		Config:  cfg,
		Backend: backend,
		Store:   store,
		Deriver: deriver,
		Clock:   clk,
		Session: flags,
		Suite:   features.NewSuite(deriver, flags, cfg.Features),
		Out:     os.Stdout,
	}, nil
}

// Printf writes to the command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer(), format, args...)
}

// Println writes to the command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.writer(), args...)
}

func (c *Context) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Close releases the backend.
func (c *Context) Close() error {
	if c.Backend == nil {
		return nil
	}
	return c.Backend.Close()
}
