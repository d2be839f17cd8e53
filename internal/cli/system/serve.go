package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chronox22/eco-gamer-collective/internal/api"
	"github.com/chronox22/eco-gamer-collective/internal/cli"
)

type ServeCmd struct {
	Addr string `help:"Listen address (defaults to server.addr from the config)."`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	addr := c.Addr
	if addr == "" {
		addr = ctx.Config.Server.Addr
	}

	handler := api.NewRouter(api.NewHandler(
		ctx.Suite,
		ctx.Clock,
		ctx.Store,
		ctx.Config.Auth.Capability,
		ctx.Backend.Describe(),
	))

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Printf("Serving today's state on http://%s (Ctrl+C to stop)\n", addr)
	return api.ListenAndServe(sigCtx, addr, handler)
}
