package main

import (
	"context"
	"net"
	"strconv"

	adgenhttp "github.com/fwojciec/adgen/http"
	"golang.org/x/sync/errgroup"
)

// Run serves the HTTP API until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	srv := adgenhttp.NewServer(deps.Augmenter,
		adgenhttp.WithAddr(addr),
		adgenhttp.WithModel(deps.Model),
		adgenhttp.WithAllowedOrigins(c.AllowedOrigins),
		adgenhttp.WithRequestTimeout(c.RequestTimeout),
		adgenhttp.WithLogger(deps.Logger),
	)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return srv.Serve(ln)
	})
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
