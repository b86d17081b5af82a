package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// drainTimeout bounds graceful shutdown. The analytics endpoints are
// read-only and short-lived, so in-flight requests should finish well
// within it.
const drainTimeout = 15 * time.Second

// Run wires the route handlers, serves until SIGINT/SIGTERM or a listener
// failure, then drains in-flight requests before returning.
func (srv HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: map handlers failed: %v", err)
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Analytics API listening on %s (%s)", server.Addr, srv.environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		srv.l.Infof(ctx, "Caught %v, draining in-flight requests", sig)
	}

	drainCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		srv.l.Errorf(ctx, "httpserver.Run: shutdown failed: %v", err)
		return err
	}

	srv.l.Info(ctx, "Analytics API shut down cleanly")
	return nil
}
