package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shandysiswandi/gocafe/internal/pkg/pkgroutine"
)

// Start serves HTTP in the background. The returned channel is closed when
// the process receives a termination signal or the server stops on its own.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})
	var once sync.Once
	terminate := func() { once.Do(func() { close(terminateChan) }) }

	a.goroutine.Go(a.ctx, "http server", func(ctx context.Context) error {
		slog.InfoContext(ctx, "http server listening", "address", a.httpServer.Addr)

		err := a.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		slog.ErrorContext(ctx, "failed to listen and serve http server", "error", err)
		terminate()
		return err
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(sigint)

		select {
		case sig := <-sigint:
			slog.Info("termination signal received", "signal", sig.String())
		case <-terminateChan:
		}
		terminate()
	}()

	return terminateChan
}

// Stop drains the HTTP server first, then releases every other resource
// concurrently.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	closers := pkgroutine.NewManager(len(a.closerFn))
	for name, closer := range a.closerFn {
		closers.Go(ctx, name, closer)
	}
	if err := closers.Wait(); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "error", err)
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
