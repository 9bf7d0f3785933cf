package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gocafe/internal/cafe"
)

func (a *App) initModules() {
	closer, err := cafe.New(cafe.Dependency{
		Config:  a.config,
		Router:  a.router,
		Metrics: a.metrics,
		Context: a.ctx,
	})
	if err != nil {
		slog.Error("failed to init module cafe", "driver", a.config.GetString("database.driver"), "error", err)
		os.Exit(1)
	}

	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}
	a.closerFn["Cafe Store"] = closer
}
