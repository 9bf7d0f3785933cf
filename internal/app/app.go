package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gocafe/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager
	metrics   *pkgmetrics.Metrics

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// released in Stop after the HTTP server has drained
	closerFn map[string]func(context.Context) error
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
