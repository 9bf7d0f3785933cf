package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkglog"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkguid"
)

const envProduction = "production"

func (a *App) initConfig() {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.InitLogging(cfg.GetString("app.env"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(4)
	a.uuid = pkguid.NewUUID()
	a.metrics = pkgmetrics.New()
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid,
		pkgrouter.WithVerboseErrors(a.config.GetString("app.env") != envProduction),
		pkgrouter.WithObserver(a.metrics),
	)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              ":" + a.config.GetString("server.port"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
