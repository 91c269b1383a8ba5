package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HendryAvila/caddie-iq/internal/caddie"
	"github.com/HendryAvila/caddie-iq/internal/config"
	"github.com/HendryAvila/caddie-iq/internal/course"
	"github.com/HendryAvila/caddie-iq/internal/store"
	"github.com/HendryAvila/caddie-iq/internal/templates"
)

// App bundles the dependencies shared by the MCP server and the CLI.
type App struct {
	Config   *config.Config
	Log      *logrus.Logger
	Service  *caddie.Service
	Renderer *templates.Renderer
}

// Bootstrap opens the configured store and builds the caddie service on
// top of it. The returned cleanup closes the store; it is always non-nil.
func Bootstrap(cfg *config.Config, log *logrus.Logger) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, noop, fmt.Errorf("invalid config: %w", err)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, noop, fmt.Errorf("creating template renderer: %w", err)
	}

	backend, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, noop, fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	st := store.New(backend, log)

	log.WithFields(logrus.Fields{
		"backend":  cfg.Backend,
		"data_dir": cfg.DataDir,
	}).Debug("store opened")

	cleanup := func() {
		if err := st.Close(); err != nil {
			log.WithError(err).Warn("closing store")
		}
	}

	svc := caddie.New(st, course.Builtin(), caddie.Options{
		HistoryLimit:    cfg.HistoryLimit,
		CloseMatchYards: cfg.CloseMatchYards,
		Logger:          log,
	})

	return &App{
		Config:   cfg,
		Log:      log,
		Service:  svc,
		Renderer: renderer,
	}, cleanup, nil
}

// noop is the cleanup returned when nothing was opened.
func noop() {}
