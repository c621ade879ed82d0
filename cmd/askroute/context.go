package main

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dshills/askroute/internal/config"
	"github.com/dshills/askroute/internal/generator"
	"github.com/dshills/askroute/internal/logging"
	"github.com/dshills/askroute/internal/provider"
	"github.com/dshills/askroute/internal/qa"
	"github.com/dshills/askroute/internal/race"
	"github.com/dshills/askroute/internal/searcher"
	"github.com/dshills/askroute/internal/stats"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	once sync.Once
	app  *app
	err  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// app holds the wired components shared by every command
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	tracker  *stats.Tracker
	registry *provider.Registry
	router   *searcher.Router
	racer    *race.Engine
	engine   *qa.Engine
}

func (c *commandContext) ensureApp() (*app, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.err = err
			return
		}
		if c.logLevelFlag != nil && *c.logLevelFlag != "" {
			cfg.LogLevel = *c.logLevelFlag
		}
		c.app, c.err = newApp(cfg)
	})
	return c.app, c.err
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}

	tracker := stats.NewTracker()
	registry := provider.NewFromConfig(cfg.Providers)

	routerOpts := searcher.OptionsFromConfig(cfg.Search, cfg.Location)
	routerOpts.Stats = tracker
	routerOpts.Logger = logger.With("component", "router")
	router := searcher.New(registry, routerOpts)

	racer := race.New(registry, cfg.Race.Providers,
		race.WithStats(tracker),
		race.WithLogger(logger.With("component", "race")))

	opts := []qa.Option{
		qa.WithRacer(racer),
		qa.WithSearcher(router),
		qa.WithStats(tracker),
		qa.WithLogger(logger.With("component", "qa")),
		qa.WithAnswerConfig(cfg.Answer),
	}

	gen, err := generator.NewFromConfig(cfg.Generator, cfg.Providers.GroqAPIKey)
	switch {
	case errors.Is(err, generator.ErrMissingAPIKey):
		logger.Warn("generative fallback disabled", "backend", cfg.Generator.Backend, logging.FieldError, err)
	case err != nil:
		return nil, err
	default:
		opts = append(opts, qa.WithGenerator(gen))
	}

	logger.Debug("providers configured", logging.FieldCount, len(provider.EnabledNames(registry)))

	return &app{
		cfg:      cfg,
		logger:   logger,
		tracker:  tracker,
		registry: registry,
		router:   router,
		racer:    racer,
		engine:   qa.New(opts...),
	}, nil
}

func (a *app) close() {
	_ = a.registry.Close()
}
