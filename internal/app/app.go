package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/algoprovider/internal/capability"
	"github.com/specialistvlad/algoprovider/internal/config"
	"github.com/specialistvlad/algoprovider/internal/ctxlog"
	"github.com/specialistvlad/algoprovider/internal/host"
	"github.com/specialistvlad/algoprovider/internal/registry"
)

var _ host.EntryLister = (*registry.Provider)(nil)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	ctx        context.Context
	logger     *slog.Logger
	config     *Config
	provider   *registry.Provider
	host       *host.Host
	httpServer *http.Server
}

// NewApp builds the logger, resolves the plotting capability and installs
// the provider into a fresh host. The catalogue is loaded by Run. Logs go to
// logW so the listing on outW stays machine readable.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	plotting := plottingAvailable(cfg.Plotting)
	logger.Debug("Plotting capability resolved.", "mode", cfg.Plotting, "available", plotting)

	provider := registry.New(registry.Options{
		PlottingAvailable: plotting,
		ScriptsPath:       cfg.ScriptsPath,
		IconsPath:         cfg.IconsPath,
		Logger:            logger,
	})

	h := host.New()
	if err := h.Add(provider); err != nil {
		// A fresh host cannot already hold the provider.
		panic(err)
	}
	logger.Debug("Provider installed.", "provider", provider.ID(), "scripts_path", provider.ScriptsPath())

	return &App{
		outW:     outW,
		ctx:      ctx,
		logger:   logger,
		config:   cfg,
		provider: provider,
		host:     h,
	}
}

func plottingAvailable(mode string) bool {
	switch mode {
	case config.PlottingOn:
		return true
	case config.PlottingOff:
		return false
	default:
		return capability.PlottingAvailable()
	}
}

// Provider returns the application's provider. This is primarily for testing.
func (a *App) Provider() *registry.Provider {
	return a.provider
}

// Host returns the application's host.
func (a *App) Host() *host.Host {
	return a.host
}
