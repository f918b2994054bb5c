package app

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/shhac/courier/internal/dispatch"
	"github.com/shhac/courier/internal/domain"
	"github.com/shhac/courier/internal/httpexec"
	"github.com/shhac/courier/internal/logging"
	"github.com/shhac/courier/internal/model"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     *Config
	logger     *slog.Logger
	state      *model.ApplicationState
	executor   httpexec.Executor
	dispatcher *dispatch.Dispatcher
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("courier", cfg.LogOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return NewWithExecutor(fyneApp, cfg, logger, httpexec.NewClient(nil, logger)), nil
}

// NewWithExecutor wires an App around a caller-supplied logger and executor.
func NewWithExecutor(fyneApp fyne.App, cfg *Config, logger *slog.Logger, exec httpexec.Executor) *App {
	logger.Info("initializing Courier application",
		slog.Bool("debug", cfg.Debug),
		slog.String("default_url", cfg.DefaultURL),
	)

	state := model.NewApplicationState(cfg.DefaultURL)
	dispatcher := dispatch.New(state.Request, exec, logger)

	logger.Info("application initialized successfully")

	return &App{
		fyneApp:    fyneApp,
		config:     cfg,
		logger:     logger,
		state:      state,
		executor:   exec,
		dispatcher: dispatcher,
	}
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop. Once the loop
// ends it waits at most Config.ShutdownGrace for in-flight dispatches.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()

	if !a.dispatcher.WaitTimeout(a.config.ShutdownGrace) {
		a.logger.Warn("abandoning in-flight dispatches at exit",
			slog.Duration("grace", a.config.ShutdownGrace))
	}
}

// Send starts a dispatch of the current request without blocking.
func (a *App) Send() {
	ticket := a.dispatcher.Dispatch(context.Background())
	a.logger.Debug("send requested", slog.Uint64("id", ticket.ID))
}

// OnSettled registers fn to run after each dispatch settles.
func (a *App) OnSettled(fn func(domain.Outcome)) {
	a.dispatcher.SetOnSettled(fn)
}

// State returns the application state for use by UI components.
func (a *App) State() *model.ApplicationState {
	return a.state
}

// Config returns the configuration the app was built with.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Dispatcher returns the request dispatcher.
func (a *App) Dispatcher() *dispatch.Dispatcher {
	return a.dispatcher
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
