package ui

import (
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"github.com/shhac/courier/internal/domain"
	apperrors "github.com/shhac/courier/internal/errors"
	"github.com/shhac/courier/internal/model"
	uierrors "github.com/shhac/courier/internal/ui/errors"
	"github.com/shhac/courier/internal/ui/request"
	"github.com/shhac/courier/internal/ui/response"
	"github.com/shhac/courier/internal/ui/settings"
	"github.com/shhac/courier/internal/ui/sidebar"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.ApplicationState
	Logger() *slog.Logger
	FyneApp() fyne.App
	Send()
	OnSettled(fn func(domain.Outcome))
}

// MainWindow manages the main application window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.ApplicationState
	logger *slog.Logger
	app    AppController

	// Panel widgets
	sidebar       *sidebar.Sidebar
	requestPanel  *request.RequestPanel
	responsePanel *response.ResponsePanel
	statusBar     *uierrors.StatusBar

	// Error of the last applied dispatch, shown by the status bar details button
	errMu   sync.Mutex
	lastErr error
}

// NewMainWindow creates a new main window with the application layout.
// The window is split horizontally with:
//   - Left side: navigation sidebar
//   - Right side: Request Panel (top), Response Panel (middle), Status Bar (bottom)
func NewMainWindow(fyneApp fyne.App, app AppController) *MainWindow {
	window := fyneApp.NewWindow("Courier - HTTP Client")

	mw := &MainWindow{
		window: window,
		state:  app.State(),
		logger: app.Logger(),
		app:    app,
	}

	mw.sidebar = sidebar.New(mw.state.SelectedSection)
	mw.requestPanel = request.NewRequestPanel(mw.state.Request, mw.logger)
	mw.responsePanel = response.NewResponsePanel(mw.state.Request)
	mw.statusBar = uierrors.NewStatusBar(Version, mw.state.Status)

	mw.wireCallbacks()
	mw.SetContent()
	mw.setupMainMenu()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(1200, 800))

	return mw
}

// wireCallbacks sets up all the event handlers and connects components
func (w *MainWindow) wireCallbacks() {
	w.requestPanel.SetOnSend(w.app.Send)
	w.app.OnSettled(w.handleSettled)

	w.statusBar.SetOnDetails(func() {
		w.errMu.Lock()
		err := w.lastErr
		w.errMu.Unlock()
		uierrors.ShowRequestError(err, w.window)
	})

	w.state.SelectedSection.AddListener(binding.NewDataListener(func() {
		section, _ := w.state.SelectedSection.Get()
		w.logger.Debug("section selected", slog.String("section", section))
	}))
}

// handleSettled runs on the dispatch goroutine after each settle.
func (w *MainWindow) handleSettled(outcome domain.Outcome) {
	if !outcome.Applied {
		return
	}

	w.errMu.Lock()
	w.lastErr = outcome.Err
	w.errMu.Unlock()

	status := uierrors.StatusSent
	if outcome.Failed() {
		status = apperrors.ClassifyError(outcome.Err).Title
	}
	fyne.Do(func() {
		if err := w.state.Status.Set(status); err != nil {
			w.logger.Debug("status update failed",
				slog.String("status", status),
				slog.Any("error", err))
		}
	})
}

// setupMainMenu installs the application menu.
func (w *MainWindow) setupMainMenu() {
	fyneApp := w.app.FyneApp()

	preferences := fyne.NewMenuItem("Preferences...", func() {
		settings.ShowPreferencesDialog(fyneApp, w.window, settings.PreferencesCallbacks{
			OnThemeChange: func(mode string) {
				ApplyTheme(fyneApp, mode)
			},
		})
	})

	w.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", preferences),
		fyne.NewMenu("Request",
			fyne.NewMenuItem("Send", w.requestPanel.TriggerSend),
			fyne.NewMenuItem("Add Parameter", w.requestPanel.AddParam),
			fyne.NewMenuItem("Clear Response", w.responsePanel.Clear),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", func() { ShowShortcutDialog(w.window) }),
			fyne.NewMenuItem("About", func() { ShowAboutDialog(w.window) }),
		),
	))
}

// SetContent builds and sets the main window layout.
// Layout structure:
//
//	┌─────────────────┬──────────────────────────────┐
//	│                 │      Request Panel           │
//	│  Sidebar        ├──────────────────────────────┤
//	│                 │      Response Panel          │
//	│                 ├──────────────────────────────┤
//	│                 │      Status Bar              │
//	└─────────────────┴──────────────────────────────┘
func (w *MainWindow) SetContent() {
	rightPanel := container.NewBorder(
		nil,
		w.statusBar,
		nil,
		nil,
		container.NewVSplit(
			w.requestPanel,
			w.responsePanel,
		),
	)

	mainSplit := container.NewHSplit(
		w.sidebar,
		rightPanel,
	)
	mainSplit.SetOffset(0.2)

	w.window.SetContent(mainSplit)
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}
