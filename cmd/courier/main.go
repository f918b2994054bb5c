package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	courierApp "github.com/shhac/courier/internal/app"
	"github.com/shhac/courier/internal/logging"
	"github.com/shhac/courier/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Bootstrap logger until the file logger is up
	tempLogger := logging.NewBootstrapLogger(os.Stdout)

	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting Courier HTTP client", slog.String("version", ui.Version))

	cfg := courierApp.ConfigFromEnv()

	fyneApp := app.NewWithID("com.courier.client")
	ui.LoadThemePreference(fyneApp, cfg.Theme)

	courier, err := courierApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	mainWindow := ui.NewMainWindow(
		courier.FyneApp(),
		courier, // Pass the app as the controller
	)

	// Run the application (blocking)
	courier.Run(mainWindow.Window())

	courier.Logger().Info("application shutdown complete")
	return nil
}
