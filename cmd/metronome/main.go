package main

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"metronome/internal/config"
	"metronome/internal/controllers"
	"metronome/internal/i18n"
	"metronome/internal/logger"
	"metronome/internal/metronome"
	"metronome/internal/shutdown"
	"metronome/internal/subscription"
	"metronome/internal/views"
)

const (
	AppName    = "Metronome"
	AppID      = "com.metronome.desktop"
	AppVersion = "1.0.0"
)

// Application bundles the wired components for lifecycle management.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     *logger.ZerologAdapter
	controller *controllers.MainController
	view       *views.MainView
	watcher    *config.Watcher
	manager    *shutdown.Manager
}

func main() {
	appLogger := logger.NewConsoleLogger(logger.LevelFromEnv())

	application, err := NewApplication(appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		os.Exit(1)
	}

	application.Run()

	appLogger.Info("Main", "application terminated", nil)
}

// NewApplication wires logger, config, localization, state, controller
// and view together.
func NewApplication(appLogger *logger.ZerologAdapter) (*Application, error) {
	manager := shutdown.NewManager(appLogger)

	cfg := loadConfig(appLogger)
	applyConfigLogLevel(appLogger, cfg)

	translator, err := i18n.New(appLogger)
	if err != nil {
		return nil, err
	}

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	state := metronome.NewState()
	controller := controllers.NewMainController(state, cfg, appLogger)
	controller.SetLogLevelController(appLogger)

	view := views.NewMainView(window, translator, AppVersion)
	view.SetIntentHandler(controller.HandleIntent)
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		watcher:    newConfigWatcher(appLogger),
		manager:    manager,
	}

	manager.Register("controller", controller)

	appLogger.Info("Main", "application initialized", map[string]interface{}{
		"version":      AppVersion,
		"window_size":  cfg.Window,
		"config_watch": application.watcher != nil,
	})

	return application, nil
}

// Run starts the background work and the blocking Fyne event loop.
func (a *Application) Run() {
	ctx := a.manager.Context()

	if a.watcher != nil {
		go a.watcher.Run(ctx)
		go a.controller.WatchConfig(ctx, a.watcher.Updates())
	}
	go a.controller.WatchSubscription(ctx, subscription.Run(ctx))

	a.manager.Listen()

	// A signal-triggered shutdown must also stop the UI loop.
	go func() {
		<-a.manager.Done()
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}()

	a.window.SetOnClosed(func() {
		a.logger.Info("Main", "window closed", nil)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.manager.Shutdown()
}

// loadConfig reads the config file if one exists. Any failure falls back
// to defaults; the user never sees config errors.
func loadConfig(appLogger logger.Logger) config.Config {
	path, err := config.Path(AppID)
	if err != nil {
		appLogger.Warning("Main", "config path unavailable, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.Default()
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		appLogger.Warning("Main", "config not loaded, using defaults", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return config.Default()
	}

	appLogger.Info("Main", "config loaded", map[string]interface{}{
		"path": path,
	})
	return cfg
}

// applyConfigLogLevel lets the config file set verbosity unless the
// environment already pinned it.
func applyConfigLogLevel(appLogger *logger.ZerologAdapter, cfg config.Config) {
	if os.Getenv("LOG_LEVEL") != "" || os.Getenv("DEBUG") == "1" {
		return
	}
	appLogger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
}

// newConfigWatcher sets up the file watcher, creating the config
// directory first so the watch has something to attach to. Returns nil
// when watching is not possible; the app runs fine without it.
func newConfigWatcher(appLogger logger.Logger) *config.Watcher {
	path, err := config.Path(AppID)
	if err != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		appLogger.Warning("Main", "config watch disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	watcher, err := config.NewWatcher(path, appLogger)
	if err != nil {
		appLogger.Warning("Main", "config watch disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return watcher
}
