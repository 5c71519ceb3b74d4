package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"bladder-monitor/internal/config"
	"bladder-monitor/internal/controllers"
	"bladder-monitor/internal/imaging"
	"bladder-monitor/internal/imaging/opencv"
	"bladder-monitor/internal/logger"
	"bladder-monitor/internal/shutdown"
	"bladder-monitor/internal/state"
	"bladder-monitor/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Bladder App"
	AppID      = "com.bladdermonitor.app"
	AppVersion = "1.0.0"
)

// Application wires the monitor's components together
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication creates the Fyne app and wires reader, loader, controller and view
func NewApplication(cfg config.Config) (*Application, error) {
	logLevel := determineLogLevel(cfg)
	appLogger := logger.New(logLevel, cfg.JSONLogs)

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(views.WindowTitle)
	window.SetMaster()

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"state_file": cfg.StateFile,
		"assets_dir": cfg.AssetsDir,
		"scaler":     cfg.Scaler,
		"log_level":  logLevel.String(),
	})

	loader, err := newImageLoader(cfg.Scaler, appLogger)
	if err != nil {
		return nil, err
	}

	reader := state.NewReader(cfg.StateFile, appLogger)
	controller := controllers.NewMainController(reader, loader, controllers.Settings{
		AssetPath:   cfg.AssetPath,
		ImageWidth:  cfg.ImageWidth,
		ImageHeight: cfg.ImageHeight,
	}, appLogger)

	view := views.NewMainView(window)
	view.SetMeasureHandler(func() { controller.Measure() })
	controller.SetMainView(view)

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register(shutdown.Func(func() {
		appLogger.Info("Application", "shutdown complete", nil)
	}))
	shutdownMgr.Register(controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: controller,
		view:       view,
		shutdown:   shutdownMgr,
	}

	application.setupWindowEvents()

	appLogger.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks in the Fyne event loop
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()
	a.shutdown.Shutdown()
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

func newImageLoader(scaler string, appLogger logger.Logger) (imaging.Loader, error) {
	switch scaler {
	case config.ScalerNative, "":
		return imaging.NewNativeLoader(appLogger), nil
	case config.ScalerOpenCV:
		return opencv.NewLoader(appLogger), nil
	default:
		return nil, fmt.Errorf("unknown scaler %q", scaler)
	}
}

// determineLogLevel lets LOG_LEVEL and DEBUG override the configured level
func determineLogLevel(cfg config.Config) logger.LogLevel {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return logger.ParseLevel(level)
	}
	if os.Getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.ParseLevel(cfg.LogLevel)
}
