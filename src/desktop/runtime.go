// Package desktop adapts the Wails runtime to the platform capability
// interfaces used by the rest of the app.
package desktop

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"

	"github.com/wailsapp/wails/v3/pkg/application"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
	"byoa-assistant/src/webview"
)

type Options struct {
	Name        string
	Description string
	// UniqueID enables single-instance mode when set.
	UniqueID string
	Debug    bool
	Assets   fs.FS
	Bridge   *webview.Bridge
	// Sink receives EventSecondInstance.
	Sink   platform.Poster
	Logger *slog.Logger
}

// Runtime owns the Wails application. There is one per process.
type Runtime struct {
	app      *application.App
	debug    bool
	logger   *slog.Logger
	log      *slog.Logger
	quitting atomic.Bool
}

// New creates the application. Windows and tray may be added until Run.
func New(opts Options) (rt *Runtime, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("create application: %v", r)
		}
	}()

	rt = &Runtime{debug: opts.Debug, logger: opts.Logger, log: logutil.Component(opts.Logger, "desktop")}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	appOpts := application.Options{
		Name:        opts.Name,
		Description: opts.Description,
		Logger:      opts.Logger,
		LogLevel:    level,
		Mac: application.MacOptions{
			// the tray keeps the app alive
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		Windows: application.WindowsOptions{
			DisableQuitOnLastWindowClosed: true,
		},
		Linux: application.LinuxOptions{
			DisableQuitOnLastWindowClosed: true,
		},
	}
	if opts.Assets != nil {
		appOpts.Assets = application.AssetOptions{Handler: application.AssetFileServerFS(opts.Assets)}
	}
	if opts.Bridge != nil {
		appOpts.Services = []application.Service{application.NewService(opts.Bridge)}
	}
	if opts.UniqueID != "" {
		sink := opts.Sink
		appOpts.SingleInstance = &application.SingleInstanceOptions{
			UniqueID: opts.UniqueID,
			OnSecondInstanceLaunch: func(data application.SecondInstanceData) {
				rt.log.Info("second instance launched", "args", data.Args)
				if sink != nil {
					sink.Post(platform.Event{Kind: platform.EventSecondInstance})
				}
			},
		}
	}

	rt.app = application.New(appOpts)
	if rt.app == nil {
		return nil, fmt.Errorf("create application: no app returned")
	}
	return rt, nil
}

// NewWindow creates a hidden native window with an empty webview.
func (r *Runtime) NewWindow(name string, skipTaskbar bool) platform.NativeWindow {
	w := r.app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:            name,
		Hidden:          true,
		DevToolsEnabled: r.debug,
		Windows: application.WindowsWindow{
			HiddenOnTaskbar: skipTaskbar,
		},
	})
	return newNativeWindow(w, &r.quitting, r.log.With("window", name))
}

// Run blocks until the application quits.
func (r *Runtime) Run() error {
	if err := r.app.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// Quit asks the run loop to finish. Close hooks stop blocking from here on.
func (r *Runtime) Quit() {
	if r.quitting.Swap(true) {
		return
	}
	r.log.Info("quitting")
	r.app.Quit()
}
