package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"byoa-assistant/src/clipboard"
	"byoa-assistant/src/config"
	"byoa-assistant/src/eventloop"
	"byoa-assistant/src/hotkey"
	"byoa-assistant/src/logutil"
	"byoa-assistant/src/network"
	"byoa-assistant/src/platform"
	"byoa-assistant/src/tray"
	"byoa-assistant/src/vault"
	"byoa-assistant/src/webview"
	"byoa-assistant/src/window"
)

// AssistantWorkflow is the view the popup loads.
const AssistantWorkflow = "assistant"

// Runtime is the native application: windows, tray and the UI run loop.
type Runtime interface {
	NewWindow(name string, skipTaskbar bool) platform.NativeWindow
	TrayBackend() tray.Backend
	Run() error
	Quit()
}

// Keystroker captures the focused application and drives copy/paste in it.
type Keystroker interface {
	FocusedProcess() int
	Copy(pid int) error
	Paste(pid int) error
}

// Deps are the OS-facing pieces, injected so the controller can run against fakes.
type Deps struct {
	// NewRuntime creates the native application. Its failure is fatal.
	NewRuntime func(bridge *webview.Bridge, sink platform.Poster) (Runtime, error)
	// NewEscapeHook creates the key hook feeding Escape presses into sink.
	NewEscapeHook func(sink platform.Poster) window.EscapeHook
	Clipboard     clipboard.Backend
	Hotkeys       hotkey.Backend
	Pointer       platform.Pointer
	Keys          Keystroker
	Vault         *vault.Vault
	Bundle        fs.FS
}

// Controller owns both windows, the tray, the hotkey and the run loop.
type Controller struct {
	cfg    *config.Config
	deps   Deps
	logger *slog.Logger
	log    *slog.Logger

	loop      *eventloop.Loop
	table     *webview.Table
	bridge    *webview.Bridge
	clipboard *clipboard.Clipboard
	vault     *vault.Vault
	fetcher   *network.Fetcher
	registry  *window.Registry
	shortcut  *hotkey.Shortcut

	mu        sync.Mutex
	runtime   Runtime
	tray      *tray.Controller
	main      *window.Wrapper
	assistant *window.Wrapper
	targetPID int

	initOnce sync.Once
	stopOnce sync.Once
}

func New(cfg *config.Config, deps Deps, logger *slog.Logger) *Controller {
	return &Controller{cfg: cfg, deps: deps, logger: logger, log: logutil.Component(logger, "app")}
}

// Init does the process-wide setup: clipboard, message sink and native services.
func (c *Controller) Init() {
	c.initOnce.Do(func() {
		logger := c.logger
		c.log.Info("init")

		c.clipboard = clipboard.New(c.deps.Clipboard, logger)
		if err := c.clipboard.Init(); err != nil {
			c.log.Error("clipboard disabled", "error", err)
		}

		c.loop = eventloop.New(64, logger)
		c.table = webview.NewTable()
		c.bridge = webview.NewBridge(c.table, logger)
		c.registry = window.NewRegistry(logger)

		c.vault = c.deps.Vault
		if c.vault == nil {
			c.vault = vault.New(vault.DefaultService, logger)
		}
		c.fetcher = network.New(network.Options{
			Timeout: c.cfg.FetchTimeout,
			Workers: c.cfg.FetchWorkers,
			Logger:  logger,
		})

		chord, err := hotkey.ParseChord(hotkey.DefaultChord)
		if err != nil {
			panic(err) // DefaultChord is a constant
		}
		c.shortcut = hotkey.NewShortcut(c.deps.Hotkeys, c.loop, chord, logger)
	})
}

// Start builds the windows, tray and hotkey, shows the main window and blocks
// until the run loop finishes or ctx is cancelled.
func (c *Controller) Start(ctx context.Context) error {
	c.Init()
	c.log.Info("start")

	rt, err := c.deps.NewRuntime(c.bridge, c.loop)
	if err != nil {
		return fmt.Errorf("create run loop: %w", err)
	}

	var hook window.EscapeHook
	if c.deps.NewEscapeHook != nil {
		hook = c.deps.NewEscapeHook(c.loop)
	}
	bindings := webview.Bindings(webview.Services{
		Clipboard: c.clipboard,
		Vault:     c.vault,
		Fetcher:   c.fetcher,
		Paste:     c.PasteContent,
	})
	views := window.Views{
		Debug:     c.cfg.Debug,
		DevServer: config.DevServerURL,
		Bundle:    c.deps.Bundle,
		Logger:    c.logger,
	}
	opts := func(kind window.Kind, url string) window.Options {
		return window.Options{
			Kind:     kind,
			Debug:    c.cfg.Debug,
			URL:      url,
			Pointer:  c.deps.Pointer,
			Hook:     hook,
			Registry: c.registry,
			Binder:   c.table,
			Bindings: bindings,
			Logger:   c.logger,
		}
	}
	mainWin := window.New(rt.NewWindow("main", false), opts(window.Main, views.URL("")))
	assistant := window.New(rt.NewWindow(AssistantWorkflow, true), opts(window.Popup, views.URL(AssistantWorkflow)))

	trayCtl := tray.New(tray.Options{
		Backend:  rt.TrayBackend(),
		Sink:     c.loop,
		Actions:  trayActions{c},
		IconPath: c.cfg.TrayIconPath,
		Logger:   c.logger,
	})

	c.mu.Lock()
	c.runtime, c.main, c.assistant, c.tray = rt, mainWin, assistant, trayCtl
	c.mu.Unlock()

	if err := trayCtl.Init(); err != nil {
		c.log.Error("tray unavailable", "error", err)
	}
	if !c.shortcut.RegisterHandler(c.onHotkey) {
		c.log.Warn("global shortcut unavailable", "chord", hotkey.DefaultChord)
	}
	c.loop.Use(c.shortcut, trayCtl, c.registry, eventloop.DispatcherFunc(c.onSecondInstance))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return c.loop.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		c.Stop()
		return nil
	})

	mainWin.Show()
	runErr := rt.Run()
	c.log.Info("run loop finished")

	cancel()
	c.Stop()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		c.log.Error("event loop failed", "error", err)
	}
	return runErr
}

// Stop tears down the message sink, releases both windows and quits the
// run loop. Safe to call more than once and from any goroutine.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.log.Info("stop")

		if c.shortcut != nil {
			c.shortcut.UnregisterHandler()
		}
		if c.loop != nil {
			c.loop.Stop()
		}

		c.mu.Lock()
		rt, mainWin, assistant, trayCtl := c.runtime, c.main, c.assistant, c.tray
		c.main, c.assistant = nil, nil
		c.mu.Unlock()

		if trayCtl != nil {
			trayCtl.Cleanup()
		}
		if assistant != nil {
			assistant.Release()
		}
		if mainWin != nil {
			mainWin.Release()
		}
		if rt != nil {
			rt.Quit()
		}
		// Quit first: Close still waits for workers to unwind.
		if c.fetcher != nil {
			c.fetcher.Close()
		}
	})
}

// MainWindow returns the main window, nil before Start or after Stop.
func (c *Controller) MainWindow() *window.Wrapper {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.main
}

// AssistantWindow returns the popup window, nil before Start or after Stop.
func (c *Controller) AssistantWindow() *window.Wrapper {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.assistant
}

func (c *Controller) onSecondInstance(ev platform.Event) bool {
	if ev.Kind != platform.EventSecondInstance {
		return false
	}
	if w := c.MainWindow(); w != nil {
		w.Show()
	}
	return true
}

type trayActions struct{ c *Controller }

func (a trayActions) ShowSettings() {
	if w := a.c.MainWindow(); w != nil {
		w.Show()
	}
}

func (a trayActions) Quit() { a.c.Stop() }
