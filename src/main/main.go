package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"byoa-assistant/src/app"
	"byoa-assistant/src/assets"
	"byoa-assistant/src/clipboard"
	"byoa-assistant/src/config"
	"byoa-assistant/src/desktop"
	"byoa-assistant/src/hotkey"
	"byoa-assistant/src/input"
	"byoa-assistant/src/keyhook"
	"byoa-assistant/src/notification"
	"byoa-assistant/src/platform"
	"byoa-assistant/src/runtimeinit"
	"byoa-assistant/src/screen"
	"byoa-assistant/src/webview"
	"byoa-assistant/src/window"
)

type mainOptions struct {
	debug   bool
	envPath string
}

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	if err := runWithArgs(normalizeLegacyArgs(os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWithArgs(args []string) error {
	if len(args) == 0 {
		args = []string{"byoa-assistant"}
	}

	opts := &mainOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "byoa-assistant",
		Short:         "Desktop shell for web-based AI assistants",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), *opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Load the UI from the dev server and enable dev tools")
	cmd.Flags().StringVar(&opts.envPath, "env", "", "Path to a .env file (highest precedence)")

	return cmd
}

// normalizeLegacyArgs maps Go-style single-dash long flags to --flag.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		switch {
		case arg == "-debug":
			normalized[i] = "--debug"
		case strings.HasPrefix(arg, "-debug="):
			normalized[i] = "--debug=" + arg[len("-debug="):]
		case arg == "-env":
			normalized[i] = "--env"
		case strings.HasPrefix(arg, "-env="):
			normalized[i] = "--env=" + arg[len("-env="):]
		}
	}

	return normalized
}

func runApp(ctx context.Context, opts mainOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions:       config.LoadOptions{DebugOverride: opts.debug, EnvPath: opts.envPath},
		ShowBlockingError: true,
	})
	if err != nil {
		return err
	}
	defer env.Close()

	cfg, logger := env.Config, env.Logger
	logger.Info("starting", "app", config.AppName, "debug", cfg.Debug)
	logMonitorConfiguration(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	controller := app.New(cfg, newDeps(cfg, logger), logger)
	controller.Init()
	if err := controller.Start(ctx); err != nil {
		notification.ShowBlockingError(logger, config.AppName, fmt.Sprintf("The application could not start: %v", err))
		return err
	}
	logger.Info("exited")
	return nil
}

func newDeps(cfg *config.Config, logger *slog.Logger) app.Deps {
	bundle := assets.Bundle()
	return app.Deps{
		NewRuntime: func(bridge *webview.Bridge, sink platform.Poster) (app.Runtime, error) {
			rt, err := desktop.New(desktop.Options{
				Name:        config.AppName,
				Description: "Desktop shell for web-based AI assistants",
				UniqueID:    config.AppID,
				Debug:       cfg.Debug,
				Assets:      bundle,
				Bridge:      bridge,
				Sink:        sink,
				Logger:      logger,
			})
			if err != nil {
				return nil, err
			}
			return rt, nil
		},
		NewEscapeHook: func(sink platform.Poster) window.EscapeHook {
			return keyhook.New(sink, logger)
		},
		Clipboard: clipboard.System(),
		Hotkeys:   hotkey.System(),
		Pointer:   screen.New(logger),
		Keys:      input.New(cfg.CopyDelay, logger),
		Bundle:    bundle,
	}
}
