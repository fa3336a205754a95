package runtimeinit

import (
	"fmt"
	"io"
	"log/slog"

	"byoa-assistant/src/config"
	"byoa-assistant/src/logutil"
	"byoa-assistant/src/notification"
)

type Options struct {
	LoadOptions config.LoadOptions
	// ShowBlockingError puts configuration errors in a dialog as well as the log.
	ShowBlockingError bool
}

// Env is the configured process: settings plus the logger built from them.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	logs   io.Closer
}

// Close flushes and releases the log file.
func (e *Env) Close() error { return e.logs.Close() }

// Bootstrap loads configuration, installs the process logger and validates
// the settings.
func Bootstrap(opts Options) (*Env, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, logs := logutil.Setup(logutil.Options{
		EnableFileLogging: cfg.EnableFileLogging,
		Path:              cfg.LogPath,
		Debug:             cfg.Debug,
	})
	env := &Env{Config: cfg, Logger: logger, logs: logs}

	if err := validate(cfg); err != nil {
		if opts.ShowBlockingError {
			notification.ShowBlockingError(logger, config.AppName, fmt.Sprintf("Invalid configuration: %v", err))
		}
		_ = env.Close()
		return nil, err
	}

	logger.Info("configuration loaded",
		"debug", cfg.Debug,
		"file_logging", cfg.EnableFileLogging,
		"fetch_timeout", cfg.FetchTimeout,
		"fetch_workers", cfg.FetchWorkers,
		"copy_delay", cfg.CopyDelay,
	)
	return env, nil
}

func validate(cfg *config.Config) error {
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT_SEC must be positive")
	}
	if cfg.FetchWorkers < 1 {
		return fmt.Errorf("FETCH_WORKERS must be at least 1")
	}
	if cfg.CopyDelay < 0 {
		return fmt.Errorf("COPY_DELAY_MS must not be negative")
	}
	return nil
}
