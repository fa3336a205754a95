//go:build !windows

package main

import (
	"log/slog"

	"byoa-assistant/src/screen"
)

func enableDPIAwareness() {}

func logMonitorConfiguration(logger *slog.Logger) {
	displays := screen.Displays()
	for i, d := range displays {
		logger.Info("monitor configuration", "display", i, "bounds", d)
	}
}
