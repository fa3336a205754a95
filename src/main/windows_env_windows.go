//go:build windows

package main

import (
	"log/slog"
	"syscall"
)

// enableDPIAwareness sets per-monitor DPI awareness so popup placement and the
// cursor position agree in physical pixels.
func enableDPIAwareness() {
	shcore := syscall.NewLazyDLL("Shcore.dll")
	setProcessDpiAwareness := shcore.NewProc("SetProcessDpiAwareness")
	const processPerMonitorDPIAware = 2
	if err := setProcessDpiAwareness.Find(); err == nil {
		_, _, _ = setProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
		return
	}

	// Fallback: user32.SetProcessDPIAware (Vista+)
	user32 := syscall.NewLazyDLL("user32.dll")
	setProcessDPIAware := user32.NewProc("SetProcessDPIAware")
	if err := setProcessDPIAware.Find(); err == nil {
		_, _, _ = setProcessDPIAware.Call()
	}
}

func logMonitorConfiguration(logger *slog.Logger) {
	user32 := syscall.NewLazyDLL("user32.dll")
	getSystemMetrics := user32.NewProc("GetSystemMetrics")

	const (
		smCXScreen        = 0
		smCYScreen        = 1
		smXVirtualScreen  = 76
		smYVirtualScreen  = 77
		smCXVirtualScreen = 78
		smCYVirtualScreen = 79
		smCMonitors       = 80
	)
	metric := func(i int) int {
		ret, _, _ := getSystemMetrics.Call(uintptr(i))
		return int(int32(ret))
	}

	logger.Info("monitor configuration",
		"monitors", metric(smCMonitors),
		"virtual_x", metric(smXVirtualScreen),
		"virtual_y", metric(smYVirtualScreen),
		"virtual_w", metric(smCXVirtualScreen),
		"virtual_h", metric(smCYVirtualScreen),
		"primary_w", metric(smCXScreen),
		"primary_h", metric(smCYScreen),
	)
}
