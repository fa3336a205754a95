//go:build !windows

package desktop

import "github.com/wailsapp/wails/v3/pkg/application"

// Popups are created as panels/utility windows on these platforms; there is
// no separate taskbar style to flip.
func setSkipTaskbar(*application.WebviewWindow, bool) error { return nil }
