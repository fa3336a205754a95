package desktop

import "byoa-assistant/src/tray"

// TrayBackend returns the notification-area icon implementation.
func (r *Runtime) TrayBackend() tray.Backend { return tray.NewSystray(r.logger) }
