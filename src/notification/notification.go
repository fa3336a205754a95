// Package notification shows errors the user has to see even when no
// window is up yet.
package notification

import (
	"log/slog"

	"byoa-assistant/src/logutil"
)

// showDialog is replaced in tests.
var showDialog = systemDialog

// ShowBlockingError logs the error and shows a modal dialog, returning after
// the user dismisses it.
func ShowBlockingError(logger *slog.Logger, title, message string) {
	log := logutil.Component(logger, "notification")
	log.Error(title, "message", message)
	if err := showDialog(title, message); err != nil {
		log.Warn("failed to show dialog", "error", err)
	}
}
