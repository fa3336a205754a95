package window

import (
	"io/fs"
	"log/slog"
	"net/url"

	"byoa-assistant/src/logutil"
)

// Views resolves the page each window loads: the dev server in debug builds,
// the embedded bundle otherwise.
type Views struct {
	Debug     bool
	DevServer string
	Bundle    fs.FS
	Logger    *slog.Logger
}

const bundleIndex = "index.html"

// URL returns the view URL for workflow ("" for the main view), or "" when
// the release bundle has no index.html.
func (v Views) URL(workflow string) string {
	query := ""
	if workflow != "" {
		query = "?workflow=" + url.QueryEscape(workflow)
	}
	if v.Debug {
		return v.DevServer + query
	}

	log := logutil.Component(v.Logger, "views")
	if v.Bundle == nil {
		log.Error("no bundled resources")
		return ""
	}
	if _, err := fs.Stat(v.Bundle, bundleIndex); err != nil {
		log.Error("bundled index.html not found", "error", err)
		return ""
	}
	return "/" + bundleIndex + query
}
