package window

import (
	"testing"
	"testing/fstest"

	"byoa-assistant/src/logutil"
)

func TestViewsURL(t *testing.T) {
	tests := []struct {
		name     string
		views    Views
		workflow string
		want     string
	}{
		{"debug main", Views{Debug: true, DevServer: "http://localhost:3000"}, "", "http://localhost:3000"},
		{"debug popup", Views{Debug: true, DevServer: "http://localhost:3000"}, "assistant", "http://localhost:3000?workflow=assistant"},
		{"release main", Views{Bundle: bundleWithIndex}, "", "/index.html"},
		{"release popup", Views{Bundle: bundleWithIndex}, "assistant", "/index.html?workflow=assistant"},
		{"release missing index", Views{Bundle: fstest.MapFS{"app.js": &fstest.MapFile{}}}, "assistant", ""},
		{"release no bundle", Views{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.views.Logger = logutil.Discard()
			if got := tt.views.URL(tt.workflow); got != tt.want {
				t.Errorf("URL(%q) = %q, expected %q", tt.workflow, got, tt.want)
			}
		})
	}
}
