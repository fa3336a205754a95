//go:build !windows

package desktop

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"

	"byoa-assistant/src/platform"
	"byoa-assistant/src/tray"
)

// TrayBackend returns the menubar/status-area icon implementation.
func (r *Runtime) TrayBackend() tray.Backend { return &wailsTray{app: r.app, log: r.log} }

type wailsTray struct {
	app *application.App
	log *slog.Logger

	mu   sync.Mutex
	tray *application.SystemTray
}

func (t *wailsTray) Show(icon []byte, tooltip string, items []tray.MenuItem, sink platform.Poster) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tray != nil {
		return fmt.Errorf("tray already shown")
	}

	menu := t.app.NewMenu()
	for _, it := range items {
		if it.Separator {
			menu.AddSeparator()
			continue
		}
		cmd := it.Command
		menu.Add(it.Label).OnClick(func(*application.Context) {
			sink.Post(platform.Menu(cmd))
		})
	}

	st := t.app.SystemTray.New()
	st.SetIcon(icon)
	st.SetTooltip(tooltip)
	st.SetMenu(menu)
	st.OnClick(func() { sink.Post(platform.Event{Kind: platform.EventTrayClick}) })
	st.OnRightClick(func() { sink.Post(platform.Event{Kind: platform.EventTrayClick}) })
	t.tray = st
	return nil
}

func (t *wailsTray) OpenMenu() {
	t.mu.Lock()
	st := t.tray
	t.mu.Unlock()
	if st != nil {
		st.OpenMenu()
	}
}

func (t *wailsTray) Remove() {
	t.mu.Lock()
	st := t.tray
	t.tray = nil
	t.mu.Unlock()
	if st != nil {
		st.Destroy()
	}
}
