package window

import (
	"errors"
	"sync"
	"testing/fstest"

	"byoa-assistant/src/platform"
)

type fakeNative struct {
	mu         sync.Mutex
	id         uint
	title      string
	size       platform.Size
	pos        platform.Point
	shown      bool
	shows      int
	hides      int
	focuses    int
	closed     bool
	decoration platform.Decoration
	background platform.Color
	skipTask   bool
	url        string
	scripts    []string
	onClose    func() bool
	onFocus    func(bool)
}

func newFakeNative(id uint) *fakeNative { return &fakeNative{id: id} }

func (f *fakeNative) ID() uint { return f.id }

func (f *fakeNative) SetTitle(title string) { f.mu.Lock(); f.title = title; f.mu.Unlock() }

func (f *fakeNative) SetSize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.size = platform.Size{Width: w, Height: h}
}

func (f *fakeNative) Size() platform.Size {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size
}

func (f *fakeNative) SetPosition(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = platform.Point{X: x, Y: y}
}

func (f *fakeNative) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = true
	f.shows++
}

func (f *fakeNative) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = false
	f.hides++
}

func (f *fakeNative) Focus() { f.mu.Lock(); f.focuses++; f.mu.Unlock() }

func (f *fakeNative) Close() { f.mu.Lock(); f.closed = true; f.mu.Unlock() }

func (f *fakeNative) SetDecoration(d platform.Decoration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decoration = d
}

func (f *fakeNative) SetBackground(c platform.Color) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.background = c
}

func (f *fakeNative) SetSkipTaskbar(skip bool) { f.mu.Lock(); f.skipTask = skip; f.mu.Unlock() }

func (f *fakeNative) OnClose(fn func() bool) { f.onClose = fn }

func (f *fakeNative) OnFocusChange(fn func(bool)) { f.onFocus = fn }

func (f *fakeNative) SetURL(url string) { f.mu.Lock(); f.url = url; f.mu.Unlock() }

func (f *fakeNative) ExecJS(js string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts = append(f.scripts, js)
	return nil
}

// userClose simulates the user clicking the close button; true means the close was blocked.
func (f *fakeNative) userClose() bool { return f.onClose() }

func (f *fakeNative) focus(v bool) { f.onFocus(v) }

type fakePointer struct {
	cursor  platform.Point
	area    platform.Rect
	areaErr error
}

func (p fakePointer) CursorPosition() (platform.Point, error) { return p.cursor, nil }

func (p fakePointer) WorkArea(platform.Point) (platform.Rect, error) {
	if p.areaErr != nil {
		return platform.Rect{}, p.areaErr
	}
	return p.area, nil
}

type fakeHook struct {
	mu     sync.Mutex
	owners map[uint]bool
}

func newFakeHook() *fakeHook { return &fakeHook{owners: map[uint]bool{}} }

func (h *fakeHook) Install(owner uint)   { h.mu.Lock(); h.owners[owner] = true; h.mu.Unlock() }
func (h *fakeHook) Uninstall(owner uint) { h.mu.Lock(); delete(h.owners, owner); h.mu.Unlock() }

func (h *fakeHook) installed(owner uint) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.owners[owner]
}

var errNoMonitor = errors.New("no monitor")

var bundleWithIndex = fstest.MapFS{"index.html": &fstest.MapFile{Data: []byte("<html></html>")}}
