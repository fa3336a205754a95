package app

import (
	"sync"

	"byoa-assistant/src/hotkey"
	"byoa-assistant/src/platform"
	"byoa-assistant/src/tray"
)

type fakeRuntime struct {
	mu      sync.Mutex
	windows map[string]*fakeNative
	nextID  uint
	tray    *fakeTray
	sink    platform.Poster

	running  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		windows: map[string]*fakeNative{},
		tray:    &fakeTray{},
		running: make(chan struct{}),
		quit:    make(chan struct{}),
	}
}

func (r *fakeRuntime) NewWindow(name string, skipTaskbar bool) platform.NativeWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	w := &fakeNative{id: r.nextID}
	r.windows[name] = w
	return w
}

func (r *fakeRuntime) window(name string) *fakeNative {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.windows[name]
}

func (r *fakeRuntime) TrayBackend() tray.Backend { return r.tray }

func (r *fakeRuntime) Run() error {
	close(r.running)
	<-r.quit
	return nil
}

func (r *fakeRuntime) Quit() { r.quitOnce.Do(func() { close(r.quit) }) }

type fakeNative struct {
	mu      sync.Mutex
	id      uint
	size    platform.Size
	pos     platform.Point
	shown   bool
	closed  bool
	url     string
	onClose func() bool
	onFocus func(bool)
}

func (f *fakeNative) ID() uint                            { return f.id }
func (f *fakeNative) SetTitle(string)                     {}
func (f *fakeNative) SetDecoration(platform.Decoration)   {}
func (f *fakeNative) SetBackground(platform.Color)        {}
func (f *fakeNative) SetSkipTaskbar(bool)                 {}
func (f *fakeNative) Focus()                              {}
func (f *fakeNative) ExecJS(string) error                 { return nil }
func (f *fakeNative) OnClose(fn func() bool)              { f.onClose = fn }
func (f *fakeNative) OnFocusChange(fn func(focused bool)) { f.onFocus = fn }

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

func (f *fakeNative) position() platform.Point {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos
}

func (f *fakeNative) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = true
}

func (f *fakeNative) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = false
}

func (f *fakeNative) isShown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shown
}

func (f *fakeNative) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeNative) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeNative) SetURL(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.url = url
}

func (f *fakeNative) loadedURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url
}

type fakeTray struct {
	mu      sync.Mutex
	sink    platform.Poster
	removed bool
}

func (t *fakeTray) Show(icon []byte, tooltip string, items []tray.MenuItem, sink platform.Poster) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sink = sink
	return nil
}

func (t *fakeTray) OpenMenu() {}

func (t *fakeTray) Remove() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removed = true
}

func (t *fakeTray) post(ev platform.Event) bool {
	t.mu.Lock()
	sink := t.sink
	t.mu.Unlock()
	return sink != nil && sink.Post(ev)
}

func (t *fakeTray) isRemoved() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removed
}

type fakeHotkeys struct {
	mu         sync.Mutex
	sink       platform.Poster
	registered bool
}

func (h *fakeHotkeys) Register(chord hotkey.Chord, id int, sink platform.Poster) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink, h.registered = sink, true
	return nil
}

func (h *fakeHotkeys) Unregister(id int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.registered = false
	return nil
}

func (h *fakeHotkeys) isRegistered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registered
}

func (h *fakeHotkeys) press() bool {
	h.mu.Lock()
	sink := h.sink
	h.mu.Unlock()
	return sink != nil && sink.Post(platform.Hotkey(hotkey.ShortcutID))
}

// fakeKeys stands in for the focused app: Copy puts copyText on the clipboard.
type fakeKeys struct {
	mu       sync.Mutex
	pid      int
	copyText string
	write    func(string)
	copies   []int
	pastes   []int
}

func (k *fakeKeys) FocusedProcess() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pid
}

func (k *fakeKeys) Copy(pid int) error {
	k.mu.Lock()
	k.copies = append(k.copies, pid)
	text, write := k.copyText, k.write
	k.mu.Unlock()
	if text != "" && write != nil {
		write(text)
	}
	return nil
}

func (k *fakeKeys) Paste(pid int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pastes = append(k.pastes, pid)
	return nil
}

func (k *fakeKeys) copyCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.copies)
}

type fakePointer struct {
	mu     sync.Mutex
	cursor platform.Point
}

func (p *fakePointer) set(pt platform.Point) {
	p.mu.Lock()
	p.cursor = pt
	p.mu.Unlock()
}

func (p *fakePointer) CursorPosition() (platform.Point, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor, nil
}

func (p *fakePointer) WorkArea(platform.Point) (platform.Rect, error) {
	return platform.Rect{Left: 0, Top: 0, Right: 4000, Bottom: 3000}, nil
}
