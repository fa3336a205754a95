package clipboard

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/clipboard"

	"byoa-assistant/src/logutil"
)

// Backend is the OS clipboard.
type Backend interface {
	Init() error
	ReadText() []byte
	ReadImage() []byte
	WriteText(b []byte)
	WriteImage(png []byte)
}

// System returns the golang.design/x/clipboard backend.
func System() Backend { return systemBackend{} }

type systemBackend struct{}

func (systemBackend) Init() error           { return clipboard.Init() }
func (systemBackend) ReadText() []byte      { return clipboard.Read(clipboard.FmtText) }
func (systemBackend) ReadImage() []byte     { return clipboard.Read(clipboard.FmtImage) }
func (systemBackend) WriteText(b []byte)    { clipboard.Write(clipboard.FmtText, b) }
func (systemBackend) WriteImage(png []byte) { clipboard.Write(clipboard.FmtImage, png) }

// Memory is an in-process Backend, used when no OS clipboard is wanted.
type Memory struct {
	mu      sync.Mutex
	InitErr error
	text    []byte
	image   []byte
}

func (m *Memory) Init() error { return m.InitErr }

func (m *Memory) ReadText() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.text...)
}

func (m *Memory) ReadImage() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.image...)
}

func (m *Memory) WriteText(b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = append([]byte(nil), b...)
	m.image = nil
}

func (m *Memory) WriteImage(png []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.image = append([]byte(nil), png...)
	m.text = nil
}

// Clipboard guards access to the process clipboard. Operations on an
// unavailable clipboard fail softly: false/empty plus a log line.
type Clipboard struct {
	backend Backend
	log     *slog.Logger

	mu    sync.Mutex
	ready bool
}

func New(backend Backend, logger *slog.Logger) *Clipboard {
	if backend == nil {
		backend = System()
	}
	return &Clipboard{backend: backend, log: logutil.Component(logger, "clipboard")}
}

// Init opens the OS clipboard. Safe to call more than once.
func (c *Clipboard) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := c.backend.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	c.ready = true
	return nil
}

func (c *Clipboard) available(op string) bool {
	if c.ready {
		return true
	}
	c.log.Error("clipboard not initialized", "op", op)
	return false
}

// ReadText returns the clipboard text, or "" when absent or unavailable.
func (c *Clipboard) ReadText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available("read") {
		return ""
	}
	return string(c.backend.ReadText())
}

// WriteText performs a mutex-guarded clipboard write.
func (c *Clipboard) WriteText(text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available("write") {
		return false
	}
	c.backend.WriteText([]byte(text))
	return true
}

// WriteImage places PNG data on the clipboard.
func (c *Clipboard) WriteImage(png []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available("write image") {
		return false
	}
	if len(png) == 0 {
		c.log.Warn("refusing to write empty image")
		return false
	}
	c.backend.WriteImage(png)
	return true
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.available("clear") {
		return false
	}
	c.backend.WriteText([]byte{})
	return true
}

// HasString reports whether the clipboard holds text.
func (c *Clipboard) HasString() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available("query") && len(c.backend.ReadText()) > 0
}

// HasImage reports whether the clipboard holds an image.
func (c *Clipboard) HasImage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available("query") && len(c.backend.ReadImage()) > 0
}
