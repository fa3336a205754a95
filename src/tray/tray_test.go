package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

type fakeBackend struct {
	icon    []byte
	tooltip string
	items   []MenuItem
	shows   int
	opens   int
	removes int
}

func (f *fakeBackend) Show(icon []byte, tooltip string, items []MenuItem, sink platform.Poster) error {
	f.icon, f.tooltip, f.items = icon, tooltip, items
	f.shows++
	return nil
}

func (f *fakeBackend) OpenMenu() { f.opens++ }
func (f *fakeBackend) Remove()   { f.removes++ }

type fakeActions struct{ settings, quits int }

func (a *fakeActions) ShowSettings() { a.settings++ }
func (a *fakeActions) Quit()         { a.quits++ }

func newTestController(b *fakeBackend, a *fakeActions, iconPath string) *Controller {
	return New(Options{Backend: b, Actions: a, IconPath: iconPath, Logger: logutil.Discard()})
}

func TestInitShowsIconAndMenu(t *testing.T) {
	b := &fakeBackend{}
	c := newTestController(b, &fakeActions{}, "")

	require.NoError(t, c.Init())
	require.NoError(t, c.Init())
	assert.Equal(t, 1, b.shows)
	assert.Equal(t, Tooltip, b.tooltip)
	assert.True(t, IsPNG(b.icon))
	require.Len(t, b.items, 3)
	assert.Equal(t, "Settings", b.items[0].Label)
	assert.True(t, b.items[1].Separator)
	assert.Equal(t, "Quit", b.items[2].Label)
}

func TestOnTrigger(t *testing.T) {
	b := &fakeBackend{}
	a := &fakeActions{}
	c := newTestController(b, a, "")
	require.NoError(t, c.Init())

	assert.True(t, c.OnTrigger(platform.Event{Kind: platform.EventTrayClick}))
	assert.Equal(t, 1, b.opens)

	assert.True(t, c.OnTrigger(platform.Menu(platform.CommandSettings)))
	assert.Equal(t, 1, a.settings)

	assert.True(t, c.OnTrigger(platform.Menu(platform.CommandQuit)))
	assert.Equal(t, 1, a.quits)

	assert.False(t, c.OnTrigger(platform.Menu(platform.CommandNone)))
	assert.False(t, c.OnTrigger(platform.Hotkey(1000)))
}

func TestCleanupIdempotent(t *testing.T) {
	b := &fakeBackend{}
	c := newTestController(b, &fakeActions{}, "")
	c.Cleanup()
	assert.Equal(t, 0, b.removes)

	require.NoError(t, c.Init())
	c.Cleanup()
	c.Cleanup()
	assert.Equal(t, 1, b.removes)
	assert.False(t, c.OnTrigger(platform.Event{Kind: platform.EventTrayClick}))
}

func TestCustomIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	custom := FallbackIcon()
	custom = append(custom[:len(custom):len(custom)], 0) // distinguishable trailing byte
	require.NoError(t, os.WriteFile(path, custom, 0o644))

	b := &fakeBackend{}
	require.NoError(t, newTestController(b, &fakeActions{}, path).Init())
	assert.Equal(t, custom, b.icon)
}

func TestBadCustomIconFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an icon"), 0o644))

	b := &fakeBackend{}
	require.NoError(t, newTestController(b, &fakeActions{}, path).Init())
	assert.Equal(t, FallbackIcon(), b.icon)
}

func TestFallbackIcon(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(FallbackIcon()))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	_, _, _, centreA := img.At(8, 8).RGBA()
	_, _, _, cornerA := img.At(0, 0).RGBA()
	assert.NotZero(t, centreA, "centre is painted")
	assert.Zero(t, cornerA, "corner is transparent")
}

func TestToICO(t *testing.T) {
	p := FallbackIcon()
	ico, err := ToICO(p)
	require.NoError(t, err)

	assert.True(t, IsICO(ico))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ico[4:]), "one image")
	assert.Equal(t, uint8(16), ico[6])
	assert.Equal(t, uint8(16), ico[7])
	assert.Equal(t, uint32(len(p)), binary.LittleEndian.Uint32(ico[14:]))
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(ico[18:]))
	assert.Equal(t, p, ico[22:])

	_, err = ToICO([]byte("nope"))
	assert.Error(t, err)
}
