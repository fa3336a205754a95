//go:build windows || darwin || linux

package hotkey

import (
	"fmt"
	"sync"

	xhotkey "golang.design/x/hotkey"

	"byoa-assistant/src/platform"
)

// System returns the OS hotkey backend (golang.design/x/hotkey).
func System() Backend {
	return &systemBackend{active: map[int]*binding{}}
}

type binding struct {
	hk   *xhotkey.Hotkey
	done chan struct{}
}

type systemBackend struct {
	mu     sync.Mutex
	active map[int]*binding
}

func (b *systemBackend) Register(chord Chord, id int, sink platform.Poster) error {
	mods, key, err := toNative(chord)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.active[id]; ok {
		return fmt.Errorf("hotkey id %d already registered", id)
	}

	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return err
	}
	bd := &binding{hk: hk, done: make(chan struct{})}
	b.active[id] = bd

	go func() {
		for {
			select {
			case <-bd.done:
				return
			case <-hk.Keydown():
				sink.Post(platform.Hotkey(id))
			}
		}
	}()
	return nil
}

func (b *systemBackend) Unregister(id int) error {
	b.mu.Lock()
	bd, ok := b.active[id]
	delete(b.active, id)
	b.mu.Unlock()
	if !ok {
		return nil
	}
	close(bd.done)
	return bd.hk.Unregister()
}

func toNative(chord Chord) ([]xhotkey.Modifier, xhotkey.Key, error) {
	var mods []xhotkey.Modifier
	for _, m := range chord.Modifiers {
		nm, ok := nativeModifiers[m]
		if !ok {
			return nil, 0, fmt.Errorf("modifier %q not supported on this platform", m)
		}
		mods = append(mods, nm)
	}
	key, ok := nativeKeys[chord.Key]
	if !ok {
		return nil, 0, fmt.Errorf("key %q not supported for global hotkeys", chord.Key)
	}
	return mods, key, nil
}

var nativeKeys = map[string]xhotkey.Key{
	"space": xhotkey.KeySpace,
	"enter": xhotkey.KeyReturn, "return": xhotkey.KeyReturn,
	"esc": xhotkey.KeyEscape, "escape": xhotkey.KeyEscape,
	"tab": xhotkey.KeyTab,
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC, "d": xhotkey.KeyD,
	"e": xhotkey.KeyE, "f": xhotkey.KeyF, "g": xhotkey.KeyG, "h": xhotkey.KeyH,
	"i": xhotkey.KeyI, "j": xhotkey.KeyJ, "k": xhotkey.KeyK, "l": xhotkey.KeyL,
	"m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO, "p": xhotkey.KeyP,
	"q": xhotkey.KeyQ, "r": xhotkey.KeyR, "s": xhotkey.KeyS, "t": xhotkey.KeyT,
	"u": xhotkey.KeyU, "v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX,
	"y": xhotkey.KeyY, "z": xhotkey.KeyZ,
	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3,
	"4": xhotkey.Key4, "5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7,
	"8": xhotkey.Key8, "9": xhotkey.Key9,
	"f1": xhotkey.KeyF1, "f2": xhotkey.KeyF2, "f3": xhotkey.KeyF3, "f4": xhotkey.KeyF4,
	"f5": xhotkey.KeyF5, "f6": xhotkey.KeyF6, "f7": xhotkey.KeyF7, "f8": xhotkey.KeyF8,
	"f9": xhotkey.KeyF9, "f10": xhotkey.KeyF10, "f11": xhotkey.KeyF11, "f12": xhotkey.KeyF12,
}
