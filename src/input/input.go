package input

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/micmonay/keybd_event"

	"byoa-assistant/src/logutil"
)

// Keystroker captures the focused application and sends it copy/paste chords.
type Keystroker struct {
	copyDelay time.Duration
	log       *slog.Logger

	// seams for tests
	foreground func() int
	activate   func(pid int) error
	press      func(vk int) error

	once   sync.Once
	kb     keybd_event.KeyBonding
	kbErr  error
	sendMu sync.Mutex
}

// New creates a Keystroker. copyDelay is how long Copy waits for the target to fill the clipboard.
func New(copyDelay time.Duration, logger *slog.Logger) *Keystroker {
	k := &Keystroker{
		copyDelay: copyDelay,
		log:       logutil.Component(logger, "input"),
	}
	k.foreground = robotgo.GetPid
	k.activate = func(pid int) error { return robotgo.ActivePid(pid) }
	k.press = k.sendChord
	return k
}

// FocusedProcess returns the pid owning the foreground window, 0 if unknown.
func (k *Keystroker) FocusedProcess() int {
	pid := k.foreground()
	if pid < 0 {
		return 0
	}
	return pid
}

// Copy focuses pid and sends the platform copy chord.
func (k *Keystroker) Copy(pid int) error {
	if err := k.sendTo(pid, keybd_event.VK_C); err != nil {
		return fmt.Errorf("simulate copy: %w", err)
	}
	if k.copyDelay > 0 {
		time.Sleep(k.copyDelay)
	}
	return nil
}

// Paste focuses pid and sends the platform paste chord.
func (k *Keystroker) Paste(pid int) error {
	if err := k.sendTo(pid, keybd_event.VK_V); err != nil {
		return fmt.Errorf("simulate paste: %w", err)
	}
	return nil
}

func (k *Keystroker) sendTo(pid, vk int) error {
	if pid < 1 {
		return fmt.Errorf("no target process (pid %d)", pid)
	}
	if err := k.activate(pid); err != nil {
		k.log.Warn("failed to activate target", "pid", pid, "error", err)
	}
	return k.press(vk)
}

func (k *Keystroker) sendChord(vk int) error {
	k.once.Do(func() {
		k.kb, k.kbErr = keybd_event.NewKeyBonding()
		if k.kbErr == nil && runtime.GOOS == "linux" {
			// uinput needs a moment before the virtual device accepts events.
			time.Sleep(2 * time.Second)
		}
	})
	if k.kbErr != nil {
		return k.kbErr
	}

	k.sendMu.Lock()
	defer k.sendMu.Unlock()
	k.kb.Clear()
	k.kb.SetKeys(vk)
	if runtime.GOOS == "darwin" {
		k.kb.HasSuper(true)
	} else {
		k.kb.HasCTRL(true)
	}
	return k.kb.Launching()
}
