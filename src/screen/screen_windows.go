package screen

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"byoa-assistant/src/platform"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos   = user32.NewProc("GetCursorPos")
	procMonitorFromPt  = user32.NewProc("MonitorFromPoint")
	procGetMonitorInfo = user32.NewProc("GetMonitorInfoW")
)

const monitorDefaultToNearest = 0x00000002

type point struct{ X, Y int32 }

type rect struct{ Left, Top, Right, Bottom int32 }

type monitorInfo struct {
	CbSize    uint32
	RcMonitor rect
	RcWork    rect
	DwFlags   uint32
}

func cursorPosition() (platform.Point, error) {
	var pt point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return platform.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return platform.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// workArea excludes the taskbar and docked toolbars.
func workArea(at platform.Point) (platform.Rect, error) {
	// POINT is passed by value, packed into one register on amd64/arm64.
	packed := uintptr(uint32(int32(at.X))) | uintptr(uint32(int32(at.Y)))<<32
	hmon, _, _ := procMonitorFromPt.Call(packed, monitorDefaultToNearest)
	if hmon == 0 {
		return displayAt(Displays(), at)
	}
	mi := monitorInfo{CbSize: uint32(unsafe.Sizeof(monitorInfo{}))}
	r, _, err := procGetMonitorInfo.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return platform.Rect{}, fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	return platform.Rect{
		Left:   int(mi.RcWork.Left),
		Top:    int(mi.RcWork.Top),
		Right:  int(mi.RcWork.Right),
		Bottom: int(mi.RcWork.Bottom),
	}, nil
}
