package desktop

import (
	"fmt"

	"github.com/wailsapp/wails/v3/pkg/application"
	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
)

var gwlExStyle int32 = -20

func setSkipTaskbar(w *application.WebviewWindow, skip bool) error {
	hwnd, err := w.NativeWindowHandle()
	if err != nil {
		return fmt.Errorf("window handle: %w", err)
	}
	style, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle))
	procSetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle), taskbarStyle(style, skip))
	return nil
}
