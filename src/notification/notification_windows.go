package notification

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procMessageBox = user32.NewProc("MessageBoxW")
)

const (
	mbOK          = 0x00000000
	mbIconError   = 0x00000010
	mbSystemModal = 0x00001000
)

func systemDialog(title, message string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("encode title: %w", err)
	}
	msgPtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	r, _, callErr := procMessageBox.Call(0, uintptr(unsafe.Pointer(msgPtr)), uintptr(unsafe.Pointer(titlePtr)), mbOK|mbIconError|mbSystemModal)
	if r == 0 {
		return fmt.Errorf("MessageBoxW: %w", callErr)
	}
	return nil
}
