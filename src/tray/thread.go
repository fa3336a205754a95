package tray

import "runtime"

// runLocked runs fn pinned to one OS thread. Message pumps that create their
// window on the calling thread only see messages posted to that thread.
func runLocked(fn func()) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	fn()
}
