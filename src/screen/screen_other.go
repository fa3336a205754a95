//go:build !windows

package screen

import (
	"github.com/go-vgo/robotgo"

	"byoa-assistant/src/platform"
)

func cursorPosition() (platform.Point, error) {
	x, y := robotgo.Location()
	return platform.Point{X: x, Y: y}, nil
}

// workArea uses full display bounds; menu bar and dock are not subtracted.
func workArea(at platform.Point) (platform.Rect, error) {
	return displayAt(Displays(), at)
}
