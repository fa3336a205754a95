package screen

import (
	"fmt"
	"log/slog"

	"github.com/kbinani/screenshot"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/platform"
)

// Locator answers where the cursor is and which part of the desktop is usable around it.
type Locator struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Locator {
	return &Locator{log: logutil.Component(logger, "screen")}
}

// CursorPosition returns the pointer location in virtual-screen coordinates.
func (l *Locator) CursorPosition() (platform.Point, error) {
	return cursorPosition()
}

// WorkArea returns the usable area of the monitor containing at (nearest monitor otherwise).
func (l *Locator) WorkArea(at platform.Point) (platform.Rect, error) {
	r, err := workArea(at)
	if err != nil {
		l.log.Warn("work area lookup failed", "x", at.X, "y", at.Y, "error", err)
		return platform.Rect{}, err
	}
	return r, nil
}

// Displays returns the bounds of all active displays.
func Displays() []platform.Rect {
	n := screenshot.NumActiveDisplays()
	out := make([]platform.Rect, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		out = append(out, platform.Rect{Left: b.Min.X, Top: b.Min.Y, Right: b.Max.X, Bottom: b.Max.Y})
	}
	return out
}

// displayAt picks the display containing p, else the one nearest to it.
func displayAt(displays []platform.Rect, p platform.Point) (platform.Rect, error) {
	if len(displays) == 0 {
		return platform.Rect{}, fmt.Errorf("no active displays found")
	}
	best, bestDist := displays[0], -1
	for _, d := range displays {
		if d.Contains(p) {
			return d, nil
		}
		if dist := distance2(d, p); bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, nil
}

// distance2 is the squared distance from p to the closest point of r.
func distance2(r platform.Rect, p platform.Point) int {
	dx, dy := 0, 0
	switch {
	case p.X < r.Left:
		dx = r.Left - p.X
	case p.X >= r.Right:
		dx = p.X - (r.Right - 1)
	}
	switch {
	case p.Y < r.Top:
		dy = r.Top - p.Y
	case p.Y >= r.Bottom:
		dy = p.Y - (r.Bottom - 1)
	}
	return dx*dx + dy*dy
}
