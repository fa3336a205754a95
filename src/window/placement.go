package window

import "byoa-assistant/src/platform"

// Place puts a window of the given size with its top-left corner at the cursor,
// then pulls it back inside area: right edge, left edge, bottom edge, top edge,
// each clamped independently in that order. A window larger than area ends up
// aligned to area's left/top.
func Place(cursor platform.Point, size platform.Size, area platform.Rect) platform.Point {
	x, y := cursor.X, cursor.Y
	if x+size.Width > area.Right {
		x = area.Right - size.Width
	}
	if x < area.Left {
		x = area.Left
	}
	if y+size.Height > area.Bottom {
		y = area.Bottom - size.Height
	}
	if y < area.Top {
		y = area.Top
	}
	return platform.Point{X: x, Y: y}
}
