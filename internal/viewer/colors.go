package viewer

import (
	"image/color"

	"casinobuilder/internal/build"
)

var (
	backgroundColor = color.RGBA{15, 15, 22, 255}
	panelColor      = color.RGBA{20, 20, 35, 255}
	sidebarColor    = color.RGBA{18, 18, 26, 255}
	borderColor     = color.RGBA{70, 70, 90, 255}
	wallColor       = color.RGBA{50, 50, 60, 255}
	wallEdgeColor   = color.RGBA{200, 200, 210, 255}
	cursorColor     = color.RGBA{255, 255, 255, 90}
	textColor       = color.RGBA{220, 220, 230, 255}
	dimTextColor    = color.RGBA{140, 140, 160, 255}
	errorTextColor  = color.RGBA{230, 110, 110, 255}
)

// heightColor shades terrain from dark (low) to light (high). Sloped tiles
// get a blue tint so ramps stand out from flat ground.
func heightColor(h, maxHeight float64, slope bool) color.RGBA {
	t := 0.0
	if maxHeight > 0 {
		t = h / maxHeight
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	v := uint8(40 + t*120)
	if slope {
		return color.RGBA{v, v, v + 50, 255}
	}
	return color.RGBA{v, v, v, 255}
}

// previewColor tints a cell under the drag box by what the build would do.
func previewColor(o build.Outcome) color.RGBA {
	switch o {
	case build.OutcomePlaced, build.OutcomeReplaced:
		return color.RGBA{80, 200, 120, 110}
	case build.OutcomeRemoved:
		return color.RGBA{230, 170, 60, 110}
	case build.OutcomeFailed:
		return color.RGBA{220, 60, 60, 130}
	default:
		return color.RGBA{150, 150, 150, 70}
	}
}

func colorFromRGB(rgb [3]int, a uint8) color.RGBA {
	return color.RGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), a}
}
