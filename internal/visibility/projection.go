package visibility

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Projection constants for remembered-but-not-visible objects.
const (
	// MemoryGrayBlend is how far the desaturated colour is pulled toward MemoryGray.
	MemoryGrayBlend = 0.5
	// MemoryAlpha scales the original alpha.
	MemoryAlpha = 0.6
)

// MemoryGray is the flat gray remembered objects fade toward.
var MemoryGray = gg.RGB(0.35, 0.35, 0.35)

// Tint maps fog state to a display colour: the original appearance when
// visible, a dimmed gray variant when only discovered, and fully transparent
// when never seen.
func Tint(f Fog) gg.RGBA {
	switch f.State() {
	case StateVisible:
		return f.Appearance
	case StateDiscovered:
		return Remembered(f.Appearance)
	default:
		return gg.Transparent
	}
}

// Remembered returns the desaturated, dimmed variant of c.
func Remembered(c gg.RGBA) gg.RGBA {
	l := Luminance(c)
	out := gg.RGB(l, l, l).Lerp(MemoryGray, MemoryGrayBlend)
	out.A = c.A * MemoryAlpha
	return out
}

// Luminance returns the Rec. 709 relative luminance of c.
func Luminance(c gg.RGBA) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Composite flattens c over an opaque background.
func Composite(c, bg gg.RGBA) gg.RGBA {
	a := c.A
	return gg.RGB(
		c.R*a+bg.R*(1-a),
		c.G*a+bg.G*(1-a),
		c.B*a+bg.B*(1-a),
	)
}

// Hex formats an opaque colour as #rrggbb for terminal truecolor output.
func Hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
