package core

import "fmt"

// Color is a cell colour understood by lipgloss: either an ANSI palette
// index ("1".."255") or a 24-bit "#rrggbb" value. The empty string is the
// terminal default.
type Color string

// Palette colours used by HUD and menus.
const (
	ColorDefault       Color = ""
	ColorRed           Color = "1"
	ColorGreen         Color = "2"
	ColorYellow        Color = "3"
	ColorBlue          Color = "4"
	ColorMagenta       Color = "5"
	ColorCyan          Color = "6"
	ColorWhite         Color = "7"
	ColorBrightRed     Color = "9"
	ColorBrightGreen   Color = "10"
	ColorBrightYellow  Color = "11"
	ColorBrightBlue    Color = "12"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
	ColorOrange        Color = "208"
	ColorGray          Color = "245"
	ColorDarkGray      Color = "238"
)

// RGB builds a truecolor Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// IsRGB reports whether c is a truecolor value rather than a palette index.
func (c Color) IsRGB() bool {
	return len(c) == 7 && c[0] == '#'
}
