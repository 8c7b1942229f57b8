package visibility

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestTint(t *testing.T) {
	red := gg.RGB(1, 0, 0)

	hidden := NewFog(red)
	assert.Equal(t, gg.Transparent, Tint(hidden))

	visible := hidden
	visible.Observe(true)
	assert.Equal(t, red, Tint(visible))

	remembered := visible
	remembered.Observe(false)
	got := Tint(remembered)
	assert.Equal(t, Remembered(red), got)
	assert.InDelta(t, MemoryAlpha, got.A, 1e-9)
	assert.InDelta(t, got.R, got.G, 1e-9, "remembered colour is gray")
	assert.InDelta(t, got.G, got.B, 1e-9, "remembered colour is gray")
}

func TestRememberedIsDimmer(t *testing.T) {
	white := gg.RGB(1, 1, 1)
	r := Remembered(white)
	assert.Less(t, r.R, white.R)
	assert.Less(t, r.A, white.A)
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{gg.RGB(0, 0, 0), "#000000"},
		{gg.RGB(1, 1, 1), "#ffffff"},
		{gg.RGB(1, 0.5, 0), "#ff8000"},
		{gg.RGBA{R: -1, G: 2, B: 0}, "#00ff00"},
	}
	for _, tc := range tests {
		if got := Hex(tc.c); got != tc.want {
			t.Errorf("Hex(%v) = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

func TestComposite(t *testing.T) {
	bg := gg.RGB(0, 0, 0)
	half := gg.RGBA{R: 1, G: 1, B: 1, A: 0.5}

	got := Composite(half, bg)
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 1.0, got.A, 1e-9)

	assert.Equal(t, bg, Composite(gg.Transparent, bg))
}
