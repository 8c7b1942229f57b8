// Package raster renders a world tick to an image: the visibility fan,
// walls, the observer and fog-tinted objects.
package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/fogscout/internal/visibility"
	"github.com/vovakirdan/fogscout/internal/world"
)

// ErrBadSize is returned for non-positive image widths or empty worlds.
var ErrBadSize = errors.New("raster: image and world must have positive size")

// Options controls the output image.
type Options struct {
	Width        int     // pixels; height follows the level's aspect ratio
	ObjectRadius float64 // world units
	Background   gg.RGBA
	Fan          gg.RGBA
	Wall         gg.RGBA
	Player       gg.RGBA
}

// DefaultOptions matches the terminal palette.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		ObjectRadius: 12,
		Background:   gg.Hex("#121212"),
		Fan:          gg.Hex("#2e2a1c"),
		Wall:         gg.Hex("#808080"),
		Player:       gg.Hex("#ffffff"),
	}
}

// projector maps world coordinates (y up) to pixels (y down).
type projector struct {
	minX, maxY float64
	scale      float64
}

func (p projector) px(v visibility.Vec2) (float64, float64) {
	return (v.X - p.minX) * p.scale, (p.maxY - v.Y) * p.scale
}

// Render draws the world's current state. The caller owns the returned
// context and should Close it.
func Render(w *world.World, opts Options) (*gg.Context, error) {
	b := w.Bounds()
	if opts.Width <= 0 || b.Width() <= 0 || b.Height() <= 0 {
		return nil, ErrBadSize
	}
	scale := float64(opts.Width) / b.Width()
	height := max(int(b.Height()*scale+0.5), 1)
	proj := projector{minX: b.Min.X, maxY: b.Max.Y, scale: scale}

	dc := gg.NewContext(opts.Width, height)
	dc.ClearWithColor(opts.Background)

	if err := drawFan(dc, proj, w.Observer().Position, w.Boundary(), opts.Fan); err != nil {
		dc.Close()
		return nil, err
	}
	for i := range w.Len() {
		if err := drawObstacle(dc, proj, w.At(i), opts.Wall, scale); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: obstacle %d: %w", i, err)
		}
	}
	for _, e := range w.Objects() {
		tint := visibility.Tint(e.Fog)
		if tint.A == 0 {
			continue
		}
		x, y := proj.px(e.Position)
		dc.SetFillBrush(gg.Solid(tint))
		dc.DrawCircle(x, y, max(opts.ObjectRadius*scale, 1.5))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("raster: object %s: %w", e.ID, err)
		}
	}
	if err := drawPlayer(dc, proj, w.Player(), opts.Player, scale); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// drawFan fills the apex-anchored visibility fan.
func drawFan(dc *gg.Context, proj projector, apex visibility.Vec2, boundary visibility.Polygon, c gg.RGBA) error {
	if len(boundary) == 0 {
		return nil
	}
	dc.MoveTo(proj.px(apex))
	for _, p := range boundary {
		dc.LineTo(proj.px(p))
	}
	dc.ClosePath()
	dc.SetFillBrush(gg.Solid(c))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("raster: fan: %w", err)
	}
	return nil
}

// drawObstacle fills a wall polygon; degenerate walls are drawn as lines.
func drawObstacle(dc *gg.Context, proj projector, o visibility.Obstacle, c gg.RGBA, scale float64) error {
	verts := o.WorldVertices()
	switch len(verts) {
	case 0:
		return nil
	case 1:
		x, y := proj.px(verts[0])
		dc.SetFillBrush(gg.Solid(c))
		dc.DrawCircle(x, y, 1)
		return dc.Fill()
	case 2:
		dc.MoveTo(proj.px(verts[0]))
		dc.LineTo(proj.px(verts[1]))
		dc.SetStrokeBrush(gg.Solid(c))
		dc.SetLineWidth(max(4*scale, 1))
		return dc.Stroke()
	}

	dc.MoveTo(proj.px(verts[0]))
	for _, v := range verts[1:] {
		dc.LineTo(proj.px(v))
	}
	dc.ClosePath()
	dc.SetFillBrush(gg.Solid(c))
	return dc.Fill()
}

// drawPlayer draws the observer with a short facing tick.
func drawPlayer(dc *gg.Context, proj projector, p world.Player, c gg.RGBA, scale float64) error {
	r := max(p.Radius*scale, 2)
	x, y := proj.px(p.Position)
	dc.SetFillBrush(gg.Solid(c))
	dc.DrawCircle(x, y, r)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("raster: player: %w", err)
	}

	tipX, tipY := proj.px(p.Position.Add(p.Facing.Mul(p.Radius * 2.5)))
	dc.MoveTo(x, y)
	dc.LineTo(tipX, tipY)
	dc.SetStrokeBrush(gg.Solid(c))
	dc.SetLineWidth(max(r/2, 1))
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("raster: player facing: %w", err)
	}
	return nil
}

// SavePNG renders the world and writes it to path.
func SavePNG(w *world.World, path string, opts Options) error {
	dc, err := Render(w, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
