package scout

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/fogscout/internal/core"
	"github.com/vovakirdan/fogscout/internal/visibility"
	"github.com/vovakirdan/fogscout/internal/world"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	WallChar     = '█'
	OutsideChar  = '░'
	LootChar     = '$'
	LandmarkChar = '▲'
)

// Minimum playable screen.
const (
	minScreenW = 40
	minScreenH = 12
)

// Floor backgrounds. Object tints are composited over these.
var (
	FloorDark     = gg.Hex("#121212")
	FloorLit      = gg.Hex("#2e2a1c")
	SelectedFloor = gg.Hex("#5a4a14")
)

// facingArrows indexes the eight compass arrows counter-clockwise from east.
var facingArrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// camera maps world units to screen cells around the player. Screen rows
// grow downward while world y grows upward.
type camera struct {
	center      visibility.Vec2
	cx, cy      int
	cw, ch      float64
	top, bottom int
	width       int
}

func (c camera) valid() bool {
	return c.cw > 0 && c.ch > 0
}

// toWorld returns the world point at the centre of a cell.
func (c camera) toWorld(col, row int) visibility.Vec2 {
	return visibility.V(
		c.center.X+float64(col-c.cx)*c.cw,
		c.center.Y-float64(row-c.cy)*c.ch,
	)
}

// toCell returns the cell containing p and whether it is inside the play area.
func (c camera) toCell(p visibility.Vec2) (int, int, bool) {
	col := c.cx + int(math.Round((p.X-c.center.X)/c.cw))
	row := c.cy - int(math.Round((p.Y-c.center.Y)/c.ch))
	ok := col >= 0 && col < c.width && row >= c.top && row <= c.bottom
	return col, row, ok
}

// cellColor converts a projection colour for the terminal.
func cellColor(c gg.RGBA) core.Color {
	return core.Color(visibility.Hex(c))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "No level could be loaded")
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.loadErr.Error())
		}
		return
	}

	// Check for screen too small
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.view = camera{}
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	// HUD takes the top and bottom rows
	top, bottom := 1, dst.Height()-2
	g.view = camera{
		center: g.world.Player().Position,
		cx:     dst.Width() / 2,
		cy:     (top + bottom) / 2,
		cw:     g.cfg.View.CellWidth,
		ch:     g.cfg.View.CellHeight,
		top:    top,
		bottom: bottom,
		width:  dst.Width(),
	}
	if !g.view.valid() {
		g.view.cw, g.view.ch = 20, 40
	}

	fan := g.world.Fan()
	g.renderTerrain(dst, fan)
	g.renderObjects(dst, fan)
	g.renderPlayer(dst)
	g.renderHUD(dst)
	g.renderStatus(dst)
	g.renderOverlay(dst)
}

// lit reports whether p is inside the current fan.
func lit(p visibility.Vec2, fan visibility.Polygon) bool {
	return len(fan) > 2 && visibility.PointInPolygon(p, fan)
}

// renderTerrain draws floor, walls and the area outside the level.
func (g *Game) renderTerrain(dst *core.Screen, fan visibility.Polygon) {
	bounds := g.world.Bounds()
	dark, bright := cellColor(FloorDark), cellColor(FloorLit)

	for row := g.view.top; row <= g.view.bottom; row++ {
		for col := range dst.Width() {
			p := g.view.toWorld(col, row)

			if !bounds.Contains(p, 0) {
				dst.SetColored(col, row, OutsideChar, core.ColorDarkGray)
				continue
			}
			if g.wallAt(p) {
				dst.SetColored(col, row, WallChar, core.ColorGray)
				continue
			}
			if lit(p, fan) {
				dst.SetBackground(col, row, bright)
			} else {
				dst.SetBackground(col, row, dark)
			}
		}
	}
}

func (g *Game) wallAt(p visibility.Vec2) bool {
	for i := range g.world.Len() {
		if g.world.At(i).Contains(p) {
			return true
		}
	}
	return false
}

// renderObjects draws every tracked object through its fog tint. Hidden
// objects are fully transparent and never drawn.
func (g *Game) renderObjects(dst *core.Screen, fan visibility.Polygon) {
	selected, hasSelected := g.world.Selected()

	for _, e := range g.world.Objects() {
		tint := visibility.Tint(e.Fog)
		if tint.A == 0 {
			continue
		}
		col, row, ok := g.view.toCell(e.Position)
		if !ok {
			continue
		}

		bg := FloorDark
		switch {
		case hasSelected && e.ID == selected:
			bg = SelectedFloor
		case lit(e.Position, fan):
			bg = FloorLit
		}

		glyph := LandmarkChar
		if e.Kind == world.KindLoot {
			glyph = LootChar
		}
		dst.SetCell(col, row, core.Cell{
			Rune:       glyph,
			Color:      cellColor(visibility.Composite(tint, bg)),
			Background: cellColor(bg),
		})
	}
}

// renderPlayer draws the player and an arrow along the facing.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.world.Player()
	col, row, ok := g.view.toCell(p.Position)
	if !ok {
		return
	}
	cell := dst.GetCell(col, row)
	cell.Rune = PlayerChar
	cell.Color = core.ColorBrightWhite
	dst.SetCell(col, row, cell)

	octant := int(math.Round(p.Facing.Angle()/(math.Pi/4))+8) % 8
	ahead := p.Position.Add(visibility.V(p.Facing.X*g.view.cw*1.5, p.Facing.Y*g.view.ch*1.5))
	if ac, ar, ok := g.view.toCell(ahead); ok && (ac != col || ar != row) {
		cell := dst.GetCell(ac, ar)
		if cell.Rune == ' ' {
			cell.Rune = facingArrows[octant]
			cell.Color = core.ColorBrightYellow
			dst.SetCell(ac, ar, cell)
		}
	}
}

// renderHUD draws mode, level, score and timer on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("%s - %s", g.Title(), g.level.Title)
	dst.DrawTextColored(1, 0, left, core.ColorBrightCyan)

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", g.score))

	timeText := "Time --:--"
	if g.cfg.Gameplay.TimeLimitSecs > 0 {
		secs := (g.ticksLeft + g.tickRate() - 1) / g.tickRate()
		timeText = fmt.Sprintf("Time %d:%02d", secs/60, secs%60)
	}
	color := core.ColorDefault
	if g.ticksLeft > 0 && g.ticksLeft < 20*g.tickRate() {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 0, timeText, color)
}

// renderStatus draws stamina, objective progress and the pickup prompt on
// the bottom row.
func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1
	p := g.world.Player()

	const barW = 10
	filled := 0
	if g.cfg.Player.StaminaMax > 0 {
		filled = int(math.Round(p.Stamina / g.cfg.Player.StaminaMax * barW))
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(".", barW-filled)
	barColor := core.ColorBrightGreen
	label := ""
	switch {
	case p.Status == world.StatusExhausted:
		barColor = core.ColorRed
		label = " TIRED"
	case p.Running:
		label = " RUN"
	}
	x := 1
	stamina := fmt.Sprintf("Stamina [%s]%s", bar, label)
	dst.DrawTextColored(x, y, stamina, barColor)
	x += len(stamina) + 2

	objective := g.objectiveText()
	dst.DrawText(x, y, objective)
	x += len(objective) + 2

	switch {
	case g.msgTicks > 0:
		dst.DrawTextColored(x, y, g.message, core.ColorBrightYellow)
	default:
		if prompt := g.pickupPrompt(); prompt != "" {
			dst.DrawTextColored(x, y, prompt, core.ColorYellow)
		}
	}
}

func (g *Game) objectiveText() string {
	if g.mode == ModeSurvey {
		total, seen := g.world.CountKind(world.KindLandmark)
		return fmt.Sprintf("Landmarks %d/%d", seen, total)
	}
	remaining, _ := g.world.CountKind(world.KindLoot)
	return fmt.Sprintf("Loot %d/%d", g.collected, g.collected+remaining)
}

// pickupPrompt describes the selected candidate, or returns "".
func (g *Game) pickupPrompt() string {
	cands := g.world.Candidates()
	id, ok := g.world.Selected()
	if !ok {
		return ""
	}
	e, ok := g.world.Object(id)
	if !ok {
		return ""
	}
	idx := 0
	for i, c := range cands {
		if c == id {
			idx = i
		}
	}
	name := e.Name
	if e.Count > 1 {
		name = fmt.Sprintf("%s x%d", e.Name, e.Count)
	}
	if len(cands) > 1 {
		return fmt.Sprintf("F: take %s (%d/%d, Tab next)", name, idx+1, len(cands))
	}
	return fmt.Sprintf("F: take %s", name)
}

func pickupMessage(p world.Pickup) string {
	if p.Count > 1 {
		return fmt.Sprintf("Picked up %s x%d", p.Name, p.Count)
	}
	return fmt.Sprintf("Picked up %s", p.Name)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "TIME UP", subtitle)

	case StateWin:
		title := "ALL LOOT RECOVERED"
		if g.mode == ModeSurvey {
			title = "SURVEY COMPLETE"
		}
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
