package ball

import (
	"fmt"

	"github.com/vovakirdan/ball/internal/core"
)

// Render draws the current game state to the screen.
// World Y grows upward, so rows are counted down from the window top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	p := g.world.Params
	for _, s := range g.world.Stars {
		g.drawEntity(dst, s.ID, s.Pos, p.StarSize)
	}
	for _, e := range g.world.Enemies {
		g.drawEntity(dst, e.ID, e.Pos, p.EnemySize)
	}
	if pl := g.world.Player; pl != nil {
		g.drawEntity(dst, pl.ID, pl.Pos, p.PlayerSize)
	}

	// Draw HUD
	hud := fmt.Sprintf(" Score: %d  Stars: %d  Enemies: %d  Best: %d ",
		g.world.Score, len(g.world.Stars), len(g.world.Enemies), max(g.best, int(g.world.Score)))
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if !g.world.Alive() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", g.world.Score))
	}
}

// drawEntity draws an entity of the given diameter with its loaded sprite.
func (g *Game) drawEntity(dst *core.Screen, id EntityID, pos core.Vec2, size float64) {
	sprite, ok := g.handles[id]
	if !ok {
		return
	}
	cx, cy := g.toCell(pos)
	dst.DrawEllipse(cx, cy, size/2/g.cellW, size/2/g.cellH, sprite.Rune, sprite.Color)
}

// toCell maps a world position to fractional cell coordinates.
func (g *Game) toCell(pos core.Vec2) (float64, float64) {
	win := g.Window()
	return pos.X / g.cellW, (win.H - pos.Y) / g.cellH
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
