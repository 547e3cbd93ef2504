package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of a tile in characters
	cellHeight = 3 // Height of a tile in characters
	cellGap    = 1 // Board margin between tiles

	boardW    = engine.Size*cellWidth + (engine.Size+1)*cellGap
	boardH    = engine.Size*cellHeight + (engine.Size+1)*cellGap
	hudHeight = 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall || g.eng == nil {
		g.renderTooSmall(dst)
		return
	}

	dst.FillRect(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorBackground)

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, the win banner and the session counters.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextStyled(boardX, 0, "2048", core.ColorTextDark, core.ColorBackground)

	info := fmt.Sprintf("Max: %d  Moves: %d", g.eng.MaxTile(), g.moves)
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawTextStyled(infoX, 0, info, core.ColorTextDark, core.ColorBackground)

	if g.eng.Won() {
		banner := " 2048! "
		dst.DrawTextStyled(boardX+(boardW-len(banner))/2, 1, banner, core.ColorTextLight, core.ColorHighlight)
	}
}

// renderBoard draws the 4x4 grid with tiles, replaying any running animation.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.FillRect(core.NewRect(boardX, boardY, boardW, boardH), core.ColorBoard)
	for x := range engine.Size {
		for y := range engine.Size {
			px, py := cellOrigin(boardX, boardY, float64(x), float64(y))
			dst.FillRect(core.NewRect(px, py, cellWidth, cellHeight), core.ColorEmptyCell)
		}
	}

	if g.anim.phase == animSlide {
		g.renderSlide(dst, boardX, boardY)
		return
	}

	values := g.eng.Values()
	for x := range engine.Size {
		for y := range engine.Size {
			v := values[x][y]
			if v == 0 {
				continue
			}
			px, py := cellOrigin(boardX, boardY, float64(x), float64(y))
			if g.anim.phase == animPop && g.anim.spawn == (engine.Cell{X: x, Y: y}) {
				drawPop(dst, px, py, v, g.anim.progress())
				continue
			}
			drawTile(dst, px, py, cellWidth, cellHeight, v)
		}
	}
}

// renderSlide draws the board as it was before the move, with the moving
// tiles interpolated between their source and destination cells.
func (g *Game) renderSlide(dst *core.Screen, boardX, boardY int) {
	a := &g.anim
	for x := range engine.Size {
		for y := range engine.Size {
			v := a.before[x][y]
			if v == 0 || a.leaving[x][y] {
				continue
			}
			px, py := cellOrigin(boardX, boardY, float64(x), float64(y))
			drawTile(dst, px, py, cellWidth, cellHeight, v)
		}
	}

	ease := g.easing
	if ease == nil {
		ease = linear
	}
	t := ease(a.progress())
	for _, tile := range a.tiles {
		fx, fy := tile.interpolate(t)
		px, py := cellOrigin(boardX, boardY, fx, fy)
		drawTile(dst, px, py, cellWidth, cellHeight, tile.Value)
	}
}

// cellOrigin returns the top-left screen position of board cell (x, y).
// Board y grows upward, screen y downward.
func cellOrigin(boardX, boardY int, x, y float64) (int, int) {
	px := boardX + cellGap + int(math.Round(x*(cellWidth+cellGap)))
	py := boardY + cellGap + int(math.Round((engine.Size-1-y)*(cellHeight+cellGap)))
	return px, py
}

// drawTile fills a w x h tile at (px, py) with its value centered.
func drawTile(dst *core.Screen, px, py, w, h, value int) {
	bg := TileColor(value)
	dst.FillRect(core.NewRect(px, py, w, h), bg)

	label := strconv.Itoa(value)
	lx := px + max((w-len(label))/2, 0)
	dst.DrawTextStyled(lx, py+h/2, label, TextColor(value), bg)
}

// drawPop draws a spawned tile growing from half size to full size.
func drawPop(dst *core.Screen, px, py, value int, progress float64) {
	scale := 0.5 + 0.5*progress
	w := max(int(math.Round(cellWidth*scale)), 1)
	h := cellHeight
	if scale < 0.75 {
		h = 1
	}
	drawTile(dst, px+(cellWidth-w)/2, py+(cellHeight-h)/2, w, h, value)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.deadlocked {
		maxStr := fmt.Sprintf("Max tile: %d", g.eng.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.FillRect(box, core.ColorBackground)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextStyled(centerX-len(line)/2, box.Y+1+i, line, core.ColorTextDark, core.ColorBackground)
	}
}
