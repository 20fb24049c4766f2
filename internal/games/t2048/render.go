package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/plus2048/internal/core"
	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

const hazardGlyph = "(@)"

// tileColors steps through the palette by log2 of the tile value.
var tileColors = []core.Color{
	core.ColorWhite,         // 2
	core.ColorBrightWhite,   // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorRed,           // 32
	core.ColorBrightRed,     // 64
	core.ColorBrightYellow,  // 128
	core.ColorGreen,         // 256
	core.ColorBrightGreen,   // 512
	core.ColorCyan,          // 1024
	core.ColorBrightMagenta, // 2048
}

// TileColor returns the color used to draw a tile of the given value.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	i := bits.Len(uint(value)) - 2
	if i >= len(tileColors) {
		return core.ColorMagenta
	}
	return tileColors[i]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.setupErr != nil {
		dst.DrawTextCentered(g.screenH/2-1, "Board setup failed")
		dst.DrawTextCentered(g.screenH/2, g.setupErr.Error())
		return
	}

	size := g.session.Rules().Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW-boardW)/2 + g.anim.shakeOffset()
	boardY := hudHeight + 1

	g.renderHUD(dst, (g.screenW-boardW)/2, boardW)
	g.renderBoard(dst, boardX, boardY, size)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.Score()))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.level+1, len(g.levels), g.levels[g.level].Target)
	} else {
		info = fmt.Sprintf("Max: %d", g.session.Snapshot().MaxTile)
	}
	dst.DrawText(max(boardX+boardW-len(info), boardX), 1, info)

	if holes := len(g.session.Rules().HazardRows); holes > 0 {
		dst.DrawTextColored(boardX, 2, fmt.Sprintf("Black holes: %d", holes), core.ColorMagenta)
	}

	if g.last != nil && g.last.ScoreDelta != 0 && g.anim.active() {
		delta := fmt.Sprintf("%+d", g.last.ScoreDelta)
		color := core.ColorBrightGreen
		if g.last.ScoreDelta < 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(boardX+boardW-len(delta), 2, delta, color)
	}
}

// renderBoard draws the grid, hazards, resting tiles and sliding tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, size int) {
	g.renderGrid(dst, boardX, boardY, size)

	snap := g.session.Snapshot()
	for _, h := range snap.Hazards {
		drawCentered(dst, boardX, boardY, float64(h.Row), float64(h.Col), hazardGlyph, core.ColorMagenta)
	}

	for r, row := range snap.Values {
		for c, v := range row {
			p := engine.P(r, c)
			if v == 0 || g.anim.hidden[p] {
				continue
			}
			text, color := strconv.Itoa(v), TileColor(v)
			if g.anim.popping(p) {
				if len(text)+2 < cellWidth {
					text = "[" + text + "]"
				}
				color = core.ColorBrightWhite
			}
			drawCentered(dst, boardX, boardY, float64(r), float64(c), text, color)
		}
	}

	for _, t := range g.anim.absorbed {
		drawCentered(dst, boardX, boardY, float64(t.To.Row), float64(t.To.Col), strconv.Itoa(t.Value), TileColor(t.Value))
	}
	for i := range g.anim.tiles {
		t := &g.anim.tiles[i]
		if t.Kind == engine.KindAnnihilate && t.Progress >= 1 {
			continue
		}
		row, col := t.interpolatePosition()
		color := TileColor(t.Value)
		if t.Kind == engine.KindAnnihilate {
			color = core.ColorGray
		}
		drawCentered(dst, boardX, boardY, row, col, strconv.Itoa(t.Value), color)
	}
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY, size int) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// drawCentered writes text centered in the cell at a possibly fractional
// board position.
func drawCentered(dst *core.Screen, boardX, boardY int, row, col float64, text string, color core.Color) {
	x := boardX + int(math.Round(col*cellWidth)) + 1
	y := boardY + int(math.Round(row*cellHeight)) + 1
	pad := max((cellWidth-1-len(text))/2, 0)
	dst.DrawTextColored(x+pad, y, text, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		target := fmt.Sprintf("Target %d reached!", g.levels[g.level].Target)
		if g.level >= len(g.levels)-1 {
			g.drawOverlay(dst, centerX, centerY, target, "Final level complete!")
		} else {
			next := g.levels[g.level+1]
			g.drawOverlay(dst, centerX, centerY, target, fmt.Sprintf("Next: %s", next.Name))
		}
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Final score: %d", g.Score()), "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.session.Snapshot().MaxTile)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl or drag: Move | ':' Command | P: Pause | R: Restart | Q: Quit"
}
