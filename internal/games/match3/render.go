package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	hudHeight    = 3  // Title, score and status rows above the board
	legendHeight = 1  // Symbol legend below the board
	minHUDWidth  = 32 // Widest HUD line
)

// tileColors maps engine palette entries to screen colors.
var tileColors = map[engine.Color]core.Color{
	engine.ColorRed:    core.ColorRed,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorOrange: core.ColorOrange,
	engine.ColorPurple: core.ColorMagenta,
}

// boardLayout places the board box on screen.
type boardLayout struct {
	box   core.Rect // Border included
	cellW int
	size  int
}

// layout centers the board horizontally below the HUD.
func (g *Game) layout() boardLayout {
	n := g.eng.Size()
	cw := g.cfg.Display.CellWidth
	boxW := n*cw + 2
	return boardLayout{
		box:   core.NewRect((g.screenW-boxW)/2, hudHeight, boxW, n+2),
		cellW: cw,
		size:  n,
	}
}

// inner returns the tile area inside the border.
func (l boardLayout) inner() core.Rect {
	return core.NewRect(l.box.X+1, l.box.Y+1, l.size*l.cellW, l.size)
}

// hit maps a screen position to a board coordinate.
func (l boardLayout) hit(p core.Point) (engine.Coord, bool) {
	in := l.inner()
	if !in.Contains(p.X, p.Y) {
		return engine.Coord{}, false
	}
	return engine.At(p.Y-in.Y, (p.X-in.X)/l.cellW), true
}

// cellOrigin returns the screen position of the left edge of tile c.
func (l boardLayout) cellOrigin(c engine.Coord) (x, y int) {
	in := l.inner()
	return in.X + c.Col*l.cellW, in.Y + c.Row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderLegend(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// renderHUD draws the title, score, moves and status line.
func (g *Game) renderHUD(dst *core.Screen, l boardLayout) {
	left := core.Min(l.box.X, (g.screenW-minHUDWidth)/2)
	right := core.Max(l.box.Right(), left+minHUDWidth)

	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	dst.DrawText(left, 1, fmt.Sprintf("Score: %d", g.eng.Score()))

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	if n := g.MovesLeft(); n >= 0 {
		movesStr = fmt.Sprintf("Moves left: %d", n)
	}
	dst.DrawText(right-len(movesStr), 1, movesStr)

	if g.status != "" {
		dst.DrawTextCentered(2, g.status, core.ColorCyan)
	}
}

// renderBoard draws the border and every tile with its markers.
func (g *Game) renderBoard(dst *core.Screen, l boardLayout) {
	dst.DrawBox(l.box, core.ColorGray)

	selected, hasSel := g.eng.Selection()
	for row := range l.size {
		for col := range l.size {
			c := engine.At(row, col)
			cell, err := g.eng.CellAt(c)
			if err != nil {
				continue
			}
			x, y := l.cellOrigin(c)

			glyph, color := tileGlyph(cell)
			dst.SetWithColor(x+l.cellW/2, y, glyph, color)

			open, close, mc, ok := g.marker(c, selected, hasSel)
			if !ok {
				continue
			}
			dst.SetWithColor(x, y, open, mc)
			if l.cellW >= 3 {
				dst.SetWithColor(x+l.cellW-1, y, close, mc)
			}
		}
	}
}

// marker returns the bracket pair drawn around a tile, if any.
// Cursor wins over selection, selection over hint.
func (g *Game) marker(c, selected engine.Coord, hasSel bool) (open, close rune, color core.Color, ok bool) {
	isSel := hasSel && c == selected
	switch {
	case c == g.cursor && isSel:
		return '{', '}', core.ColorBrightYellow, true
	case c == g.cursor:
		return '[', ']', core.ColorBrightWhite, true
	case isSel:
		return '<', '>', core.ColorBrightYellow, true
	case g.hintShown && (c == g.hint.A || (!g.hint.Activate && c == g.hint.B)):
		return '(', ')', core.ColorBrightGreen, true
	}
	return 0, 0, core.ColorDefault, false
}

// tileGlyph returns the rune and color for a cell.
func tileGlyph(cell engine.Cell) (rune, core.Color) {
	switch {
	case cell.IsNormal():
		return '●', tileColors[cell.Color]
	case cell.IsSpecial():
		return rune(cell.Symbol()), core.ColorBrightWhite
	default:
		return '·', core.ColorGray
	}
}

// renderLegend explains the special tile symbols.
func (g *Game) renderLegend(dst *core.Screen, l boardLayout) {
	dst.DrawTextCentered(l.box.Bottom(), "- row  | column  * bomb", core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, l boardLayout) {
	centerX := l.box.X + l.box.W/2
	centerY := l.box.Y + l.box.H/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Pick | H: Hint | P: Pause | R: Restart | Q: Quit"
}
