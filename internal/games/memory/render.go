package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
	engine "github.com/vovakirdan/tui-memory/internal/memory"
)

const (
	cardW        = 5 // Card box width including borders
	cardH        = 3 // Card box height including borders
	cardGap      = 1 // Columns between cards
	hudHeight    = 3 // Title + stats + blank line
	footerHeight = 2 // Blank line + controls
)

const (
	faceDownRune = '░'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.cols*(cardW+cardGap) - cardGap
	boardH := g.rows * cardH
	boardX := (g.rt.ScreenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCentered(boardY+boardH+1, g.Controls())
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.rt.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the move/time/pair counters.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorTitle)

	stats := fmt.Sprintf("Moves: %d   Time: %ds   Pairs: %d/%d",
		g.state.MoveCount, g.state.ElapsedSeconds, g.state.MatchedPairs, g.state.Pairs())
	dst.DrawText(boardX+(boardW-len(stats))/2, 1, stats)
}

// renderBoard draws every card as a small box; the cursor box is highlighted.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for _, c := range g.state.Deck {
		x := boardX + (c.Position%g.cols)*(cardW+cardGap)
		y := boardY + (c.Position/g.cols)*cardH
		box := core.NewRect(x, y, cardW, cardH)

		border, face, faceColor := cardStyle(c)
		if c.Position == g.cursor {
			border = core.ColorCursor
		}

		dst.DrawBox(box, border)
		dst.SetColor(x+cardW/2, y+1, face, faceColor)
		if c.Position == g.cursor {
			dst.SetColor(x+1, y+1, '>', core.ColorCursor)
			dst.SetColor(x+cardW-2, y+1, '<', core.ColorCursor)
		}
	}
}

// cardStyle picks border color, face rune and face color for a card.
func cardStyle(c engine.Card) (border core.Color, face rune, faceColor core.Color) {
	switch {
	case c.Matched:
		return core.ColorMatched, firstRune(c.Symbol), core.ColorMatched
	case c.FaceUp:
		return core.ColorCardFace, firstRune(c.Symbol), core.ColorCardSymbol
	default:
		return core.ColorCardBack, faceDownRune, core.ColorCardBack
	}
}

func firstRune(s engine.Symbol) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// renderOverlays draws pause and win banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, core.ColorNotice, "PAUSED", "Press P to resume")
		return
	}

	if g.state.Won() {
		st := g.State()
		g.drawOverlay(dst, centerX, centerY, core.ColorMatched,
			"ALL PAIRS FOUND!",
			fmt.Sprintf("%d moves in %ds", st.Moves, st.Seconds),
			fmt.Sprintf("Score: %d", st.Score),
			"Press R to play again",
		)
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Enter/Space: Flip | P: Pause | R: Restart | Q: Quit"
}
