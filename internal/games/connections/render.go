package connections

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-connections/internal/core"
	"github.com/vovakirdan/tui-connections/internal/puzzle"
)

const (
	tileWidth  = 14 // Width of one tile
	tileHeight = 3  // Height of one tile or solved bar
	tileGap    = 1  // Horizontal space between tiles

	boardWidth  = Columns*tileWidth + (Columns-1)*tileGap
	boardHeight = puzzle.GroupCount * tileHeight

	boardTop  = 3
	minWidth  = boardWidth + 2
	minHeight = boardTop + boardHeight + 5
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "No puzzle to play", core.ColorError)
		dst.DrawTextCentered(dst.Height()/2, g.loadErr.Error(), core.ColorMuted)
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardWidth) / 2

	dst.DrawTextCentered(0, "Connections", core.ColorAccent)
	dst.DrawTextCentered(1, "Create four groups of four!", core.ColorMuted)

	g.renderSolved(dst, boardX)
	g.renderTiles(dst, boardX)

	y := boardTop + boardHeight + 1
	g.renderMistakes(dst, y)

	if g.message != "" {
		dst.DrawTextCentered(y+1, g.message, g.messageColor)
	}

	g.renderGameOver(dst, y+2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight), core.ColorMuted)
}

// renderSolved draws one full-width bar per found group, in solve order.
func (g *Game) renderSolved(dst *core.Screen, boardX int) {
	for i, group := range g.state.Complete() {
		bar := core.NewRect(boardX, boardTop+i*tileHeight, boardWidth, tileHeight)
		c := core.GroupColor(int(group.Difficulty))
		dst.FillRect(bar, ' ', c)

		category := fit(puzzle.Upper(group.Category), boardWidth-2)
		items := fit(puzzle.Upper(strings.Join(group.Items, ", ")), boardWidth-2)
		dst.DrawTextColored(bar.X+(boardWidth-core.TextWidth(category))/2, bar.Y, category, c)
		dst.DrawTextColored(bar.X+(boardWidth-core.TextWidth(items))/2, bar.Y+1, items, c)
	}
}

// renderTiles draws the remaining items below the solved bars.
func (g *Game) renderTiles(dst *core.Screen, boardX int) {
	top := boardTop + len(g.state.Complete())*tileHeight
	playing := g.state.Status() == puzzle.StatusPlaying

	for i, item := range g.state.Items() {
		col := i % Columns
		row := i / Columns
		tile := core.NewRect(boardX+col*(tileWidth+tileGap), top+row*tileHeight, tileWidth, tileHeight)

		c := core.ColorTile
		if g.state.IsActive(item) {
			c = core.ColorTileActive
		}
		dst.FillRect(tile, ' ', c)

		label := fit(puzzle.Upper(item), tileWidth-2)
		cx, cy := tile.Center()
		dst.DrawTextColored(cx-core.TextWidth(label)/2, cy, label, c)

		if playing && i == g.cursor {
			dst.DrawBox(tile, core.ColorCursor)
		}
	}
}

// renderMistakes draws one dot per remaining mistake.
func (g *Game) renderMistakes(dst *core.Screen, y int) {
	dots := strings.TrimSpace(strings.Repeat("● ", g.state.MistakesRemaining()))
	dst.DrawTextCentered(y, "Mistakes remaining: "+dots, core.ColorDefault)
}

// renderGameOver draws the end-of-game lines below the board.
func (g *Game) renderGameOver(dst *core.Screen, y int) {
	switch g.state.Status() {
	case puzzle.StatusWon:
		dst.DrawTextCentered(y, "You found all four groups!", core.ColorAccent)
	case puzzle.StatusLost:
		dst.DrawTextCentered(y, "Next time! The answers are above.", core.ColorError)
	default:
		return
	}
	dst.DrawTextCentered(y+1, "Press R to play again", core.ColorMuted)
}

// fit shortens text to at most width cells.
func fit(text string, width int) string {
	return core.TruncateText(text, width)
}
