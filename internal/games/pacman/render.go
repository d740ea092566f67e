package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// ghostColors maps the canonical ghost order to terminal colors:
// red, pink, cyan, orange.
var ghostColors = [4]core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderDots(dst)
	g.renderGhosts(dst)
	g.renderPlayers(dst)

	switch g.st.Status {
	case engine.StatusLevelComplete:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.st.Level), "Get ready...")
	case engine.StatusGameComplete:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.st.Players[0].Score))
	case engine.StatusGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case engine.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == engine.ModeTwoPlayer {
		hud = fmt.Sprintf(" Pac-Man  P1: %d (%d♥)  P2: %d (%d♥)  Level: %d/%d  High: %d",
			g.st.Players[0].Score, g.st.Players[0].Lives,
			g.st.Players[1].Score, g.st.Players[1].Lives,
			g.st.Level, g.st.MaxLevel(), g.st.HighScore)
	} else {
		hud = fmt.Sprintf(" Pac-Man  Score: %d  Lives: %d  Level: %d/%d  High: %d",
			g.st.Players[0].Score, g.st.Players[0].Lives,
			g.st.Level, g.st.MaxLevel(), g.st.HighScore)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls and the ghost house door.
func (g *Game) renderMaze(dst *core.Screen) {
	for y := 0; y < engine.MazeHeight; y++ {
		for x := 0; x < engine.MazeWidth; x++ {
			t := engine.Tile{X: x, Y: y}
			switch g.st.Maze.Kind(t) {
			case engine.TileWall:
				dst.SetCell(g.offsetX+x, g.offsetY+y, '█', core.ColorBlue)
			case engine.TileDoor:
				dst.SetCell(g.offsetX+x, g.offsetY+y, '─', core.ColorGray)
			}
		}
	}
}

// renderDots draws the remaining pellets.
func (g *Game) renderDots(dst *core.Screen) {
	for t, kind := range g.st.Dots {
		if kind == engine.DotPower {
			dst.SetCell(g.offsetX+t.X, g.offsetY+t.Y, 'o', core.ColorBrightWhite)
		} else {
			dst.SetCell(g.offsetX+t.X, g.offsetY+t.Y, '·', core.ColorGray)
		}
	}
}

// renderGhosts draws the four ghosts in their personality colors, or
// blue/white while frightened, or as bare eyes on the way home.
func (g *Game) renderGhosts(dst *core.Screen) {
	flashing := g.st.AreGhostsFlashing()
	for i, gh := range g.st.Ghosts {
		t := gh.Tile()
		r := 'M'
		c := ghostColors[i]
		switch gh.Mode {
		case engine.GhostFrightened:
			c = core.ColorBrightBlue
			// Alternate toward white in the final stretch.
			if flashing && g.st.FrameCount%20 < 10 {
				c = core.ColorWhite
			}
		case engine.GhostEaten:
			r = '"'
			c = core.ColorWhite
		}
		dst.SetCell(g.offsetX+t.X, g.offsetY+t.Y, r, c)
	}
}

// renderPlayers draws the active players; the dying animation renders
// the victim as a fading star.
func (g *Game) renderPlayers(dst *core.Screen) {
	colors := [2]core.Color{core.ColorBrightYellow, core.ColorBrightGreen}
	for i, p := range g.st.Players {
		if !p.Active {
			continue
		}
		t := p.Tile()
		r := 'C'
		if g.st.Status == engine.StatusDying {
			r = '*'
		}
		dst.SetCell(g.offsetX+t.X, g.offsetY+t.Y, r, colors[i])
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
