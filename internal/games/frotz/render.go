package frotz

import (
	"fmt"

	"github.com/vovakirdan/frotz/internal/core"
	sim "github.com/vovakirdan/frotz/internal/games/frotz/core"
)

const (
	cellW      = 2 // Screen columns per grid column
	hudRows    = 2
	footerRows = 3
	minScreenW = 40
)

// KeyHelp is the one-line key summary shown under the board.
const KeyHelp = "arrows move  wasd fire  u undo  r reset  [ ] rotate  n next  p pause"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.puzzle == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	span := g.puzzle.BoardBounds().Span()
	boardW := span.X*cellW + 2
	boardH := span.Y + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudRows + max((g.screenH-hudRows-footerRows-boardH)/2, 0)

	g.renderHUD(dst)
	dst.DrawBoxWithColor(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderFooter(dst)
	g.renderOverlay(dst, boardY+boardH/2)
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredWithColor(y, "Cannot open level", core.ColorRed)
	if g.loadErr != nil {
		dst.DrawTextCentered(y+1, g.loadErr.Error())
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	title := g.level.Name
	if title == "" {
		title = g.level.ID
	}
	dst.DrawTextWithColor(1, 0, title, core.ColorBrightWhite)

	st := g.puzzle.Stats()
	info := fmt.Sprintf("Moves %d  Pulses %d  Undos %d", st.Moves, st.Pulses, st.Undos)
	dst.DrawText(g.screenW-len(info)-1, 0, info)

	if i := g.campaign.Index(g.level.ID); i >= 0 {
		dst.DrawTextWithColor(1, 1, fmt.Sprintf("Puzzle %d/%d", i+1, len(g.campaign)), core.ColorGray)
	}
}

// renderBoard draws the top-down height map: for every column of the grid
// the highest live entity, followed by its height.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	b := g.puzzle.BoardBounds()
	tops := make(map[[2]int]*sim.Entity)
	for _, e := range g.puzzle.Entities() {
		if e.Destroyed {
			continue
		}
		key := [2]int{e.Pos.X, e.Pos.Y}
		if cur, ok := tops[key]; !ok || e.Pos.Z > cur.Pos.Z {
			tops[key] = e
		}
	}

	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			sx := originX + (x-b.Min.X)*cellW
			sy := originY + (y - b.Min.Y)
			e, ok := tops[[2]int{x, y}]
			if !ok {
				dst.SetWithColor(sx, sy, '·', core.ColorDarkGray)
				continue
			}
			r, c := Glyph(e)
			dst.SetWithColor(sx, sy, r, c)
			dst.SetWithColor(sx+1, sy, heightRune(e.Pos.Z), core.ColorDarkGray)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.screenH - footerRows
	if g.level.Hint != "" {
		dst.DrawTextCenteredWithColor(y, g.level.Hint, core.ColorCyan)
	}

	status := ""
	switch {
	case g.paused:
		status = "PAUSED"
	case g.settling:
		status = "..."
	case len(g.lastTurn) > 0:
		status = g.lastTurn[len(g.lastTurn)-1].Type.String()
	}
	dst.DrawTextCenteredWithColor(y+1, status, core.ColorGray)
	dst.DrawTextCenteredWithColor(y+2, KeyHelp, core.ColorDarkGray)
}

func (g *Game) renderOverlay(dst *core.Screen, midY int) {
	if g.settling {
		return
	}
	var lines []string
	color := core.ColorBrightGreen | core.Bold
	switch {
	case g.won && g.finished:
		lines = []string{"Campaign complete!", fmt.Sprintf("Solved in %d moves", g.puzzle.Stats().Moves)}
	case g.won:
		lines = []string{fmt.Sprintf("Solved in %d moves", g.puzzle.Stats().Moves), "N: next puzzle  U: undo"}
	case g.lost:
		color = core.ColorBrightRed | core.Bold
		lines = []string{"The wizard fell.", "U: undo  R: reset"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	box := core.NewRect((g.screenW-w-4)/2, midY-len(lines)/2-1, w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)
	for i, l := range lines {
		dst.DrawTextCenteredWithColor(box.Y+1+i, l, color)
	}
}

// Glyph returns the rune and color an entity is drawn with.
func Glyph(e *sim.Entity) (rune, core.Color) {
	switch k := e.Kind; {
	case k == sim.KindWizard:
		return '@', core.ColorBrightYellow | core.Bold
	case k == sim.KindBlock1:
		return '█', core.ColorWhite
	case k == sim.KindBlock2:
		return '▓', core.ColorGray
	case k == sim.KindBlock3:
		return '▒', core.ColorOrange
	case k == sim.KindBox:
		return '#', core.ColorYellow
	case k.IsMirror():
		c := core.ColorBrightCyan
		if k.MirrorClass() == 2 {
			c = core.ColorBrightMagenta
		}
		return mirrorRune(k.Orientation()), c
	case k == sim.KindPower:
		if e.Active {
			return '◆', core.ColorBrightYellow
		}
		return '◇', core.ColorYellow
	case k == sim.KindElevator:
		if e.Active {
			return '≡', core.ColorBrightBlue
		}
		return '=', core.ColorBlue
	case k == sim.KindExit:
		return '◎', core.ColorBrightGreen | core.Bold
	case k == sim.KindPulse:
		return '*', core.ColorBrightRed
	default:
		return '?', core.ColorRed
	}
}

func mirrorRune(o sim.Orientation) rune {
	switch o {
	case sim.OrientNE:
		return '▲'
	case sim.OrientNW:
		return '◀'
	case sim.OrientSE:
		return '▶'
	case sim.OrientSW:
		return '▼'
	default:
		return '?'
	}
}

func heightRune(z int) rune {
	if z < 0 || z > 9 {
		return '+'
	}
	return rune('0' + z)
}
