package gui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

const (
	stoneRune = '●'
	emptyRune = '┼'
)

// TableToPoint converts a table position to a board point. The first row
// and column hold the coordinate labels.
func TableToPoint(row, col int) game.Point {
	return game.Point{X: col - 1, Y: row - 1}
}

func PointToTable(p game.Point) (row, col int) {
	return p.Y + 1, p.X + 1
}

// squareBg alternates the board colour so the grid stays readable on
// terminals without box drawing glyphs.
func squareBg(p game.Point, t Theme) tcell.Color {
	if (p.X+p.Y)%2 == 0 {
		return t.Board
	}
	return t.BoardAlt
}

func cellText(c game.Cell) string {
	if c.IsEmpty() {
		return string(emptyRune)
	}
	return string(stoneRune)
}

// squareCell renders one board cell
func squareCell(g *game.Game, p game.Point, t Theme) *tview.TableCell {
	c := g.CellAt(p)
	cell := tview.NewTableCell(cellText(c)).
		SetAlign(tview.AlignCenter).
		SetBackgroundColor(squareBg(p, t))

	switch player, ok := c.Player(); {
	case !ok:
		cell.SetTextColor(t.Grid)
	case p == g.LastMove():
		cell.SetTextColor(t.LastMove)
	case player == game.Black:
		cell.SetTextColor(t.Black)
	default:
		cell.SetTextColor(t.White)
	}
	return cell
}

func labelCell(text string, t Theme) *tview.TableCell {
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(t.Label).
		SetSelectable(false)
}

// RenderBoard draws g into table, labels included
func RenderBoard(table *tview.Table, g *game.Game, t Theme) {
	table.SetCell(0, 0, labelCell("", t))
	for x := 0; x < game.BoardSize; x++ {
		table.SetCell(0, x+1, labelCell(string(rune('A'+x)), t))
	}
	for y := 0; y < game.BoardSize; y++ {
		table.SetCell(y+1, 0, labelCell(strconv.Itoa(y+1), t))
		for x := 0; x < game.BoardSize; x++ {
			p := game.Point{X: x, Y: y}
			row, col := PointToTable(p)
			table.SetCell(row, col, squareCell(g, p, t))
		}
	}
}

// FormatDuration prints d as m:ss like a chess clock
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// PlayerLine describes one side for the status panel
type PlayerLine struct {
	Player   game.Player
	Name     string
	Strategy string
	Thinking time.Duration
}

func colorTag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "[-]"
	}
	return fmt.Sprintf("[#%06x]", c.Hex())
}

func stateColor(s game.GameState, t Theme) tcell.Color {
	if s.Kind == game.Tied {
		return t.Label
	}
	if s.Player == game.Black {
		return t.Black
	}
	return t.White
}

// StatusText builds the text of the status panel. It uses tview color
// tags, so the view needs dynamic colors enabled.
func StatusText(g *game.Game, players [2]PlayerLine, msg string, t Theme) string {
	var b strings.Builder
	state := g.State()
	fmt.Fprintf(&b, "%s%s[-]\n\n", colorTag(stateColor(state, t)), state)

	for _, pl := range players {
		marker := " "
		if mover, ok := state.ToMove(); ok && mover == pl.Player {
			marker = ">"
		}
		stoneColor := t.Black
		if pl.Player == game.White {
			stoneColor = t.White
		}
		fmt.Fprintf(&b, "%s %s%c[-] %s%s[-] (%s) %s\n",
			marker, colorTag(stoneColor), stoneRune, colorTag(t.PlayerNames), pl.Name, pl.Strategy, FormatDuration(pl.Thinking))
	}

	fmt.Fprintf(&b, "\nMove %d", g.Moves())
	if last := g.LastMove(); last != game.NoPoint {
		fmt.Fprintf(&b, ", last %s", last)
	}
	b.WriteString("\n")
	if msg != "" {
		fmt.Fprintf(&b, "\n%s%s[-]\n", colorTag(t.Msg), msg)
	}
	return b.String()
}
