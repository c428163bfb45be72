package game

import (
	"strconv"
	"strings"
)

// WinLength is the number of aligned stones that ends the game.
const WinLength = 5

// Directions scanned for a win. Together with scanning from every cell
// they cover rows, columns and both diagonals.
var rays = [...]Point{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

type Board [BoardSize][BoardSize]Cell

// Game is a plain value: copying it (or calling Clone) yields an
// independent game.
type Game struct {
	board Board
	state GameState
	moves int
	last  Point
}

func New() *Game {
	return &Game{state: ToMove(Black), last: NoPoint}
}

func (g *Game) Clone() *Game {
	c := *g
	return &c
}

// Cell returns the content of (x, y). Coordinates outside the board read
// as empty so line scans stop at the edge without bounds checks.
func (g *Game) Cell(x, y int) Cell {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Empty
	}
	return g.board[x][y]
}

func (g *Game) CellAt(p Point) Cell {
	return g.Cell(p.X, p.Y)
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Moves() int {
	return g.moves
}

// LastMove returns NoPoint before the first placement.
func (g *Game) LastMove() Point {
	return g.last
}

func (g *Game) IsFull() bool {
	return g.moves >= NumCells
}

func (g *Game) EmptyCells() []Point {
	points := make([]Point, 0, NumCells-g.moves)
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if g.board[x][y] == Empty {
				points = append(points, Point{x, y})
			}
		}
	}
	return points
}

// PlacePiece puts a stone of the player to move on (x, y). A failed call
// leaves the game untouched.
func (g *Game) PlacePiece(x, y int) error {
	p := Point{x, y}
	current, ok := g.state.ToMove()
	if !ok {
		return &IllegalMoveError{Point: p, Reason: GameOver}
	}
	if !p.InRange() {
		return &IllegalMoveError{Point: p, Reason: OutOfRange}
	}
	if g.board[x][y] != Empty {
		return &IllegalMoveError{Point: p, Reason: Occupied}
	}

	g.board[x][y] = stoneOf(current)
	g.moves++
	g.last = p
	g.state = g.nextState(current)
	return nil
}

func (g *Game) Place(p Point) error {
	return g.PlacePiece(p.X, p.Y)
}

// nextState rescans the whole board. The first run of WinLength found in
// column-major scan order decides the winner.
func (g *Game) nextState(current Player) GameState {
	full := true
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			c := g.board[i][j]
			if c == Empty {
				full = false
				continue
			}
			for _, d := range rays {
				if g.runFrom(i, j, d, c) {
					p, _ := c.Player()
					return WinnerIs(p)
				}
			}
		}
	}
	if full {
		return Tie()
	}
	return ToMove(current.Other())
}

func (g *Game) runFrom(x, y int, d Point, c Cell) bool {
	for k := 1; k < WinLength; k++ {
		if g.Cell(x+k*d.X, y+k*d.Y) != c {
			return false
		}
	}
	return true
}

// String draws the board with columns A..O across the top and rows
// numbered from 1 on the right.
func (g *Game) String() string {
	var b strings.Builder
	b.Grow((BoardSize*2 + 4) * (BoardSize + 1))
	for x := 0; x < BoardSize; x++ {
		b.WriteRune('A' + rune(x))
		if x < BoardSize-1 {
			b.WriteRune(' ')
		}
	}
	b.WriteRune('\n')
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.WriteRune(g.board[x][y].Rune())
			if x < BoardSize-1 {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(' ')
		b.WriteString(strconv.Itoa(y + 1))
		if y < BoardSize-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
