package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	BoardSize = 15
	NumCells  = BoardSize * BoardSize
)

var (
	NoPoint = Point{-1, -1}
	Center  = Point{BoardSize / 2, BoardSize / 2}
)

// Point is a board coordinate. X selects the column, Y the row.
type Point struct {
	X, Y int
}

func (p Point) InRange() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// String formats p as a column letter followed by a 1-based row, e.g. H8.
func (p Point) String() string {
	if p == NoPoint {
		return "<none>"
	}
	if !p.InRange() {
		return fmt.Sprintf("<out of range>(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'A'+p.X, p.Y+1)
}

func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	r, w := utf8.DecodeRuneInString(s)
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return NoPoint, NewUnknownPointError(s)
	}
	row, err := strconv.Atoi(s[w:])
	if err != nil {
		return NoPoint, NewUnknownPointError(s)
	}
	p := Point{int(r - 'A'), row - 1}
	if !p.InRange() {
		return NoPoint, &IllegalMoveError{Point: p, Reason: OutOfRange}
	}
	return p, nil
}
