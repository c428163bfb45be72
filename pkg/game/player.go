package game

import "strings"

type Player int8

const (
	Black Player = iota
	White
)

func ParsePlayer(s string) (Player, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "x":
		return Black, true
	case "white", "o":
		return White, true
	default:
		return Black, false
	}
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Unknown"
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, ok := ParsePlayer(string(text))
	if !ok {
		return &UnknownPlayerError{s: string(text)}
	}
	*p = parsed
	return nil
}

// Cell holds at most one player's stone. The zero value is empty.
type Cell int8

const (
	Empty Cell = iota
	BlackStone
	WhiteStone
)

func stoneOf(p Player) Cell {
	if p == Black {
		return BlackStone
	}
	return WhiteStone
}

func (c Cell) Player() (Player, bool) {
	switch c {
	case BlackStone:
		return Black, true
	case WhiteStone:
		return White, true
	default:
		return Black, false
	}
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

func (c Cell) Rune() rune {
	switch c {
	case BlackStone:
		return 'x'
	case WhiteStone:
		return 'o'
	default:
		return '.'
	}
}

func (c Cell) String() string {
	return string(c.Rune())
}
