package game

import "fmt"

type StateKind int8

const (
	InProgress StateKind = iota
	Won
	Tied
)

// GameState is InProgress with the player to move, Won with the winner, or Tied.
type GameState struct {
	Kind   StateKind
	Player Player
}

func ToMove(p Player) GameState {
	return GameState{Kind: InProgress, Player: p}
}

func WinnerIs(p Player) GameState {
	return GameState{Kind: Won, Player: p}
}

func Tie() GameState {
	return GameState{Kind: Tied}
}

func (s GameState) IsTerminal() bool {
	return s.Kind != InProgress
}

// ToMove reports the player to move, if the game is still running.
func (s GameState) ToMove() (Player, bool) {
	return s.Player, s.Kind == InProgress
}

// Winner reports the winning player, if there is one.
func (s GameState) Winner() (Player, bool) {
	return s.Player, s.Kind == Won
}

func (s GameState) String() string {
	switch s.Kind {
	case InProgress:
		return fmt.Sprintf("%s to move", s.Player)
	case Won:
		return fmt.Sprintf("%s wins", s.Player)
	case Tied:
		return "Tie"
	default:
		return "Unknown"
	}
}
