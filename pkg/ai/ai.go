package ai

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

var (
	// ErrInvalidInvocation is returned when a strategy is asked for a move
	// it cannot give, e.g. on a finished game.
	ErrInvalidInvocation = errors.New("invalid strategy invocation")
	ErrUnknownStrategy   = errors.New("unknown strategy")
)

// Strategy picks the next move for the player to move in g. The random
// source is owned by the caller; strategies never touch global state and
// never mutate g.
type Strategy interface {
	Name() string
	GetMove(g *game.Game, rng *rand.Rand) (game.Point, error)
}

const (
	NameRandom             = "random"
	NameNonconfrontational = "nonconfrontational"
	NameSmart              = "smart"
	NameHuman              = "human"
)

// New builds an AI strategy by name. quota only applies to smart and
// falls back to DefaultQuota when not positive. Humans are wired by the
// client, not here.
func New(name string, quota int) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameRandom:
		return &Random{}, nil
	case NameNonconfrontational:
		return &Nonconfrontational{}, nil
	case NameSmart:
		if quota <= 0 {
			quota = DefaultQuota
		}
		return &Smart{Quota: quota}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func checkInProgress(name string, g *game.Game) error {
	if s := g.State(); s.IsTerminal() {
		return fmt.Errorf("%w: %s asked to move on a finished game (%s)", ErrInvalidInvocation, name, s)
	}
	return nil
}

// randomEmpty draws coordinates until it hits an empty cell. g must not be full.
func randomEmpty(g *game.Game, rng *rand.Rand) game.Point {
	for {
		p := game.Point{X: rng.Intn(game.BoardSize), Y: rng.Intn(game.BoardSize)}
		if g.CellAt(p).IsEmpty() {
			return p
		}
	}
}
