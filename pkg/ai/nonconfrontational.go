package ai

import (
	"math/rand"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

// SafeMoveAttempts bounds how long Nonconfrontational looks for a move
// that does not end the game with a win.
const SafeMoveAttempts = 2000

// Nonconfrontational plays random moves but avoids winning. After
// SafeMoveAttempts draws it gives up and plays any empty cell.
type Nonconfrontational struct{}

func (n *Nonconfrontational) Name() string {
	return NameNonconfrontational
}

func (n *Nonconfrontational) GetMove(g *game.Game, rng *rand.Rand) (game.Point, error) {
	if err := checkInProgress(n.Name(), g); err != nil {
		return game.NoPoint, err
	}

	for i := 0; i < SafeMoveAttempts; i++ {
		p := randomEmpty(g, rng)
		c := g.Clone()
		if err := c.Place(p); err != nil {
			return game.NoPoint, err
		}
		if _, won := c.State().Winner(); won {
			continue
		}
		return p, nil
	}
	return randomEmpty(g, rng), nil
}
