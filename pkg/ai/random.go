package ai

import (
	"math/rand"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

// Random plays a uniformly random empty cell.
type Random struct{}

func (r *Random) Name() string {
	return NameRandom
}

func (r *Random) GetMove(g *game.Game, rng *rand.Rand) (game.Point, error) {
	if err := checkInProgress(r.Name(), g); err != nil {
		return game.NoPoint, err
	}
	return randomEmpty(g, rng), nil
}
