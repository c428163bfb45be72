package ai

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

var ErrAborted = errors.New("human player left")

// Human forwards moves chosen in the user interface. Submit is called from
// the UI goroutine, GetMove blocks the game loop until a move arrives or
// the player leaves. One move may be submitted ahead of GetMove.
type Human struct {
	Nickname string

	moves chan game.Point
	done  chan struct{}
	once  sync.Once
}

func NewHuman(nickname string) *Human {
	return &Human{
		Nickname: nickname,
		moves:    make(chan game.Point, 1),
		done:     make(chan struct{}),
	}
}

func (h *Human) Name() string {
	return NameHuman
}

func (h *Human) GetMove(g *game.Game, _ *rand.Rand) (game.Point, error) {
	if err := checkInProgress(h.Name(), g); err != nil {
		return game.NoPoint, err
	}
	select {
	case <-h.done:
		return game.NoPoint, ErrAborted
	default:
	}
	select {
	case p := <-h.moves:
		return p, nil
	case <-h.done:
		return game.NoPoint, ErrAborted
	}
}

// Submit queues p for GetMove. It reports false when a move is already
// queued or the player has left.
func (h *Human) Submit(p game.Point) bool {
	select {
	case <-h.done:
		return false
	default:
	}
	select {
	case h.moves <- p:
		return true
	default:
		return false
	}
}

// Discard drops a queued move that no GetMove picked up.
func (h *Human) Discard() {
	select {
	case <-h.moves:
	default:
	}
}

func (h *Human) Leave() {
	h.once.Do(func() { close(h.done) })
}
