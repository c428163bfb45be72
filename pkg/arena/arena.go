package arena

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/sync/errgroup"

	"github.com/qnkhuat/gomokuterm/pkg/ai"
	"github.com/qnkhuat/gomokuterm/pkg/config"
	"github.com/qnkhuat/gomokuterm/pkg/game"
)

var ErrHumanPlayer = errors.New("arena games cannot have human players")

type Config struct {
	Games   int
	Workers int
	Seed    int64
	Black   ai.Strategy
	White   ai.Strategy

	// OnResult is called once per finished game, never concurrently.
	OnResult func(Result)
}

type Result struct {
	Index int
	Label string
	State game.GameState
	Moves int
	Last  game.Point
}

type Tally struct {
	Black int
	White int
	Tie   int
	Moves int
}

func (t Tally) Games() int {
	return t.Black + t.White + t.Tie
}

func (t Tally) String() string {
	avg := 0.0
	if n := t.Games(); n > 0 {
		avg = float64(t.Moves) / float64(n)
	}
	return fmt.Sprintf("black %d, white %d, tie %d (%.1f moves per game)", t.Black, t.White, t.Tie, avg)
}

func (t *Tally) add(r Result) {
	t.Moves += r.Moves
	if winner, won := r.State.Winner(); won {
		if winner == game.Black {
			t.Black++
		} else {
			t.White++
		}
		return
	}
	t.Tie++
}

// StrategyFor builds the strategy configured for one side. Humans cannot
// sit in the arena, so a human or unset side plays fallback instead, with
// the side's quota.
func StrategyFor(side *config.SideSettings, fallback string) (ai.Strategy, error) {
	if side == nil {
		return ai.New(fallback, 0)
	}
	name := side.Strategy
	if name == "" || name == ai.NameHuman {
		name = fallback
	}
	return ai.New(name, side.Quota)
}

// Play runs one game to the end. The returned game is the final position,
// also on error.
func Play(black, white ai.Strategy, rng *rand.Rand) (*game.Game, error) {
	g := game.New()
	players := [2]ai.Strategy{black, white}
	for {
		mover, ok := g.State().ToMove()
		if !ok {
			return g, nil
		}
		s := players[mover]
		p, err := s.GetMove(g, rng)
		if err != nil {
			return g, fmt.Errorf("%s (%s) failed to move: %w", mover, s.Name(), err)
		}
		if err := g.Place(p); err != nil {
			return g, fmt.Errorf("%s (%s) played %s: %w", mover, s.Name(), p, err)
		}
	}
}

// Run plays cfg.Games games on a pool of cfg.Workers goroutines. Game i
// uses its own random source seeded with cfg.Seed+i, so a run is
// reproducible whatever the scheduling.
func Run(ctx context.Context, cfg Config) (Tally, error) {
	var tally Tally
	if cfg.Black == nil || cfg.White == nil {
		return tally, errors.New("arena: both players must be set")
	}
	if cfg.Black.Name() == ai.NameHuman || cfg.White.Name() == ai.NameHuman {
		return tally, ErrHumanPlayer
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var mu sync.Mutex
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < cfg.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		label := petname.Generate(2, "-")
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			g, err := Play(cfg.Black, cfg.White, rng)
			if err != nil {
				log.Printf("Game %d (%s) aborted after %d moves: %s", i, label, g.Moves(), err)
				return fmt.Errorf("arena: game %d (%s): %w", i, label, err)
			}
			r := Result{Index: i, Label: label, State: g.State(), Moves: g.Moves(), Last: g.LastMove()}
			log.Printf("Game %d (%s): %s after %d moves, last move %s", i, label, r.State, r.Moves, r.Last)

			mu.Lock()
			defer mu.Unlock()
			tally.add(r)
			if cfg.OnResult != nil {
				cfg.OnResult(r)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return tally, err
	}
	if err := ctx.Err(); err != nil {
		return tally, err
	}
	return tally, nil
}
