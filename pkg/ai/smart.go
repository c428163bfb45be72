package ai

import (
	"fmt"
	"math/rand"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

// DefaultQuota is the number of board evaluations Smart spends per move
// when none is configured.
const DefaultQuota = 20000

type OutcomeKind int8

const (
	Indeterminate OutcomeKind = iota
	Win
	Loss
)

// Outcome classifies a search node from the point of view of the player
// to move there. Depth is only meaningful for Indeterminate and counts
// how many plies the search got through before running out of quota.
type Outcome struct {
	Kind  OutcomeKind
	Depth int
}

func (o Outcome) String() string {
	switch o.Kind {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("indeterminate(%d)", o.Depth)
	}
}

type SearchResult struct {
	UsedQuota int
	Best      game.Point
	Outcome   Outcome
}

// Smart searches the game tree, spending at most Quota board evaluations
// per move.
type Smart struct {
	Quota int
}

func (s *Smart) Name() string {
	return NameSmart
}

func (s *Smart) GetMove(g *game.Game, rng *rand.Rand) (game.Point, error) {
	r, err := s.Evaluate(g, rng)
	if err != nil {
		return game.NoPoint, err
	}
	return r.Best, nil
}

// Evaluate runs the search and reports its result. On an empty board
// there is nothing to search from and the centre is played.
func (s *Smart) Evaluate(g *game.Game, rng *rand.Rand) (SearchResult, error) {
	if err := checkInProgress(s.Name(), g); err != nil {
		return SearchResult{Best: game.NoPoint}, err
	}
	if g.Moves() == 0 {
		return SearchResult{Best: game.Center, Outcome: Outcome{Kind: Indeterminate}}, nil
	}
	return search(g, s.Quota, rng), nil
}

// candidates lists the empty cells with at least one stone among their
// eight neighbours.
func candidates(g *game.Game) []game.Point {
	var points []game.Point
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			if !g.Cell(x, y).IsEmpty() {
				continue
			}
			if hasNeighbour(g, x, y) {
				points = append(points, game.Point{X: x, Y: y})
			}
		}
	}
	return points
}

func hasNeighbour(g *game.Game, x, y int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if (dx != 0 || dy != 0) && !g.Cell(x+dx, y+dy).IsEmpty() {
				return true
			}
		}
	}
	return false
}

// deepest collects the Indeterminate children of a node. best is the first
// move reaching the greatest depth.
type deepest struct {
	found    bool
	best     game.Point
	maxDepth int
	minDepth int
}

func (d *deepest) add(m game.Point, depth int) {
	if !d.found || depth > d.maxDepth {
		d.best = m
		d.maxDepth = depth
	}
	if !d.found || depth < d.minDepth {
		d.minDepth = depth
	}
	d.found = true
}

// search explores the moves of the player to move in g. Every child
// position costs one unit of quota; what is left is shared among the
// candidates not tried yet, so later siblings inherit whatever earlier
// ones did not spend.
func search(g *game.Game, quota int, rng *rand.Rand) SearchResult {
	mover, _ := g.State().ToMove()

	moves := candidates(g)
	if len(moves) == 0 {
		return SearchResult{Best: game.NoPoint, Outcome: Outcome{Kind: Loss}}
	}
	rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var (
		used     int
		children deepest
	)
	for i, m := range moves {
		if quota-used <= 0 {
			return SearchResult{UsedQuota: used, Best: moves[0], Outcome: Outcome{Kind: Indeterminate}}
		}

		child := g.Clone()
		if err := child.Place(m); err != nil {
			// Candidates are empty cells of a running game.
			panic(err)
		}
		used++

		state := child.State()
		if winner, won := state.Winner(); won && winner == mover {
			return SearchResult{UsedQuota: used, Best: m, Outcome: Outcome{Kind: Win}}
		}
		if state.IsTerminal() {
			continue
		}

		share := (quota - used) / (len(moves) - i)
		r := search(child, share, rng)
		used += r.UsedQuota

		switch r.Outcome.Kind {
		case Loss:
			return SearchResult{UsedQuota: used, Best: m, Outcome: Outcome{Kind: Win}}
		case Win:
			continue
		case Indeterminate:
			children.add(m, r.Outcome.Depth)
		}
	}

	if children.found {
		return SearchResult{UsedQuota: used, Best: children.best, Outcome: Outcome{Kind: Indeterminate, Depth: children.minDepth + 1}}
	}
	return SearchResult{UsedQuota: used, Best: moves[0], Outcome: Outcome{Kind: Loss}}
}
