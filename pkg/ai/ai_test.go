package ai

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/qnkhuat/gomokuterm/pkg/game"
)

func play(t *testing.T, g *game.Game, points ...game.Point) {
	t.Helper()
	for i, p := range points {
		if err := g.Place(p); err != nil {
			t.Fatalf("move %d at %s failed: %s", i, p, err)
		}
	}
}

// oneWinningCell returns a game with Black to move where Black stones on
// A1..D1 leave exactly one empty cell, E1, that wins at once.
func oneWinningCell(t *testing.T) (*game.Game, game.Point) {
	g := game.New()
	play(t, g,
		game.Point{X: 0, Y: 0}, game.Point{X: 14, Y: 14},
		game.Point{X: 1, Y: 0}, game.Point{X: 14, Y: 12},
		game.Point{X: 2, Y: 0}, game.Point{X: 12, Y: 14},
		game.Point{X: 3, Y: 0}, game.Point{X: 10, Y: 10})
	return g, game.Point{X: 4, Y: 0}
}

func finishedGame(t *testing.T) *game.Game {
	g := game.New()
	play(t, g,
		game.Point{X: 0, Y: 0}, game.Point{X: 0, Y: 1},
		game.Point{X: 1, Y: 0}, game.Point{X: 1, Y: 1},
		game.Point{X: 2, Y: 0}, game.Point{X: 2, Y: 1},
		game.Point{X: 3, Y: 0}, game.Point{X: 3, Y: 1},
		game.Point{X: 4, Y: 0})
	return g
}

func TestNew(t *testing.T) {
	for _, name := range []string{NameRandom, NameNonconfrontational, NameSmart, " Smart "} {
		s, err := New(name, 0)
		if err != nil {
			t.Fatalf("failed to build strategy %q: %s", name, err)
		}
		if smart, ok := s.(*Smart); ok && smart.Quota != DefaultQuota {
			t.Errorf("expected default quota %d, got %d", DefaultQuota, smart.Quota)
		}
	}
	if _, err := New("alphabeta", 0); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestFinishedGameIsInvalidInvocation(t *testing.T) {
	g := finishedGame(t)
	rng := rand.New(rand.NewSource(1))
	strategies := []Strategy{&Random{}, &Nonconfrontational{}, &Smart{Quota: 100}, NewHuman("test")}
	for _, s := range strategies {
		if _, err := s.GetMove(g, rng); !errors.Is(err, ErrInvalidInvocation) {
			t.Errorf("%s: expected ErrInvalidInvocation on a finished game, got %v", s.Name(), err)
		}
	}
}

func TestRandomPlaysEmptyCells(t *testing.T) {
	g := game.New()
	rng := rand.New(rand.NewSource(7))
	r := &Random{}
	for !g.State().IsTerminal() {
		p, err := r.GetMove(g, rng)
		if err != nil {
			t.Fatal(err)
		}
		if !g.CellAt(p).IsEmpty() {
			t.Fatalf("random strategy picked occupied cell %s", p)
		}
		if err := g.Place(p); err != nil {
			t.Fatalf("random strategy move %s rejected: %s", p, err)
		}
	}
}

func TestRandomDoesNotMutate(t *testing.T) {
	g, _ := oneWinningCell(t)
	before := *g
	if _, err := (&Random{}).GetMove(g, rand.New(rand.NewSource(3))); err != nil {
		t.Fatal(err)
	}
	if *g != before {
		t.Fatal("random strategy mutated the game")
	}
}

func TestNonconfrontationalNeverWins(t *testing.T) {
	g, winning := oneWinningCell(t)
	rng := rand.New(rand.NewSource(42))
	n := &Nonconfrontational{}
	before := *g
	for i := 0; i < 10000; i++ {
		p, err := n.GetMove(g, rng)
		if err != nil {
			t.Fatal(err)
		}
		if p == winning {
			t.Fatalf("run %d: nonconfrontational strategy played the winning cell %s", i, p)
		}
		if !g.CellAt(p).IsEmpty() {
			t.Fatalf("run %d: picked occupied cell %s", i, p)
		}
	}
	if *g != before {
		t.Fatal("nonconfrontational strategy mutated the game")
	}
}

func TestNonconfrontationalFallsBack(t *testing.T) {
	// A1 is the only empty cell and it wins for Black, so every attempt is
	// rejected and the strategy has to fall back to it anyway.
	g := game.New()
	play(t, g, nearlyFull()...)
	if s := g.State(); s != game.ToMove(game.Black) {
		t.Fatalf("expected Black to move, got %s\n%s", s, g)
	}

	p, err := (&Nonconfrontational{}).GetMove(g, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	if p != (game.Point{X: 0, Y: 0}) {
		t.Fatalf("expected fallback to the only empty cell A1, got %s", p)
	}
}

// nearlyFull returns a placement order, alternating colours, that fills
// every cell but A1 without five in a row. Black stones on A2..A5 make A1
// a winning cell.
func nearlyFull() []game.Point {
	overrides := map[game.Point]bool{
		{X: 0, Y: 1}:  true,
		{X: 0, Y: 3}:  true,
		{X: 13, Y: 8}: false,
		{X: 11, Y: 9}: false,
	}
	var black, white []game.Point
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			p := game.Point{X: x, Y: y}
			if x == 0 && y == 0 {
				continue
			}
			isBlack, ok := overrides[p]
			if !ok {
				isBlack = ((x/2)+y)%2 == 0
			}
			if isBlack {
				black = append(black, p)
			} else {
				white = append(white, p)
			}
		}
	}
	order := make([]game.Point, 0, game.NumCells-1)
	for i := range black {
		order = append(order, black[i], white[i])
	}
	return order
}

func TestHuman(t *testing.T) {
	h := NewHuman("tester")
	g := game.New()

	got := make(chan game.Point)
	go func() {
		p, err := h.GetMove(g, nil)
		if err != nil {
			t.Error(err)
		}
		got <- p
	}()
	if !h.Submit(game.Center) {
		t.Fatal("expected the first move to be accepted")
	}
	if p := <-got; p != game.Center {
		t.Fatalf("expected %s, got %s", game.Center, p)
	}

	h.Leave()
	h.Leave()
	if _, err := h.GetMove(g, nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted after leaving, got %v", err)
	}
	if h.Submit(game.Center) {
		t.Fatal("submit succeeded after leaving")
	}
}

func TestHumanQueuesOneMove(t *testing.T) {
	h := NewHuman("tester")
	g := game.New()
	next := game.Point{X: 3, Y: 4}

	// The move arrives before the game loop asks for it.
	if !h.Submit(game.Center) {
		t.Fatal("expected a move submitted early to be queued")
	}
	if h.Submit(next) {
		t.Fatal("expected a second queued move to be refused")
	}
	p, err := h.GetMove(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p != game.Center {
		t.Fatalf("expected the queued move %s, got %s", game.Center, p)
	}

	if !h.Submit(next) {
		t.Fatal("expected the queue to be free again")
	}
	h.Discard()
	h.Discard()
	if !h.Submit(game.Center) {
		t.Fatal("expected the queue to be empty after discarding")
	}
}
