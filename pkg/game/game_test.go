package game

import (
	"errors"
	"testing"
)

// play places the points in order, alternating players from the current turn.
func play(t *testing.T, g *Game, points ...Point) {
	t.Helper()
	for i, p := range points {
		if err := g.Place(p); err != nil {
			t.Fatalf("move %d at %s failed: %s", i, p, err)
		}
	}
}

// tieFill returns a full-board placement order, alternating Black and White,
// that never forms five in a row.
func tieFill() []Point {
	var black, white []Point
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if ((x/2)+y)%2 == 0 {
				black = append(black, Point{x, y})
			} else {
				white = append(white, Point{x, y})
			}
		}
	}
	order := make([]Point, 0, NumCells)
	for i := range black {
		order = append(order, black[i])
		if i < len(white) {
			order = append(order, white[i])
		}
	}
	return order
}

func TestNewGame(t *testing.T) {
	g := New()
	if s := g.State(); s != ToMove(Black) {
		t.Fatalf("expected Black to move on a new game, got %s", s)
	}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if c := g.Cell(x, y); c != Empty {
				t.Fatalf("expected empty cell at (%d, %d), got %s", x, y, c)
			}
		}
	}
	if g.LastMove() != NoPoint {
		t.Errorf("expected no last move, got %s", g.LastMove())
	}
}

func TestCellOutOfRange(t *testing.T) {
	g := New()
	play(t, g, Point{0, 0}, Point{14, 14}, Point{0, 14}, Point{14, 0})

	for _, p := range []Point{{-1, 0}, {0, -1}, {-1, -1}, {BoardSize, 0}, {0, BoardSize}, {-100, 100}, {BoardSize, BoardSize}} {
		if c := g.CellAt(p); c != Empty {
			t.Errorf("expected empty read outside the board at (%d, %d), got %s", p.X, p.Y, c)
		}
	}
}

func TestPlacePieceFailuresDoNotMutate(t *testing.T) {
	g := New()
	play(t, g, Point{7, 7})

	before := *g
	cases := []struct {
		p      Point
		reason IllegalReason
	}{
		{Point{7, 7}, Occupied},
		{Point{-1, 3}, OutOfRange},
		{Point{3, BoardSize}, OutOfRange},
		{Point{BoardSize, -1}, OutOfRange},
	}
	for _, c := range cases {
		err := g.Place(c.p)
		if !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("expected ErrIllegalMove at (%d, %d), got %v", c.p.X, c.p.Y, err)
		}
		var ime *IllegalMoveError
		if !errors.As(err, &ime) || ime.Reason != c.reason {
			t.Errorf("expected reason %q at (%d, %d), got %v", c.reason, c.p.X, c.p.Y, err)
		}
		if *g != before {
			t.Fatalf("failed placement at (%d, %d) mutated the game", c.p.X, c.p.Y)
		}
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	moves := []Point{{7, 7}, {7, 8}, {8, 8}, {3, 3}, {10, 2}}
	for i, m := range moves {
		mover, _ := g.State().ToMove()
		if err := g.Place(m); err != nil {
			t.Fatalf("move %d failed: %s", i, err)
		}
		next, ok := g.State().ToMove()
		if !ok {
			t.Fatalf("expected game in progress after move %d, got %s", i, g.State())
		}
		if next != mover.Other() {
			t.Errorf("expected %s to move after %s, got %s", mover.Other(), mover, next)
		}
		if got, _ := g.CellAt(m).Player(); got != mover {
			t.Errorf("expected %s stone at %s, got %s", mover, m, g.CellAt(m))
		}
	}
	if g.Moves() != len(moves) {
		t.Errorf("expected %d moves, got %d", len(moves), g.Moves())
	}
}

func TestWinDetection(t *testing.T) {
	cases := []struct {
		name  string
		start Point
		dir   Point
	}{
		{"row", Point{2, 5}, Point{1, 0}},
		{"column", Point{9, 0}, Point{0, 1}},
		{"diagonal", Point{0, 0}, Point{1, 1}},
		{"anti-diagonal", Point{4, 10}, Point{1, -1}},
		{"row at far edge", Point{10, 14}, Point{1, 0}},
		{"anti-diagonal at corner", Point{10, 4}, Point{1, -1}},
	}
	// White stones go on a column far away from every run above.
	filler := []Point{{12, 1}, {12, 3}, {12, 5}, {12, 7}}
	for _, c := range cases {
		g := New()
		for k := 0; k < WinLength; k++ {
			p := c.start.Add(k*c.dir.X, k*c.dir.Y)
			if err := g.Place(p); err != nil {
				t.Fatalf("%s: black move %d at %s failed: %s", c.name, k, p, err)
			}
			if k == WinLength-1 {
				break
			}
			if s := g.State(); s.IsTerminal() {
				t.Fatalf("%s: game ended after %d stones: %s", c.name, k+1, s)
			}
			if err := g.Place(filler[k]); err != nil {
				t.Fatalf("%s: white move %d failed: %s", c.name, k, err)
			}
		}
		if s := g.State(); s != WinnerIs(Black) {
			t.Errorf("%s: expected Black to win, got %s\n%s", c.name, s, g)
		}
	}
}

func TestFourDoesNotWin(t *testing.T) {
	g := New()
	play(t, g,
		Point{3, 3}, Point{0, 10},
		Point{4, 3}, Point{2, 10},
		Point{5, 3}, Point{4, 10},
		Point{6, 3})
	if s := g.State(); s != ToMove(White) {
		t.Fatalf("expected White to move after an open four, got %s", s)
	}
}

func TestInterruptedRunDoesNotWin(t *testing.T) {
	g := New()
	play(t, g,
		Point{0, 0}, Point{2, 0},
		Point{1, 0}, Point{9, 9},
		Point{3, 0}, Point{11, 9},
		Point{4, 0}, Point{13, 9},
		Point{5, 0})
	if s := g.State(); s.IsTerminal() {
		t.Fatalf("expected a run broken by a white stone not to win, got %s", s)
	}
}

func TestWhiteWins(t *testing.T) {
	g := New()
	play(t, g,
		Point{0, 0}, Point{7, 3},
		Point{0, 2}, Point{7, 4},
		Point{0, 4}, Point{7, 5},
		Point{0, 6}, Point{7, 6},
		Point{0, 8}, Point{7, 7})
	if s := g.State(); s != WinnerIs(White) {
		t.Fatalf("expected White to win, got %s", s)
	}
}

func TestTerminalRejectsEverything(t *testing.T) {
	g := New()
	play(t, g,
		Point{0, 0}, Point{0, 1},
		Point{1, 0}, Point{1, 1},
		Point{2, 0}, Point{2, 1},
		Point{3, 0}, Point{3, 1},
		Point{4, 0})
	if !g.State().IsTerminal() {
		t.Fatalf("expected terminal state, got %s", g.State())
	}

	before := *g
	for x := -1; x <= BoardSize; x++ {
		for y := -1; y <= BoardSize; y++ {
			if err := g.PlacePiece(x, y); !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("expected ErrIllegalMove at (%d, %d) after the game ended, got %v", x, y, err)
			}
		}
	}
	if *g != before {
		t.Fatal("placement on a finished game mutated it")
	}
}

func TestTie(t *testing.T) {
	g := New()
	order := tieFill()
	for i, p := range order {
		if s := g.State(); s.IsTerminal() {
			t.Fatalf("game ended early at move %d: %s\n%s", i, s, g)
		}
		if err := g.Place(p); err != nil {
			t.Fatalf("move %d at %s failed: %s", i, p, err)
		}
	}
	if s := g.State(); s != Tie() {
		t.Fatalf("expected a tie on a full board, got %s\n%s", s, g)
	}
	if !g.IsFull() {
		t.Error("expected the board to be full")
	}
	if err := g.Place(Point{0, 0}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove after a tie, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	play(t, g, Point{7, 7}, Point{8, 8})

	c := g.Clone()
	play(t, c, Point{1, 1}, Point{2, 2}, Point{3, 3})

	if g.State() != ToMove(Black) {
		t.Errorf("original state changed to %s", g.State())
	}
	for _, p := range []Point{{1, 1}, {2, 2}, {3, 3}} {
		if !g.CellAt(p).IsEmpty() {
			t.Errorf("original cell %s changed to %s", p, g.CellAt(p))
		}
	}
	if g.Moves() != 2 || c.Moves() != 5 {
		t.Errorf("expected 2 and 5 moves, got %d and %d", g.Moves(), c.Moves())
	}
}

func TestEmptyCells(t *testing.T) {
	g := New()
	if n := len(g.EmptyCells()); n != NumCells {
		t.Fatalf("expected %d empty cells, got %d", NumCells, n)
	}
	play(t, g, Point{7, 7}, Point{0, 0})
	cells := g.EmptyCells()
	if len(cells) != NumCells-2 {
		t.Fatalf("expected %d empty cells, got %d", NumCells-2, len(cells))
	}
	for _, p := range cells {
		if p == (Point{7, 7}) || p == (Point{0, 0}) {
			t.Errorf("occupied cell %s listed as empty", p)
		}
	}
}

func TestString(t *testing.T) {
	g := New()
	play(t, g, Point{0, 0}, Point{1, 0})
	want := "A B C D E F G H I J K L M N O\nx o . . . . . . . . . . . . . 1"
	if s := g.String(); len(s) < len(want) || s[:len(want)] != want {
		t.Errorf("unexpected board print:\n%s", s)
	}
}

func BenchmarkClonePlace(b *testing.B) {
	g := New()
	for _, p := range tieFill()[:40] {
		if err := g.Place(p); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := g.Clone()
		if err := c.Place(Point{14, 14}); err != nil {
			b.Fatal(err)
		}
	}
}
