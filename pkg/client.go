package pkg

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/gomokuterm/pkg/ai"
	"github.com/qnkhuat/gomokuterm/pkg/config"
	"github.com/qnkhuat/gomokuterm/pkg/game"
	"github.com/qnkhuat/gomokuterm/pkg/gui"
)

const RefreshInterval = time.Second

// Seat is one side of the board: a strategy, the human behind it if any,
// and the time it has spent thinking.
type Seat struct {
	Player   game.Player
	Name     string
	Strategy ai.Strategy
	Human    *ai.Human
	Clock    *Clock
}

func NewSeat(p game.Player, side *config.SideSettings) (*Seat, error) {
	seat := &Seat{Player: p, Name: side.Nickname, Clock: NewClock()}
	if side.Strategy == ai.NameHuman {
		if seat.Name == "" {
			seat.Name = os.Getenv("USER")
		}
		if seat.Name == "" {
			seat.Name = "you"
		}
		seat.Human = ai.NewHuman(seat.Name)
		seat.Strategy = seat.Human
		return seat, nil
	}

	s, err := ai.New(side.Strategy, side.Quota)
	if err != nil {
		return nil, err
	}
	seat.Strategy = s
	if seat.Name == "" {
		seat.Name = petname.Generate(2, "-")
	}
	return seat, nil
}

type Client struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Layout *tview.Grid
	Theme  gui.Theme

	seats [2]*Seat
	rng   *rand.Rand

	mu      sync.Mutex
	game    *game.Game
	message string
	waiting bool
	games   int

	newGame  chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

func NewClient(settings *config.Settings) (*Client, error) {
	theme, err := gui.LookupTheme(settings.Theme, settings.Themes)
	if err != nil {
		return nil, err
	}

	var seats [2]*Seat
	for _, p := range []game.Player{game.Black, game.White} {
		seat, err := NewSeat(p, settings.Side(p))
		if err != nil {
			return nil, fmt.Errorf("%s player: %w", p, err)
		}
		seats[p] = seat
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Seed %d, %s (%s) vs %s (%s)", seed,
		seats[game.Black].Name, seats[game.Black].Strategy.Name(),
		seats[game.White].Name, seats[game.White].Strategy.Name())

	app := tview.NewApplication()
	board := tview.NewTable()
	status := tview.NewTextView().
		SetDynamicColors(true)
	help := tview.NewTextView().
		SetText(helpText)

	layout := tview.NewGrid().
		SetRows(-1, game.BoardSize+1, 2, -1).
		SetColumns(-1, (game.BoardSize+1)*3, 40, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(status, 1, 2, 1, 1, 0, 0, false).
		AddItem(help, 2, 1, 1, 2, 0, 0, false).
		AddItem(tview.NewBox(), 3, 0, 1, 4, 0, 0, false)

	cl := &Client{
		App:     app,
		Board:   board,
		Status:  status,
		Layout:  layout,
		Theme:   theme,
		seats:   seats,
		rng:     rand.New(rand.NewSource(seed)),
		game:    game.New(),
		newGame: make(chan struct{}, 1),
		quit:    make(chan struct{}),
	}
	cl.initTable()

	return cl, nil
}

func (cl *Client) initTable() {
	cl.render()
	row, col := gui.PointToTable(game.Center)
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(row, col).
		SetSelectedFunc(cl.place)
	cl.Board.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch actionForKey(ev) {
		case ActionExit:
			cl.Quit()
			return nil
		case ActionNewGame:
			cl.requestNewGame()
			return nil
		}
		return ev
	})
}

// Game returns a copy of the game on the board.
func (cl *Client) Game() *game.Game {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.game.Clone()
}

func (cl *Client) Run() error {
	go cl.loop()
	go cl.refresh()
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

func (cl *Client) Quit() {
	cl.quitOnce.Do(func() {
		log.Println("Quitting")
		for _, seat := range cl.seats {
			if seat.Human != nil {
				seat.Human.Leave()
			}
		}
		close(cl.quit)
		cl.App.Stop()
	})
}

// Done is closed once the client quits.
func (cl *Client) Done() <-chan struct{} {
	return cl.quit
}

// place handles a cell selected on the board. It runs on the UI goroutine.
func (cl *Client) place(row, col int) {
	p := gui.TableToPoint(row, col)
	g := cl.Game()
	mover, ok := g.State().ToMove()

	switch {
	case !p.InRange():
	case !ok:
		cl.setMessage("game over, press n for a new game")
	case cl.seats[mover].Human == nil:
		cl.setMessage(fmt.Sprintf("%s is thinking", cl.seats[mover].Name))
	case !g.CellAt(p).IsEmpty():
		cl.setMessage(fmt.Sprintf("%s is occupied", p))
	case !cl.seats[mover].Human.Submit(p):
		cl.setMessage("a move is already queued")
	}
	cl.render()
}

func (cl *Client) requestNewGame() {
	cl.mu.Lock()
	waiting := cl.waiting
	cl.mu.Unlock()
	if !waiting {
		cl.setMessage("finish this game first")
		cl.render()
		return
	}
	select {
	case cl.newGame <- struct{}{}:
	default:
	}
}

func (cl *Client) setMessage(msg string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.message = msg
}

// render redraws the widgets. It must run on the UI goroutine, other
// goroutines go through draw.
func (cl *Client) render() {
	cl.mu.Lock()
	g := cl.game.Clone()
	msg := cl.message
	cl.mu.Unlock()

	var lines [2]gui.PlayerLine
	for i, seat := range cl.seats {
		lines[i] = gui.PlayerLine{
			Player:   seat.Player,
			Name:     seat.Name,
			Strategy: seat.Strategy.Name(),
			Thinking: seat.Clock.Total(),
		}
	}
	gui.RenderBoard(cl.Board, g, cl.Theme)
	cl.Status.SetText(gui.StatusText(g, lines, msg, cl.Theme))
}

func (cl *Client) draw() {
	cl.App.QueueUpdateDraw(cl.render)
}

func (cl *Client) refresh() {
	t := time.NewTicker(RefreshInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			cl.draw()
		case <-cl.quit:
			return
		}
	}
}

// waitNewGame blocks until a new game is requested. It reports false when
// the client quits instead.
func (cl *Client) waitNewGame() bool {
	cl.mu.Lock()
	cl.waiting = true
	cl.mu.Unlock()

	select {
	case <-cl.newGame:
	case <-cl.quit:
		return false
	}

	cl.mu.Lock()
	cl.game = game.New()
	cl.message = ""
	cl.waiting = false
	cl.games++
	n := cl.games
	cl.mu.Unlock()
	for _, seat := range cl.seats {
		seat.Clock.Reset()
		if seat.Human != nil {
			seat.Human.Discard()
		}
	}
	log.Printf("New game %d", n+1)
	cl.draw()
	return true
}

// loop drives the game: it asks the seat to move for a point, applies it
// and redraws, until the client quits.
func (cl *Client) loop() {
	for {
		select {
		case <-cl.quit:
			return
		default:
		}

		g := cl.Game()
		mover, ok := g.State().ToMove()
		if !ok {
			log.Printf("Game over: %s after %d moves\n%s", g.State(), g.Moves(), g)
			cl.setMessage("press n for a new game")
			cl.draw()
			if !cl.waitNewGame() {
				return
			}
			continue
		}

		seat := cl.seats[mover]
		seat.Clock.Start()
		p, err := seat.Strategy.GetMove(g, cl.rng)
		seat.Clock.Stop()
		if errors.Is(err, ai.ErrAborted) {
			return
		}
		if err != nil {
			log.Printf("%s (%s) failed to move: %s", seat.Name, seat.Strategy.Name(), err)
			cl.setMessage(err.Error())
			cl.draw()
			if !cl.waitNewGame() {
				return
			}
			continue
		}

		cl.mu.Lock()
		err = cl.game.Place(p)
		cl.mu.Unlock()
		if err != nil {
			log.Printf("%s (%s) played %s: %s", seat.Name, seat.Strategy.Name(), p, err)
			cl.setMessage(err.Error())
			cl.draw()
			if seat.Human == nil {
				if !cl.waitNewGame() {
					return
				}
			}
			continue
		}

		log.Printf("%s %s (%s) played %s", mover, seat.Name, seat.Strategy.Name(), p)
		cl.setMessage("")
		cl.draw()
	}
}
