package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/qnkhuat/gomokuterm/pkg"
	"github.com/qnkhuat/gomokuterm/pkg/ai"
	"github.com/qnkhuat/gomokuterm/pkg/arena"
	"github.com/qnkhuat/gomokuterm/pkg/config"
	"github.com/qnkhuat/gomokuterm/pkg/game"
)

var (
	configPath string
	logPath    string
	games      int
	workers    int
	seed       int64
	blackFlag  string
	whiteFlag  string
	quota      int
	colorFlag  string
	quiet      bool
)

func main() {
	flag.StringVar(&configPath, "config", config.DefaultPath, "path to settings file")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.IntVar(&games, "games", 0, "number of games to play")
	flag.IntVar(&workers, "workers", 0, "games played at once")
	flag.Int64Var(&seed, "seed", 0, "seed of the first game, 0 picks one")
	flag.StringVar(&blackFlag, "black", "", "strategy playing black, defaults to the settings file")
	flag.StringVar(&whiteFlag, "white", "", "strategy playing white, defaults to the settings file")
	flag.IntVar(&quota, "quota", 0, "evaluations per move for smart players, defaults to the settings file")
	flag.StringVar(&colorFlag, "color", "auto", "colour output: auto, always or never")
	flag.BoolVar(&quiet, "quiet", false, "only print the final tally")
	flag.Parse()

	settings, err := config.Load(configPath)
	if err != nil {
		fatalf("failed to load settings: %s", err)
	}
	if logPath != "" {
		settings.LogPath = logPath
	}
	if games <= 0 {
		games = settings.Arena.Games
	}
	if workers <= 0 {
		workers = settings.Arena.Workers
	}
	if seed == 0 {
		seed = settings.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch colorFlag {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	black, err := arena.StrategyFor(overrideSide(settings.Black, blackFlag), ai.NameRandom)
	if err != nil {
		fatalf("black: %s", err)
	}
	white, err := arena.StrategyFor(overrideSide(settings.White, whiteFlag), ai.NameSmart)
	if err != nil {
		fatalf("white: %s", err)
	}

	pkg.InitLog(settings.LogPath, "ARENA: ")
	log.Printf("Arena started: %d games of %s vs %s, seed %d", games, black.Name(), white.Name(), seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	blackWins := color.New(color.FgHiWhite, color.Bold).SprintFunc()
	whiteWins := color.New(color.FgHiBlue, color.Bold).SprintFunc()
	ties := color.New(color.FgYellow).SprintFunc()

	start := time.Now()
	tally, err := arena.Run(ctx, arena.Config{
		Games:   games,
		Workers: workers,
		Seed:    seed,
		Black:   black,
		White:   white,
		OnResult: func(r arena.Result) {
			if quiet {
				return
			}
			outcome := ties(r.State)
			if winner, ok := r.State.Winner(); ok {
				if winner == game.Black {
					outcome = blackWins(r.State)
				} else {
					outcome = whiteWins(r.State)
				}
			}
			fmt.Printf("%4d %-24s %s in %d moves, last %s\n", r.Index+1, r.Label, outcome, r.Moves, r.Last)
		},
	})
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "arena stopped after %d games: %s\n", tally.Games(), err)
	}

	fmt.Printf("%s (%s) vs %s (%s) in %s\n", black.Name(), blackWins("black"), white.Name(), whiteWins("white"),
		time.Since(start).Round(time.Millisecond))
	fmt.Println(tally)
	if err != nil {
		os.Exit(1)
	}
}

// overrideSide applies the command line on top of one side of the settings.
func overrideSide(side *config.SideSettings, strategy string) *config.SideSettings {
	s := *side
	if strategy != "" {
		s.Strategy = strategy
	}
	if quota > 0 {
		s.Quota = quota
	}
	return &s
}

func fatalf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
