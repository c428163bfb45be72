package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/qnkhuat/gomokuterm/pkg"
	"github.com/qnkhuat/gomokuterm/pkg/config"
	"github.com/qnkhuat/gomokuterm/pkg/game"
)

const (
	minWidth  = 80
	minHeight = game.BoardSize + 4
)

var (
	configPath string
	logPath    string
	blackFlag  string
	whiteFlag  string
	quotaFlag  int
	seedFlag   int64
	themeFlag  string
	saveFlag   bool
)

func main() {
	flag.StringVar(&configPath, "config", config.DefaultPath, "path to settings file")
	flag.StringVar(&logPath, "log", "", "path to log file")
	flag.StringVar(&blackFlag, "black", "", "strategy playing black: human, random, nonconfrontational or smart")
	flag.StringVar(&whiteFlag, "white", "", "strategy playing white")
	flag.IntVar(&quotaFlag, "quota", 0, "evaluations per move for smart players")
	flag.Int64Var(&seedFlag, "seed", 0, "random seed, 0 picks one")
	flag.StringVar(&themeFlag, "theme", "", "colour theme: basic or dark")
	flag.BoolVar(&saveFlag, "save", false, "write the resulting settings back to the settings file")
	flag.Parse()

	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %s\n", err)
		os.Exit(1)
	}
	applyFlags(settings)
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %s\n", err)
		os.Exit(1)
	}
	if saveFlag {
		if err := config.Store(configPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save settings: %s\n", err)
			os.Exit(1)
		}
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		fmt.Fprintln(os.Stderr, "failed to start gomokuterm: non-interactive terminals are not supported")
		os.Exit(1)
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < minWidth || h < minHeight) {
		fmt.Fprintf(os.Stderr, "terminal is %dx%d, at least %dx%d is needed\n", w, h, minWidth, minHeight)
		os.Exit(1)
	}

	pkg.InitLog(settings.LogPath, "GOMOKU: ")
	log.Println("New Client")

	cl, err := pkg.NewClient(settings)
	if err != nil {
		log.Fatalf("failed to start client: %s", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		select {
		case <-sigc:
			cl.Quit()
		case <-cl.Done():
		}
	}()

	if err := cl.Run(); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}
	cl.Quit()
}

func applyFlags(s *config.Settings) {
	if logPath != "" {
		s.LogPath = logPath
	}
	if blackFlag != "" {
		s.Black = &config.SideSettings{Strategy: blackFlag}
	}
	if whiteFlag != "" {
		s.White = &config.SideSettings{Strategy: whiteFlag}
	}
	if quotaFlag > 0 {
		s.Black.Quota = quotaFlag
		s.White.Quota = quotaFlag
	}
	if seedFlag != 0 {
		s.Seed = seedFlag
	}
	if themeFlag != "" {
		s.Theme = themeFlag
	}
}
