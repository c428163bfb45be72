package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/qnkhuat/gomokuterm/pkg/ai"
	"github.com/qnkhuat/gomokuterm/pkg/game"
	"github.com/qnkhuat/gomokuterm/pkg/gui"
)

const DefaultPath = "gomokuterm.json"

// SideSettings selects who plays one colour.
type SideSettings struct {
	Strategy string `json:"strategy,omitempty"`
	Quota    int    `json:"quota,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

type ArenaSettings struct {
	Games   int `json:"games,omitempty"`
	Workers int `json:"workers,omitempty"`
}

type Settings struct {
	Black   *SideSettings  `json:"black,omitempty"`
	White   *SideSettings  `json:"white,omitempty"`
	Seed    int64          `json:"seed,omitempty"`
	Theme   string         `json:"theme,omitempty"`
	LogPath string         `json:"log_path,omitempty"`
	Arena   *ArenaSettings `json:"arena,omitempty"`

	// Themes are looked up by name before the built-in ones.
	Themes []gui.ThemeHex `json:"themes,omitempty"`
}

func defaultArena() *ArenaSettings {
	return &ArenaSettings{
		Games:   100,
		Workers: 4,
	}
}

func NewSettings() *Settings {
	return &Settings{
		Black:   &SideSettings{Strategy: ai.NameHuman},
		White:   &SideSettings{Strategy: ai.NameSmart, Quota: ai.DefaultQuota},
		Theme:   "basic",
		LogPath: "./log",
		Arena:   defaultArena(),
	}
}

// Side returns the settings for the given colour.
func (s *Settings) Side(p game.Player) *SideSettings {
	if p == game.Black {
		return s.Black
	}
	return s.White
}

func (s *Settings) Validate() error {
	for _, p := range []game.Player{game.Black, game.White} {
		side := s.Side(p)
		if side == nil {
			return fmt.Errorf("settings: missing %s player", p)
		}
		if side.Strategy == ai.NameHuman {
			continue
		}
		if _, err := ai.New(side.Strategy, side.Quota); err != nil {
			return fmt.Errorf("settings: %s player: %w", p, err)
		}
		if side.Quota < 0 {
			return fmt.Errorf("settings: %s player: negative quota %d", p, side.Quota)
		}
	}
	if s.Arena == nil {
		return errors.New("settings: missing arena settings")
	}
	if s.Arena.Games < 0 || s.Arena.Workers < 0 {
		return errors.New("settings: arena games and workers must not be negative")
	}
	if _, err := gui.LookupTheme(s.Theme, s.Themes); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Settings, error) {
	settings := NewSettings()
	data, err := ioutil.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	} else if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("settings: failed to parse %s: %w", path, err)
	}
	if settings.Arena == nil {
		settings.Arena = defaultArena()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func Store(path string, settings *Settings) error {
	if settings == nil {
		return errors.New("settings is nil")
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ioutil.WriteFile(path, data, 0666)
}
