package gui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name        string      `json:"name"`
	Board       tcell.Color `json:"board"`
	BoardAlt    tcell.Color `json:"boardAlt"`
	Grid        tcell.Color `json:"grid"`
	Black       tcell.Color `json:"black"`
	White       tcell.Color `json:"white"`
	LastMove    tcell.Color `json:"lastMove"`
	Label       tcell.Color `json:"label"`
	Msg         tcell.Color `json:"msg"`
	PlayerNames tcell.Color `json:"playerNames"`
}

// ThemeHex is the serialisable form of a Theme
type ThemeHex struct {
	Name        string `json:"name"`
	Board       string `json:"board"`
	BoardAlt    string `json:"boardAlt"`
	Grid        string `json:"grid"`
	Black       string `json:"black"`
	White       string `json:"white"`
	LastMove    string `json:"lastMove"`
	Label       string `json:"label"`
	Msg         string `json:"msg"`
	PlayerNames string `json:"playerNames"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func parseHex(s string) tcell.Color {
	if s == "#0" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(s)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Board.Hex()),
		fmtHex(t.BoardAlt.Hex()),
		fmtHex(t.Grid.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.LastMove.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.PlayerNames.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		parseHex(t.Board),
		parseHex(t.BoardAlt),
		parseHex(t.Grid),
		parseHex(t.Black),
		parseHex(t.White),
		parseHex(t.LastMove),
		parseHex(t.Label),
		parseHex(t.Msg),
		parseHex(t.PlayerNames),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// ThemeByName looks up one of the built-in themes
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q", name)
}

// LookupTheme finds name among the custom themes first, then among the
// built-in ones.
func LookupTheme(name string, custom []ThemeHex) (Theme, error) {
	if t, err := ImportThemes(name, custom); err == nil {
		return t, nil
	}
	return ThemeByName(name)
}

// ThemeBasic is the default theme, a wooden board
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color179,     // Board
	tcell.Color180,     // BoardAlt
	tcell.Color94,      // Grid
	tcell.Color232,     // Black
	tcell.Color231,     // White
	tcell.Color160,     // LastMove
	tcell.Color247,     // Label
	tcell.Color160,     // Msg
	tcell.ColorDefault, // PlayerNames
}

// ThemeDark keeps the terminal background
var ThemeDark = Theme{
	"dark",             // Name
	tcell.ColorDefault, // Board
	tcell.Color235,     // BoardAlt
	tcell.Color240,     // Grid
	tcell.Color45,      // Black
	tcell.Color222,     // White
	tcell.Color196,     // LastMove
	tcell.Color247,     // Label
	tcell.Color203,     // Msg
	tcell.ColorDefault, // PlayerNames
}

var Themes = []Theme{ThemeBasic, ThemeDark}
