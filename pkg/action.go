package pkg

import "github.com/gdamore/tcell/v2"

type Action string

const (
	ActionPlace   Action = "Place stone"
	ActionNewGame Action = "New game"
	ActionExit    Action = "Exit"
	ActionUnknown Action = ""
)

// Key bindings on top of the table's own cursor movement.
var keyActions = map[rune]Action{
	'n': ActionNewGame,
	'N': ActionNewGame,
	'q': ActionExit,
	'Q': ActionExit,
}

func actionForKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionExit
	case tcell.KeyEnter:
		return ActionPlace
	case tcell.KeyRune:
		return keyActions[ev.Rune()]
	}
	return ActionUnknown
}

const helpText = "arrows/hjkl move, enter places a stone, n new game, q quit"
