package render

import (
	"github.com/gdamore/tcell/v2"
)

// Action is what the frame loop should do in response to an event
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}

// HandleEvent maps screen events to loop actions
// q, Esc and Ctrl-C quit; p and space toggle pause
func HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return ActionQuit
			case 'p', 'P', ' ':
				return ActionPause
			}
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// PollEvents forwards screen events to ch until the screen is finalized
// or done closes. PollEvent returns nil after Fini
func PollEvents(screen tcell.Screen, ch chan<- tcell.Event, done <-chan struct{}) {
	defer close(ch)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case ch <- ev:
		case <-done:
			return
		}
	}
}
