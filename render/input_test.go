package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionPause},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionNone},
		{"resize", tcell.NewEventResize(80, 24), ActionResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandleEvent(tt.ev))
		})
	}
}

func TestPollEvents_ClosesAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	ch := make(chan tcell.Event, 8)
	go PollEvents(screen, ch, make(chan struct{}))

	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	// Init may queue a resize ahead of the key
	got := ActionNone
	for ev := range ch {
		if got = HandleEvent(ev); got != ActionResize {
			break
		}
	}
	assert.Equal(t, ActionPause, got)

	screen.Fini()
	for range ch {
	}
}

func TestPollEvents_ReturnsWhenReaderGone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	ch := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		PollEvents(screen, ch, done)
		close(finished)
	}()

	// Nobody reads ch, so the forwarder parks on the send
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("forwarder still blocked after done closed")
	}
	_, open := <-ch
	assert.False(t, open)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "quit", ActionQuit.String())
	assert.Equal(t, "none", Action(99).String())
}
