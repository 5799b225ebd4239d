package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lelandbatey/bouncing-block/palette"
)

// TestBouncerGracefulDegradation verifies calls are safe without a speaker
func TestBouncerGracefulDegradation(t *testing.T) {
	b := NewBouncer(palette.Xterm(""))

	assert.NotPanics(t, func() {
		assert.False(t, b.Bounce(palette.Xterm("").Entries()[0].Cell))
		b.NextFrame()
		b.Cleanup()
	})
	played, _ := b.Counts()
	assert.Equal(t, 0, played)
}

func TestBouncer_RateLimitPerFrame(t *testing.T) {
	b := NewBouncer(nil)
	b.SetPerFrame(2)

	granted := 0
	for i := 0; i < 5; i++ {
		if b.take() {
			granted++
		}
	}
	_, dropped := b.Counts()
	assert.Equal(t, 2, granted)
	assert.Equal(t, 3, dropped)

	b.NextFrame()
	assert.True(t, b.take(), "budget refilled after NextFrame")
	_, dropped = b.Counts()
	assert.Equal(t, 3, dropped)
}

func TestBouncer_MuteWithZeroBudget(t *testing.T) {
	b := NewBouncer(nil)
	b.SetPerFrame(-1)
	b.NextFrame()
	assert.False(t, b.take())
	_, dropped := b.Counts()
	assert.Equal(t, 1, dropped)
}

func TestBouncer_ClosedSpeakerLeavesBudgetAlone(t *testing.T) {
	b := NewBouncer(nil)
	b.SetPerFrame(2)

	for i := 0; i < 10; i++ {
		assert.False(t, b.Bounce("x"))
	}
	played, dropped := b.Counts()
	assert.Zero(t, played)
	assert.Zero(t, dropped, "bounces without a speaker are not rate-limit drops")
	assert.True(t, b.take())
	assert.True(t, b.take())
}

// TestBouncerInitialization may skip on hosts without an audio device
func TestBouncerInitialization(t *testing.T) {
	b := NewBouncer(palette.Xterm(""))
	if err := b.Initialize(); err != nil {
		t.Skipf("audio device unavailable: %v", err)
	}
	defer b.Cleanup()

	assert.NoError(t, b.Initialize(), "second Initialize is a no-op")
	assert.True(t, b.Bounce(palette.Xterm("").Entries()[3].Cell))
}
