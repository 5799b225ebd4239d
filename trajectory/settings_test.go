package trajectory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()
	assert.Equal(t, 500, s.Width)
	assert.Equal(t, 300, s.Height)
	assert.Equal(t, 10, s.SpawnCount)
	assert.Equal(t, 0.5, s.VerticalScale)
	assert.Equal(t, 8, s.MinVelocity)
	assert.Equal(t, 24, s.MaxVelocity)
	assert.Equal(t, 500*time.Millisecond, s.SpawnInterval)
	assert.NoError(t, s.Validate())
}

func TestSettings_Validate(t *testing.T) {
	cases := map[string]func(*Settings){
		"zero width":      func(s *Settings) { s.Width = 0 },
		"negative height": func(s *Settings) { s.Height = -1 },
		"negative spawn":  func(s *Settings) { s.SpawnCount = -1 },
		"negative min":    func(s *Settings) { s.MinVelocity = -1 },
		"inverted bounds": func(s *Settings) { s.MinVelocity, s.MaxVelocity = 30, 10 },
		"zero scale":      func(s *Settings) { s.VerticalScale = 0 },
		"negative period": func(s *Settings) { s.SpawnInterval = -time.Second },
	}
	for name, mutate := range cases {
		s := NewSettings()
		mutate(&s)
		assert.Error(t, s.Validate(), name)
	}
}
