package dodge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionScoreIsWholeSeconds(t *testing.T) {
	s := NewSession(0)

	tests := []struct {
		now      time.Duration
		expected int
	}{
		{0, 0},
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{2500 * time.Millisecond, 2},
		{61 * time.Second, 61},
	}
	for _, tc := range tests {
		s.Tick(tc.now)
		assert.Equal(t, tc.expected, s.Score, "now=%v", tc.now)
	}
}

func TestSessionScoreRelativeToStart(t *testing.T) {
	s := NewSession(5 * time.Second)
	s.Tick(7500 * time.Millisecond)
	assert.Equal(t, 2, s.Score)
}

func TestSessionEnd(t *testing.T) {
	s := NewSession(0)
	s.Tick(12 * time.Second)

	assert.True(t, s.End())
	assert.Equal(t, StateGameOver, s.State)
	assert.Equal(t, 12, s.HighScore)
	assert.True(t, s.Struck)
	assert.True(t, s.Overlay)

	assert.False(t, s.End(), "second end is a no-op")

	s.Tick(30 * time.Second)
	assert.Equal(t, 12, s.Score, "score is frozen after game over")
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(0)
	assert.False(t, s.Restart(time.Second), "restart is only valid after game over")

	s.Tick(12 * time.Second)
	s.End()

	assert.True(t, s.Restart(40*time.Second))
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 12, s.HighScore)
	assert.Equal(t, 40*time.Second, s.StartedAt)
	assert.False(t, s.Struck)
	assert.False(t, s.Overlay)
}

func TestSessionHighScoreNeverDecreases(t *testing.T) {
	s := NewSession(0)
	rounds := []int{12, 5, 30, 0, 29}
	expected := []int{12, 12, 30, 30, 30}

	for i, secs := range rounds {
		s.Tick(s.StartedAt + time.Duration(secs)*time.Second)
		s.End()
		assert.Equal(t, expected[i], s.HighScore, "after round %d", i+1)
		s.Restart(s.StartedAt + time.Hour)
	}
}
