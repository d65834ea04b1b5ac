package dodge

import "time"

// State is the phase of a round.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns the score and the Playing/GameOver transitions.
// It is the only writer of State, Score and HighScore.
type Session struct {
	State     State
	Score     int           // Whole seconds survived this round
	HighScore int           // Best final score in this process
	StartedAt time.Duration // Session clock time the round began
	Struck    bool          // Player is drawn as hit
	Overlay   bool          // Game-over overlay visible
}

// NewSession starts a round at now.
func NewSession(now time.Duration) *Session {
	return &Session{State: StatePlaying, StartedAt: now}
}

// Playing reports whether the round is live.
func (s *Session) Playing() bool {
	return s.State == StatePlaying
}

// Tick recomputes the score from elapsed time. No-op after game over.
func (s *Session) Tick(now time.Duration) {
	if !s.Playing() {
		return
	}
	elapsed := now - s.StartedAt
	if elapsed < 0 {
		elapsed = 0
	}
	s.Score = int(elapsed / time.Second)
}

// End moves Playing to GameOver, freezing the score and raising the high
// score if it was beaten. Returns false if the round had already ended.
func (s *Session) End() bool {
	if !s.Playing() {
		return false
	}
	s.State = StateGameOver
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	s.Struck = true
	s.Overlay = true
	return true
}

// Restart moves GameOver back to Playing with a zero score starting at now.
// The high score survives. Returns false while a round is still live.
func (s *Session) Restart(now time.Duration) bool {
	if s.Playing() {
		return false
	}
	*s = Session{
		State:     StatePlaying,
		HighScore: s.HighScore,
		StartedAt: now,
	}
	return true
}
