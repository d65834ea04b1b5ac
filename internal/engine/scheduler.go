package engine

import "time"

type timer struct {
	due    time.Duration
	period time.Duration // zero for one-shot
	seq    uint64
	fn     func()
}

// Scheduler runs delayed callbacks against a Clock.
// Timers cannot be cancelled; callbacks are expected to check whatever state
// makes them obsolete and return early.
type Scheduler struct {
	clock  *Clock
	timers []*timer
	seq    uint64
}

// NewScheduler creates a scheduler bound to clock.
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once, delay after the current clock time.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	s.add(delay, 0, fn)
}

// Every schedules fn to run every period, first firing one period from now.
func (s *Scheduler) Every(period time.Duration, fn func()) {
	if period <= 0 {
		period = time.Millisecond
	}
	s.add(period, period, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.timers = append(s.timers, &timer{
		due:    s.clock.Now() + delay,
		period: period,
		seq:    s.seq,
		fn:     fn,
	})
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Run fires every timer due at or before the current clock time, earliest
// first, ties broken by scheduling order. A repeating timer that fell behind
// fires once per missed period. Returns the number of callbacks invoked.
func (s *Scheduler) Run() int {
	now := s.clock.Now()
	fired := 0

	for {
		idx := -1
		for i, t := range s.timers {
			if t.due > now {
				continue
			}
			if idx < 0 || t.due < s.timers[idx].due ||
				(t.due == s.timers[idx].due && t.seq < s.timers[idx].seq) {
				idx = i
			}
		}
		if idx < 0 {
			return fired
		}

		t := s.timers[idx]
		if t.period > 0 {
			t.due += t.period
		} else {
			s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		}
		t.fn()
		fired++
	}
}
