package tui

import (
	"time"

	"github.com/vovakirdan/astrododge/internal/core"
)

// Terminals report no key-up, only an initial press followed by auto-repeats
// once the repeat delay has passed (about 500 ms on GNOME and Windows, 660 ms
// on X11). A key therefore counts as held for DefaultFirstHold after a fresh
// press, long enough to reach the first repeat, and each repeat then extends
// the hold by DefaultRepeatHold.
const (
	DefaultFirstHold  = 700 * time.Millisecond
	DefaultRepeatHold = 100 * time.Millisecond
)

// heldKeys tracks which steering directions are currently held.
type heldKeys struct {
	first  time.Duration
	repeat time.Duration
	until  map[core.Action]time.Time
}

func newHeldKeys(first, repeat time.Duration) *heldKeys {
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &heldKeys{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Action]time.Time),
	}
}

// opposite returns the direction on the same axis.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key event for a direction. An event for a key that is not
// held starts the first-press window; an event for a held key is a repeat and
// extends the hold without ever shortening it. Pressing a direction releases
// its opposite, so reversing does not leave the old key stuck.
func (h *heldKeys) Press(a core.Action, now time.Time) {
	delete(h.until, opposite(a))

	until, held := h.until[a]
	if !held || now.After(until) {
		h.until[a] = now.Add(h.first)
		return
	}
	if ext := now.Add(h.repeat); ext.After(until) {
		h.until[a] = ext
	}
}

// Apply sets every direction still held at now on the frame and forgets the
// expired ones.
func (h *heldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Release forgets all held directions.
func (h *heldKeys) Release() {
	clear(h.until)
}
