package track

import (
	"math"
	"time"
)

// MistakeUnknown is the label recorded for mistakes reported without
// a type.
const MistakeUnknown = "unknown"

// Action is one entry in the session's chronological action log.
type Action struct {
	Kind      string         `json:"kind"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// accumulator is the shared per-session event state. It is only ever
// appended to or incremented; StartSession replaces it outright.
type accumulator struct {
	reactionTimes []int64
	mistakes      int
	mistakeTypes  map[string]int
	hintsUsed     int
	actions       []Action
}

func newAccumulator() accumulator {
	return accumulator{
		reactionTimes: []int64{},
		mistakeTypes:  map[string]int{},
		actions:       []Action{},
	}
}

// RecordReaction computes the elapsed milliseconds between start and
// now and appends the rounded value to the shared reaction-time
// sequence. A zero or future start marker yields 0. When action is
// non-nil an action-log entry is appended carrying the action's data
// merged with the elapsed value.
//
// This is the single primitive every per-game tracking call goes
// through, which keeps the shared sequence and the per-game
// derivations in the same units.
func (t *Tracker) RecordReaction(start time.Time, action *Action) int64 {
	now := t.clock()()

	var elapsed int64
	if !start.IsZero() {
		if d := now.Sub(start); d > 0 {
			elapsed = int64(math.Round(float64(d) / float64(time.Millisecond)))
		}
	}

	t.acc.reactionTimes = append(t.acc.reactionTimes, elapsed)

	if action != nil {
		data := make(map[string]any, len(action.Data)+1)
		for k, v := range action.Data {
			data[k] = v
		}
		data["reaction_ms"] = elapsed
		t.appendAction(Action{Kind: action.Kind, Data: data, Timestamp: now.UTC()})
	}
	return elapsed
}

// RecordMistake increments the mistake count and the per-type
// breakdown. An empty label is coerced to MistakeUnknown.
func (t *Tracker) RecordMistake(label string) {
	if label == "" {
		label = MistakeUnknown
	}
	t.acc.mistakes++
	t.acc.mistakeTypes[label]++
	t.appendAction(Action{
		Kind:      "mistake",
		Data:      map[string]any{"type": label},
		Timestamp: t.clock()().UTC(),
	})
}

// RecordHint increments the hint counter and logs the running total.
func (t *Tracker) RecordHint() {
	t.acc.hintsUsed++
	t.appendAction(Action{
		Kind:      "hint",
		Data:      map[string]any{"hints_used": t.acc.hintsUsed},
		Timestamp: t.clock()().UTC(),
	})
}

func (t *Tracker) appendAction(a Action) {
	t.acc.actions = append(t.acc.actions, a)
}

// ReactionTimes returns a copy of the shared reaction-time sequence.
func (t *Tracker) ReactionTimes() []int64 {
	return append([]int64(nil), t.acc.reactionTimes...)
}

// Mistakes returns the total mistake count for the session.
func (t *Tracker) Mistakes() int {
	return t.acc.mistakes
}

// MistakeTypes returns a copy of the per-label mistake counts.
func (t *Tracker) MistakeTypes() map[string]int {
	out := make(map[string]int, len(t.acc.mistakeTypes))
	for k, v := range t.acc.mistakeTypes {
		out[k] = v
	}
	return out
}

// Hints returns the number of hints used in the session.
func (t *Tracker) Hints() int {
	return t.acc.hintsUsed
}

// Actions returns a copy of the session's action log.
func (t *Tracker) Actions() []Action {
	return append([]Action(nil), t.acc.actions...)
}
