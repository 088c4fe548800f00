package track

import "time"

type dialogState struct {
	// order preserves first-answer order so derived lists are stable.
	order    []string
	answers  map[string]any
	reaction map[string]int64
	changes  map[string]int
	pending  map[string]time.Time
}

func newDialogState() dialogState {
	return dialogState{
		answers:  map[string]any{},
		reaction: map[string]int64{},
		changes:  map[string]int{},
		pending:  map[string]time.Time{},
	}
}

// StartQuestion stores a start marker for the question, overwriting
// any prior one. The marker is consumed by the matching TrackAnswer
// call.
func (t *Tracker) StartQuestion(questionID string) {
	t.dialog.pending[questionID] = t.clock()()
}

// TrackAnswer records an answer in the Dialog game. A zero start
// marker falls back to the marker stored by StartQuestion; when
// neither exists the elapsed time is 0. Re-answering an already
// answered question increments its change counter and overwrites the
// stored answer and reaction time.
func (t *Tracker) TrackAnswer(questionID string, value any, start time.Time) {
	if start.IsZero() {
		start = t.dialog.pending[questionID]
	}
	delete(t.dialog.pending, questionID)

	elapsed := t.RecordReaction(start, &Action{
		Kind: "answer",
		Data: map[string]any{"question": questionID, "value": value},
	})

	if _, answered := t.dialog.answers[questionID]; answered {
		t.dialog.changes[questionID]++
	} else {
		t.dialog.order = append(t.dialog.order, questionID)
	}
	t.dialog.answers[questionID] = value
	t.dialog.reaction[questionID] = elapsed
}

// AnswerChanges returns a copy of the per-question answer-change
// counters. Questions answered exactly once are absent.
func (t *Tracker) AnswerChanges() map[string]int {
	out := make(map[string]int, len(t.dialog.changes))
	for k, v := range t.dialog.changes {
		out[k] = v
	}
	return out
}
