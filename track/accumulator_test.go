package track_test

import (
	"testing"
	"time"

	"github.com/louisbranch/playtrack/track"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestRecordMistakeCounts(t *testing.T) {
	tracker := track.New()
	tracker.StartSession(track.SessionInfo{SessionID: "s1"})

	labels := []string{"attention", "inhibition", "attention", "", "attention"}
	for _, label := range labels {
		tracker.RecordMistake(label)
	}

	if got := tracker.Mistakes(); got != len(labels) {
		t.Fatalf("expected %d mistakes, got %d", len(labels), got)
	}
	types := tracker.MistakeTypes()
	if types["attention"] != 3 {
		t.Fatalf("expected 3 attention mistakes, got %d", types["attention"])
	}
	if types["inhibition"] != 1 {
		t.Fatalf("expected 1 inhibition mistake, got %d", types["inhibition"])
	}
	if types[track.MistakeUnknown] != 1 {
		t.Fatalf("expected 1 unknown mistake, got %d", types[track.MistakeUnknown])
	}
	if got := len(tracker.Actions()); got != len(labels) {
		t.Fatalf("expected %d action-log entries, got %d", len(labels), got)
	}
}

func TestRecordReactionElapsed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := track.New(track.WithClock(fixedClock(now)))

	elapsed := tracker.RecordReaction(now.Add(-150*time.Millisecond), nil)
	if elapsed != 150 {
		t.Fatalf("expected 150ms, got %d", elapsed)
	}
	if got := tracker.ReactionTimes(); len(got) != 1 || got[0] != 150 {
		t.Fatalf("expected [150], got %v", got)
	}
}

func TestRecordReactionZeroMarker(t *testing.T) {
	tracker := track.New()

	elapsed := tracker.RecordReaction(time.Time{}, nil)
	if elapsed != 0 {
		t.Fatalf("expected 0 for zero marker, got %d", elapsed)
	}
	if got := tracker.ReactionTimes(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected a single 0 sample, got %v", got)
	}
}

func TestRecordReactionFutureMarkerClampsToZero(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := track.New(track.WithClock(fixedClock(now)))

	if elapsed := tracker.RecordReaction(now.Add(time.Second), nil); elapsed != 0 {
		t.Fatalf("expected 0 for future marker, got %d", elapsed)
	}
}

func TestRecordReactionRoundsToMilliseconds(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := track.New(track.WithClock(fixedClock(now)))

	elapsed := tracker.RecordReaction(now.Add(-1500*time.Microsecond), nil)
	if elapsed != 2 {
		t.Fatalf("expected 1.5ms to round to 2, got %d", elapsed)
	}
}

func TestRecordReactionLogsAction(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := track.New(track.WithClock(fixedClock(now)))

	tracker.RecordReaction(now.Add(-40*time.Millisecond), &track.Action{
		Kind: "answer",
		Data: map[string]any{"question": "q1"},
	})

	actions := tracker.Actions()
	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Kind != "answer" {
		t.Fatalf("expected answer action, got %q", actions[0].Kind)
	}
	if actions[0].Data["question"] != "q1" {
		t.Fatalf("expected question data preserved, got %v", actions[0].Data)
	}
	if actions[0].Data["reaction_ms"] != int64(40) {
		t.Fatalf("expected elapsed merged into data, got %v", actions[0].Data["reaction_ms"])
	}
	if !actions[0].Timestamp.Equal(now) {
		t.Fatalf("expected timestamp %v, got %v", now, actions[0].Timestamp)
	}
}

func TestRecordHintRunningCount(t *testing.T) {
	tracker := track.New()

	tracker.RecordHint()
	tracker.RecordHint()

	if got := tracker.Hints(); got != 2 {
		t.Fatalf("expected 2 hints, got %d", got)
	}
	actions := tracker.Actions()
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}
	if actions[1].Data["hints_used"] != 2 {
		t.Fatalf("expected running count 2, got %v", actions[1].Data["hints_used"])
	}
}
