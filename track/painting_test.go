package track_test

import (
	"testing"
	"time"

	"github.com/louisbranch/playtrack/track"
)

func TestTrackColorChoiceHistory(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tracker := track.New(track.WithClock(func() time.Time { return now }))
	tracker.StartSession(track.SessionInfo{Kind: track.GamePainting})

	tracker.TrackColorChoice("#ff0000", now.Add(-100*time.Millisecond))
	tracker.TrackColorChoice("#00ff00", now.Add(-250*time.Millisecond))

	payload, err := tracker.Payload("")
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	painting, ok := payload.(track.PaintingPayload)
	if !ok {
		t.Fatalf("expected PaintingPayload, got %T", payload)
	}

	if len(painting.Colors) != 2 || painting.Colors[0] != "#ff0000" || painting.Colors[1] != "#00ff00" {
		t.Fatalf("unexpected color history %v", painting.Colors)
	}
	if len(painting.ColorLog) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(painting.ColorLog))
	}
	first := painting.ColorLog[0]
	if first.Color != "#ff0000" || first.ReactionMs != 100 || !first.Timestamp.Equal(now) {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if got := painting.ReactionTimes; len(got) != 2 || got[0] != 100 || got[1] != 250 {
		t.Fatalf("unexpected derived reaction times %v", got)
	}

	actions := tracker.Actions()
	if len(actions) != 2 || actions[0].Kind != "color_choice" {
		t.Fatalf("expected color_choice actions, got %+v", actions)
	}
	if actions[0].Data["color"] != "#ff0000" {
		t.Fatalf("expected color in action data, got %v", actions[0].Data)
	}
}
