package track

import (
	"fmt"
	"time"
)

// ImageView is one image-view event in the Choice game.
type ImageView struct {
	ImageID   string    `json:"image_id"`
	RoundID   int       `json:"round_id"`
	Timestamp time.Time `json:"timestamp"`
}

type choiceState struct {
	// order preserves first-selection round order for derived lists.
	order      []int
	selections map[string]any
	reaction   map[int]int64
	views      []ImageView
}

func newChoiceState() choiceState {
	return choiceState{
		selections: map[string]any{},
		reaction:   map[int]int64{},
		views:      []ImageView{},
	}
}

// roundKey formats the selection key for a round.
func roundKey(roundID int) string {
	return fmt.Sprintf("round_%d", roundID)
}

// TrackImageView records that an image was shown in a round. Pure
// logging; no reaction time is computed.
func (t *Tracker) TrackImageView(imageID string, roundID int) {
	t.choice.views = append(t.choice.views, ImageView{
		ImageID:   imageID,
		RoundID:   roundID,
		Timestamp: t.clock()().UTC(),
	})
}

// TrackSelection records the value selected for a round in the Choice
// game, keyed as "round_<roundID>" in the payload. Re-selecting a
// round overwrites its value and reaction time.
func (t *Tracker) TrackSelection(roundID int, value any, start time.Time) {
	elapsed := t.RecordReaction(start, &Action{
		Kind: "selection",
		Data: map[string]any{"round": roundID, "value": value},
	})

	key := roundKey(roundID)
	if _, selected := t.choice.selections[key]; !selected {
		t.choice.order = append(t.choice.order, roundID)
	}
	t.choice.selections[key] = value
	t.choice.reaction[roundID] = elapsed
}
