package track

import "time"

// ColorChoice is one timestamped color pick in the Painting game.
type ColorChoice struct {
	Color      string    `json:"color"`
	Timestamp  time.Time `json:"timestamp"`
	ReactionMs int64     `json:"reaction_ms"`
}

type paintingState struct {
	colors  []string
	choices []ColorChoice
}

// TrackColorChoice records a color pick in the Painting game. The
// start marker is the instant the palette was presented; a zero
// marker records an elapsed time of 0.
func (t *Tracker) TrackColorChoice(color string, start time.Time) {
	elapsed := t.RecordReaction(start, &Action{
		Kind: "color_choice",
		Data: map[string]any{"color": color},
	})
	t.painting.colors = append(t.painting.colors, color)
	t.painting.choices = append(t.painting.choices, ColorChoice{
		Color:      color,
		Timestamp:  t.clock()().UTC(),
		ReactionMs: elapsed,
	})
}
