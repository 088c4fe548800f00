// Package script loads recorded session scripts and replays them
// through a tracker. Scripts are the CLI's way of exercising the
// library against a live platform.
package script

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/playtrack/track"
)

// Event kinds accepted in a script.
const (
	EventColor         = "color"
	EventStartQuestion = "start_question"
	EventAnswer        = "answer"
	EventView          = "view"
	EventSelection     = "selection"
	EventMistake       = "mistake"
	EventHint          = "hint"
)

// Session identifies the scripted play-through. Empty fields fall
// back to CLI configuration.
type Session struct {
	SessionID string `yaml:"session_id"`
	UserID    string `yaml:"user_id"`
	Game      string `yaml:"game"`
	BaseURL   string `yaml:"base_url"`
}

// Event is one recorded tracking call. DelayMs is the reaction delay
// the event is replayed with; zero records a reaction time of 0.
type Event struct {
	Kind     string `yaml:"kind"`
	DelayMs  int64  `yaml:"delay_ms"`
	Color    string `yaml:"color"`
	Question string `yaml:"question"`
	Value    any    `yaml:"value"`
	Image    string `yaml:"image"`
	Round    int    `yaml:"round"`
	Label    string `yaml:"label"`
}

// Script is a full recorded session: who played, and what happened.
type Script struct {
	Session Session `yaml:"session"`
	Events  []Event `yaml:"events"`
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML script and validates its event kinds.
func Parse(raw []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, e := range s.Events {
		switch e.Kind {
		case EventColor, EventStartQuestion, EventAnswer, EventView,
			EventSelection, EventMistake, EventHint:
		default:
			return Script{}, fmt.Errorf("event %d: unknown kind %q", i, e.Kind)
		}
	}
	return s, nil
}

// Replay starts a session on the tracker and feeds it the script's
// events in order. Reaction delays are simulated by back-dating each
// event's start marker, so replays complete immediately while still
// recording the scripted reaction times.
func Replay(t *track.Tracker, s Script) error {
	t.StartSession(track.SessionInfo{
		SessionID: s.Session.SessionID,
		UserID:    s.Session.UserID,
		Kind:      track.GameKind(s.Session.Game),
		BaseURL:   s.Session.BaseURL,
	})

	for i, e := range s.Events {
		var start time.Time
		if e.DelayMs > 0 {
			start = time.Now().Add(-time.Duration(e.DelayMs) * time.Millisecond)
		}

		switch e.Kind {
		case EventColor:
			t.TrackColorChoice(e.Color, start)
		case EventStartQuestion:
			t.StartQuestion(e.Question)
		case EventAnswer:
			t.TrackAnswer(e.Question, e.Value, start)
		case EventView:
			t.TrackImageView(e.Image, e.Round)
		case EventSelection:
			t.TrackSelection(e.Round, e.Value, start)
		case EventMistake:
			t.RecordMistake(e.Label)
		case EventHint:
			t.RecordHint()
		default:
			return fmt.Errorf("event %d: unknown kind %q", i, e.Kind)
		}
	}
	return nil
}
