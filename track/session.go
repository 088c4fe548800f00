package track

import (
	"time"

	"go.uber.org/zap"
)

// GameKind identifies one of the embedded mini-games. The value is
// used verbatim as the path segment of the save endpoint, so it is
// treated as an opaque string rather than validated against the known
// set.
type GameKind string

const (
	// GamePainting is the color-picking game.
	GamePainting GameKind = "Painting"
	// GameDialog is the question-and-answer game.
	GameDialog GameKind = "Dialog"
	// GameChoice is the image-selection game.
	GameChoice GameKind = "Choice"
)

// SessionInfo identifies one continuous play-through of a single game.
// Every field is optional; empty values propagate as absent in the
// submitted payload.
type SessionInfo struct {
	SessionID string
	UserID    string
	Kind      GameKind
	BaseURL   string
}

// Tracker accumulates telemetry for one session. Construct one with
// New and start each session with StartSession before recording
// events.
type Tracker struct {
	info SessionInfo
	now  func() time.Time
	log  *zap.Logger

	acc      accumulator
	painting paintingState
	dialog   dialogState
	choice   choiceState
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock injects the time source used for timestamps and
// reaction-time computation. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithLogger sets the logger used for debug output. Defaults to a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// New creates a Tracker with empty session state.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	return t
}

// StartSession replaces the session context wholesale and clears the
// shared accumulator and all per-game state. It is the sole lifecycle
// boundary; there is no separate teardown.
func (t *Tracker) StartSession(info SessionInfo) {
	t.info = info
	t.reset()
	t.log.Debug("session started",
		zap.String("session_id", info.SessionID),
		zap.String("user_id", info.UserID),
		zap.String("game_kind", string(info.Kind)),
	)
}

// Session returns the current session context.
func (t *Tracker) Session() SessionInfo {
	return t.info
}

func (t *Tracker) reset() {
	t.acc = newAccumulator()
	t.painting = paintingState{}
	t.dialog = newDialogState()
	t.choice = newChoiceState()
}

func (t *Tracker) clock() func() time.Time {
	if t.now == nil {
		return time.Now
	}
	return t.now
}
