package track

import "errors"

// ErrMissingGameKind indicates that no game kind was resolvable when
// building a payload.
var ErrMissingGameKind = errors.New("game kind is required")

// Payload is the tagged variant submitted to the save endpoint,
// discriminated by game kind. All variants share BasePayload; the
// game-specific reaction-time list intentionally supersedes the
// shared accumulator's list when the payload is marshaled.
type Payload interface {
	GameKind() GameKind
}

// BasePayload carries the session-wide fields common to every game.
type BasePayload struct {
	SessionID     string         `json:"session_id,omitempty"`
	ReactionTimes []int64        `json:"reaction_times"`
	Mistakes      int            `json:"mistakes"`
	MistakeTypes  map[string]int `json:"mistake_types,omitempty"`
	HintsUsed     int            `json:"hints_used,omitempty"`
	ActionLog     []Action       `json:"action_log"`
}

// PaintingPayload is the Painting game's save payload.
type PaintingPayload struct {
	BasePayload
	Colors        []string      `json:"colors"`
	ColorLog      []ColorChoice `json:"color_log"`
	ReactionTimes []int64       `json:"reaction_times"`
}

// GameKind implements Payload.
func (PaintingPayload) GameKind() GameKind { return GamePainting }

// DialogPayload is the Dialog game's save payload.
type DialogPayload struct {
	BasePayload
	Answers       map[string]any `json:"answers"`
	AnswerChanges map[string]int `json:"answer_changes,omitempty"`
	ReactionTimes []int64        `json:"reaction_times"`
}

// GameKind implements Payload.
func (DialogPayload) GameKind() GameKind { return GameDialog }

// ChoicePayload is the Choice game's save payload.
type ChoicePayload struct {
	BasePayload
	Choices       map[string]any `json:"choices"`
	Views         []ImageView    `json:"image_views"`
	ReactionTimes []int64        `json:"reaction_times"`
}

// GameKind implements Payload.
func (ChoicePayload) GameKind() GameKind { return GameChoice }

// GenericPayload carries only the shared fields. It is produced for
// game kinds outside the known set, which are accepted as opaque.
type GenericPayload struct {
	BasePayload

	kind GameKind
}

// GameKind implements Payload.
func (p GenericPayload) GameKind() GameKind { return p.kind }

// Payload builds the save payload for the given game kind, falling
// back to the session's kind when the argument is empty. It snapshots
// the state visible at the call instant; later tracking calls do not
// mutate a returned payload.
func (t *Tracker) Payload(kind GameKind) (Payload, error) {
	if kind == "" {
		kind = t.info.Kind
	}
	if kind == "" {
		return nil, ErrMissingGameKind
	}

	base := t.basePayload()
	switch kind {
	case GamePainting:
		return PaintingPayload{
			BasePayload:   base,
			Colors:        append([]string{}, t.painting.colors...),
			ColorLog:      append([]ColorChoice{}, t.painting.choices...),
			ReactionTimes: paintingReactionTimes(t.painting.choices),
		}, nil
	case GameDialog:
		return DialogPayload{
			BasePayload:   base,
			Answers:       copyMap(t.dialog.answers),
			AnswerChanges: t.AnswerChanges(),
			ReactionTimes: orderedTimes(t.dialog.order, t.dialog.reaction),
		}, nil
	case GameChoice:
		return ChoicePayload{
			BasePayload:   base,
			Choices:       copyMap(t.choice.selections),
			Views:         append([]ImageView{}, t.choice.views...),
			ReactionTimes: orderedTimes(t.choice.order, t.choice.reaction),
		}, nil
	default:
		return GenericPayload{BasePayload: base, kind: kind}, nil
	}
}

func (t *Tracker) basePayload() BasePayload {
	base := BasePayload{
		SessionID:     t.info.SessionID,
		ReactionTimes: append([]int64{}, t.acc.reactionTimes...),
		Mistakes:      t.acc.mistakes,
		HintsUsed:     t.acc.hintsUsed,
		ActionLog:     append([]Action{}, t.acc.actions...),
	}
	if len(t.acc.mistakeTypes) > 0 {
		base.MistakeTypes = t.MistakeTypes()
	}
	return base
}

func paintingReactionTimes(choices []ColorChoice) []int64 {
	out := make([]int64, 0, len(choices))
	for _, c := range choices {
		out = append(out, c.ReactionMs)
	}
	return out
}

func orderedTimes[K comparable](order []K, reaction map[K]int64) []int64 {
	out := make([]int64, 0, len(order))
	for _, k := range order {
		out = append(out, reaction[k])
	}
	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
