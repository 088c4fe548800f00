// Package report submits accumulated game telemetry to the platform's
// save endpoint.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/louisbranch/playtrack/track"
)

const tracerName = "github.com/louisbranch/playtrack/report"

// ServerResponse is the parsed JSON body of a successful save.
type ServerResponse map[string]any

// Client submits session payloads over HTTP. Each Save issues at most
// one request; there is no retry, buffering, or client-imposed
// timeout, and cancellation is driven entirely by the caller's
// context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects the HTTP client used for save requests.
// Defaults to http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets the CSRF token source. When unset the
// X-CSRFToken header is sent empty.
func WithTokenSource(src TokenSource) Option {
	return func(c *Client) {
		if src != nil {
			c.tokens = src
		}
	}
}

// WithLogger sets the logger for save outcomes. Defaults to a no-op
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a Client reporting to the given base URL. A session's
// BaseURL, when set, overrides it per save.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		log:        zap.NewNop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Save builds the payload for the tracker's current state and submits
// it. The effective game kind is the explicit argument when non-empty,
// otherwise the session's kind; when neither is set Save fails with
// CodeMissingGameKind. Concurrent saves are permitted and are not
// serialized: each call snapshots whatever state exists at its own
// invocation instant.
func (c *Client) Save(ctx context.Context, t *track.Tracker, kind track.GameKind) (ServerResponse, error) {
	ctx, span := c.tracer.Start(ctx, "report.save")
	defer span.End()

	resp, err := c.save(ctx, t, kind)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

func (c *Client) save(ctx context.Context, t *track.Tracker, kind track.GameKind) (ServerResponse, error) {
	span := trace.SpanFromContext(ctx)

	payload, err := t.Payload(kind)
	if err != nil {
		if errors.Is(err, track.ErrMissingGameKind) {
			return nil, &Error{
				Code:    CodeMissingGameKind,
				Message: "no game kind set for save",
				cause:   err,
			}
		}
		return nil, err
	}

	session := t.Session()
	endpoint := saveURL(c.baseURL, session, payload.GameKind())
	span.SetAttributes(
		attribute.String("game.kind", string(payload.GameKind())),
		attribute.String("game.session_id", session.SessionID),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-CSRFToken", c.token())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("save request failed", zap.String("url", endpoint), zap.Error(err))
		return nil, &Error{
			Code:    CodeTransport,
			Message: "save request failed",
			cause:   err,
		}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{
			Code:    CodeServer,
			Status:  resp.StatusCode,
			Message: serverMessage(resp),
		}
	}

	var parsed ServerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &Error{
			Code:    CodeServer,
			Status:  resp.StatusCode,
			Message: "invalid response body",
			cause:   err,
		}
	}

	c.log.Debug("session saved",
		zap.String("game_kind", string(payload.GameKind())),
		zap.String("session_id", session.SessionID),
	)
	return parsed, nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// saveURL derives the save endpoint from the base URL, game kind, and
// user ID. The session's BaseURL takes precedence over the client's.
func saveURL(base string, session track.SessionInfo, kind track.GameKind) string {
	if session.BaseURL != "" {
		base = session.BaseURL
	}
	return fmt.Sprintf("%s/api/game/%s/%s/save/",
		strings.TrimRight(base, "/"),
		url.PathEscape(string(kind)),
		url.PathEscape(session.UserID),
	)
}

// serverMessage surfaces the response body's error message when
// present, else a generic message.
func serverMessage(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return body.Error
	}
	return "save rejected by server"
}
