// Package track accumulates behavioral telemetry for the platform's
// embedded mini-games.
//
// A Tracker owns the state of one play session: the shared event
// accumulator (reaction times, mistakes, hints, action log) and the
// per-game state for the Painting, Dialog, and Choice games. UI-layer
// callers record events through the tracker's methods and submit the
// resulting payload with the report package once the game completes.
//
// A Tracker is not safe for concurrent use; all tracking calls are
// expected to run on a single goroutine in response to UI events.
package track
