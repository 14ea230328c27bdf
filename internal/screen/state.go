// Package screen holds one view controller per admin screen.
//
// A controller lives for one screen mount: it fetches its collections, keeps
// them as rows, runs mutations and refetches the affected collection after
// every successful one. Failures never escape a controller: they are logged
// and turned into a visible message while the previous rows stay in place.
// Controllers are not safe for concurrent use.
package screen

import (
	"context"
	"log/slog"
)

// state is the notice and in-flight part shared by every screen.
type state struct {
	log *slog.Logger

	Error   string `json:"error,omitempty"`
	Success string `json:"success,omitempty"`
	// Busy rejects a second mutation on the same controller while one is in
	// flight. A controller lives for one request, so Busy is always false by
	// the time the page renders; the browser side disables the confirm button
	// on submit instead.
	Busy bool `json:"-"`
}

func (s *state) fail(op, msg string, err error) {
	s.log.Error(msg, slog.String("op", op), slog.String("error", err.Error()))
	s.Error = msg
}

func (s *state) succeed(msg string) {
	s.Success = msg
	s.Error = ""
}

// Dismiss closes both alerts.
func (s *state) Dismiss() {
	s.Error = ""
	s.Success = ""
}

// begin reports false when another mutation is still running.
func (s *state) begin() bool {
	if s.Busy {
		return false
	}
	s.Busy = true
	s.Success = ""
	return true
}

func (s *state) end() {
	s.Busy = false
}

// fetchInto replaces *dst only when fetch succeeds.
func fetchInto[T any](ctx context.Context, fetch func(context.Context) ([]T, error), dst *[]T) error {
	rows, err := fetch(ctx)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []T{}
	}
	*dst = rows
	return nil
}

func findByID[T any](rows []T, id int64, idOf func(T) int64) (T, bool) {
	for _, r := range rows {
		if idOf(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
