// Package store holds the canonical in-memory set of schedules and implements
// the multi-day expansion and completion-state synchronization engine.
//
// Two interchangeable strategies exist. The normalized strategy keeps one
// record per logical schedule and expands day membership on read. The
// denormalized strategy keeps one copy per covered day and must propagate
// completion state across copies on every toggle. Both satisfy the same
// contract and the same observable behavior, except for the documented
// divergence on edit (see DenormalizedStore).
package store

import (
	"fmt"

	"scheduleboard/internal/domain"
)

// Store is the canonical schedule set. Implementations serialize all
// operations internally; a reader never observes a partially propagated
// completion state.
type Store interface {
	// Create appends a new pending schedule. It always succeeds; duplicate
	// natural keys are allowed and resolved by insertion order on lookup.
	Create(s domain.Schedule)

	// Load seeds the store from persisted rows in insertion order, keeping
	// each row's completion state. It is a boot-time operation, not part of
	// the mutation surface.
	Load(recs []domain.Schedule)

	// ByDay groups every schedule under each YYYY-MM-DD day its inclusive
	// date range covers, in insertion order within a day. It is a pure read.
	ByDay() map[string][]domain.Schedule

	// Edit rewrites the schedule matching old; nil fields of upd keep their
	// old values. Returns the resulting record, or domain.ErrNotFound.
	Edit(old domain.ScheduleKey, upd domain.ScheduleUpdate) (domain.Schedule, error)

	// Delete removes every representation of the schedule matching key.
	// Returns the removed record, or domain.ErrNotFound.
	Delete(key domain.ScheduleKey) (domain.Schedule, error)

	// ToggleCompletion flips the completion state of the first schedule
	// matching (title, startTime) whose date range contains day, exactly
	// once, and synchronizes every representation to the new state. Returns
	// the record after the flip, or domain.ErrNotFound.
	ToggleCompletion(day, title, startTime string) (domain.Schedule, error)
}

// New returns a Store for the given strategy name, "normalized" or
// "denormalized".
func New(strategy string) (Store, error) {
	switch strategy {
	case "normalized":
		return NewNormalized(), nil
	case "denormalized":
		return NewDenormalized(), nil
	default:
		return nil, fmt.Errorf("unknown store strategy %q", strategy)
	}
}

// applyUpdate overlays the non-nil fields of upd onto s. Completion state is
// untouched here; each strategy decides what happens to it on edit.
func applyUpdate(s domain.Schedule, upd domain.ScheduleUpdate) domain.Schedule {
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.StartDate != nil {
		s.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		s.EndDate = *upd.EndDate
	}
	if upd.StartTime != nil {
		s.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		s.EndTime = *upd.EndTime
	}
	return s
}
