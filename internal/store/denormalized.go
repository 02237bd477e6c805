package store

import (
	"slices"
	"sync"

	"scheduleboard/internal/dates"
	"scheduleboard/internal/domain"
)

// DenormalizedStore materializes one copy of each schedule per covered day,
// keyed by day. Day queries are direct lookups, but every mutation must keep
// all copies of the same logical schedule consistent.
//
// Behavioral divergence from the normalized strategy: edit is implemented as
// delete-then-recreate, so it resets completion state to pending. Toggle uses
// a flip-then-assign protocol: the clicked day's copy is flipped exactly
// once, then the resulting state is assigned (never flipped again) to every
// copy across the schedule's full range.
type DenormalizedStore struct {
	mu   sync.Mutex
	days map[string][]domain.Schedule
}

// NewDenormalized returns an empty denormalized store.
func NewDenormalized() *DenormalizedStore {
	return &DenormalizedStore{days: make(map[string][]domain.Schedule)}
}

func (st *DenormalizedStore) Create(s domain.Schedule) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s.Completed = false
	st.insert(s)
}

func (st *DenormalizedStore) Load(recs []domain.Schedule) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, rec := range recs {
		st.insert(rec)
	}
}

// insert appends one copy of s to every day its range covers. Caller holds mu.
func (st *DenormalizedStore) insert(s domain.Schedule) {
	for day := range dates.Range(s.StartDate, s.EndDate) {
		st.days[day] = append(st.days[day], s)
	}
}

func (st *DenormalizedStore) ByDay() map[string][]domain.Schedule {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make(map[string][]domain.Schedule, len(st.days))
	for day, copies := range st.days {
		out[day] = slices.Clone(copies)
	}
	return out
}

func (st *DenormalizedStore) Edit(old domain.ScheduleKey, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	basis, found := st.find(old.Title, old.StartTime, old.StartDate, old.EndDate)
	if !found {
		return domain.Schedule{}, domain.ErrNotFound
	}

	st.remove(old.Title, old.StartTime, old.StartDate, old.EndDate)

	next := applyUpdate(basis, upd)
	// Delete-then-recreate: the fresh copies start over as pending.
	next.Completed = false
	st.insert(next)
	return next, nil
}

func (st *DenormalizedStore) Delete(key domain.ScheduleKey) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed, found := st.find(key.Title, key.StartTime, key.StartDate, key.EndDate)
	if !found {
		return domain.Schedule{}, domain.ErrNotFound
	}
	st.remove(key.Title, key.StartTime, key.StartDate, key.EndDate)
	return removed, nil
}

func (st *DenormalizedStore) ToggleCompletion(day, title, startTime string) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	copies := st.days[day]
	i := firstMatch(copies, byDayKey(title, startTime))
	if i < 0 {
		return domain.Schedule{}, domain.ErrNotFound
	}

	// Flip exactly once, then assign the result everywhere. The range is
	// re-derived from the clicked copy's own payload, not from the caller.
	copies[i].Completed = !copies[i].Completed
	flipped := copies[i]
	st.propagate(title, startTime, flipped.StartDate, flipped.EndDate, flipped.Completed)
	return flipped, nil
}

// find returns the first copy matching (title, startTime) within [startDate,
// endDate], scanning days in ascending order. Caller holds mu.
func (st *DenormalizedStore) find(title, startTime, startDate, endDate string) (domain.Schedule, bool) {
	for day := range dates.Range(startDate, endDate) {
		if i := firstMatch(st.days[day], byDayKey(title, startTime)); i >= 0 {
			return st.days[day][i], true
		}
	}
	return domain.Schedule{}, false
}

// remove drops every copy matching (title, startTime) from every day in
// [startDate, endDate], deleting emptied day lists. Caller holds mu.
func (st *DenormalizedStore) remove(title, startTime, startDate, endDate string) {
	match := byDayKey(title, startTime)
	for day := range dates.Range(startDate, endDate) {
		kept := slices.DeleteFunc(st.days[day], match)
		if len(kept) == 0 {
			delete(st.days, day)
		} else {
			st.days[day] = kept
		}
	}
}

// propagate assigns completed to every copy matching (title, startTime)
// across [startDate, endDate]. Assignment, never a second flip: re-running it
// any number of times converges every copy to the same state. Caller holds
// mu.
func (st *DenormalizedStore) propagate(title, startTime, startDate, endDate string, completed bool) {
	match := byDayKey(title, startTime)
	for day := range dates.Range(startDate, endDate) {
		copies := st.days[day]
		for i := range copies {
			if match(copies[i]) {
				copies[i].Completed = completed
			}
		}
	}
}
