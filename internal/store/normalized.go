package store

import (
	"slices"
	"sync"

	"scheduleboard/internal/dates"
	"scheduleboard/internal/domain"
)

// NormalizedStore keeps exactly one record per logical schedule, in insertion
// order, and computes day membership on read by walking the inclusive date
// range. Completion state lives in a single place, so toggling needs no
// propagation and edits preserve it.
type NormalizedStore struct {
	mu   sync.Mutex
	recs []domain.Schedule
}

// NewNormalized returns an empty normalized store.
func NewNormalized() *NormalizedStore {
	return &NormalizedStore{}
}

func (st *NormalizedStore) Create(s domain.Schedule) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s.Completed = false
	st.recs = append(st.recs, s)
}

func (st *NormalizedStore) Load(recs []domain.Schedule) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.recs = append(st.recs, recs...)
}

func (st *NormalizedStore) ByDay() map[string][]domain.Schedule {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make(map[string][]domain.Schedule)
	for _, rec := range st.recs {
		for day := range dates.Range(rec.StartDate, rec.EndDate) {
			out[day] = append(out[day], rec)
		}
	}
	return out
}

func (st *NormalizedStore) Edit(old domain.ScheduleKey, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := firstMatch(st.recs, byKey(old))
	if i < 0 {
		return domain.Schedule{}, domain.ErrNotFound
	}
	// Completed carries over unchanged; only the supplied fields move.
	st.recs[i] = applyUpdate(st.recs[i], upd)
	return st.recs[i], nil
}

func (st *NormalizedStore) Delete(key domain.ScheduleKey) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := firstMatch(st.recs, byKey(key))
	if i < 0 {
		return domain.Schedule{}, domain.ErrNotFound
	}
	removed := st.recs[i]
	st.recs = slices.Delete(st.recs, i, i+1)
	return removed, nil
}

func (st *NormalizedStore) ToggleCompletion(day, title, startTime string) (domain.Schedule, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := firstMatch(st.recs, func(s domain.Schedule) bool {
		return s.Title == title && s.StartTime == startTime &&
			dates.Contains(s.StartDate, s.EndDate, day)
	})
	if i < 0 {
		return domain.Schedule{}, domain.ErrNotFound
	}
	st.recs[i].Completed = !st.recs[i].Completed
	return st.recs[i], nil
}
