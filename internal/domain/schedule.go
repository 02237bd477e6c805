package domain

import "context"

// Schedule represents one logical calendar entry spanning one or more
// consecutive days. Dates are naive YYYY-MM-DD strings and times are HH:MM
// wall-clock strings; there are no timezones in this system.
//
// A schedule carries no surrogate identifier. Callers address it by its
// natural key (title, start_date, end_date, start_time); two schedules with
// identical keys are indistinguishable and lookups resolve the tie by taking
// the earliest-created match.
// swagger:model Schedule
type Schedule struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Completed bool   `json:"completed"`
}

// NewSchedule returns a pending Schedule with the given fields.
func NewSchedule(title, startDate, endDate, startTime, endTime string) Schedule {
	return Schedule{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

// ScheduleKey is the natural key addressing one logical schedule.
type ScheduleKey struct {
	Title     string
	StartDate string
	EndDate   string
	StartTime string
}

// Key returns the natural key of s.
func (s Schedule) Key() ScheduleKey {
	return ScheduleKey{
		Title:     s.Title,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		StartTime: s.StartTime,
	}
}

// ScheduleUpdate carries the fields of an edit. Nil fields are unchanged.
type ScheduleUpdate struct {
	Title     *string
	StartDate *string
	EndDate   *string
	StartTime *string
	EndTime   *string
}

// ScheduleRepository defines the durable storage port for schedules. Rows are
// stored normalized, one per logical schedule; the serial row id exists only
// to preserve insertion order for natural-key tie-breaking and is never
// exposed to callers.
type ScheduleRepository interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, s Schedule) error
	Update(ctx context.Context, old ScheduleKey, s Schedule) error
	Delete(ctx context.Context, key ScheduleKey) error
	SetCompleted(ctx context.Context, key ScheduleKey, completed bool) error
	ListAll(ctx context.Context) ([]Schedule, error)
}

// ScheduleService defines the application-facing schedule operations.
type ScheduleService interface {
	Create(ctx context.Context, title, startDate, endDate, startTime, endTime string) error
	ByDay(ctx context.Context) (map[string][]Schedule, error)
	Edit(ctx context.Context, old ScheduleKey, upd ScheduleUpdate) error
	Delete(ctx context.Context, key ScheduleKey) error
	// ToggleCompletion flips the completion state of the schedule matching
	// (title, startTime) whose date range contains day, and returns the new
	// state.
	ToggleCompletion(ctx context.Context, day, title, startTime string) (bool, error)
}
