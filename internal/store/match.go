package store

import "scheduleboard/internal/domain"

// firstMatch returns the index of the first schedule in list for which ok
// holds, or -1. Insertion order decides which of several identically keyed
// schedules a mutation affects, so callers must pass lists in insertion
// order.
func firstMatch(list []domain.Schedule, ok func(domain.Schedule) bool) int {
	for i, s := range list {
		if ok(s) {
			return i
		}
	}
	return -1
}

// byKey matches the full natural key used by the normalized strategy.
func byKey(key domain.ScheduleKey) func(domain.Schedule) bool {
	return func(s domain.Schedule) bool {
		return s.Title == key.Title &&
			s.StartDate == key.StartDate &&
			s.EndDate == key.EndDate &&
			s.StartTime == key.StartTime
	}
}

// byDayKey matches the day-scoped key used by the denormalized strategy;
// start/end dates are payload there, not identity.
func byDayKey(title, startTime string) func(domain.Schedule) bool {
	return func(s domain.Schedule) bool {
		return s.Title == title && s.StartTime == startTime
	}
}
