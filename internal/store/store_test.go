package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduleboard/internal/domain"
)

func strategies(t *testing.T, run func(t *testing.T, st Store)) {
	t.Helper()
	for _, strategy := range []string{"normalized", "denormalized"} {
		t.Run(strategy, func(t *testing.T) {
			st, err := New(strategy)
			require.NoError(t, err)
			run(t, st)
		})
	}
}

func trip() domain.Schedule {
	return domain.NewSchedule("Trip", "2024-01-01", "2024-01-03", "09:00", "17:00")
}

func strptr(s string) *string { return &s }

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("sharded")
	require.Error(t, err)
}

func TestCreateExpandsOverEveryCoveredDay(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		byDay := st.ByDay()
		require.Len(t, byDay, 3)
		for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
			require.Len(t, byDay[day], 1, "day %s", day)
			got := byDay[day][0]
			assert.Equal(t, "Trip", got.Title)
			assert.False(t, got.Completed)
		}
		assert.NotContains(t, byDay, "2023-12-31")
		assert.NotContains(t, byDay, "2024-01-04")
	})
}

func TestCreateForcesPending(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		s := trip()
		s.Completed = true
		st.Create(s)

		for _, copies := range st.ByDay() {
			require.False(t, copies[0].Completed)
		}
	})
}

func TestByDayEmptyStore(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		require.Empty(t, st.ByDay())
	})
}

func TestByDayIsIdempotent(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())
		st.Create(domain.NewSchedule("Dentist", "2024-01-02", "2024-01-02", "14:00", "15:00"))

		first := st.ByDay()
		second := st.ByDay()
		require.Equal(t, first, second)

		// Callers mutating the returned snapshots must not reach stored state.
		first["2024-01-02"][0].Completed = true
		require.Equal(t, second, st.ByDay())
	})
}

func TestByDayInsertionOrderWithinDay(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(domain.NewSchedule("Standup", "2024-01-02", "2024-01-02", "10:00", "10:15"))
		st.Create(trip())
		st.Create(domain.NewSchedule("Lunch", "2024-01-02", "2024-01-02", "12:00", "13:00"))

		day := st.ByDay()["2024-01-02"]
		require.Len(t, day, 3)
		assert.Equal(t, "Standup", day[0].Title)
		assert.Equal(t, "Trip", day[1].Title)
		assert.Equal(t, "Lunch", day[2].Title)
	})
}

func TestEditNotFound(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		_, err := st.Edit(domain.ScheduleKey{
			Title: "Trip", StartDate: "2024-01-01", EndDate: "2024-01-03", StartTime: "10:00",
		}, domain.ScheduleUpdate{Title: strptr("Voyage")})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEditShrinksRange(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		got, err := st.Edit(trip().Key(), domain.ScheduleUpdate{EndDate: strptr("2024-01-02")})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02", got.EndDate)
		assert.Equal(t, "Trip", got.Title)

		byDay := st.ByDay()
		require.Contains(t, byDay, "2024-01-01")
		require.Contains(t, byDay, "2024-01-02")
		require.NotContains(t, byDay, "2024-01-03")
	})
}

func TestEditOmittedFieldsRetained(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		got, err := st.Edit(trip().Key(), domain.ScheduleUpdate{Title: strptr("Voyage")})
		require.NoError(t, err)
		assert.Equal(t, "Voyage", got.Title)
		assert.Equal(t, "2024-01-01", got.StartDate)
		assert.Equal(t, "2024-01-03", got.EndDate)
		assert.Equal(t, "09:00", got.StartTime)
		assert.Equal(t, "17:00", got.EndTime)
	})
}

func TestDeleteRemovesEveryRepresentation(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())
		st.Create(domain.NewSchedule("Dentist", "2024-01-02", "2024-01-02", "14:00", "15:00"))

		removed, err := st.Delete(trip().Key())
		require.NoError(t, err)
		assert.Equal(t, "Trip", removed.Title)

		byDay := st.ByDay()
		require.Len(t, byDay, 1)
		require.Len(t, byDay["2024-01-02"], 1)
		assert.Equal(t, "Dentist", byDay["2024-01-02"][0].Title)
	})
}

func TestDeleteNotFound(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		_, err := st.Delete(domain.ScheduleKey{
			Title: "Trip", StartDate: "2024-01-01", EndDate: "2024-01-02", StartTime: "09:00",
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestToggleFromAnyCoveredDay(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		got, err := st.ToggleCompletion("2024-01-02", "Trip", "09:00")
		require.NoError(t, err)
		assert.True(t, got.Completed)

		// Every day-scoped view agrees immediately after the mutation.
		for day, copies := range st.ByDay() {
			require.True(t, copies[0].Completed, "day %s", day)
		}

		got, err = st.ToggleCompletion("2024-01-03", "Trip", "09:00")
		require.NoError(t, err)
		assert.False(t, got.Completed)
		for day, copies := range st.ByDay() {
			require.False(t, copies[0].Completed, "day %s", day)
		}
	})
}

func TestToggleNotFound(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		tests := []struct {
			name      string
			day       string
			title     string
			startTime string
		}{
			{"day outside range", "2024-01-04", "Trip", "09:00"},
			{"wrong title", "2024-01-02", "Journey", "09:00"},
			{"wrong start time", "2024-01-02", "Trip", "10:00"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := st.ToggleCompletion(tt.day, tt.title, tt.startTime)
				require.ErrorIs(t, err, domain.ErrNotFound)
			})
		}
	})
}

func TestToggleSelectsByRangeAmongSameTitleAndTime(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(domain.NewSchedule("Trip", "2024-01-01", "2024-01-02", "09:00", "17:00"))
		st.Create(domain.NewSchedule("Trip", "2024-02-01", "2024-02-02", "09:00", "17:00"))

		_, err := st.ToggleCompletion("2024-02-01", "Trip", "09:00")
		require.NoError(t, err)

		byDay := st.ByDay()
		assert.False(t, byDay["2024-01-01"][0].Completed)
		assert.True(t, byDay["2024-02-01"][0].Completed)
	})
}

func TestReversedRangeYieldsNoDays(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(domain.NewSchedule("Backwards", "2024-01-03", "2024-01-01", "09:00", "10:00"))
		require.Empty(t, st.ByDay())
	})
}

func TestLoadPreservesCompletionState(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		done := trip()
		done.Completed = true
		st.Load([]domain.Schedule{
			done,
			domain.NewSchedule("Dentist", "2024-01-02", "2024-01-02", "14:00", "15:00"),
		})

		byDay := st.ByDay()
		assert.True(t, byDay["2024-01-01"][0].Completed)
		require.Len(t, byDay["2024-01-02"], 2)
		assert.True(t, byDay["2024-01-02"][0].Completed)
		assert.False(t, byDay["2024-01-02"][1].Completed)
	})
}

// Mirrors the end-to-end walkthrough: create a three-day schedule, complete
// it from the middle day, shrink its range, then delete it.
func TestMultiDayLifecycle(t *testing.T) {
	strategies(t, func(t *testing.T, st Store) {
		st.Create(trip())

		byDay := st.ByDay()
		for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
			require.Len(t, byDay[day], 1)
			require.False(t, byDay[day][0].Completed)
		}

		_, err := st.ToggleCompletion("2024-01-02", "Trip", "09:00")
		require.NoError(t, err)
		for day, copies := range st.ByDay() {
			require.True(t, copies[0].Completed, "day %s", day)
		}

		_, err = st.Edit(trip().Key(), domain.ScheduleUpdate{EndDate: strptr("2024-01-02")})
		require.NoError(t, err)
		byDay = st.ByDay()
		require.Contains(t, byDay, "2024-01-01")
		require.Contains(t, byDay, "2024-01-02")
		require.NotContains(t, byDay, "2024-01-03")

		key := trip().Key()
		key.EndDate = "2024-01-02"
		_, err = st.Delete(key)
		require.NoError(t, err)
		require.Empty(t, st.ByDay())
	})
}
