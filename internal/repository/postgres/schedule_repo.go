package postgres

import (
	"context"
	"database/sql"

	"scheduleboard/internal/domain"
)

type scheduleRepository struct {
	DB *sql.DB
}

// NewScheduleRepository returns a ScheduleRepository backed by Postgres.
func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{
		DB: db,
	}
}

// The serial id exists only so natural-key lookups can break ties by
// insertion order; it never leaves this package.
func (r *scheduleRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS schedules (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			completed BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	_, err := r.DB.ExecContext(ctx, query)
	return err
}

func (r *scheduleRepository) Insert(ctx context.Context, s domain.Schedule) error {
	query := `
		INSERT INTO schedules (title, start_date, end_date, start_time, end_time, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, s.Title, s.StartDate, s.EndDate, s.StartTime, s.EndTime, s.Completed)
	return err
}

func (r *scheduleRepository) ListAll(ctx context.Context) ([]domain.Schedule, error) {
	query := `
		SELECT title, start_date, end_date, start_time, end_time, completed
		FROM schedules
		ORDER BY id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	schedules := make([]domain.Schedule, 0)
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.Title, &s.StartDate, &s.EndDate, &s.StartTime, &s.EndTime, &s.Completed); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) Update(ctx context.Context, old domain.ScheduleKey, s domain.Schedule) error {
	query := `
		UPDATE schedules
		SET title = $1, start_date = $2, end_date = $3, start_time = $4, end_time = $5, completed = $6
		WHERE id = (
			SELECT id FROM schedules
			WHERE title = $7 AND start_date = $8 AND end_date = $9 AND start_time = $10
			ORDER BY id ASC
			LIMIT 1
		)
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Title, s.StartDate, s.EndDate, s.StartTime, s.EndTime, s.Completed,
		old.Title, old.StartDate, old.EndDate, old.StartTime,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, key domain.ScheduleKey) error {
	query := `
		DELETE FROM schedules
		WHERE id = (
			SELECT id FROM schedules
			WHERE title = $1 AND start_date = $2 AND end_date = $3 AND start_time = $4
			ORDER BY id ASC
			LIMIT 1
		)
	`
	result, err := r.DB.ExecContext(ctx, query, key.Title, key.StartDate, key.EndDate, key.StartTime)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *scheduleRepository) SetCompleted(ctx context.Context, key domain.ScheduleKey, completed bool) error {
	query := `
		UPDATE schedules
		SET completed = $1
		WHERE id = (
			SELECT id FROM schedules
			WHERE title = $2 AND start_date = $3 AND end_date = $4 AND start_time = $5
			ORDER BY id ASC
			LIMIT 1
		)
	`
	result, err := r.DB.ExecContext(ctx, query, completed, key.Title, key.StartDate, key.EndDate, key.StartTime)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
