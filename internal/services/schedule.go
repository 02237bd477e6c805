package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scheduleboard/internal/domain"
	"scheduleboard/internal/store"
)

type scheduleService struct {
	store          store.Store
	repo           domain.ScheduleRepository
	contextTimeout time.Duration
}

// NewScheduleService wires the in-memory store (canonical state) to the
// repository (durable flush). Callers seed the store from
// repo.ListAll + store.Load at boot, before serving requests.
func NewScheduleService(st store.Store, repo domain.ScheduleRepository, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		store:          st,
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *scheduleService) Create(ctx context.Context, title, startDate, endDate, startTime, endTime string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec := domain.NewSchedule(strings.TrimSpace(title), startDate, endDate, startTime, endTime)
	s.store.Create(rec)
	if err := s.repo.Insert(ctx, rec); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) ByDay(ctx context.Context) (map[string][]domain.Schedule, error) {
	_, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.store.ByDay(), nil
}

func (s *scheduleService) Edit(ctx context.Context, old domain.ScheduleKey, upd domain.ScheduleUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		upd.Title = &trimmed
	}
	rec, err := s.store.Edit(old, upd)
	if err != nil {
		return err
	}
	// The store decides the resulting completion state (the denormalized
	// strategy resets it on edit), so the flush writes rec verbatim.
	if err := s.repo.Update(ctx, old, rec); err != nil {
		return fmt.Errorf("persist schedule update: %w", err)
	}
	return nil
}

func (s *scheduleService) Delete(ctx context.Context, key domain.ScheduleKey) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.store.Delete(key); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("persist schedule delete: %w", err)
	}
	return nil
}

func (s *scheduleService) ToggleCompletion(ctx context.Context, day, title, startTime string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec, err := s.store.ToggleCompletion(day, title, startTime)
	if err != nil {
		return false, err
	}
	if err := s.repo.SetCompleted(ctx, rec.Key(), rec.Completed); err != nil {
		return false, fmt.Errorf("persist completion state: %w", err)
	}
	return rec.Completed, nil
}
