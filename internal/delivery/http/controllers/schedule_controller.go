package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"scheduleboard/internal/dates"
	"scheduleboard/internal/delivery/http/helpers"
	"scheduleboard/internal/domain"
)

// ScheduleController exposes the schedule mutation and query API over HTTP.
type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateScheduleRequest is the request body for POST /schedules.
type CreateScheduleRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Validate implements Validator. The core is permissive by design, so every
// format rule is enforced here at the boundary: non-blank title, parseable
// dates and times, and an unreversed date range.
func (c CreateScheduleRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if !dates.Valid(c.StartDate) {
		errs = append(errs, "start_date must be a YYYY-MM-DD date")
	}
	if !dates.Valid(c.EndDate) {
		errs = append(errs, "end_date must be a YYYY-MM-DD date")
	}
	if dates.Valid(c.StartDate) && dates.Valid(c.EndDate) && c.EndDate < c.StartDate {
		errs = append(errs, "end_date must not be before start_date")
	}
	if !dates.ValidTime(c.StartTime) {
		errs = append(errs, "start_time must be an HH:MM time")
	}
	if !dates.ValidTime(c.EndTime) {
		errs = append(errs, "end_time must be an HH:MM time")
	}
	return errs
}

// CreateScheduleSuccessResponse is the success response envelope for POST /schedules (201).
type CreateScheduleSuccessResponse struct {
	Data  *domain.Schedule  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateSchedule godoc
// @Summary Create a schedule
// @Description Creates a pending schedule spanning one or more consecutive days. The title is trimmed server-side.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body CreateScheduleRequest true "Schedule data"
// @Success 201 {object} controllers.CreateScheduleSuccessResponse "data contains the created schedule"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Create(r.Context(), req.Title, req.StartDate, req.EndDate, req.StartTime, req.EndTime); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	created := domain.NewSchedule(strings.TrimSpace(req.Title), req.StartDate, req.EndDate, req.StartTime, req.EndTime)
	helpers.WriteJSONSuccess(w, http.StatusCreated, &created)
}

// ListSchedulesSuccessResponse is the success response envelope for GET /schedules (200).
// The data object maps YYYY-MM-DD day keys to the schedules covering that day.
type ListSchedulesSuccessResponse struct {
	Data  map[string][]domain.Schedule `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// ListSchedules godoc
// @Summary List schedules grouped by day
// @Description Returns every schedule under each day of its inclusive date range, in creation order within a day.
// @Tags schedules
// @Produce json
// @Success 200 {object} controllers.ListSchedulesSuccessResponse "data maps day to schedules"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedules [get]
func (c *ScheduleController) ListSchedules(w http.ResponseWriter, r *http.Request) {
	byDay, err := c.Service.ByDay(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, byDay)
}

// UpdateScheduleRequest is the request body for PUT /schedules. The old_*
// fields identify the schedule by its natural key; new_* fields are optional
// and omitted ones keep their previous values.
type UpdateScheduleRequest struct {
	OldTitle     string  `json:"old_title"`
	OldStartDate string  `json:"old_start_date"`
	OldEndDate   string  `json:"old_end_date"`
	OldStartTime string  `json:"old_start_time"`
	NewTitle     *string `json:"new_title"`
	NewStartDate *string `json:"new_start_date"`
	NewEndDate   *string `json:"new_end_date"`
	NewStartTime *string `json:"new_start_time"`
	NewEndTime   *string `json:"new_end_time"`
}

// Validate implements Validator. The old key must be complete; supplied new
// fields must be well-formed. Range order is checked only when both new dates
// are present, because the stored counterpart is not visible here.
func (u UpdateScheduleRequest) Validate() []string {
	var errs []string
	if u.OldTitle == "" {
		errs = append(errs, "old_title is required")
	}
	if !dates.Valid(u.OldStartDate) {
		errs = append(errs, "old_start_date must be a YYYY-MM-DD date")
	}
	if !dates.Valid(u.OldEndDate) {
		errs = append(errs, "old_end_date must be a YYYY-MM-DD date")
	}
	if !dates.ValidTime(u.OldStartTime) {
		errs = append(errs, "old_start_time must be an HH:MM time")
	}
	if u.NewTitle != nil && strings.TrimSpace(*u.NewTitle) == "" {
		errs = append(errs, "new_title must not be blank")
	}
	if u.NewStartDate != nil && !dates.Valid(*u.NewStartDate) {
		errs = append(errs, "new_start_date must be a YYYY-MM-DD date")
	}
	if u.NewEndDate != nil && !dates.Valid(*u.NewEndDate) {
		errs = append(errs, "new_end_date must be a YYYY-MM-DD date")
	}
	if u.NewStartDate != nil && u.NewEndDate != nil &&
		dates.Valid(*u.NewStartDate) && dates.Valid(*u.NewEndDate) && *u.NewEndDate < *u.NewStartDate {
		errs = append(errs, "new_end_date must not be before new_start_date")
	}
	if u.NewStartTime != nil && !dates.ValidTime(*u.NewStartTime) {
		errs = append(errs, "new_start_time must be an HH:MM time")
	}
	if u.NewEndTime != nil && !dates.ValidTime(*u.NewEndTime) {
		errs = append(errs, "new_end_time must be an HH:MM time")
	}
	return errs
}

// UpdateSchedule godoc
// @Summary Edit a schedule
// @Description Rewrites the schedule identified by the old natural key. Omitted new_* fields keep their previous values.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body UpdateScheduleRequest true "Old key and new fields"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedules [put]
func (c *ScheduleController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req UpdateScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	old := domain.ScheduleKey{
		Title:     req.OldTitle,
		StartDate: req.OldStartDate,
		EndDate:   req.OldEndDate,
		StartTime: req.OldStartTime,
	}
	upd := domain.ScheduleUpdate{
		Title:     req.NewTitle,
		StartDate: req.NewStartDate,
		EndDate:   req.NewEndDate,
		StartTime: req.NewStartTime,
		EndTime:   req.NewEndTime,
	}
	if err := c.Service.Edit(r.Context(), old, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// DeleteScheduleRequest is the request body for DELETE /schedules; the four
// fields form the natural key.
type DeleteScheduleRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
}

// Validate implements Validator.
func (d DeleteScheduleRequest) Validate() []string {
	var errs []string
	if d.Title == "" {
		errs = append(errs, "title is required")
	}
	if !dates.Valid(d.StartDate) {
		errs = append(errs, "start_date must be a YYYY-MM-DD date")
	}
	if !dates.Valid(d.EndDate) {
		errs = append(errs, "end_date must be a YYYY-MM-DD date")
	}
	if !dates.ValidTime(d.StartTime) {
		errs = append(errs, "start_time must be an HH:MM time")
	}
	return errs
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Description Removes every representation of the schedule identified by the natural key.
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body DeleteScheduleRequest true "Natural key"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedules [delete]
func (c *ScheduleController) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	var req DeleteScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	key := domain.ScheduleKey{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
	}
	if err := c.Service.Delete(r.Context(), key); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// CompleteScheduleRequest is the request body for POST /schedules/complete.
// Date is the clicked day; any day the schedule covers works.
type CompleteScheduleRequest struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	StartTime string `json:"start_time"`
}

// Validate implements Validator.
func (c CompleteScheduleRequest) Validate() []string {
	var errs []string
	if !dates.Valid(c.Date) {
		errs = append(errs, "date must be a YYYY-MM-DD date")
	}
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if !dates.ValidTime(c.StartTime) {
		errs = append(errs, "start_time must be an HH:MM time")
	}
	return errs
}

// CompleteScheduleResponse is the data object for POST /schedules/complete.
type CompleteScheduleResponse struct {
	Completed bool `json:"completed"`
}

// CompleteScheduleSuccessResponse is the success response envelope for POST /schedules/complete (200).
type CompleteScheduleSuccessResponse struct {
	Data  CompleteScheduleResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CompleteSchedule godoc
// @Summary Toggle a schedule's completion state
// @Description Flips the completion state of the schedule matching title and start_time whose date range contains the given day. All covered days reflect the new state.
// @Tags schedules
// @Accept json
// @Produce json
// @Param toggle body CompleteScheduleRequest true "Clicked day, title, and start time"
// @Success 200 {object} controllers.CompleteScheduleSuccessResponse "data contains the new completion state"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /schedules/complete [post]
func (c *ScheduleController) CompleteSchedule(w http.ResponseWriter, r *http.Request) {
	var req CompleteScheduleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	completed, err := c.Service.ToggleCompletion(r.Context(), req.Date, req.Title, req.StartTime)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "schedule not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CompleteScheduleResponse{Completed: completed})
}
