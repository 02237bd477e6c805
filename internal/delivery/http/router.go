package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"scheduleboard/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *controllers.ScheduleController) *http.ServeMux {
	mux := http.NewServeMux()

	// Schedule API
	mux.HandleFunc("GET /schedules", scheduleController.ListSchedules)
	mux.HandleFunc("POST /schedules", scheduleController.CreateSchedule)
	mux.HandleFunc("PUT /schedules", scheduleController.UpdateSchedule)
	mux.HandleFunc("DELETE /schedules", scheduleController.DeleteSchedule)
	mux.HandleFunc("POST /schedules/complete", scheduleController.CompleteSchedule)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
