package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterAttendanceRoutes sets up routes under /api/attendance.
func RegisterAttendanceRoutes(r *mux.Router, attendanceService *services.AttendanceService) {
	controller := controllers.NewAttendanceController(attendanceService)

	attendanceRouter := r.PathPrefix("/api/attendance").Subrouter()

	attendanceRouter.HandleFunc("", controller.SaveAttendance).Methods("POST")
	attendanceRouter.HandleFunc("", controller.ListAttendance).Methods("GET")
	attendanceRouter.HandleFunc("/{gameId}", controller.GetAttendance).Methods("GET")
}
