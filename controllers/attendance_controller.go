package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"rinkside_server/services"
)

// AttendanceController handles the /api/attendance resource.
type AttendanceController struct {
	Attendance *services.AttendanceService
}

// NewAttendanceController creates an AttendanceController.
func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Attendance: attendance}
}

// SaveAttendance handles POST /api/attendance.
func (c *AttendanceController) SaveAttendance(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	saved, err := c.Attendance.SaveAttendance(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, saved, nil)
}

// GetAttendance handles GET /api/attendance/{gameId}.
func (c *AttendanceController) GetAttendance(w http.ResponseWriter, r *http.Request) {
	doc, err := c.Attendance.GetAttendance(r.Context(), mux.Vars(r)["gameId"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, doc, nil)
}

// ListAttendance handles GET /api/attendance.
func (c *AttendanceController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	docs, err := c.Attendance.ListAttendance(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, docs)
}
