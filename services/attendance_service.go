package services

import (
	"context"
	"fmt"
	"time"

	"rinkside_server/models"
)

// AttendanceService owns the one-per-game check-in snapshot.
type AttendanceService struct {
	DB *DatabaseService

	now func() time.Time
}

// NewAttendanceService wires the attendance service.
func NewAttendanceService(db *DatabaseService) *AttendanceService {
	return &AttendanceService{DB: db, now: time.Now}
}

// AttendanceID builds the singleton id for a game's attendance record.
func AttendanceID(gameID string) string {
	return gameID + "-attendance"
}

// SaveAttendance upserts the attendance snapshot for a game and
// recomputes the summary counts from the team lists. Re-submitting
// attendance replaces the previous snapshot.
func (as *AttendanceService) SaveAttendance(ctx context.Context, doc Document) (Document, error) {
	gameID := docString(doc, "gameId")
	if gameID == "" {
		return nil, &ValidationError{Container: models.ContainerAttendance, Errors: []string{"missing required field 'gameId'"}}
	}

	var record models.Attendance
	if err := ToModel(doc, &record); err != nil {
		return nil, &ValidationError{Container: models.ContainerAttendance, Errors: []string{"field 'teams' is malformed"}}
	}
	if len(record.Teams) == 0 {
		return nil, &ValidationError{Container: models.ContainerAttendance, Errors: []string{"field 'teams' must have at least 1 items"}}
	}

	summary := models.AttendanceSummary{ByTeam: map[string]int{}}
	for _, team := range record.Teams {
		summary.ByTeam[team.TeamName] = len(team.Present)
		summary.TotalPresent += len(team.Present)
		summary.TotalRoster += len(team.Roster)
	}

	doc["id"] = AttendanceID(gameID)
	doc["recordedAt"] = as.now().UTC().Format(time.RFC3339)
	doc["summary"] = summary
	return as.DB.Upsert(ctx, models.ContainerAttendance, doc)
}

// GetAttendance fetches a game's attendance record.
func (as *AttendanceService) GetAttendance(ctx context.Context, gameID string) (Document, error) {
	doc, err := as.DB.GetByID(ctx, models.ContainerAttendance, AttendanceID(gameID))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("attendance for game %s: %w", gameID, ErrNotFound)
	}
	return doc, nil
}

// ListAttendance returns every attendance record.
func (as *AttendanceService) ListAttendance(ctx context.Context) ([]Document, error) {
	return as.DB.Query(ctx, models.ContainerAttendance, nil)
}
