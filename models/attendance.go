package models

// TeamAttendance is one team's slice of an attendance record: the
// roster snapshot at check-in time and the subset marked present.
type TeamAttendance struct {
	TeamName string   `dynamodbav:"teamName" json:"teamName"`
	Roster   []Player `dynamodbav:"roster" json:"roster"`
	Present  []string `dynamodbav:"present" json:"present"`
}

// AttendanceSummary carries the per-team present counts.
type AttendanceSummary struct {
	TotalPresent int            `dynamodbav:"totalPresent" json:"totalPresent"`
	TotalRoster  int            `dynamodbav:"totalRoster" json:"totalRoster"`
	ByTeam       map[string]int `dynamodbav:"byTeam" json:"byTeam"`
}

// Attendance is the one-per-game check-in record
// (id = {gameId}-attendance).
type Attendance struct {
	ID         string            `dynamodbav:"id" json:"id"`
	GameID     string            `dynamodbav:"gameId" json:"gameId"`
	Teams      []TeamAttendance  `dynamodbav:"teams" json:"teams"`
	Summary    AttendanceSummary `dynamodbav:"summary" json:"summary"`
	RecordedAt string            `dynamodbav:"recordedAt" json:"recordedAt"`
}
