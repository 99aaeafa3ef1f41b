package models

// Logical container names. The physical DynamoDB table name is the
// configured table prefix plus one of these.
const (
	ContainerGames       = "games"
	ContainerRosters     = "rosters"
	ContainerGoals       = "goals"
	ContainerPenalties   = "penalties"
	ContainerAttendance  = "attendance"
	ContainerSubmissions = "submissions"
	ContainerConfig      = "config"
)

// Game statuses
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusSubmitted  = "submitted"
	StatusCompleted  = "completed"
)

// Event types attached to game events
const (
	EventTypeGoal           = "goal"
	EventTypePenalty        = "penalty"
	EventTypeGameSubmission = "game-submission"
)

// DivisionUnknown is the sentinel returned when a team's division
// cannot be resolved. Enrichment never fails a request over it.
const DivisionUnknown = "Unknown"
