package models

// GoalAnalytics is the denormalized snapshot computed when a goal is
// recorded: where this goal fell in the game and what the score was
// around it. Recomputed from prior events at write time, never updated.
type GoalAnalytics struct {
	GoalSequenceNumber int            `dynamodbav:"goalSequenceNumber" json:"goalSequenceNumber"`
	TotalGoalsInGame   int            `dynamodbav:"totalGoalsInGame" json:"totalGoalsInGame"`
	ScoreBeforeGoal    map[string]int `dynamodbav:"scoreBeforeGoal" json:"scoreBeforeGoal"`
	ScoreAfterGoal     map[string]int `dynamodbav:"scoreAfterGoal" json:"scoreAfterGoal"`
	IsOvertimeGoal     bool           `dynamodbav:"isOvertimeGoal" json:"isOvertimeGoal"`
}

// Goal is one scored goal. Immutable once written except via explicit
// delete (the undo path).
type Goal struct {
	ID            string         `dynamodbav:"id" json:"id"`
	GameID        string         `dynamodbav:"gameId" json:"gameId"`
	TeamName      string         `dynamodbav:"teamName" json:"teamName"`
	PlayerName    string         `dynamodbav:"playerName" json:"playerName"`
	AssistedBy    string         `dynamodbav:"assistedBy,omitempty" json:"assistedBy,omitempty"`
	Period        int            `dynamodbav:"period" json:"period"`
	TimeRemaining string         `dynamodbav:"timeRemaining,omitempty" json:"timeRemaining,omitempty"`
	ShotType      string         `dynamodbav:"shotType,omitempty" json:"shotType,omitempty"`
	GoalType      string         `dynamodbav:"goalType,omitempty" json:"goalType,omitempty"`
	Breakaway     bool           `dynamodbav:"breakaway" json:"breakaway"`
	RecordedAt    string         `dynamodbav:"recordedAt" json:"recordedAt"`
	Analytics     *GoalAnalytics `dynamodbav:"analytics,omitempty" json:"analytics,omitempty"`
}

// PenaltyAnalytics mirrors GoalAnalytics for penalties.
type PenaltyAnalytics struct {
	PenaltySequenceNumber int  `dynamodbav:"penaltySequenceNumber" json:"penaltySequenceNumber"`
	TotalPenaltiesInGame  int  `dynamodbav:"totalPenaltiesInGame" json:"totalPenaltiesInGame"`
	IsOvertimePenalty     bool `dynamodbav:"isOvertimePenalty" json:"isOvertimePenalty"`
}

// Penalty is one assessed penalty.
type Penalty struct {
	ID            string            `dynamodbav:"id" json:"id"`
	GameID        string            `dynamodbav:"gameId" json:"gameId"`
	TeamName      string            `dynamodbav:"teamName" json:"teamName"`
	PlayerName    string            `dynamodbav:"playerName" json:"playerName"`
	PenaltyType   string            `dynamodbav:"penaltyType" json:"penaltyType"`
	Length        string            `dynamodbav:"length,omitempty" json:"length,omitempty"`
	Period        int               `dynamodbav:"period" json:"period"`
	TimeRemaining string            `dynamodbav:"timeRemaining,omitempty" json:"timeRemaining,omitempty"`
	RecordedAt    string            `dynamodbav:"recordedAt" json:"recordedAt"`
	Analytics     *PenaltyAnalytics `dynamodbav:"analytics,omitempty" json:"analytics,omitempty"`
}
