package models

// Game is one scheduled or played game. Score and shot aggregates are
// denormalized onto the document and bumped as goals are recorded.
type Game struct {
	ID            string `dynamodbav:"id" json:"id"`
	GameID        string `dynamodbav:"gameId,omitempty" json:"gameId,omitempty"`
	HomeTeam      string `dynamodbav:"homeTeam" json:"homeTeam"`
	AwayTeam      string `dynamodbav:"awayTeam" json:"awayTeam"`
	Division      string `dynamodbav:"division,omitempty" json:"division,omitempty"`
	Season        string `dynamodbav:"season,omitempty" json:"season,omitempty"`
	Year          string `dynamodbav:"year,omitempty" json:"year,omitempty"`
	GameDate      string `dynamodbav:"gameDate" json:"gameDate"`
	GameTime      string `dynamodbav:"gameTime" json:"gameTime"`
	Status        string `dynamodbav:"status,omitempty" json:"status,omitempty"`
	HomeTeamGoals int    `dynamodbav:"homeTeamGoals" json:"homeTeamGoals"`
	AwayTeamGoals int    `dynamodbav:"awayTeamGoals" json:"awayTeamGoals"`
	HomeTeamShots int    `dynamodbav:"homeTeamShots" json:"homeTeamShots"`
	AwayTeamShots int    `dynamodbav:"awayTeamShots" json:"awayTeamShots"`
	CreatedAt     string `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// GameSubmission is the terminal record written when an operator
// finalizes a game.
type GameSubmission struct {
	ID             string         `dynamodbav:"id" json:"id"`
	EventType      string         `dynamodbav:"eventType" json:"eventType"`
	GameID         string         `dynamodbav:"gameId" json:"gameId"`
	FinalScore     map[string]int `dynamodbav:"finalScore" json:"finalScore"`
	TotalGoals     int            `dynamodbav:"totalGoals" json:"totalGoals"`
	TotalPenalties int            `dynamodbav:"totalPenalties" json:"totalPenalties"`
	SubmittedAt    string         `dynamodbav:"submittedAt" json:"submittedAt"`
}
