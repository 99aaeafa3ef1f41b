package models

// Player is one entry on a roster.
type Player struct {
	Name         string `dynamodbav:"name" json:"name"`
	FirstName    string `dynamodbav:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string `dynamodbav:"lastName,omitempty" json:"lastName,omitempty"`
	JerseyNumber string `dynamodbav:"jerseyNumber,omitempty" json:"jerseyNumber,omitempty"`
	Position     string `dynamodbav:"position,omitempty" json:"position,omitempty"`
}

// Roster is the registered player list for one team in one season.
// Its id is derived from team/season/year so re-imports overwrite
// rather than duplicate.
type Roster struct {
	ID        string   `dynamodbav:"id" json:"id"`
	TeamName  string   `dynamodbav:"teamName" json:"teamName"`
	Division  string   `dynamodbav:"division,omitempty" json:"division,omitempty"`
	Season    string   `dynamodbav:"season" json:"season"`
	Year      string   `dynamodbav:"year" json:"year"`
	Players   []Player `dynamodbav:"players" json:"players"`
	CreatedAt string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
