package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rinkside_server/models"
	"rinkside_server/socket"
)

// GameService owns the game lifecycle: scheduling, listing with
// division enrichment, updates, and finalization.
type GameService struct {
	DB        *DatabaseService
	Broadcast GameBroadcaster

	now func() time.Time
}

// NewGameService wires the game service.
func NewGameService(db *DatabaseService, broadcast GameBroadcaster) *GameService {
	return &GameService{DB: db, Broadcast: broadcast, now: time.Now}
}

// CreateGame schedules a game, rejecting one that duplicates an
// existing home/away/date/time combination. The check is
// check-then-act, which is fine at manual scheduling rates.
func (gs *GameService) CreateGame(ctx context.Context, doc Document) (Document, error) {
	dupes, err := gs.DB.Query(ctx, models.ContainerGames, func(d Document) bool {
		return strings.EqualFold(docString(d, "homeTeam"), docString(doc, "homeTeam")) &&
			strings.EqualFold(docString(d, "awayTeam"), docString(doc, "awayTeam")) &&
			docString(d, "gameDate") == docString(doc, "gameDate") &&
			docString(d, "gameTime") == docString(doc, "gameTime")
	})
	if err != nil {
		return nil, err
	}
	if len(dupes) > 0 {
		return nil, fmt.Errorf("a game with the same teams, date and time already exists: %w", ErrConflict)
	}

	if docString(doc, "id") == "" {
		doc["id"] = "game-" + uuid.NewString()
	}
	if docString(doc, "gameId") == "" {
		doc["gameId"] = docString(doc, "id")
	}
	if docString(doc, "status") == "" {
		doc["status"] = models.StatusScheduled
	}
	for _, field := range []string{"homeTeamGoals", "awayTeamGoals", "homeTeamShots", "awayTeamShots"} {
		if _, ok := doc[field]; !ok {
			doc[field] = 0
		}
	}

	return gs.DB.Create(ctx, models.ContainerGames, doc)
}

// GetGames lists games, backfilling unknown divisions from roster
// data. The backfill is best-effort: a failed lookup leaves the
// sentinel in place and never fails the request.
func (gs *GameService) GetGames(ctx context.Context, filters GameFilters) ([]Document, error) {
	docs, err := gs.DB.GetGames(ctx, filters)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		division := docString(doc, "division")
		if division != "" && division != models.DivisionUnknown {
			continue
		}
		resolved := gs.DB.GetTeamDivision(ctx, docString(doc, "homeTeam"), docString(doc, "season"), docString(doc, "year"))
		if resolved != models.DivisionUnknown {
			doc["division"] = resolved
		}
	}
	return docs, nil
}

// GetGame fetches one game by id (or embedded gameId).
func (gs *GameService) GetGame(ctx context.Context, id string) (Document, error) {
	games, err := gs.DB.GetGames(ctx, GameFilters{ID: id})
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	return games[0], nil
}

// UpdateGame applies a partial update.
func (gs *GameService) UpdateGame(ctx context.Context, id string, partial Document) (Document, error) {
	return gs.DB.Update(ctx, models.ContainerGames, id, partial)
}

// DeleteGame removes a game.
func (gs *GameService) DeleteGame(ctx context.Context, id string) error {
	existing, err := gs.DB.GetByID(ctx, models.ContainerGames, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	return gs.DB.Delete(ctx, models.ContainerGames, id)
}

// SubmitGame finalizes a game: writes the terminal submission record
// with the final score and event counts, then flips the game to
// submitted. Submitting twice is a conflict.
func (gs *GameService) SubmitGame(ctx context.Context, id string) (Document, error) {
	doc, err := gs.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	var game models.Game
	if err := ToModel(doc, &game); err != nil {
		return nil, err
	}
	if game.Status == models.StatusSubmitted {
		return nil, fmt.Errorf("game %s is already submitted: %w", id, ErrConflict)
	}

	gameID := game.GameID
	if gameID == "" {
		gameID = game.ID
	}
	events, err := gs.DB.GetGameEvents(ctx, gameID)
	if err != nil {
		return nil, err
	}
	totalGoals, totalPenalties := 0, 0
	for _, event := range events {
		switch docString(event, "eventType") {
		case models.EventTypeGoal:
			totalGoals++
		case models.EventTypePenalty:
			totalPenalties++
		}
	}

	submission := models.GameSubmission{
		ID:        game.ID + "-submission",
		EventType: models.EventTypeGameSubmission,
		GameID:    gameID,
		FinalScore: map[string]int{
			game.HomeTeam: game.HomeTeamGoals,
			game.AwayTeam: game.AwayTeamGoals,
		},
		TotalGoals:     totalGoals,
		TotalPenalties: totalPenalties,
		SubmittedAt:    gs.now().UTC().Format(time.RFC3339),
	}
	submissionDoc, err := DocumentFromModel(submission)
	if err != nil {
		return nil, err
	}
	if _, err := gs.DB.Create(ctx, models.ContainerSubmissions, submissionDoc); err != nil {
		return nil, err
	}

	updated, err := gs.DB.Update(ctx, models.ContainerGames, game.ID, Document{
		"status": models.StatusSubmitted,
	})
	if err != nil {
		return nil, fmt.Errorf("submission recorded but status update failed: %w", err)
	}

	if gs.Broadcast != nil {
		gs.Broadcast.BroadcastToRoom("/", gameID, socket.EventGameSubmitted, submission)
	}
	log.Info().Str("gameId", gameID).Int("goals", totalGoals).Int("penalties", totalPenalties).Msg("game submitted")
	return updated, nil
}

// GetSubmittedGames lists finalized games.
func (gs *GameService) GetSubmittedGames(ctx context.Context) ([]Document, error) {
	return gs.DB.Query(ctx, models.ContainerGames, func(d Document) bool {
		return docString(d, "status") == models.StatusSubmitted
	})
}
