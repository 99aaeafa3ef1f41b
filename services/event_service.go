package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"rinkside_server/models"
	"rinkside_server/socket"
)

// GameBroadcaster pushes live events to a game's socket room.
// Satisfied by *socketio.Server; nil disables broadcasting.
type GameBroadcaster interface {
	BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool
}

// EventService records goals and penalties. Each write recomputes a
// denormalized analytics snapshot by re-reading the game's prior
// events; per-game event counts are tens, not thousands, so the read
// amplification is acceptable.
type EventService struct {
	DB        *DatabaseService
	Broadcast GameBroadcaster

	now func() time.Time
}

// NewEventService wires the event recorder.
func NewEventService(db *DatabaseService, broadcast GameBroadcaster) *EventService {
	return &EventService{DB: db, Broadcast: broadcast, now: time.Now}
}

func (es *EventService) emit(room, event string, payload interface{}) {
	if es.Broadcast == nil {
		return
	}
	es.Broadcast.BroadcastToRoom("/", room, event, payload)
}

// RecordGoal writes a goal with its analytics snapshot and bumps the
// game's score aggregates.
func (es *EventService) RecordGoal(ctx context.Context, doc Document) (Document, error) {
	gameID := docString(doc, "gameId")
	if gameID == "" {
		return nil, &ValidationError{Container: models.ContainerGoals, Errors: []string{"missing required field 'gameId'"}}
	}
	games, err := es.DB.GetGames(ctx, GameFilters{ID: gameID})
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	game := games[0]
	homeTeam := docString(game, "homeTeam")
	awayTeam := docString(game, "awayTeam")

	prior, err := es.DB.Query(ctx, models.ContainerGoals, func(d Document) bool {
		return docString(d, "gameId") == gameID
	})
	if err != nil {
		return nil, err
	}

	before := map[string]int{homeTeam: 0, awayTeam: 0}
	for _, g := range prior {
		before[matchTeam(docString(g, "teamName"), homeTeam, awayTeam)]++
	}
	team := matchTeam(docString(doc, "teamName"), homeTeam, awayTeam)
	after := map[string]int{homeTeam: before[homeTeam], awayTeam: before[awayTeam]}
	after[team]++

	sequence := len(prior) + 1
	now := es.now()
	doc["id"] = fmt.Sprintf("%s-goal-%d", gameID, now.UnixMilli())
	doc["recordedAt"] = now.UTC().Format(time.RFC3339)
	doc["analytics"] = Document{
		"goalSequenceNumber": sequence,
		"totalGoalsInGame":   sequence,
		"scoreBeforeGoal":    before,
		"scoreAfterGoal":     after,
		"isOvertimeGoal":     docInt(doc, "period") > 3,
	}

	stored, err := es.DB.Create(ctx, models.ContainerGoals, doc)
	if err != nil {
		return nil, err
	}

	if _, err := es.DB.Update(ctx, models.ContainerGames, docString(game, "id"), Document{
		"homeTeamGoals": after[homeTeam],
		"awayTeamGoals": after[awayTeam],
	}); err != nil {
		return nil, fmt.Errorf("goal stored but game aggregates failed: %w", err)
	}

	var goal models.Goal
	if err := ToModel(stored, &goal); err != nil {
		log.Warn().Err(err).Str("id", docString(stored, "id")).Msg("goal broadcast payload fallback")
		es.emit(gameID, socket.EventGoalRecorded, stored)
	} else {
		es.emit(gameID, socket.EventGoalRecorded, goal)
	}
	return stored, nil
}

// RecordPenalty writes a penalty with its analytics snapshot.
func (es *EventService) RecordPenalty(ctx context.Context, doc Document) (Document, error) {
	gameID := docString(doc, "gameId")
	if gameID == "" {
		return nil, &ValidationError{Container: models.ContainerPenalties, Errors: []string{"missing required field 'gameId'"}}
	}
	games, err := es.DB.GetGames(ctx, GameFilters{ID: gameID})
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}

	prior, err := es.DB.Query(ctx, models.ContainerPenalties, func(d Document) bool {
		return docString(d, "gameId") == gameID
	})
	if err != nil {
		return nil, err
	}

	sequence := len(prior) + 1
	now := es.now()
	doc["id"] = fmt.Sprintf("%s-penalty-%d", gameID, now.UnixMilli())
	doc["recordedAt"] = now.UTC().Format(time.RFC3339)
	doc["analytics"] = Document{
		"penaltySequenceNumber": sequence,
		"totalPenaltiesInGame":  sequence,
		"isOvertimePenalty":     docInt(doc, "period") > 3,
	}

	stored, err := es.DB.Create(ctx, models.ContainerPenalties, doc)
	if err != nil {
		return nil, err
	}

	var penalty models.Penalty
	if err := ToModel(stored, &penalty); err != nil {
		log.Warn().Err(err).Str("id", docString(stored, "id")).Msg("penalty broadcast payload fallback")
		es.emit(gameID, socket.EventPenaltyRecorded, stored)
	} else {
		es.emit(gameID, socket.EventPenaltyRecorded, penalty)
	}
	return stored, nil
}

// GetGameEvents returns the merged goal/penalty stream, newest first.
func (es *EventService) GetGameEvents(ctx context.Context, gameID string) ([]Document, error) {
	return es.DB.GetGameEvents(ctx, gameID)
}

// DeleteEvent removes a goal or penalty by id (the undo-last-action
// path). Deleting a goal recomputes the game's score aggregates from
// the remaining goals.
func (es *EventService) DeleteEvent(ctx context.Context, id string) (Document, error) {
	var container string
	switch {
	case strings.Contains(id, "-goal-"):
		container = models.ContainerGoals
	case strings.Contains(id, "-penalty-"):
		container = models.ContainerPenalties
	default:
		return nil, &ValidationError{Container: "game-events", Errors: []string{"id is not a goal or penalty id"}}
	}

	doc, err := es.DB.GetByID(ctx, container, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	if err := es.DB.Delete(ctx, container, id); err != nil {
		return nil, err
	}

	if container == models.ContainerGoals {
		if err := es.recomputeScore(ctx, docString(doc, "gameId")); err != nil {
			log.Warn().Err(err).Str("gameId", docString(doc, "gameId")).Msg("score recompute after undo failed")
		}
	}
	return doc, nil
}

func (es *EventService) recomputeScore(ctx context.Context, gameID string) error {
	games, err := es.DB.GetGames(ctx, GameFilters{ID: gameID})
	if err != nil {
		return err
	}
	if len(games) == 0 {
		return fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	game := games[0]
	homeTeam := docString(game, "homeTeam")
	awayTeam := docString(game, "awayTeam")

	goals, err := es.DB.Query(ctx, models.ContainerGoals, func(d Document) bool {
		return docString(d, "gameId") == gameID
	})
	if err != nil {
		return err
	}
	score := map[string]int{homeTeam: 0, awayTeam: 0}
	for _, g := range goals {
		score[matchTeam(docString(g, "teamName"), homeTeam, awayTeam)]++
	}
	_, err = es.DB.Update(ctx, models.ContainerGames, docString(game, "id"), Document{
		"homeTeamGoals": score[homeTeam],
		"awayTeamGoals": score[awayTeam],
	})
	return err
}

// matchTeam maps an event's team name onto the game's home/away name,
// tolerating case drift from manual entry. Unmatched names pass
// through so the score map still records them.
func matchTeam(team, homeTeam, awayTeam string) string {
	if strings.EqualFold(team, homeTeam) {
		return homeTeam
	}
	if strings.EqualFold(team, awayTeam) {
		return awayTeam
	}
	return team
}
