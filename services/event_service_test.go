package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rinkside_server/models"
)

// fakeBroadcaster records room broadcasts.
type fakeBroadcaster struct {
	rooms  []string
	events []string
}

func (f *fakeBroadcaster) BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool {
	f.rooms = append(f.rooms, room)
	f.events = append(f.events, event)
	return true
}

func newTestEventService(db *DatabaseService, broadcast GameBroadcaster) *EventService {
	es := NewEventService(db, broadcast)
	// Deterministic, strictly increasing clock so event ids never
	// collide within a test.
	base := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)
	es.now = func() time.Time {
		base = base.Add(time.Second)
		return base
	}
	return es
}

func TestRecordGoalAnalytics(t *testing.T) {
	db, _ := newTestDB()
	broadcast := &fakeBroadcaster{}
	es := newTestEventService(db, broadcast)
	ctx := context.Background()

	// Home=Bar, Away=Foo, zero goals.
	seedGame(t, db, "g1", "Bar", "Foo", "Gold", "2026-01-10", "18:30")

	first, err := es.RecordGoal(ctx, Document{
		"gameId": "g1", "teamName": "Foo", "playerName": "Alex Chen", "period": 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	analytics := first["analytics"].(Document)
	if analytics["goalSequenceNumber"] != 1 {
		t.Errorf("first goal sequence = %v, want 1", analytics["goalSequenceNumber"])
	}
	after := analytics["scoreAfterGoal"].(map[string]int)
	if after["Foo"] != 1 || after["Bar"] != 0 {
		t.Errorf("scoreAfterGoal = %v, want Foo=1 Bar=0", after)
	}
	before := analytics["scoreBeforeGoal"].(map[string]int)
	if before["Foo"] != 0 || before["Bar"] != 0 {
		t.Errorf("scoreBeforeGoal = %v, want zeros", before)
	}

	second, err := es.RecordGoal(ctx, Document{
		"gameId": "g1", "teamName": "Bar", "playerName": "Sam Lee", "period": 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	analytics = second["analytics"].(Document)
	if analytics["goalSequenceNumber"] != 2 || analytics["totalGoalsInGame"] != 2 {
		t.Errorf("second goal analytics = %v, want sequence 2", analytics)
	}
	after = analytics["scoreAfterGoal"].(map[string]int)
	if after["Foo"] != 1 || after["Bar"] != 1 {
		t.Errorf("scoreAfterGoal = %v, want Foo=1 Bar=1", after)
	}

	// Aggregates on the game document follow the goals.
	game, err := db.GetByID(ctx, models.ContainerGames, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if docInt(game, "homeTeamGoals") != 1 || docInt(game, "awayTeamGoals") != 1 {
		t.Errorf("game aggregates = %v/%v, want 1/1", game["homeTeamGoals"], game["awayTeamGoals"])
	}

	if len(broadcast.events) != 2 || broadcast.events[0] != "goalRecorded" || broadcast.rooms[0] != "g1" {
		t.Errorf("goal broadcasts = %v in rooms %v", broadcast.events, broadcast.rooms)
	}
}

func TestRecordGoalOvertimeFlag(t *testing.T) {
	db, _ := newTestDB()
	es := newTestEventService(db, nil)
	seedGame(t, db, "g1", "Bar", "Foo", "Gold", "2026-01-10", "18:30")

	goal, err := es.RecordGoal(context.Background(), Document{
		"gameId": "g1", "teamName": "Foo", "playerName": "Alex Chen", "period": 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if goal["analytics"].(Document)["isOvertimeGoal"] != true {
		t.Error("period 4 goal must be flagged as overtime")
	}
}

func TestRecordGoalUnknownGame(t *testing.T) {
	db, _ := newTestDB()
	es := newTestEventService(db, nil)

	_, err := es.RecordGoal(context.Background(), Document{
		"gameId": "ghost", "teamName": "Foo", "playerName": "Alex Chen", "period": 1,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestRecordPenaltyAnalytics(t *testing.T) {
	db, _ := newTestDB()
	es := newTestEventService(db, nil)
	ctx := context.Background()
	seedGame(t, db, "g1", "Bar", "Foo", "Gold", "2026-01-10", "18:30")

	for want := 1; want <= 3; want++ {
		penalty, err := es.RecordPenalty(ctx, Document{
			"gameId": "g1", "teamName": "Foo", "playerName": "Alex Chen",
			"penaltyType": "tripping", "length": "2:00", "period": 2,
		})
		if err != nil {
			t.Fatal(err)
		}
		analytics := penalty["analytics"].(Document)
		if analytics["penaltySequenceNumber"] != want || analytics["totalPenaltiesInGame"] != want {
			t.Errorf("penalty %d analytics = %v", want, analytics)
		}
	}
}

func TestDeleteEventUndoesGoal(t *testing.T) {
	db, _ := newTestDB()
	es := newTestEventService(db, nil)
	ctx := context.Background()
	seedGame(t, db, "g1", "Bar", "Foo", "Gold", "2026-01-10", "18:30")

	goal, err := es.RecordGoal(ctx, Document{
		"gameId": "g1", "teamName": "Foo", "playerName": "Alex Chen", "period": 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := es.DeleteEvent(ctx, docString(goal, "id")); err != nil {
		t.Fatal(err)
	}

	game, err := db.GetByID(ctx, models.ContainerGames, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if docInt(game, "awayTeamGoals") != 0 {
		t.Errorf("undo must roll the score back, awayTeamGoals = %v", game["awayTeamGoals"])
	}

	events, err := es.GetGameEvents(ctx, "g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("deleted event still listed: %v", events)
	}
}

func TestDeleteEventMissing(t *testing.T) {
	db, _ := newTestDB()
	es := newTestEventService(db, nil)

	if _, err := es.DeleteEvent(context.Background(), "g1-goal-12345"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}

	var validationErr *ValidationError
	if _, err := es.DeleteEvent(context.Background(), "not-an-event"); !errors.As(err, &validationErr) {
		t.Errorf("malformed id must be a validation error, got %v", err)
	}
}
