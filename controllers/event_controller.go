package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"rinkside_server/services"
)

// EventController handles goal/penalty recording and the merged
// game-events stream.
type EventController struct {
	Events *services.EventService
}

// NewEventController creates an EventController.
func NewEventController(events *services.EventService) *EventController {
	return &EventController{Events: events}
}

// RecordGoal handles POST /api/goals.
func (c *EventController) RecordGoal(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	stored, err := c.Events.RecordGoal(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, stored, nil)
}

// RecordPenalty handles POST /api/penalties.
func (c *EventController) RecordPenalty(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	stored, err := c.Events.RecordPenalty(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, stored, nil)
}

// GetGameEvents handles GET /api/game-events with an optional gameId
// filter. Events come back newest-first.
func (c *EventController) GetGameEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.GetGameEvents(r.Context(), r.URL.Query().Get("gameId"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, events)
}

// DeleteEvent handles DELETE /api/game-events/{id}, the undo path.
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.Events.DeleteEvent(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, deleted, nil)
}
