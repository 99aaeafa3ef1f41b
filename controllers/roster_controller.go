package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"rinkside_server/services"
)

// RosterController handles the /api/rosters resource.
type RosterController struct {
	Rosters *services.RosterService
}

// NewRosterController creates a RosterController.
func NewRosterController(rosters *services.RosterService) *RosterController {
	return &RosterController{Rosters: rosters}
}

// CreateRoster handles POST /api/rosters.
func (c *RosterController) CreateRoster(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	created, err := c.Rosters.CreateRoster(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, created, nil)
}

// GetRosters handles GET /api/rosters with optional gameId,
// teamName, season, and year filters.
func (c *RosterController) GetRosters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := services.RosterFilters{
		GameID:   q.Get("gameId"),
		TeamName: q.Get("teamName"),
		Season:   q.Get("season"),
		Year:     q.Get("year"),
	}
	rosters, err := c.Rosters.GetRosters(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, rosters)
}

// GetRoster handles GET /api/rosters/{id}.
func (c *RosterController) GetRoster(w http.ResponseWriter, r *http.Request) {
	rosters, err := c.Rosters.GetRosters(r.Context(), services.RosterFilters{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, rosters[0], nil)
}

// UpdateRoster handles PUT /api/rosters/{id}.
func (c *RosterController) UpdateRoster(w http.ResponseWriter, r *http.Request) {
	partial, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	updated, err := c.Rosters.UpdateRoster(r.Context(), mux.Vars(r)["id"], partial)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, updated, nil)
}

// DeleteRoster handles DELETE /api/rosters/{id}.
func (c *RosterController) DeleteRoster(w http.ResponseWriter, r *http.Request) {
	if err := c.Rosters.DeleteRoster(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"deleted": mux.Vars(r)["id"]}, nil)
}
