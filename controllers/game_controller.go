package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"rinkside_server/services"
)

// GameController handles the /api/games resource.
type GameController struct {
	Games *services.GameService
}

// NewGameController creates a GameController.
func NewGameController(games *services.GameService) *GameController {
	return &GameController{Games: games}
}

// CreateGame handles POST /api/games.
func (c *GameController) CreateGame(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	created, err := c.Games.CreateGame(r.Context(), doc)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, created, nil)
}

// GetGames handles GET /api/games with optional id, division, and
// date-range filters.
func (c *GameController) GetGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := services.GameFilters{
		ID:       q.Get("id"),
		Division: q.Get("division"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
	}
	games, err := c.Games.GetGames(r.Context(), filters)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, games)
}

// GetGame handles GET /api/games/{id}.
func (c *GameController) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := c.Games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, game, nil)
}

// UpdateGame handles PUT /api/games/{id}.
func (c *GameController) UpdateGame(w http.ResponseWriter, r *http.Request) {
	partial, err := decodeDocument(r)
	if err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	updated, err := c.Games.UpdateGame(r.Context(), mux.Vars(r)["id"], partial)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, updated, nil)
}

// DeleteGame handles DELETE /api/games/{id}.
func (c *GameController) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := c.Games.DeleteGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"deleted": mux.Vars(r)["id"]}, nil)
}

// SubmitGame handles POST /api/games/{id}/submit.
func (c *GameController) SubmitGame(w http.ResponseWriter, r *http.Request) {
	updated, err := c.Games.SubmitGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, updated, nil)
}

// GetSubmittedGames handles GET /api/games/submitted.
func (c *GameController) GetSubmittedGames(w http.ResponseWriter, r *http.Request) {
	games, err := c.Games.GetSubmittedGames(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, games)
}
