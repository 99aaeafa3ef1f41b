package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterGameRoutes sets up routes for games under /api/games.
func RegisterGameRoutes(r *mux.Router, gameService *services.GameService) {
	controller := controllers.NewGameController(gameService)

	gameRouter := r.PathPrefix("/api/games").Subrouter()

	// /submitted before /{id} so it is not captured as an id.
	gameRouter.HandleFunc("/submitted", controller.GetSubmittedGames).Methods("GET")
	gameRouter.HandleFunc("", controller.CreateGame).Methods("POST")
	gameRouter.HandleFunc("", controller.GetGames).Methods("GET")
	gameRouter.HandleFunc("/{id}", controller.GetGame).Methods("GET")
	gameRouter.HandleFunc("/{id}", controller.UpdateGame).Methods("PUT")
	gameRouter.HandleFunc("/{id}", controller.DeleteGame).Methods("DELETE")
	gameRouter.HandleFunc("/{id}/submit", controller.SubmitGame).Methods("POST")
}
