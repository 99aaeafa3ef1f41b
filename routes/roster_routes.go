package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterRosterRoutes sets up routes for rosters under /api/rosters.
func RegisterRosterRoutes(r *mux.Router, rosterService *services.RosterService) {
	controller := controllers.NewRosterController(rosterService)

	rosterRouter := r.PathPrefix("/api/rosters").Subrouter()

	rosterRouter.HandleFunc("", controller.CreateRoster).Methods("POST")
	rosterRouter.HandleFunc("", controller.GetRosters).Methods("GET")
	rosterRouter.HandleFunc("/{id}", controller.GetRoster).Methods("GET")
	rosterRouter.HandleFunc("/{id}", controller.UpdateRoster).Methods("PUT")
	rosterRouter.HandleFunc("/{id}", controller.DeleteRoster).Methods("DELETE")
}
