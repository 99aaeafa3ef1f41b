package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes sets up goal/penalty recording and the merged
// event stream.
func RegisterEventRoutes(r *mux.Router, eventService *services.EventService) {
	controller := controllers.NewEventController(eventService)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/goals", controller.RecordGoal).Methods("POST")
	api.HandleFunc("/penalties", controller.RecordPenalty).Methods("POST")
	api.HandleFunc("/game-events", controller.GetGameEvents).Methods("GET")
	api.HandleFunc("/game-events/{id}", controller.DeleteEvent).Methods("DELETE")
}
