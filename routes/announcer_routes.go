package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterAnnouncerRoutes sets up the text-to-speech endpoint.
func RegisterAnnouncerRoutes(r *mux.Router, announcerService *services.AnnouncerService) {
	controller := controllers.NewAnnouncerController(announcerService)

	r.HandleFunc("/api/announcer/speak", controller.Speak).Methods("POST")
}
