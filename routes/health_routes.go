package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterHealthRoutes sets up /api/health and /api/version.
func RegisterHealthRoutes(r *mux.Router, healthService *services.HealthService) {
	controller := controllers.NewHealthController(healthService)

	r.HandleFunc("/api/health", controller.GetHealth).Methods("GET")
	r.HandleFunc("/api/version", controller.GetVersion).Methods("GET")
}
