package routes

import (
	"rinkside_server/controllers"
	"rinkside_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up the /api/admin surface.
func RegisterAdminRoutes(r *mux.Router, db *services.DatabaseService, rosterService *services.RosterService) {
	controller := controllers.NewAdminController(db, rosterService)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()

	adminRouter.HandleFunc("/update-deployment-time", controller.UpdateDeploymentTime).Methods("POST")
	adminRouter.HandleFunc("/rosters/{id}/sub", controller.AppendSubPlayer).Methods("POST")
}
