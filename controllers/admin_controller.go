package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rinkside_server/models"
	"rinkside_server/services"
)

// AdminController handles the small /api/admin surface.
type AdminController struct {
	DB      *services.DatabaseService
	Rosters *services.RosterService
}

// NewAdminController creates an AdminController.
func NewAdminController(db *services.DatabaseService, rosters *services.RosterService) *AdminController {
	return &AdminController{DB: db, Rosters: rosters}
}

// UpdateDeploymentTime handles POST /api/admin/update-deployment-time,
// stamping the config document the frontend reads to detect a new
// deploy.
func (c *AdminController) UpdateDeploymentTime(w http.ResponseWriter, r *http.Request) {
	doc, err := c.DB.Upsert(r.Context(), models.ContainerConfig, services.Document{
		"id":             "deployment",
		"deploymentTime": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, doc, nil)
}

// AppendSubPlayer handles POST /api/admin/rosters/{id}/sub.
func (c *AdminController) AppendSubPlayer(w http.ResponseWriter, r *http.Request) {
	roster, err := c.Rosters.AppendSubPlayer(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, roster, nil)
}
