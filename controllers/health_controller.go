package controllers

import (
	"net/http"

	"rinkside_server/services"
)

// HealthController handles /api/health and /api/version.
type HealthController struct {
	Health *services.HealthService
}

// NewHealthController creates a HealthController.
func NewHealthController(health *services.HealthService) *HealthController {
	return &HealthController{Health: health}
}

// GetHealth reports process health; a failed store probe answers 503
// with the degraded payload.
func (c *HealthController) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := c.Health.Check(r.Context())
	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respond(w, code, status, nil)
}

// GetVersion reports static version metadata.
func (c *HealthController) GetVersion(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{
		"version":   services.Version,
		"gitCommit": c.Health.GitCommit,
		"gitBranch": c.Health.GitBranch,
	}, nil)
}
