package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"rinkside_server/services"
)

// AnnouncerController handles POST /api/announcer/speak.
type AnnouncerController struct {
	Announcer *services.AnnouncerService
}

// NewAnnouncerController creates an AnnouncerController.
func NewAnnouncerController(announcer *services.AnnouncerService) *AnnouncerController {
	return &AnnouncerController{Announcer: announcer}
}

type speakRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// Speak synthesizes announcer audio and returns a short-lived clip
// URL.
func (c *AnnouncerController) Speak(w http.ResponseWriter, r *http.Request) {
	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request payload")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondBadRequest(w, "text is required")
		return
	}
	clip, err := c.Announcer.Synthesize(r.Context(), req.Text, req.Voice)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, clip, nil)
}
