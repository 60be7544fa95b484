// ABOUTME: Admin API handler exposing health, token status and manual trigger runs
// ABOUTME: Small operational surface for the sidecar deployment

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"youtube-trigger-sidecar/models"
	"youtube-trigger-sidecar/service"
	"youtube-trigger-sidecar/service/scheduler"
)

// TriggerRunner runs registered triggers outside their schedule
type TriggerRunner interface {
	RunOnce(ctx context.Context, name string) (*models.TriggerEvent, error)
	TriggerNames() []string
}

// TokenStatusProvider reports the current OAuth2 token state
type TokenStatusProvider interface {
	Status() service.TokenStatus
}

// AdminAPIHandler serves the sidecar's operational endpoints
type AdminAPIHandler struct {
	runner TriggerRunner
	tokens TokenStatusProvider
	logger *slog.Logger
}

// ErrorResponse is the error payload of the admin API
type ErrorResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TriggerRunResponse is returned by the manual run endpoint
type TriggerRunResponse struct {
	Status    string               `json:"status"`
	Trigger   string               `json:"trigger"`
	Event     *models.TriggerEvent `json:"event,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// NewAdminAPIHandler creates a new admin API handler
func NewAdminAPIHandler(runner TriggerRunner, tokens TokenStatusProvider, logger *slog.Logger) *AdminAPIHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminAPIHandler{
		runner: runner,
		tokens: tokens,
		logger: logger,
	}
}

// Routes builds the admin API mux
func (h *AdminAPIHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("GET /api/v1/token/status", h.HandleTokenStatus)
	mux.HandleFunc("GET /api/v1/triggers", h.HandleListTriggers)
	mux.HandleFunc("POST /api/v1/triggers/{name}/run", h.HandleRunTrigger)
	return mux
}

// HandleHealth responds to liveness probes
func (h *AdminAPIHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleTokenStatus reports the current OAuth2 token state
func (h *AdminAPIHandler) HandleTokenStatus(w http.ResponseWriter, r *http.Request) {
	status := h.tokens.Status()
	h.writeJSON(w, http.StatusOK, status)
}

// HandleListTriggers lists the registered triggers
func (h *AdminAPIHandler) HandleListTriggers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{
		"triggers": h.runner.TriggerNames(),
	})
}

// HandleRunTrigger evaluates one trigger cycle immediately. A cycle that
// finds nothing new is a success with no event attached.
func (h *AdminAPIHandler) HandleRunTrigger(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	h.logger.Info("Manual trigger run requested", "trigger", name)

	event, err := h.runner.RunOnce(r.Context(), name)
	if err != nil {
		if errors.Is(err, scheduler.ErrUnknownTrigger) {
			h.writeJSON(w, http.StatusNotFound, ErrorResponse{
				Status:    "error",
				Message:   err.Error(),
				Timestamp: time.Now(),
			})
			return
		}
		h.logger.Error("Manual trigger run failed", "trigger", name, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Status:    "error",
			Message:   err.Error(),
			Timestamp: time.Now(),
		})
		return
	}

	status := "no_new_items"
	if event != nil {
		status = "event_emitted"
	}

	h.writeJSON(w, http.StatusOK, TriggerRunResponse{
		Status:    status,
		Trigger:   name,
		Event:     event,
		Timestamp: time.Now(),
	})
}

func (h *AdminAPIHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode admin API response", "error", err)
	}
}
