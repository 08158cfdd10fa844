package update_session_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/service/sessions"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус сессии"
	msgSessionNotFound    = "сессия не найдена"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // completed | no_show | scheduled
}

type Handler struct {
	sessionService SessionService
	logger         Logger
}

func NewHandler(sessionService SessionService, logger Logger) *Handler {
	return &Handler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sessionIDStr := vars["sessionId"]
	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/status - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.sessionService.UpdateStatus(r.Context(), sessionID, req.Status); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/status - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/status - Invalid status: session_id=%d, status=%s",
				sessionID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /sessions/{id}/status - Failed to update status: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/status - Status updated: session_id=%d, status=%s", sessionID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
