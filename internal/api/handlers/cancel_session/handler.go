package cancel_session

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/api/middleware"
	"github.com/m04kA/NC-SessionService/internal/service/sessions"
	"github.com/m04kA/NC-SessionService/internal/service/sessions/models"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgCannotCancel       = "сессию нельзя отменить в текущем статусе"
	msgInvalidReason      = "некорректная причина отмены"
)

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

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sessionIDStr := vars["sessionId"]
	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	// Тело с причиной отмены опционально
	var req models.CancelSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.sessionService.Cancel(r.Context(), sessionID, &req); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrCannotCancel):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Cannot cancel: session_id=%d", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid cancellation reason: session_id=%d", sessionID)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: session_id=%d, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled: session_id=%d, by_user=%d", sessionID, actorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
