package get_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/service/sessions"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия не найдена"
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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sessionIDStr := vars["sessionId"]
	sessionID, err := strconv.ParseInt(sessionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	result, err := h.sessionService.GetByID(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id} - Session retrieved: session_id=%d", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
