package get_user_sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/service/sessions"
	"github.com/m04kA/NC-SessionService/internal/service/sessions/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус сессии"
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

// Handle GET /api/v1/users/{userId}/sessions
// Query params: status (optional) - фильтр по статусу сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userIDStr := vars["userId"]
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/sessions - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetUserSessionsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.sessionService.GetUserSessions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/sessions - Invalid status filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/sessions - Failed to get sessions: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/sessions - Sessions retrieved: user_id=%d, count=%d",
		userID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
