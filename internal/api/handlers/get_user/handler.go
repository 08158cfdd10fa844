package get_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/service/users"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUserNotFound  = "пользователь не найден"
)

// UserResponse HTTP response model
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DisplayName string  `json:"displayName"`
}

type Handler struct {
	userService UserService
	logger      Logger
}

func NewHandler(userService UserService, logger Logger) *Handler {
	return &Handler{
		userService: userService,
		logger:      logger,
	}
}

// Handle GET /api/v1/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userIDStr := vars["userId"]
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/{id} - Failed to get user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DisplayName: user.DisplayName(),
	}

	h.logger.Info("GET /users/{id} - User retrieved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
