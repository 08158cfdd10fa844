package list_users

import (
	"net/http"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/service/users"
)

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

// Handle GET /api/v1/users
// Query params: search (optional) - фильтр по email или имени
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	list, err := h.userService.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Фильтрация выполняется в памяти поверх полного списка справочника
	filtered := users.Filter(list, search)

	response := FromDomainUsers(filtered)

	h.logger.Info("GET /users - Users retrieved: total=%d, filtered=%d, search=%q",
		len(list), len(filtered), search)
	handlers.RespondJSON(w, http.StatusOK, response)
}
