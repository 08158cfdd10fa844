package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/internal/service/slotmanager"
)

const (
	msgServiceNotReady = "сервис расписания еще не готов, повторите запрос"
)

type Handler struct {
	slotService SlotService
	logger      Logger
}

func NewHandler(slotService SlotService, logger Logger) *Handler {
	return &Handler{
		slotService: slotService,
		logger:      logger,
	}
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

// Handle GET /api/v1/sessions/available-dates
// Query params: category (optional, default "session")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategorySession
	}

	// Дожидаемся готовности кэша рабочих окон
	if err := h.slotService.WaitReady(r.Context()); err != nil {
		h.logger.Error("GET /sessions/available-dates - Slot service not ready: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceNotReady)
		return
	}

	dates, err := h.slotService.AvailableDates(r.Context(), category)
	if err != nil {
		if errors.Is(err, slotmanager.ErrNotReady) {
			h.logger.Error("GET /sessions/available-dates - Slot service not ready: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceNotReady)
			return
		}
		h.logger.Error("GET /sessions/available-dates - Failed to get dates: category=%s, error=%v", category, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &AvailableDatesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		response.Dates = append(response.Dates, d.Format(domain.DateFormat))
	}

	h.logger.Info("GET /sessions/available-dates - Dates retrieved: category=%s, count=%d", category, len(dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
