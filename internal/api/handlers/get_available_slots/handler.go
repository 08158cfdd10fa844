package get_available_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	"github.com/m04kA/NC-SessionService/internal/domain"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/sessions/available-slots
// Query params: date (required, YYYY-MM-DD), category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sessions/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sessions/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategorySession
	}

	// Дожидаемся готовности кэша рабочих окон
	if err := h.slotService.WaitReady(r.Context()); err != nil {
		h.logger.Error("GET /sessions/available-slots - Slot service not ready: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceNotReady)
		return
	}

	slots, err := h.slotService.SlotsForDate(r.Context(), date, category)
	if err != nil {
		h.logger.Error("GET /sessions/available-slots - Failed to get slots: date=%s, category=%s, error=%v",
			dateStr, category, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &AvailableSlotsResponse{
		Date:  dateStr,
		Slots: make([]string, 0, len(slots)),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, s.String())
	}

	h.logger.Info("GET /sessions/available-slots - Slots retrieved: date=%s, category=%s, count=%d",
		dateStr, category, len(slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
