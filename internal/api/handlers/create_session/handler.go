package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/NC-SessionService/internal/api/handlers"
	createSession "github.com/m04kA/NC-SessionService/internal/usecase/create_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные сессии"
	msgUserNotFound       = "пользователь не найден"
	msgPastDate           = "дата сессии не может быть в прошлом"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSession.ErrUserNotFound):
			h.logger.Warn("POST /sessions - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createSession.ErrInvalidDate):
			h.logger.Warn("POST /sessions - Date in the past: user_id=%d, date=%s", req.UserID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createSession.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions - Slot not available: user_id=%d, date=%s, time=%s",
				req.UserID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /sessions - Failed to create session: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions - Session created successfully: session_id=%d, user_id=%d, link_generated=%t",
		result.ID, req.UserID, result.LinkGenerated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
