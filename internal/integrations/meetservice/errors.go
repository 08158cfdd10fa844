package meetservice

import "errors"

var (
	// ErrMeetingNotCreated возвращается, когда сервис видеовстреч вернул
	// неуспешный статус или некорректное тело ответа
	// Для бронирования это НЕ фатальная ошибка: сессия уже создана
	ErrMeetingNotCreated = errors.New("meetservice client: meeting was not created")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("meetservice client: internal error")
)
