package create_session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Никакие сетевые вызовы при этом не выполняются
	ErrInvalidInput = errors.New("create_session: invalid input data")

	// ErrUserNotFound возвращается, когда пациент не найден в справочнике
	ErrUserNotFound = errors.New("create_session: user not found")

	// ErrInvalidDate возвращается при некорректной дате сессии
	ErrInvalidDate = errors.New("create_session: invalid session date")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	// Запись о сессии при этом не создается
	ErrSlotNotAvailable = errors.New("create_session: slot is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_session: internal error")
)
