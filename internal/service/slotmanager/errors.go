package slotmanager

import "errors"

var (
	// ErrNotReady возвращается, когда запрос пришел до завершения
	// инициализации и контекст истек во время ожидания
	ErrNotReady = errors.New("slotmanager: not initialized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slotmanager: invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("slotmanager: internal error")
)
