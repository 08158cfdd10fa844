package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// Наружу отдается как ошибка инициализации справочника
	ErrInternal = errors.New("users service: internal error")
)
