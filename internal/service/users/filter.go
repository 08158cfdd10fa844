package users

import (
	"strings"

	"github.com/m04kA/NC-SessionService/internal/domain"
)

// Filter возвращает пользователей, у которых поисковая строка входит
// (без учета регистра) в отображаемое имя или email.
//
// Пустая или пробельная строка - фильтр-тождество: возвращается
// входной слайс без изменений и без копирования.
// Функция чистая, вход не модифицируется
func Filter(users []*domain.User, term string) []*domain.User {
	term = strings.TrimSpace(term)
	if term == "" {
		return users
	}

	lower := strings.ToLower(term)

	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), lower) ||
			strings.Contains(strings.ToLower(u.DisplayName()), lower) {
			filtered = append(filtered, u)
		}
	}

	return filtered
}
