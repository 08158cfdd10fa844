package domain

import "strings"

// User represents a bookable patient from the user directory
// Directory data is read-only for this service
type User struct {
	ID        int64
	Email     string
	FirstName *string
	LastName  *string
}

// DisplayName возвращает отображаемое имя пользователя
// Приоритет: "Имя Фамилия" -> локальная часть email
// Деривация собрана здесь, а не размазана по обработчикам
func (u *User) DisplayName() string {
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) != "" {
		name := strings.TrimSpace(*u.FirstName)
		if u.LastName != nil && strings.TrimSpace(*u.LastName) != "" {
			name += " " + strings.TrimSpace(*u.LastName)
		}
		return name
	}

	if idx := strings.Index(u.Email, "@"); idx > 0 {
		return u.Email[:idx]
	}
	return u.Email
}
