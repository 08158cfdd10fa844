package list_users

import (
	"github.com/m04kA/NC-SessionService/internal/domain"
)

// UserResponse HTTP response model
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DisplayName string  `json:"displayName"`
}

// UserListResponse HTTP response model для списка пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUsers конвертирует доменные модели в HTTP response
func FromDomainUsers(users []*domain.User) *UserListResponse {
	result := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
		Total: len(users),
	}
	for _, u := range users {
		result.Users = append(result.Users, UserResponse{
			ID:          u.ID,
			Email:       u.Email,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			DisplayName: u.DisplayName(),
		})
	}
	return result
}
