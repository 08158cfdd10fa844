package users

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/NC-SessionService/internal/domain"
	"github.com/m04kA/NC-SessionService/pkg/ptr"
)

func testUsers() []*domain.User {
	return []*domain.User{
		{ID: 1, Email: "anna.petrova@example.com", FirstName: ptr.Ptr("Anna"), LastName: ptr.Ptr("Petrova")},
		{ID: 2, Email: "boris@example.com", FirstName: ptr.Ptr("Boris"), LastName: ptr.Ptr("Ivanov")},
		{ID: 3, Email: "maria.sidorova@clinic.org"},
	}
}

func TestFilter_EmptyTermReturnsSameSlice(t *testing.T) {
	users := testUsers()

	// Пустой и пробельный фильтр - тождество: тот же слайс, без копии
	assert.Equal(t, users, Filter(users, ""))
	assert.Equal(t, users, Filter(users, "   "))

	filtered := Filter(users, "")
	assert.Same(t, users[0], filtered[0])
}

func TestFilter_MatchesByName(t *testing.T) {
	users := testUsers()

	filtered := Filter(users, "anna")
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)

	// Регистр не учитывается
	filtered = Filter(users, "IVANOV")
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}

func TestFilter_MatchesByEmail(t *testing.T) {
	users := testUsers()

	filtered := Filter(users, "clinic.org")
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestFilter_MatchesByDisplayNameFallback(t *testing.T) {
	users := testUsers()

	// У пользователя без имени DisplayName - локальная часть email
	filtered := Filter(users, "maria.sidorova")
	assert.Len(t, filtered, 1)
	assert.Equal(t, int64(3), filtered[0].ID)
}

func TestFilter_NoMatches(t *testing.T) {
	users := testUsers()

	filtered := Filter(users, "nonexistent")
	assert.Empty(t, filtered)

	// Исходный слайс не модифицируется
	assert.Len(t, users, 3)
}
