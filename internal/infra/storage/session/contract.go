package session

import (
	"github.com/m04kA/NC-SessionService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Транзакции начинает менеджер транзакций, не репозиторий
type DBExecutor = dbmetrics.DBExecutor
