// Package auth — repository.go определяет контракт доступа к таблице админов.
package auth

import "context"

// Repository читает таблицу учётных записей администраторов.
// Таблица только для чтения — операций записи в контракте нет.
type Repository interface {
	// Find ищет учётную запись по точному совпадению логина и пароля.
	// Промах (в том числе отсутствующая или пустая таблица) —
	// common.ErrInvalidCredentials, частичного успеха не бывает.
	Find(ctx context.Context, username, password string) (*Admin, error)
}
