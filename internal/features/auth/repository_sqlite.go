// Package auth — repository_sqlite.go читает админов из таблицы admins в SQLite.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"membership-manager/internal/common"
)

// SQLiteRepository — бэкенд админов поверх database/sql (modernc.org/sqlite).
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository создаёт репозиторий.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Find ищет точное совпадение логина и пароля.
func (r *SQLiteRepository) Find(ctx context.Context, username, password string) (*Admin, error) {
	query := `
		SELECT username, password, emirate
		FROM admins
		WHERE username = ? AND password = ?
		LIMIT 1
	`
	var a Admin
	err := r.db.QueryRowContext(ctx, query, username, password).Scan(&a.Username, &a.Password, &a.Emirate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка чтения таблицы админов: %w", err)
	}
	return &a, nil
}
