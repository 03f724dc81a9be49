// Package auth — repository_postgres.go читает админов из таблицы admins в PostgreSQL.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"membership-manager/internal/common"
)

// PostgresRepository — бэкенд админов поверх пула pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создаёт репозиторий.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Find ищет точное совпадение логина и пароля.
func (r *PostgresRepository) Find(ctx context.Context, username, password string) (*Admin, error) {
	query := `
		SELECT username, password, emirate
		FROM admins
		WHERE username = $1 AND password = $2
		LIMIT 1
	`
	var a Admin
	err := r.db.QueryRow(ctx, query, username, password).Scan(&a.Username, &a.Password, &a.Emirate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка чтения таблицы админов: %w", err)
	}
	return &a, nil
}
