// Package payments — repository_postgres.go хранит платежи в таблице payments в PostgreSQL.
// Батч записывается в транзакции БД: платёж за несколько месяцев
// попадает в таблицу целиком либо не попадает вовсе.
package payments

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository — бэкенд платежей поверх пула pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создаёт репозиторий.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create добавляет записи батча в одной транзакции.
func (r *PostgresRepository) Create(ctx context.Context, ps ...*Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO payments (payment_id, member_id, name, amount, date, notes, month, emirate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, p := range ps {
		var date *time.Time
		if !p.Date.IsZero() {
			date = &p.Date
		}
		if _, err := tx.Exec(ctx, query,
			p.PaymentID, p.MemberID, p.Name, p.Amount, date, p.Notes, p.Month, p.Emirate,
		); err != nil {
			return fmt.Errorf("ошибка сохранения платежа: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// List возвращает все платежи в порядке вставки (по автоинкрементному id).
func (r *PostgresRepository) List(ctx context.Context) ([]Payment, error) {
	query := `
		SELECT payment_id, member_id, name, amount, date, notes, month, emirate
		FROM payments
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы платежей: %w", err)
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		var date sql.NullTime
		if err := rows.Scan(
			&p.PaymentID, &p.MemberID, &p.Name, &p.Amount, &date, &p.Notes, &p.Month, &p.Emirate,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		if date.Valid {
			p.Date = date.Time
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return out, nil
}
