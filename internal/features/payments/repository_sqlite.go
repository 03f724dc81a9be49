// Package payments — repository_sqlite.go хранит платежи в таблице payments в SQLite.
package payments

import (
	"context"
	"database/sql"
	"fmt"

	"membership-manager/internal/common"
)

// SQLiteRepository — бэкенд платежей поверх database/sql (modernc.org/sqlite).
// Дата хранится текстом в формате "2006-01-02", пустая строка — даты нет.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository создаёт репозиторий.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create добавляет записи батча в одной транзакции.
func (r *SQLiteRepository) Create(ctx context.Context, ps ...*Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (payment_id, member_id, name, amount, date, notes, month, emirate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, p := range ps {
		date := ""
		if !p.Date.IsZero() {
			date = common.FormatDate(p.Date)
		}
		if _, err := tx.ExecContext(ctx, query,
			p.PaymentID, p.MemberID, p.Name, p.Amount, date, p.Notes, p.Month, p.Emirate,
		); err != nil {
			return fmt.Errorf("ошибка сохранения платежа: %w", err)
		}
	}
	return tx.Commit()
}

// List возвращает все платежи в порядке вставки (по автоинкрементному id).
func (r *SQLiteRepository) List(ctx context.Context) ([]Payment, error) {
	query := `
		SELECT payment_id, member_id, name, amount, date, notes, month, emirate
		FROM payments
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы платежей: %w", err)
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var p Payment
		var date string
		if err := rows.Scan(
			&p.PaymentID, &p.MemberID, &p.Name, &p.Amount, &date, &p.Notes, &p.Month, &p.Emirate,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		p.Date, _ = common.ParseDate(date)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return out, nil
}
