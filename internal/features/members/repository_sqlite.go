// Package members — repository_sqlite.go хранит участников в таблице members в SQLite.
package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"membership-manager/internal/common"
)

// SQLiteRepository — бэкенд участников поверх database/sql (modernc.org/sqlite).
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository создаёт репозиторий.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create добавляет новую карточку участника.
func (r *SQLiteRepository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO members (member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		m.MemberID, m.FullName, m.Initial, m.FatherName,
		m.Emirate, m.Phone, m.Address, m.Remarks, m.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения участника: %w", err)
	}
	return nil
}

// List возвращает все карточки в порядке вставки (по автоинкрементному id).
func (r *SQLiteRepository) List(ctx context.Context) ([]Member, error) {
	query := `
		SELECT member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url
		FROM members
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы участников: %w", err)
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(
			&m.MemberID, &m.FullName, &m.Initial, &m.FatherName,
			&m.Emirate, &m.Phone, &m.Address, &m.Remarks, &m.PhotoURL,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return out, nil
}

// Get возвращает карточку по идентификатору.
func (r *SQLiteRepository) Get(ctx context.Context, memberID string) (*Member, error) {
	query := `
		SELECT member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url
		FROM members
		WHERE member_id = ?
	`
	var m Member
	err := r.db.QueryRowContext(ctx, query, memberID).Scan(
		&m.MemberID, &m.FullName, &m.Initial, &m.FatherName,
		&m.Emirate, &m.Phone, &m.Address, &m.Remarks, &m.PhotoURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMemberNotFound
		}
		return nil, fmt.Errorf("ошибка чтения участника (member_id=%s): %w", memberID, err)
	}
	return &m, nil
}
