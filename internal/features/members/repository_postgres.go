// Package members — repository_postgres.go хранит участников в таблице members в PostgreSQL.
package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"membership-manager/internal/common"
)

// PostgresRepository — бэкенд участников поверх пула pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создаёт репозиторий.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create добавляет новую карточку участника.
func (r *PostgresRepository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO members (member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		m.MemberID, m.FullName, m.Initial, m.FatherName,
		m.Emirate, m.Phone, m.Address, m.Remarks, m.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения участника: %w", err)
	}
	return nil
}

// List возвращает все карточки в порядке вставки (по автоинкрементному id).
func (r *PostgresRepository) List(ctx context.Context) ([]Member, error) {
	query := `
		SELECT member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url
		FROM members
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
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
func (r *PostgresRepository) Get(ctx context.Context, memberID string) (*Member, error) {
	query := `
		SELECT member_id, full_name, initial, father_name, emirate, phone, address, remarks, photo_url
		FROM members
		WHERE member_id = $1
	`
	var m Member
	err := r.db.QueryRow(ctx, query, memberID).Scan(
		&m.MemberID, &m.FullName, &m.Initial, &m.FatherName,
		&m.Emirate, &m.Phone, &m.Address, &m.Remarks, &m.PhotoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrMemberNotFound
		}
		return nil, fmt.Errorf("ошибка чтения участника (member_id=%s): %w", memberID, err)
	}
	return &m, nil
}
