// Package members — repository_csv.go хранит участников в members.csv.
package members

import (
	"context"
	"fmt"

	"membership-manager/internal/common"
	"membership-manager/internal/db/csvfile"
)

// CSVRepository — канонический бэкенд: плоская таблица members.csv.
type CSVRepository struct {
	table *csvfile.Table
}

// NewCSVRepository создаёт репозиторий над файлом path.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{table: csvfile.NewTable(path, Headers)}
}

// Create дописывает карточку в конец таблицы и сохраняет её на диск.
func (r *CSVRepository) Create(ctx context.Context, m *Member) error {
	if err := r.table.Append(m.record()); err != nil {
		return fmt.Errorf("ошибка сохранения участника: %w", err)
	}
	return nil
}

// List возвращает все карточки в порядке строк таблицы.
func (r *CSVRepository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы участников: %w", err)
	}
	out := make([]Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRecord(row))
	}
	return out, nil
}

// Get находит карточку по идентификатору полным проходом по таблице.
// Для таблиц такого размера это нормально.
func (r *CSVRepository) Get(ctx context.Context, memberID string) (*Member, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].MemberID == memberID {
			return &all[i], nil
		}
	}
	return nil, common.ErrMemberNotFound
}
