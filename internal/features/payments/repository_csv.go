// Package payments — repository_csv.go хранит платежи в payments.csv.
package payments

import (
	"context"
	"fmt"

	"membership-manager/internal/db/csvfile"
)

// CSVRepository — канонический бэкенд: плоская таблица payments.csv.
type CSVRepository struct {
	table *csvfile.Table
}

// NewCSVRepository создаёт репозиторий над файлом path.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{table: csvfile.NewTable(path, Headers)}
}

// Create дописывает записи в конец таблицы одним персистом:
// либо все строки батча попадают на диск, либо ни одной.
func (r *CSVRepository) Create(ctx context.Context, ps ...*Payment) error {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, p.record())
	}
	if err := r.table.Append(rows...); err != nil {
		return fmt.Errorf("ошибка сохранения платежа: %w", err)
	}
	return nil
}

// List возвращает все платежи в порядке строк таблицы.
func (r *CSVRepository) List(ctx context.Context) ([]Payment, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы платежей: %w", err)
	}
	out := make([]Payment, 0, len(rows))
	for _, row := range rows {
		p, err := paymentFromRecord(row)
		if err != nil {
			return nil, fmt.Errorf("таблица платежей повреждена: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}
