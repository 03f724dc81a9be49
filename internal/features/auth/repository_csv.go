// Package auth — repository_csv.go читает админов из admins.csv.
package auth

import (
	"context"
	"fmt"

	"membership-manager/internal/common"
	"membership-manager/internal/db/csvfile"
)

// CSVRepository — канонический бэкенд: плоская таблица admins.csv.
type CSVRepository struct {
	table *csvfile.Table
}

// NewCSVRepository создаёт репозиторий над файлом path.
func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{table: csvfile.NewTable(path, Headers)}
}

// Find ищет точное совпадение логина и пароля.
// Отсутствующий файл таблицы — это пустая таблица, то есть отказ во входе.
func (r *CSVRepository) Find(ctx context.Context, username, password string) (*Admin, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы админов: %w", err)
	}
	for _, row := range rows {
		if row[0] == username && row[1] == password {
			return &Admin{Username: row[0], Password: row[1], Emirate: row[2]}, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}
