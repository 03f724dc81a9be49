// Package payments — repository.go определяет контракт хранилища платежей.
package payments

import "context"

// Repository — хранилище платежей.
// Контракт одинаков для всех бэкендов (csv, sqlite, postgres):
// записи append-only, порядок List — порядок вставки.
type Repository interface {
	// Create добавляет записи одним батчем: платёж за несколько месяцев
	// сохраняется целиком либо не сохраняется вовсе.
	Create(ctx context.Context, ps ...*Payment) error
	// List возвращает все платежи в порядке вставки.
	List(ctx context.Context) ([]Payment, error)
}
