// Package members — repository.go определяет контракт хранилища участников.
package members

import "context"

// Repository — хранилище карточек участников.
// Контракт одинаков для всех бэкендов (csv, sqlite, postgres):
// записи append-only, порядок List — порядок вставки.
type Repository interface {
	// Create добавляет новую карточку.
	Create(ctx context.Context, m *Member) error
	// List возвращает все карточки в порядке вставки.
	List(ctx context.Context) ([]Member, error)
	// Get возвращает карточку по идентификатору.
	// Промах — common.ErrMemberNotFound.
	Get(ctx context.Context, memberID string) (*Member, error)
}
