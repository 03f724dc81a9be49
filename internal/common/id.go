// Package common — id.go генерирует идентификаторы записей.
package common

import "github.com/google/uuid"

// NewRecordID возвращает новый 8-символьный идентификатор записи —
// первые 8 hex-символов UUIDv4, как в исходной системе.
// Идентификатор генерируется при создании записи и никогда не меняется.
func NewRecordID() string {
	return uuid.NewString()[:8]
}
