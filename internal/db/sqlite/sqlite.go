// Package sqlite управляет подключением к встроенной базе SQLite
// (modernc.org/sqlite, без cgo). Бэкенд включается конфигом
// STORAGE_DRIVER=sqlite и реализует те же контракты репозиториев,
// что и канонические CSV-таблицы.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// schema создаёт все таблицы. Схема повторяет колонки CSV-таблиц,
// автоинкрементный id фиксирует порядок вставки.
const schema = `
CREATE TABLE IF NOT EXISTS members (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	member_id TEXT UNIQUE NOT NULL,
	full_name TEXT NOT NULL,
	initial TEXT NOT NULL DEFAULT '',
	father_name TEXT NOT NULL DEFAULT '',
	emirate TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	remarks TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	payment_id TEXT UNIQUE NOT NULL,
	member_id TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	amount REAL NOT NULL,
	date TEXT NOT NULL DEFAULT '',
	notes TEXT NOT NULL DEFAULT '',
	month TEXT NOT NULL,
	emirate TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS admins (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	emirate TEXT NOT NULL
);
`

// Open открывает (при необходимости создавая) базу по пути path
// и применяет схему.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ошибка создания каталога БД %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия SQLite %q: %w", path, err)
	}
	// Файл один, процесс один — больше одного соединения не нужно
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка настройки SQLite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка применения схемы SQLite: %w", err)
	}

	log.WithField("path", path).Info("База SQLite открыта")
	return db, nil
}
