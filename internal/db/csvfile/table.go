// Package csvfile управляет плоскими CSV-таблицами — каноническим
// хранилищем приложения. Одна таблица — один файл с заголовком.
//
// Семантика хранения повторяет исходную систему: таблица целиком
// читается в память и целиком перезаписывается после изменения.
// Отличия от исходной системы (сознательные исправления):
//   - перезапись атомарна (временный файл + rename), чтобы сбой посреди
//     записи не оставил полузаписанную таблицу;
//   - цикл load-mutate-persist сериализуется мьютексом, чтобы две
//     админ-сессии не затирали изменения друг друга.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Table — одна CSV-таблица с фиксированной схемой колонок.
type Table struct {
	path    string
	headers []string
	mu      sync.Mutex
}

// NewTable создаёт дескриптор таблицы. Файл при этом не создаётся:
// отсутствие файла — корректное начальное состояние (пустая таблица).
func NewTable(path string, headers []string) *Table {
	return &Table{path: path, headers: headers}
}

// Path возвращает путь к файлу таблицы.
func (t *Table) Path() string { return t.path }

// Headers возвращает схему колонок таблицы.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Load читает все строки таблицы (без заголовка).
// Если файла нет — возвращает пустую таблицу без ошибки.
// Любая другая ошибка ввода-вывода пробрасывается вызывающему.
func (t *Table) Load() ([][]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

// Append добавляет строки в конец таблицы и сразу сохраняет её на диск.
// Загрузка, добавление и запись выполняются под одним мьютексом.
func (t *Table) Append(rows ...[]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, err := t.load()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if len(row) != len(t.headers) {
			return fmt.Errorf("строка из %d колонок не соответствует схеме %q (%d колонок)",
				len(row), filepath.Base(t.path), len(t.headers))
		}
	}
	return t.replace(append(existing, rows...))
}

// Replace полностью перезаписывает таблицу переданными строками.
func (t *Table) Replace(rows [][]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.replace(rows)
}

func (t *Table) load() ([][]string, error) {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Файла ещё нет — это пустая таблица, не ошибка
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка открытия таблицы %q: %w", t.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(t.headers)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения таблицы %q: %w", t.path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	// Первая строка — заголовок
	return records[1:], nil
}

// replace пишет заголовок и строки во временный файл рядом с таблицей,
// сбрасывает его на диск и атомарно подменяет файл через rename.
func (t *Table) replace(rows [][]string) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога данных %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(t.path)+"-*")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(t.headers); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("ошибка записи заголовка %q: %w", t.path, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("ошибка записи таблицы %q: %w", t.path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("ошибка записи таблицы %q: %w", t.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("ошибка сброса таблицы на диск %q: %w", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия временного файла: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("ошибка подмены таблицы %q: %w", t.path, err)
	}
	return nil
}
