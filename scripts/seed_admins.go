//go:build ignore

// seed_admins.go — утилита для создания стартовой таблицы админов.
// Запуск: go run scripts/seed_admins.go data/admins.csv
//
// Создаёт admins.csv с примерами учётных записей по одной на эмират
// плюс суперпользователь "All Emirates". Пароли замените перед
// использованием — таблица хранит их открытым текстом.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Использование: go run scripts/seed_admins.go <путь к admins.csv>")
		os.Exit(1)
	}
	path := os.Args[1]

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Файл %s уже существует — не перезаписываю\n", path)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Printf("Ошибка создания каталога: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Ошибка создания файла: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows := [][]string{
		{"Username", "Password", "Emirate"},
		{"admin.dubai", "changeme", "Dubai"},
		{"admin.sharjah", "changeme", "Sharjah"},
		{"admin.ajman", "changeme", "Ajman"},
		{"admin.abudhabi", "changeme", "Abu Dhabi"},
		{"admin.alain", "changeme", "Al Ain"},
		{"admin.northern", "changeme", "Northern Emirates"},
		{"superadmin", "changeme", "All Emirates"},
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		fmt.Printf("Ошибка записи: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Создан %s (%d учётных записей). Не забудьте сменить пароли.\n", path, len(rows)-1)
}
