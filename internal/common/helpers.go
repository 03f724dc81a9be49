// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: работа с датами и месяцами взносов, часовой пояс ОАЭ,
// русская плюрализация.
package common

import (
	"fmt"
	"time"
)

// Форматы дат, используемые в таблицах.
const (
	// DateFormat — формат даты платежа ("2025-08-28")
	DateFormat = "2006-01-02"
	// MonthFormat — формат месяца, за который уплачен взнос ("2025-08")
	MonthFormat = "2006-01"
)

// GetGulfTime возвращает текущее время в часовом поясе ОАЭ (Asia/Dubai).
// Все даты платежей и резервных копий привязаны к этому поясу.
func GetGulfTime() time.Time {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		// Если не удалось загрузить — используем UTC+4 вручную
		loc = time.FixedZone("GST", 4*60*60)
	}
	return time.Now().In(loc)
}

// MonthString возвращает месяц даты t в формате "2006-01".
func MonthString(t time.Time) string {
	return t.Format(MonthFormat)
}

// MonthsOfYear возвращает все 12 месяцев года year в формате "2006-01".
// Используется UI-слоем для списка выбора покрываемых месяцев.
func MonthsOfYear(year int) []string {
	out := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, fmt.Sprintf("%d-%02d", year, m))
	}
	return out
}

// ValidMonth проверяет, что строка является корректным месяцем "ГГГГ-ММ".
func ValidMonth(s string) bool {
	_, err := time.Parse(MonthFormat, s)
	return err == nil
}

// ParseDate разбирает дату платежа. Пустая строка — не ошибка:
// в старых таблицах встречаются платежи без даты.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate форматирует дату платежа для хранения в таблице.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
