// Package common — pluralize.go содержит вспомогательные функции
// для правильного склонения русских числительных.
// Используется в логах и сообщениях для администратора.
package common

import (
	"fmt"
	"math"
)

// pluralForm выбирает форму слова по правилам русского языка:
//   - n%10==1 И n%100!=11 → one (1, 21, 31, 101, ...)
//   - n%10 в [2,4] И n%100 НЕ в [12,14] → few (2, 3, 4, 22, 23, ...)
//   - остальные случаи → many (0, 5-20, 25-30, 100, ...)
func pluralForm(n int64, one, few, many string) string {
	absN := int64(math.Abs(float64(n)))
	lastDigit := absN % 10
	lastTwoDigits := absN % 100

	if lastDigit == 1 && lastTwoDigits != 11 {
		return one
	}
	if lastDigit >= 2 && lastDigit <= 4 && (lastTwoDigits < 12 || lastTwoDigits > 14) {
		return few
	}
	return many
}

// PluralizeMembers возвращает правильную форму слова «участник».
//
// Примеры:
//
//	PluralizeMembers(1)  → "участник"
//	PluralizeMembers(3)  → "участника"
//	PluralizeMembers(5)  → "участников"
func PluralizeMembers(n int64) string {
	return pluralForm(n, "участник", "участника", "участников")
}

// PluralizeMonths возвращает правильную форму слова «месяц».
func PluralizeMonths(n int64) string {
	return pluralForm(n, "месяц", "месяца", "месяцев")
}

// PluralizePayments возвращает правильную форму слова «платёж».
func PluralizePayments(n int64) string {
	return pluralForm(n, "платёж", "платежа", "платежей")
}

// FormatAmount форматирует сумму взноса для логов и сообщений.
// Пример: FormatAmount(150) → "150.00 AED"
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f AED", amount)
}
