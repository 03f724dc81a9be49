// Package payments управляет учётом ежемесячных взносов.
// models.go описывает структуру платежа и его табличное представление.
package payments

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"membership-manager/internal/common"
)

// Headers — схема колонок таблицы payments.csv.
// Имена колонок сохранены из исходной системы — таблицы совместимы.
var Headers = []string{
	"Payment ID",
	"Member ID",
	"Name",
	"Amount",
	"Date",
	"Notes",
	"Month",
	"Emirate",
}

// Payment — один взнос за один месяц. Записи append-only.
// Платёж, покрывающий несколько месяцев, хранится как несколько записей,
// каждая со СВОИМ идентификатором (переиспользование одного идентификатора
// в исходной системе было ошибкой и здесь не воспроизводится).
type Payment struct {
	PaymentID string    `db:"payment_id"` // 8-символьный идентификатор, свой у каждой записи
	MemberID  string    `db:"member_id"`  // Ссылка на участника (слабая: без каскадов)
	Name      string    `db:"name"`       // Имя участника на момент платежа (денормализовано)
	Amount    float64   `db:"amount"`     // Сумма в AED, неотрицательная
	Date      time.Time `db:"date"`       // Дата платежа (нулевое время — дата не указана)
	Notes     string    `db:"notes"`      // Примечания
	Month     string    `db:"month"`      // Покрываемый месяц в формате "2006-01"
	Emirate   string    `db:"emirate"`    // Эмират, под которым записан платёж
}

// CreateInput — поля нового платежа, приходящие из UI-слоя.
// Покрываемые месяцы передаются отдельным аргументом Create.
type CreateInput struct {
	MemberID string
	Amount   float64
	Date     time.Time // Нулевое время — подставится сегодняшняя дата
	Notes    string
	Emirate  string // Учитывается только для сессий AllEmirates
}

// record сериализует платёж в строку таблицы (порядок колонок — Headers).
func (p *Payment) record() []string {
	date := ""
	if !p.Date.IsZero() {
		date = common.FormatDate(p.Date)
	}
	return []string{
		p.PaymentID,
		p.MemberID,
		p.Name,
		strconv.FormatFloat(p.Amount, 'f', -1, 64),
		date,
		p.Notes,
		p.Month,
		p.Emirate,
	}
}

// paymentFromRecord восстанавливает платёж из строки таблицы.
func paymentFromRecord(rec []string) (Payment, error) {
	amount, err := strconv.ParseFloat(rec[3], 64)
	if err != nil {
		return Payment{}, fmt.Errorf("некорректная сумма %q у платежа %s: %w", rec[3], rec[0], err)
	}
	date, _ := common.ParseDate(rec[4])
	return Payment{
		PaymentID: rec[0],
		MemberID:  rec[1],
		Name:      rec[2],
		Amount:    amount,
		Date:      date,
		Notes:     rec[5],
		Month:     rec[6],
		Emirate:   rec[7],
	}, nil
}

// Matches проверяет, содержит ли хотя бы одно поле платежа подстроку query
// (без учёта регистра, по сериализованным значениям полей).
// Пустой query совпадает с любой записью.
func (p *Payment) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range p.record() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
