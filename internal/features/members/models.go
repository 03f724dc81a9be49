// Package members управляет реестром участников организации.
// models.go описывает структуру карточки участника и её табличное представление.
package members

import "strings"

// Headers — схема колонок таблицы members.csv.
// Имена колонок сохранены из исходной системы — таблицы совместимы.
var Headers = []string{
	"Member ID",
	"Full Name",
	"Initial",
	"Father's Name",
	"Emirate",
	"Phone",
	"Address",
	"Remarks",
	"Photo URL",
}

// Member — карточка участника. Записи append-only: операций
// обновления и удаления нет, MemberID никогда не переиспользуется.
type Member struct {
	MemberID   string `db:"member_id"`   // 8-символьный идентификатор, неизменяемый
	FullName   string `db:"full_name"`   // Полное имя (единственное обязательное поле)
	Initial    string `db:"initial"`     // Инициал
	FatherName string `db:"father_name"` // Имя отца
	Emirate    string `db:"emirate"`     // Эмират отделения, назначается при создании
	Phone      string `db:"phone"`       // Телефон (без валидации формата)
	Address    string `db:"address"`     // Адрес
	Remarks    string `db:"remarks"`     // Примечания
	PhotoURL   string `db:"photo_url"`   // Ссылка на фото (необязательно)
}

// CreateInput — поля новой карточки, приходящие из UI-слоя.
// Эмират учитывается только для сессий AllEmirates, иначе берётся из сессии.
type CreateInput struct {
	FullName   string
	Initial    string
	FatherName string
	Emirate    string
	Phone      string
	Address    string
	Remarks    string
	PhotoURL   string
}

// record сериализует карточку в строку таблицы (порядок колонок — Headers).
func (m *Member) record() []string {
	return []string{
		m.MemberID,
		m.FullName,
		m.Initial,
		m.FatherName,
		m.Emirate,
		m.Phone,
		m.Address,
		m.Remarks,
		m.PhotoURL,
	}
}

// memberFromRecord восстанавливает карточку из строки таблицы.
func memberFromRecord(rec []string) Member {
	return Member{
		MemberID:   rec[0],
		FullName:   rec[1],
		Initial:    rec[2],
		FatherName: rec[3],
		Emirate:    rec[4],
		Phone:      rec[5],
		Address:    rec[6],
		Remarks:    rec[7],
		PhotoURL:   rec[8],
	}
}

// Matches проверяет, содержит ли хотя бы одно поле карточки подстроку query
// (без учёта регистра). Пустой query совпадает с любой карточкой.
func (m *Member) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range m.record() {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
