// Package auth реализует вход администраторов и сессии с привязкой к эмирату.
// models.go описывает учётные записи, сессии и справочник эмиратов.
package auth

import "time"

// AllEmirates — специальное значение эмирата в таблице админов.
// Даёт сессии право видеть записи всех эмиратов. Назначается только
// в таблице учётных записей, никогда не является значением по умолчанию.
const AllEmirates = "All Emirates"

// Emirates — допустимые эмираты (региональные отделения организации).
var Emirates = []string{
	"Dubai",
	"Sharjah",
	"Ajman",
	"Abu Dhabi",
	"Al Ain",
	"Northern Emirates",
}

// ValidEmirate проверяет, что строка — один из допустимых эмиратов.
// AllEmirates здесь не считается эмиратом: это атрибут учётной записи,
// а не значение, которое можно записать в карточку участника.
func ValidEmirate(s string) bool {
	for _, e := range Emirates {
		if e == s {
			return true
		}
	}
	return false
}

// Headers — схема колонок таблицы admins.csv (только чтение).
var Headers = []string{"Username", "Password", "Emirate"}

// Admin — учётная запись администратора отделения.
// Таблица админов — справочные данные, приложение их не изменяет.
type Admin struct {
	Username string `db:"username"`
	Password string `db:"password"`
	Emirate  string `db:"emirate"` // Эмират отделения или AllEmirates
}

// Session — активная сессия администратора.
// Возвращается из Authenticate и передаётся во все операции с записями:
// каждая операция неявно ограничена эмиратом сессии.
type Session struct {
	Token           string    // Случайный токен сессии
	Username        string    // Кто вошёл
	Emirate         string    // Эмират, которым ограничены операции
	AuthenticatedAt time.Time // Когда выполнен вход
	ExpiresAt       time.Time // Когда сессия истекает
}

// Unrestricted сообщает, видит ли сессия записи всех эмиратов.
func (s *Session) Unrestricted() bool {
	return s.Emirate == AllEmirates
}

// Covers проверяет, попадает ли запись эмирата emirate в область видимости сессии.
func (s *Session) Covers(emirate string) bool {
	return s.Unrestricted() || s.Emirate == emirate
}
