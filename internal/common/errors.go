// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях приложения.
// Эти ошибки позволяют вызывающему слою (UI) различать типы проблем
// и показывать администратору понятные сообщения.
package common

import "errors"

// Ошибки аутентификации и сессий
var (
	// ErrInvalidCredentials — неверный логин или пароль (или таблица админов пуста)
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	// ErrNotAuthenticated — операция требует активной сессии
	ErrNotAuthenticated = errors.New("требуется вход в систему")
	// ErrSessionExpired — сессия истекла
	ErrSessionExpired = errors.New("сессия истекла, авторизуйтесь заново")
)

// Ошибки валидации записей
var (
	// ErrEmptyFullName — полное имя участника не может быть пустым
	ErrEmptyFullName = errors.New("имя участника не может быть пустым")
	// ErrUnknownEmirate — эмират не входит в список допустимых
	ErrUnknownEmirate = errors.New("неизвестный эмират")
	// ErrEmirateRequired — сессия «All Emirates» обязана указать эмират явно
	ErrEmirateRequired = errors.New("эмират должен быть указан явно")
	// ErrNegativeAmount — сумма взноса не может быть отрицательной
	ErrNegativeAmount = errors.New("сумма взноса не может быть отрицательной")
	// ErrNoMonthsSelected — платёж должен покрывать хотя бы один месяц
	ErrNoMonthsSelected = errors.New("не выбран ни один месяц")
	// ErrBadMonthFormat — месяц должен быть в формате ГГГГ-ММ
	ErrBadMonthFormat = errors.New("месяц должен быть в формате ГГГГ-ММ")
	// ErrMemberNotFound — участник с таким ID не найден
	ErrMemberNotFound = errors.New("участник не найден")
)
