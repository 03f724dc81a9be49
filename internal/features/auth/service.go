// Package auth — service.go содержит логику входа, реестр активных сессий
// и явный выход (в исходной системе выхода не было — это закрытый пробел).
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"membership-manager/internal/common"
	"membership-manager/internal/config"
)

// Service управляет входом администраторов и их сессиями.
// Сессии хранятся in-memory: процесс один, персистентность сессий не нужна.
type Service struct {
	repo       Repository
	ttl        time.Duration
	sessions   map[string]*Session // Активные сессии по токену
	sessionsMu sync.RWMutex
}

// NewService создаёт сервис аутентификации.
func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		ttl:      cfg.SessionTTL,
		sessions: make(map[string]*Session),
	}
}

// Authenticate проверяет логин и пароль по таблице админов.
// Успех — новая сессия, привязанная ровно к одному эмирату
// (или к AllEmirates, если так указано в учётной записи).
// Неудача — common.ErrInvalidCredentials, частичного входа не бывает.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	admin, err := s.repo.Find(ctx, username, password)
	if err != nil {
		log.WithField("username", username).Info("Отказ во входе")
		return nil, err
	}

	now := time.Now()
	session := &Session{
		Token:           generateSecureToken(),
		Username:        admin.Username,
		Emirate:         admin.Emirate,
		AuthenticatedAt: now,
		ExpiresAt:       now.Add(s.ttl),
	}

	s.sessionsMu.Lock()
	s.sessions[session.Token] = session
	s.sessionsMu.Unlock()

	log.WithFields(log.Fields{
		"username": admin.Username,
		"emirate":  admin.Emirate,
	}).Info("Администратор вошёл в систему")

	return session, nil
}

// Validate проверяет, что сессия активна.
// Все операции с записями обязаны вызывать Validate перед работой.
func (s *Service) Validate(session *Session) error {
	if session == nil {
		return common.ErrNotAuthenticated
	}

	s.sessionsMu.RLock()
	stored, ok := s.sessions[session.Token]
	s.sessionsMu.RUnlock()

	if !ok || stored != session {
		return common.ErrNotAuthenticated
	}
	if time.Now().After(session.ExpiresAt) {
		s.sessionsMu.Lock()
		delete(s.sessions, session.Token)
		s.sessionsMu.Unlock()
		return common.ErrSessionExpired
	}
	return nil
}

// Logout завершает сессию. Повторный Logout безвреден.
func (s *Service) Logout(session *Session) {
	if session == nil {
		return
	}
	s.sessionsMu.Lock()
	delete(s.sessions, session.Token)
	s.sessionsMu.Unlock()

	log.WithField("username", session.Username).Info("Администратор вышел из системы")
}

// ActiveSessions возвращает количество активных сессий (для логов и диагностики).
func (s *Service) ActiveSessions() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

// generateSecureToken генерирует криптографически безопасный токен сессии.
func generateSecureToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
	}
	return base64.URLEncoding.EncodeToString(b)
}
