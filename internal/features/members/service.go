// Package members — service.go содержит бизнес-логику реестра участников.
// Сервис проверяет сессию, валидирует поля и ограничивает все операции
// эмиратом сессии.
package members

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"membership-manager/internal/common"
	"membership-manager/internal/features/auth"
)

// Service управляет реестром участников.
type Service struct {
	repo     Repository
	sessions *auth.Service
}

// NewService создаёт сервис участников.
func NewService(repo Repository, sessions *auth.Service) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Create регистрирует нового участника и возвращает его карточку.
//
// Правила:
//   - имя обязательно, остальные поля свободный текст без валидации;
//   - эмират карточки всегда берётся из сессии — админ отделения не может
//     создать участника чужого эмирата (в одном из вариантов исходной
//     системы мог, это признано ошибкой);
//   - сессия AllEmirates обязана указать эмират явно.
func (s *Service) Create(ctx context.Context, session *auth.Session, input CreateInput) (*Member, error) {
	if err := s.sessions.Validate(session); err != nil {
		return nil, err
	}

	emirate, err := resolveEmirate(session, input.Emirate)
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, common.ErrEmptyFullName
	}

	member := &Member{
		MemberID:   common.NewRecordID(),
		FullName:   fullName,
		Initial:    input.Initial,
		FatherName: input.FatherName,
		Emirate:    emirate,
		Phone:      input.Phone,
		Address:    input.Address,
		Remarks:    input.Remarks,
		PhotoURL:   input.PhotoURL,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("ошибка регистрации участника: %w", err)
	}

	log.WithFields(log.Fields{
		"member_id": member.MemberID,
		"emirate":   member.Emirate,
		"by":        session.Username,
	}).Info("Участник зарегистрирован")

	return member, nil
}

// List возвращает участников эмирата сессии, отфильтрованных по подстроке query
// (без учёта регистра, по всем полям). Пустой query возвращает всех.
// Порядок — порядок вставки, сортировки нет.
func (s *Service) List(ctx context.Context, session *auth.Session, query string) ([]Member, error) {
	if err := s.sessions.Validate(session); err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Member, 0, len(all))
	for _, m := range all {
		if !session.Covers(m.Emirate) {
			continue
		}
		if !m.Matches(query) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// Get возвращает карточку участника в пределах видимости сессии.
// Карточка чужого эмирата неотличима от несуществующей.
func (s *Service) Get(ctx context.Context, session *auth.Session, memberID string) (*Member, error) {
	if err := s.sessions.Validate(session); err != nil {
		return nil, err
	}

	member, err := s.repo.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !session.Covers(member.Emirate) {
		return nil, common.ErrMemberNotFound
	}
	return member, nil
}

// resolveEmirate определяет эмират новой записи по сессии.
// Для обычной сессии это всегда её эмират; явно указанный чужой эмират
// игнорируется. Сессия AllEmirates обязана указать эмират сама.
func resolveEmirate(session *auth.Session, explicit string) (string, error) {
	if session.Unrestricted() {
		if explicit == "" {
			return "", common.ErrEmirateRequired
		}
		if !auth.ValidEmirate(explicit) {
			return "", common.ErrUnknownEmirate
		}
		return explicit, nil
	}
	if explicit != "" && explicit != session.Emirate {
		log.WithFields(log.Fields{
			"session_emirate": session.Emirate,
			"requested":       explicit,
		}).Debug("Явно указанный эмират проигнорирован — берётся эмират сессии")
	}
	return session.Emirate, nil
}
