// Package payments — service.go содержит бизнес-логику учёта взносов.
// Сервис проверяет сессию, валидирует платёж, разворачивает платёж
// за несколько месяцев в отдельные записи и ограничивает выборки
// эмиратом сессии.
package payments

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"membership-manager/internal/common"
	"membership-manager/internal/features/auth"
	"membership-manager/internal/features/members"
)

// Service управляет учётом взносов.
type Service struct {
	repo     Repository
	members  *members.Service
	sessions *auth.Service
}

// NewService создаёт сервис платежей.
func NewService(repo Repository, memberService *members.Service, sessions *auth.Service) *Service {
	return &Service{repo: repo, members: memberService, sessions: sessions}
}

// Create записывает взнос участника за выбранные месяцы.
//
// Правила:
//   - участник должен существовать и быть видимым сессии — исходная система
//     молча принимала платёж на несуществующий ID, это признано ошибкой;
//   - сумма неотрицательная;
//   - нужен хотя бы один месяц, каждый в формате "2006-01";
//   - каждый месяц — отдельная запись со СВОИМ идентификатором;
//   - имя участника копируется в запись на момент платежа;
//   - нулевая дата заменяется сегодняшней (по времени ОАЭ).
func (s *Service) Create(ctx context.Context, session *auth.Session, input CreateInput, months []string) ([]Payment, error) {
	if err := s.sessions.Validate(session); err != nil {
		return nil, err
	}

	if input.Amount < 0 {
		return nil, common.ErrNegativeAmount
	}
	if len(months) == 0 {
		return nil, common.ErrNoMonthsSelected
	}
	for _, m := range months {
		if !common.ValidMonth(m) {
			return nil, fmt.Errorf("%w: %q", common.ErrBadMonthFormat, m)
		}
	}

	// Get уже ограничен видимостью сессии: участник чужого эмирата
	// неотличим от несуществующего.
	member, err := s.members.Get(ctx, session, input.MemberID)
	if err != nil {
		return nil, err
	}

	emirate := member.Emirate
	if session.Unrestricted() && input.Emirate != "" {
		if !auth.ValidEmirate(input.Emirate) {
			return nil, common.ErrUnknownEmirate
		}
		emirate = input.Emirate
	}

	date := input.Date
	if date.IsZero() {
		date = common.GetGulfTime()
	}

	batch := make([]*Payment, 0, len(months))
	for _, month := range months {
		batch = append(batch, &Payment{
			PaymentID: common.NewRecordID(),
			MemberID:  member.MemberID,
			Name:      member.FullName,
			Amount:    input.Amount,
			Date:      date,
			Notes:     input.Notes,
			Month:     month,
			Emirate:   emirate,
		})
	}

	if err := s.repo.Create(ctx, batch...); err != nil {
		return nil, fmt.Errorf("ошибка записи взноса: %w", err)
	}

	log.WithFields(log.Fields{
		"member_id": member.MemberID,
		"amount":    common.FormatAmount(input.Amount),
		"months":    len(months),
		"by":        session.Username,
	}).Infof("Взнос записан: %d %s", len(months), common.PluralizeMonths(int64(len(months))))

	out := make([]Payment, 0, len(batch))
	for _, p := range batch {
		out = append(out, *p)
	}
	return out, nil
}

// List возвращает платежи эмирата сессии, отфильтрованные по подстроке query
// (без учёта регистра, по всем полям). Область видимости определяется
// эмиратом, проставленным на самой записи платежа.
// При sortByDate записи сортируются по дате по убыванию (стабильно),
// иначе порядок — порядок вставки.
func (s *Service) List(ctx context.Context, session *auth.Session, query string, sortByDate bool) ([]Payment, error) {
	if err := s.sessions.Validate(session); err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Payment, 0, len(all))
	for _, p := range all {
		if !session.Covers(p.Emirate) {
			continue
		}
		if !p.Matches(query) {
			continue
		}
		out = append(out, p)
	}

	if sortByDate {
		// Записи без даты уходят в конец
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.After(out[j].Date)
		})
	}
	return out, nil
}
