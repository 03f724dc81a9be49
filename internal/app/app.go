// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: выбирает бэкенд хранилища, создаёт репозитории,
// сервисы и планировщик, и собирает всё в один объект App.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"membership-manager/internal/common"
	"membership-manager/internal/config"
	"membership-manager/internal/db/postgres"
	"membership-manager/internal/db/sqlite"
	"membership-manager/internal/features/auth"
	"membership-manager/internal/features/members"
	"membership-manager/internal/features/payments"
	"membership-manager/internal/jobs"
)

// App содержит все компоненты приложения.
// Сервисы — API-поверхность для UI-слоя (веб-формы живут в другом репозитории).
type App struct {
	Auth      *auth.Service
	Members   *members.Service
	Payments  *payments.Service
	Scheduler *jobs.Scheduler // nil, если бэкапы не нужны (не-CSV драйвер или выключено)

	pool *pgxpool.Pool
	db   *sql.DB
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	// === 1. Хранилище и репозитории ===
	var (
		memberRepo  members.Repository
		paymentRepo payments.Repository
		authRepo    auth.Repository
	)

	switch cfg.StorageDriver {
	case config.DriverCSV:
		memberRepo = members.NewCSVRepository(cfg.MembersPath())
		paymentRepo = payments.NewCSVRepository(cfg.PaymentsPath())
		authRepo = auth.NewCSVRepository(cfg.AdminsPath())
		log.WithField("data_dir", cfg.DataDir).Info("Хранилище: CSV-таблицы")

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("ошибка открытия SQLite: %w", err)
		}
		a.db = db
		memberRepo = members.NewSQLiteRepository(db)
		paymentRepo = payments.NewSQLiteRepository(db)
		authRepo = auth.NewSQLiteRepository(db)

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
		}
		a.pool = pool
		if err := runMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ошибка миграций: %w", err)
		}
		memberRepo = members.NewPostgresRepository(pool)
		paymentRepo = payments.NewPostgresRepository(pool)
		authRepo = auth.NewPostgresRepository(pool)

	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища %q", cfg.StorageDriver)
	}

	// === 2. Сервисы ===
	a.Auth = auth.NewService(authRepo, cfg)
	a.Members = members.NewService(memberRepo, a.Auth)
	a.Payments = payments.NewService(paymentRepo, a.Members, a.Auth)

	// === 3. Планировщик бэкапов (только для CSV-таблиц) ===
	if cfg.StorageDriver == config.DriverCSV && cfg.BackupEnabled {
		a.Scheduler = jobs.NewScheduler(cfg)
	}

	logTableSizes(ctx, memberRepo, paymentRepo)
	return a, nil
}

// Close освобождает ресурсы хранилища.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.WithError(err).Warn("Ошибка закрытия базы")
		}
	}
}

// logTableSizes пишет в лог размеры таблиц при старте.
func logTableSizes(ctx context.Context, memberRepo members.Repository, paymentRepo payments.Repository) {
	ms, err := memberRepo.List(ctx)
	if err != nil {
		log.WithError(err).Warn("Не удалось прочитать таблицу участников")
		return
	}
	ps, err := paymentRepo.List(ctx)
	if err != nil {
		log.WithError(err).Warn("Не удалось прочитать таблицу платежей")
		return
	}
	log.Infof("Загружено: %d %s, %d %s",
		len(ms), common.PluralizeMembers(int64(len(ms))),
		len(ps), common.PluralizePayments(int64(len(ps))))
}

// runMigrations выполняет все SQL-миграции PostgreSQL.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Members},
		{2, migration002Payments},
		{3, migration003Admins},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}
	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.
// Схема повторяет колонки CSV-таблиц, автоинкрементный id фиксирует порядок вставки.

var migration001Members = `
CREATE TABLE IF NOT EXISTS members (
    id BIGSERIAL PRIMARY KEY,
    member_id VARCHAR(8) UNIQUE NOT NULL,
    full_name TEXT NOT NULL,
    initial TEXT NOT NULL DEFAULT '',
    father_name TEXT NOT NULL DEFAULT '',
    emirate VARCHAR(64) NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    remarks TEXT NOT NULL DEFAULT '',
    photo_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_members_member_id ON members(member_id);
CREATE INDEX IF NOT EXISTS idx_members_emirate ON members(emirate);
`

var migration002Payments = `
CREATE TABLE IF NOT EXISTS payments (
    id BIGSERIAL PRIMARY KEY,
    payment_id VARCHAR(8) UNIQUE NOT NULL,
    member_id VARCHAR(8) NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    amount DOUBLE PRECISION NOT NULL,
    date DATE,
    notes TEXT NOT NULL DEFAULT '',
    month VARCHAR(7) NOT NULL,
    emirate VARCHAR(64) NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_payments_member_id ON payments(member_id);
CREATE INDEX IF NOT EXISTS idx_payments_emirate ON payments(emirate);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(date DESC);
`

var migration003Admins = `
CREATE TABLE IF NOT EXISTS admins (
    id BIGSERIAL PRIMARY KEY,
    username VARCHAR(255) UNIQUE NOT NULL,
    password VARCHAR(255) NOT NULL,
    emirate VARCHAR(64) NOT NULL
);
`
