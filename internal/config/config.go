// Package config загружает конфигурацию приложения из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Допустимые значения STORAGE_DRIVER.
const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- Storage ---
	// Канонический драйвер — csv (плоские таблицы, как в исходной системе).
	// sqlite и postgres реализуют те же контракты репозиториев.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"csv"`
	DataDir       string `envconfig:"DATA_DIR" default:"data"`
	MembersFile   string `envconfig:"MEMBERS_FILE" default:"members.csv"`
	PaymentsFile  string `envconfig:"PAYMENTS_FILE" default:"payments.csv"`
	AdminsFile    string `envconfig:"ADMINS_FILE" default:"admins.csv"`

	// --- SQLite ---
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/membership.db"`

	// --- PostgreSQL ---
	// В Docker внутри контейнера "localhost" почти всегда неправильно.
	// Дефолт ставим "postgres" (имя сервиса в docker-compose), а для локалки переопределяй DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"membership"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"membership"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Asia/Dubai"`

	// --- Sessions ---
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// --- Backups ---
	BackupEnabled  bool   `envconfig:"BACKUP_ENABLED" default:"true"`
	BackupSchedule string `envconfig:"BACKUP_SCHEDULE" default:"0 3 * * *"`
	BackupDir      string `envconfig:"BACKUP_DIR" default:"backups"`
	BackupKeep     int    `envconfig:"BACKUP_KEEP" default:"14"`
}

// MembersPath возвращает полный путь к таблице участников.
func (c *Config) MembersPath() string {
	return filepath.Join(c.DataDir, c.MembersFile)
}

// PaymentsPath возвращает полный путь к таблице платежей.
func (c *Config) PaymentsPath() string {
	return filepath.Join(c.DataDir, c.PaymentsFile)
}

// AdminsPath возвращает полный путь к таблице админов (только чтение).
func (c *Config) AdminsPath() string {
	return filepath.Join(c.DataDir, c.AdminsFile)
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverCSV, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("неизвестный STORAGE_DRIVER %q (ожидается csv, sqlite или postgres)", c.StorageDriver)
	}
	if c.StorageDriver == DriverPostgres && c.DBPassword == "" {
		return fmt.Errorf("DB_PASSWORD обязателен для драйвера postgres")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL должен быть > 0")
	}
	if c.BackupEnabled && c.BackupKeep <= 0 {
		return fmt.Errorf("BACKUP_KEEP должен быть > 0")
	}
	return nil
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
