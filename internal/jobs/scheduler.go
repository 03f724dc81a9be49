// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание резервного копирования CSV-таблиц.
// Бэкапы закрывают пробел исходной системы: таблицы перезаписываются
// целиком, и единственная порча файла теряла все данные.
package jobs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"membership-manager/internal/config"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron *cron.Cron
	cfg  *config.Config
}

// NewScheduler создаёт планировщик задач в часовом поясе приложения.
func NewScheduler(cfg *config.Config) *Scheduler {
	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.WithError(err).Warnf("Не удалось загрузить %s, используем UTC+4", cfg.AppTimezone)
		loc = time.FixedZone("GST", 4*60*60)
	}

	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		cfg:  cfg,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start() {
	s.cron.AddFunc(s.cfg.BackupSchedule, func() {
		defer recoverFromPanic()
		log.Info("[CRON] Резервное копирование таблиц")
		if err := s.Backup(); err != nil {
			log.WithError(err).Error("[CRON] Ошибка резервного копирования")
		}
	})

	s.cron.Start()
	log.Infof("Планировщик задач запущен (%s, расписание %q)", s.cfg.AppTimezone, s.cfg.BackupSchedule)
}

// Stop останавливает планировщик и дожидается завершения текущих задач.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}

// Backup копирует таблицы данных в каталог с отметкой времени
// и удаляет самые старые копии сверх лимита BackupKeep.
// Отсутствующая таблица — не ошибка: таблицы создаются лениво.
func (s *Scheduler) Backup() error {
	stamp := time.Now().Format("20060102-150405")
	dest := filepath.Join(s.cfg.BackupDir, stamp)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога бэкапа: %w", err)
	}

	tables := []string{s.cfg.MembersPath(), s.cfg.PaymentsPath(), s.cfg.AdminsPath()}
	copied := 0
	for _, path := range tables {
		if err := copyFile(path, filepath.Join(dest, filepath.Base(path))); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("ошибка копирования %q: %w", path, err)
		}
		copied++
	}

	log.WithFields(log.Fields{
		"dest":   dest,
		"tables": copied,
	}).Info("Резервная копия создана")

	return s.prune()
}

// prune удаляет старые каталоги бэкапов, оставляя последние BackupKeep.
func (s *Scheduler) prune() error {
	entries, err := os.ReadDir(s.cfg.BackupDir)
	if err != nil {
		return fmt.Errorf("ошибка чтения каталога бэкапов: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) <= s.cfg.BackupKeep {
		return nil
	}

	// Имена каталогов — отметки времени, лексикографический порядок = хронологический
	sort.Strings(dirs)
	for _, name := range dirs[:len(dirs)-s.cfg.BackupKeep] {
		stale := filepath.Join(s.cfg.BackupDir, name)
		if err := os.RemoveAll(stale); err != nil {
			return fmt.Errorf("ошибка удаления старого бэкапа %q: %w", stale, err)
		}
		log.WithField("dir", stale).Debug("Старый бэкап удалён")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// recoverFromPanic не даёт панике в фоновой задаче уронить процесс.
func recoverFromPanic() {
	if r := recover(); r != nil {
		log.WithFields(log.Fields{
			"component": "panic_recovery",
			"panic":     fmt.Sprintf("%v", r),
			"stack":     string(debug.Stack()),
		}).Error("ПАНИКА в фоновой задаче — восстановлено")
	}
}
