// Package main — точка входа приложения.
// Загружает конфигурацию, инициализирует хранилище и сервисы,
// запускает планировщик бэкапов. Поддерживает graceful shutdown
// по SIGINT/SIGTERM. Интерактивный UI живёт в отдельном репозитории
// и работает поверх сервисов из internal/app.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"membership-manager/internal/app"
	"membership-manager/internal/config"
)

func main() {
	// Настраиваем логирование
	setupLogging()

	// Подхватываем .env, если он есть (для локальной разработки)
	_ = godotenv.Load()

	log.Info("=== Membership Manager запускается ===")

	// Загружаем конфигурацию из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Не удалось загрузить конфигурацию")
	}

	// Устанавливаем уровень логирования из конфига
	level, err := log.ParseLevel(cfg.AppLogLevel)
	if err == nil {
		log.SetLevel(level)
	}

	// Контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем приложение (хранилище, сервисы, планировщик)
	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Не удалось инициализировать приложение")
	}
	defer application.Close()

	// Запускаем планировщик бэкапов (cron)
	if application.Scheduler != nil {
		application.Scheduler.Start()
		defer application.Scheduler.Stop()
	}

	log.Info("=== Membership Manager готов к работе ===")

	// Ждём сигнала остановки (Ctrl+C, docker stop)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Infof("Получен сигнал %s, останавливаемся...", sig)

	cancel()

	log.Info("=== Membership Manager остановлен ===")
}

// setupLogging настраивает формат логов.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
