package jobs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-manager/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DataDir:      filepath.Join(dir, "data"),
		MembersFile:  "members.csv",
		PaymentsFile: "payments.csv",
		AdminsFile:   "admins.csv",
		BackupDir:    filepath.Join(dir, "backups"),
		BackupKeep:   2,
		AppTimezone:  "Asia/Dubai",
	}
}

func writeTable(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBackupCopiesTables(t *testing.T) {
	cfg := newTestConfig(t)
	writeTable(t, cfg.MembersPath(), "Member ID,Full Name\n1,Ali\n")
	writeTable(t, cfg.PaymentsPath(), "Payment ID,Amount\np1,50\n")

	s := NewScheduler(cfg)
	require.NoError(t, s.Backup())

	entries, err := os.ReadDir(cfg.BackupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	snapshot := filepath.Join(cfg.BackupDir, entries[0].Name())
	got, err := os.ReadFile(filepath.Join(snapshot, "members.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Member ID,Full Name\n1,Ali\n", string(got))

	_, err = os.ReadFile(filepath.Join(snapshot, "payments.csv"))
	assert.NoError(t, err)

	// admins.csv не создавался — его отсутствие не ошибка
	_, err = os.Stat(filepath.Join(snapshot, "admins.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestBackupWithNoTables(t *testing.T) {
	cfg := newTestConfig(t)

	s := NewScheduler(cfg)
	// Таблиц ещё нет — бэкап пустой, но не ошибка
	assert.NoError(t, s.Backup())
}

func TestBackupPrunesOldSnapshots(t *testing.T) {
	cfg := newTestConfig(t)
	writeTable(t, cfg.MembersPath(), "Member ID,Full Name\n")

	// Два старых снимка: имена — отметки времени, порядок лексикографический
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.BackupDir, "20000101-000000"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.BackupDir, "20000102-000000"), 0o755))

	s := NewScheduler(cfg)
	require.NoError(t, s.Backup())

	entries, err := os.ReadDir(cfg.BackupDir)
	require.NoError(t, err)
	require.Len(t, entries, cfg.BackupKeep)

	// Самый старый удалён
	_, err = os.Stat(filepath.Join(cfg.BackupDir, "20000101-000000"))
	assert.True(t, os.IsNotExist(err))
}
