package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-manager/internal/common"
	"membership-manager/internal/config"
)

const testAdminsCSV = `Username,Password,Emirate
admin.dubai,secret1,Dubai
admin.sharjah,secret2,Sharjah
superadmin,topsecret,All Emirates
`

func seedAdmins(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admins.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestService(t *testing.T, adminsPath string, ttl time.Duration) *Service {
	t.Helper()
	return NewService(NewCSVRepository(adminsPath), &config.Config{SessionTTL: ttl})
}

func TestAuthenticateSuccess(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	session, err := svc.Authenticate(context.Background(), "admin.dubai", "secret1")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "admin.dubai", session.Username)
	assert.Equal(t, "Dubai", session.Emirate)
	assert.NotEmpty(t, session.Token)
	assert.False(t, session.Unrestricted())
	assert.True(t, session.ExpiresAt.After(session.AuthenticatedAt))

	assert.NoError(t, svc.Validate(session))
	assert.Equal(t, 1, svc.ActiveSessions())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	session, err := svc.Authenticate(context.Background(), "admin.dubai", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, session)
	assert.Equal(t, 0, svc.ActiveSessions())
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	_, err := svc.Authenticate(context.Background(), "nobody", "secret1")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticateMissingAdminsFile(t *testing.T) {
	// Файл таблицы не создаётся вовсе
	svc := newTestService(t, filepath.Join(t.TempDir(), "admins.csv"), time.Hour)

	_, err := svc.Authenticate(context.Background(), "admin.dubai", "secret1")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticateEmptyAdminsTable(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, "Username,Password,Emirate\n"), time.Hour)

	_, err := svc.Authenticate(context.Background(), "admin.dubai", "secret1")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestUnrestrictedSession(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	session, err := svc.Authenticate(context.Background(), "superadmin", "topsecret")
	require.NoError(t, err)

	assert.True(t, session.Unrestricted())
	assert.True(t, session.Covers("Dubai"))
	assert.True(t, session.Covers("Sharjah"))
}

func TestLogout(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	session, err := svc.Authenticate(context.Background(), "admin.dubai", "secret1")
	require.NoError(t, err)

	svc.Logout(session)
	assert.ErrorIs(t, svc.Validate(session), common.ErrNotAuthenticated)
	assert.Equal(t, 0, svc.ActiveSessions())

	// Повторный Logout безвреден
	svc.Logout(session)
}

func TestValidateNilSession(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)
	assert.ErrorIs(t, svc.Validate(nil), common.ErrNotAuthenticated)
}

func TestValidateForgedSession(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), time.Hour)

	forged := &Session{
		Token:     "подделка",
		Username:  "admin.dubai",
		Emirate:   "Dubai",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.ErrorIs(t, svc.Validate(forged), common.ErrNotAuthenticated)
}

func TestValidateExpiredSession(t *testing.T) {
	svc := newTestService(t, seedAdmins(t, testAdminsCSV), -time.Second)

	session, err := svc.Authenticate(context.Background(), "admin.dubai", "secret1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Validate(session), common.ErrSessionExpired)
	// Истёкшая сессия удаляется из реестра
	assert.Equal(t, 0, svc.ActiveSessions())
}

func TestValidEmirate(t *testing.T) {
	for _, e := range Emirates {
		assert.True(t, ValidEmirate(e), e)
	}
	assert.False(t, ValidEmirate("Moscow"))
	assert.False(t, ValidEmirate(""))
	// AllEmirates — атрибут учётной записи, а не эмират
	assert.False(t, ValidEmirate(AllEmirates))
}
