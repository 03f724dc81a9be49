package members

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
	"membership-manager/internal/features/auth"
)

const testAdminsCSV = `Username,Password,Emirate
admin.dubai,secret1,Dubai
admin.sharjah,secret2,Sharjah
superadmin,topsecret,All Emirates
`

type testEnv struct {
	svc     *Service
	path    string
	dubai   *auth.Session
	sharjah *auth.Session
	super   *auth.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	adminsPath := filepath.Join(dir, "admins.csv")
	require.NoError(t, os.WriteFile(adminsPath, []byte(testAdminsCSV), 0o644))

	authSvc := auth.NewService(auth.NewCSVRepository(adminsPath), &config.Config{SessionTTL: time.Hour})

	membersPath := filepath.Join(dir, "members.csv")
	svc := NewService(NewCSVRepository(membersPath), authSvc)

	ctx := context.Background()
	dubai, err := authSvc.Authenticate(ctx, "admin.dubai", "secret1")
	require.NoError(t, err)
	sharjah, err := authSvc.Authenticate(ctx, "admin.sharjah", "secret2")
	require.NoError(t, err)
	super, err := authSvc.Authenticate(ctx, "superadmin", "topsecret")
	require.NoError(t, err)

	return &testEnv{svc: svc, path: membersPath, dubai: dubai, sharjah: sharjah, super: super}
}

func TestCreateAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := CreateInput{
		FullName:   "Ali Hassan",
		Initial:    "A",
		FatherName: "Hassan",
		Phone:      "+971501234567",
		Address:    "Deira, Dubai",
		Remarks:    "founding member",
		PhotoURL:   "http://example.com/ali.jpg",
	}
	member, err := env.svc.Create(ctx, env.dubai, input)
	require.NoError(t, err)

	assert.Len(t, member.MemberID, 8)
	assert.Equal(t, "Ali Hassan", member.FullName)
	assert.Equal(t, "Dubai", member.Emirate)

	list, err := env.svc.List(ctx, env.dubai, "")
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, member.MemberID, got.MemberID)
	assert.Equal(t, input.FullName, got.FullName)
	assert.Equal(t, input.Initial, got.Initial)
	assert.Equal(t, input.FatherName, got.FatherName)
	assert.Equal(t, input.Phone, got.Phone)
	assert.Equal(t, input.Address, got.Address)
	assert.Equal(t, input.Remarks, got.Remarks)
	assert.Equal(t, input.PhotoURL, got.PhotoURL)
}

func TestCreateEmptyFullName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Create(context.Background(), env.dubai, CreateInput{FullName: "   "})
	assert.ErrorIs(t, err, common.ErrEmptyFullName)
}

func TestCreateForcesSessionEmirate(t *testing.T) {
	env := newTestEnv(t)

	// Админ Дубая пытается записать участника в Шарджу — эмират берётся из сессии
	member, err := env.svc.Create(context.Background(), env.dubai, CreateInput{
		FullName: "Omar",
		Emirate:  "Sharjah",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dubai", member.Emirate)
}

func TestChapterIsolation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali"})
	require.NoError(t, err)

	dubaiList, err := env.svc.List(ctx, env.dubai, "")
	require.NoError(t, err)
	assert.Len(t, dubaiList, 1)

	sharjahList, err := env.svc.List(ctx, env.sharjah, "")
	require.NoError(t, err)
	assert.Empty(t, sharjahList)
}

func TestUnrestrictedSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali"})
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, env.sharjah, CreateInput{FullName: "Omar"})
	require.NoError(t, err)

	all, err := env.svc.List(ctx, env.super, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Сессия AllEmirates обязана указать эмират явно
	_, err = env.svc.Create(ctx, env.super, CreateInput{FullName: "Fatima"})
	assert.ErrorIs(t, err, common.ErrEmirateRequired)

	_, err = env.svc.Create(ctx, env.super, CreateInput{FullName: "Fatima", Emirate: "Moscow"})
	assert.ErrorIs(t, err, common.ErrUnknownEmirate)

	member, err := env.svc.Create(ctx, env.super, CreateInput{FullName: "Fatima", Emirate: "Ajman"})
	require.NoError(t, err)
	assert.Equal(t, "Ajman", member.Emirate)
}

func TestSearchCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali Hassan", Phone: "+971501234567"})
	require.NoError(t, err)
	_, err = env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Omar Khalid"})
	require.NoError(t, err)

	// Подстрока в любом поле, регистр не важен
	byName, err := env.svc.List(ctx, env.dubai, "HASSAN")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Ali Hassan", byName[0].FullName)

	byPhone, err := env.svc.List(ctx, env.dubai, "50123")
	require.NoError(t, err)
	assert.Len(t, byPhone, 1)

	nothing, err := env.svc.List(ctx, env.dubai, "не существует")
	require.NoError(t, err)
	assert.Empty(t, nothing)
}

func TestEmptyQueryKeepsInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	names := []string{"Ali", "Omar", "Fatima", "Khalid"}
	for _, n := range names {
		_, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: n})
		require.NoError(t, err)
	}

	list, err := env.svc.List(ctx, env.dubai, "")
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		assert.Equal(t, n, list[i].FullName)
	}
}

func TestMemberIDsUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		m, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali"})
		require.NoError(t, err)
		require.Len(t, m.MemberID, 8)
		assert.False(t, seen[m.MemberID], "идентификатор повторился: %s", m.MemberID)
		seen[m.MemberID] = true
	}
}

func TestGetScopedBySession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	member, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali"})
	require.NoError(t, err)

	got, err := env.svc.Get(ctx, env.dubai, member.MemberID)
	require.NoError(t, err)
	assert.Equal(t, member.MemberID, got.MemberID)

	// Карточка чужого эмирата неотличима от несуществующей
	_, err = env.svc.Get(ctx, env.sharjah, member.MemberID)
	assert.ErrorIs(t, err, common.ErrMemberNotFound)

	_, err = env.svc.Get(ctx, env.super, member.MemberID)
	assert.NoError(t, err)
}

func TestNilSessionRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Create(ctx, nil, CreateInput{FullName: "Ali"})
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = env.svc.List(ctx, nil, "")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestPersistedAcrossRepositories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	member, err := env.svc.Create(ctx, env.dubai, CreateInput{FullName: "Ali", Remarks: "до перезапуска"})
	require.NoError(t, err)

	// Новый репозиторий над тем же файлом видит запись (persist → load)
	reopened := NewCSVRepository(env.path)
	got, err := reopened.Get(ctx, member.MemberID)
	require.NoError(t, err)
	assert.Equal(t, "до перезапуска", got.Remarks)
}
