package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeaders = []string{"ID", "Name", "Emirate"}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	return NewTable(filepath.Join(t.TempDir(), "test.csv"), testHeaders)
}

func TestLoadMissingFileIsEmptyTable(t *testing.T) {
	table := newTestTable(t)

	rows, err := table.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAppendAndLoad(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.Append([]string{"1", "Ali", "Dubai"}))
	require.NoError(t, table.Append([]string{"2", "Omar", "Sharjah"}))

	rows, err := table.Load()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Ali", "Dubai"}, rows[0])
	assert.Equal(t, []string{"2", "Omar", "Sharjah"}, rows[1])
}

func TestReplaceWritesHeaderForEmptyTable(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.Replace(nil))

	raw, err := os.ReadFile(table.Path())
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Emirate", strings.TrimSpace(string(raw)))

	rows, err := table.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRoundTrip(t *testing.T) {
	cases := map[string][][]string{
		"zero rows": {},
		"one row":   {{"1", "Ali", "Dubai"}},
		"many rows": {
			{"1", "Ali", "Dubai"},
			{"2", "Omar", "Sharjah"},
			{"3", "Fatima", "Ajman"},
		},
	}

	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			table := newTestTable(t)
			require.NoError(t, table.Replace(rows))

			got, err := table.Load()
			require.NoError(t, err)
			require.Len(t, got, len(rows))
			for i := range rows {
				assert.Equal(t, rows[i], got[i])
			}
		})
	}
}

func TestRoundTripSpecialCharacters(t *testing.T) {
	table := newTestTable(t)
	row := []string{"1", `Ali "Abu" Khalid, Jr.`, "Дубай\nвторая строка"}

	require.NoError(t, table.Append(row))

	rows, err := table.Load()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row, rows[0])
}

func TestAppendColumnMismatch(t *testing.T) {
	table := newTestTable(t)

	err := table.Append([]string{"только", "две"})
	require.Error(t, err)

	// Таблица не должна была измениться
	rows, loadErr := table.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, rows)
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	table := newTestTable(t)
	require.NoError(t, table.Append([]string{"1", "Ali", "Dubai"}))

	entries, err := os.ReadDir(filepath.Dir(table.Path()))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "временный файл не удалён: %s", e.Name())
	}
}

func TestHeadersReturnsCopy(t *testing.T) {
	table := newTestTable(t)
	h := table.Headers()
	h[0] = "испорчено"
	assert.Equal(t, "ID", table.Headers()[0])
}
