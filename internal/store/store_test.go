package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/store"
)

func TestAnchorStore_DefaultsAndRoundTrip(t *testing.T) {
	home := t.TempDir()
	s := store.NewAnchorStore(store.NewFileBackend(home), nil)

	_, ok, err := s.LoadAnchor()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveAnchor(calendar.Date(2024, 1, 9)))
	raw, err := os.ReadFile(filepath.Join(home, "start_date.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", string(raw))

	got, ok, err := s.LoadAnchor()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, calendar.Date(2024, 1, 9), got)
}

func TestAnchorStore_CorruptIsTreatedAsAbsent(t *testing.T) {
	b := store.NewMemoryBackend()
	require.NoError(t, b.Write("start_date.txt", []byte("not a date")))

	_, ok, err := store.NewAnchorStore(b, nil).LoadAnchor()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSimDateStore_SetAndClear(t *testing.T) {
	s := store.NewSimDateStore(store.NewFileBackend(t.TempDir()), nil)

	require.NoError(t, s.SaveSimDate(calendar.Date(2024, 2, 3)))
	got, ok, err := s.LoadSimDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, calendar.Date(2024, 2, 3), got)

	require.NoError(t, s.ClearSimDate())
	_, ok, err = s.LoadSimDate()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ClearSimDate(), "clearing twice is a no-op")
}

func TestExceptionStore_SetGetClearWipe(t *testing.T) {
	home := t.TempDir()
	b := store.NewFileBackend(home)
	s, err := store.OpenExceptionStore(b, nil)
	require.NoError(t, err)

	d := calendar.Date(2024, 1, 2)
	_, ok := s.GetException(d)
	assert.False(t, ok)

	require.NoError(t, s.SetException(d, domain.NewPair("A", "D")))
	p, ok := s.GetException(d)
	require.True(t, ok)
	assert.Equal(t, domain.NewPair("A", "D"), p)

	require.NoError(t, s.SetException(d, domain.NewPair("B", "D")))
	p, _ = s.GetException(d)
	assert.Equal(t, domain.NewPair("B", "D"), p, "set overwrites")

	reopened, err := store.OpenExceptionStore(b, nil)
	require.NoError(t, err)
	p, ok = reopened.GetException(d)
	require.True(t, ok)
	assert.Equal(t, domain.NewPair("B", "D"), p)

	require.NoError(t, s.ClearException(calendar.Date(2030, 1, 1)), "clearing an absent date is a no-op")
	require.NoError(t, s.ClearException(d))
	_, ok = s.GetException(d)
	assert.False(t, ok)

	require.NoError(t, s.SetException(d, domain.NewPair("A", "B")))
	require.NoError(t, s.SetException(d.AddDate(0, 0, 1), domain.NewPair("C", "D")))
	require.NoError(t, s.WipeExceptions())
	assert.Empty(t, s.Exceptions())
}

func TestExceptionStore_DocumentShape(t *testing.T) {
	home := t.TempDir()
	s, err := store.OpenExceptionStore(store.NewFileBackend(home), nil)
	require.NoError(t, err)
	require.NoError(t, s.SetException(calendar.Date(2024, 1, 2), domain.NewPair("Петров Пётр", "Сидоров Сидор")))

	raw, err := os.ReadFile(filepath.Join(home, "exceptions.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-01-02": ["Петров Пётр", "Сидоров Сидор"]}`, string(raw))
}

func TestExceptionStore_DropsMalformedEntries(t *testing.T) {
	b := store.NewMemoryBackend()
	require.NoError(t, b.Write("exceptions.json", []byte(`{
		"2024-01-02": ["A", "B"],
		"2024-01-03": ["A"],
		"yesterday": ["A", "B"]
	}`)))

	s, err := store.OpenExceptionStore(b, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.Pair{"2024-01-02": domain.NewPair("A", "B")}, s.Exceptions())
}

func TestExceptionStore_CorruptDocumentIsEmpty(t *testing.T) {
	b := store.NewMemoryBackend()
	require.NoError(t, b.Write("exceptions.json", []byte(`{not json`)))

	s, err := store.OpenExceptionStore(b, nil)
	require.NoError(t, err)
	assert.Empty(t, s.Exceptions())
}

func TestScheduleStore_DefaultAndRoundTrip(t *testing.T) {
	s := store.NewScheduleStore(store.NewMemoryBackend(), nil)

	sched, err := s.LoadSchedule()
	require.NoError(t, err)
	assert.Empty(t, sched.Mon)
	assert.NotNil(t, sched.Dates)

	sched.Mon = []string{"Math", "Physics"}
	sched.Dates["2024-01-02"] = []string{"Excursion"}
	require.NoError(t, s.SaveSchedule(sched))

	got, err := s.LoadSchedule()
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "Physics"}, got.Mon)
	assert.Equal(t, []string{"Excursion"}, got.Dates["2024-01-02"])
}

func TestLoadRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.txt")

	lines, err := store.LoadRosterFile(path)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, os.WriteFile(path, []byte("Иванов Иван\n\n  Петров Пётр  \r\nСидоров Сидор"), 0o600))
	lines, err = store.LoadRosterFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Иванов Иван", "Петров Пётр", "Сидоров Сидор"}, lines)
}

