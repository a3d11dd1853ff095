package commands

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyroster/internal/app"
	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/feed"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func newHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "students.txt"), []byte("A\nB\nC\nD\n"), 0o600))
	return dir
}

// run executes the CLI against dir with the clock pinned to 2024-01-02.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	host = app.Host{
		Clock:     fixedClock{now: calendar.Date(2024, 1, 2)},
		Rand:      firstRand{},
		LogOutput: io.Discard,
	}
	t.Cleanup(func() { host = app.Host{} })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--home", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, strings.Join(args, " "))
	return out
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestToday_Golden(t *testing.T) {
	out := mustRun(t, newHome(t), "today")
	golden(t).Assert(t, "today", []byte(out))
}

func TestAbsentAndRepay_Golden(t *testing.T) {
	dir := newHome(t)

	var transcript strings.Builder
	for _, args := range [][]string{
		{"who"},
		{"absent", "c"},
		{"who", "2024-01-02"},
		{"repay", "C", "A", "--date", "2024-01-03"},
		{"who", "2024-01-03"},
		{"who", "2024-01-04"},
		{"debtors"},
	} {
		transcript.WriteString("$ " + strings.Join(args, " ") + "\n")
		transcript.WriteString(mustRun(t, dir, args...))
	}
	golden(t).Assert(t, "absent_repay", []byte(transcript.String()))
}

func TestSeedAndStep_Golden(t *testing.T) {
	dir := newHome(t)

	var transcript strings.Builder
	for _, args := range [][]string{
		{"seed", "C;D 2024-01-10"},
		{"who", "2024-01-10"},
		{"seed-only", "D;A", "2024-01-11"},
		{"who", "2024-01-11"},
		{"skip", "1"},
		{"next"},
		{"prev"},
	} {
		transcript.WriteString("$ " + strings.Join(args, " ") + "\n")
		transcript.WriteString(mustRun(t, dir, args...))
	}
	golden(t).Assert(t, "seed_step", []byte(transcript.String()))
}

func TestSeed_NotAdjacent(t *testing.T) {
	dir := newHome(t)
	_, err := run(t, dir, "seed", "A;C 2024-01-10")
	require.ErrorIs(t, err, domain.ErrNotAdjacent)

	out := mustRun(t, dir, "who", "2024-01-10")
	assert.Equal(t, "Duty on 10.01.2024 (Wed): A and B\n", out)
}

func TestUpcoming_Table(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "C", "2024-01-02")

	out := mustRun(t, dir, "upcoming", "3", "--from", "2024-01-01")
	for _, want := range []string{"DATE", "01.01.2024", "02.01.2024", "03.01.2024", "override"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "04.01.2024")

	_, err := run(t, dir, "upcoming", "zero")
	assert.Error(t, err)
	_, err = run(t, dir, "upcoming", "100000000")
	assert.ErrorContains(t, err, "between 1 and 60")
}

func TestRealtime_DropsSimulatedDate(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "next")
	assert.Contains(t, mustRun(t, dir, "who"), "03.01.2024")

	out := mustRun(t, dir, "realtime")
	assert.Equal(t, "Day: 02.01.2024\nDuty on 02.01.2024 (Tue): C and D\n", out)
	assert.Contains(t, mustRun(t, dir, "who"), "02.01.2024")
}

func TestOverrides(t *testing.T) {
	dir := newHome(t)
	assert.Equal(t, "No overrides.\n", mustRun(t, dir, "overrides"))

	mustRun(t, dir, "seed-only", "D;A 2024-01-11")
	mustRun(t, dir, "absent", "C", "2024-01-02")

	out := mustRun(t, dir, "overrides")
	first := strings.Index(out, "02.01.2024")
	second := strings.Index(out, "11.01.2024")
	require.True(t, first >= 0 && second >= 0, out)
	assert.Less(t, first, second, "overrides are listed in date order")
}

func TestDebtors(t *testing.T) {
	dir := newHome(t)
	assert.Equal(t, "No debtors.\n", mustRun(t, dir, "debtors"))

	mustRun(t, dir, "absent", "D")
	out := mustRun(t, dir, "debtors")
	assert.Contains(t, out, "INDEX")
	assert.Contains(t, out, "D")
}

func TestRepay_Random(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "A", "2024-01-01")

	out := mustRun(t, dir, "repay", "random", "random", "--date", "2024-01-02")
	assert.Contains(t, out, "Debtor A replaced C (02.01.2024).")
	assert.Equal(t, "No debtors.\n", mustRun(t, dir, "debtors"))
}

func TestRepay_RejectsBadTarget(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "A", "2024-01-01")

	_, err := run(t, dir, "repay", "A", "B", "--date", "2024-01-02")
	require.ErrorIs(t, err, domain.ErrNotOnDuty)
	_, err = run(t, dir, "repay", "Nobody", "C")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuard_BlocksMutations(t *testing.T) {
	dir := newHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("admins: [7]\n"), 0o600))

	_, err := run(t, dir, "absent", "C")
	require.ErrorIs(t, err, domain.ErrForbidden)
	_, err = run(t, dir, "--as", "8", "skip", "1")
	require.ErrorIs(t, err, domain.ErrForbidden)

	mustRun(t, dir, "--as", "7", "absent", "C")
	assert.Contains(t, mustRun(t, dir, "who"), "A and D")
}

func TestReset_NeedsConfirmation(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "C")

	_, err := run(t, dir, "reset")
	require.Error(t, err)
	assert.Contains(t, mustRun(t, dir, "who"), "(override)")

	assert.Equal(t, "Reset. Anchor: 2024-01-02\n", mustRun(t, dir, "reset", "--yes"))
	assert.Equal(t, "Duty on 02.01.2024 (Tue): A and B\n", mustRun(t, dir, "who"))
	assert.Equal(t, "No debtors.\n", mustRun(t, dir, "debtors"))
}

func TestSchedule(t *testing.T) {
	dir := newHome(t)

	assert.Equal(t, "Schedule for Mon updated.\n", mustRun(t, dir, "schedule-set", "пн", "Math | Physics"))
	assert.Equal(t, "Schedule for 08.01.2024:\n1. Math\n2. Physics\n", mustRun(t, dir, "schedule", "2024-01-08"))

	mustRun(t, dir, "schedule-set", "2024-01-08", "Trip")
	assert.Equal(t, "Schedule for 08.01.2024:\n1. Trip\n", mustRun(t, dir, "schedule", "2024-01-08"))
	assert.Equal(t, "Schedule: not set.\n", mustRun(t, dir, "schedule"))

	_, err := run(t, dir, "schedule-set", "someday", "X")
	require.ErrorIs(t, err, domain.ErrParse)
}

func TestReloadRoster(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "C")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "students.txt"), []byte("A\nB\nD\n"), 0o600))

	out := mustRun(t, dir, "reload-roster")
	assert.Equal(t, "Reloaded 3 people.\nDropped debtors: C\n", out)
}

func TestHashPassphrase(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, dir, "hash-passphrase", "secret")
	assert.True(t, strings.HasPrefix(out, "$2a$"), out)

	_, err := os.Stat(filepath.Join(dir, "start_date.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestPeek_ReadsRemoteFeed(t *testing.T) {
	dir := newHome(t)
	mustRun(t, dir, "absent", "C")

	a, err := app.New(app.DefaultConfig(dir), app.Host{
		Clock:     fixedClock{now: calendar.Date(2024, 1, 2)},
		LogOutput: io.Discard,
	})
	require.NoError(t, err)
	defer a.Close()
	srv := httptest.NewServer(feed.NewServer(a.Duty, log.New(io.Discard)))
	defer srv.Close()

	out := mustRun(t, t.TempDir(), "peek", "--server", srv.URL)
	assert.Equal(t, "Duty on 2024-01-02: A and D (override)\n", out)

	out = mustRun(t, t.TempDir(), "peek", "--server", srv.URL, "2024-01-03")
	assert.Equal(t, "Duty on 2024-01-03: A and B\n", out)
}
