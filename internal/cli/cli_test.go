package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/epl-stats/internal/domain/playerstats"
	"github.com/riskibarqy/epl-stats/internal/usecase"
)

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	for _, name := range []string{"export", "warm", "extract", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}

func TestExtractCommand(t *testing.T) {
	t.Setenv("SITE_SELECTORS_FILE", "")

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{
		"extract",
		"--file", filepath.Join("..", "extraction", "testdata", "player_stats.html"),
		"--name", "Mohamed Salah",
		"--position", "Forward",
	})
	require.NoError(t, root.Execute())

	var got playerstats.PlayerStats
	require.NoError(t, sonic.Unmarshal(out.Bytes(), &got))
	require.Equal(t, "Mohamed Salah", got.PlayerName)
	require.Equal(t, "Forward", got.Position)
	require.Equal(t, 288, got.Appearances)
	require.Equal(t, "171", got.Attack.Goals)
}

func TestExtractCommand_RequiresFile(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"extract"})
	require.Error(t, root.Execute())
}

func TestExtractCommand_MissingFile(t *testing.T) {
	t.Setenv("SITE_SELECTORS_FILE", "")

	opts := extractOptions{file: filepath.Join(t.TempDir(), "missing.html")}
	_, err := opts.run()
	require.Error(t, err)
}

func TestWarmOptions_Input(t *testing.T) {
	t.Parallel()

	got := warmOptions{
		players: []string{" Salah ", "", "Saka"},
		all:     true,
		workers: 3,
	}.input()

	want := usecase.WarmupInput{
		Players:    []string{"Salah", "Saka"},
		Table:      true,
		Fixtures:   true,
		Results:    true,
		MaxWorkers: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("warmup input mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSteps(t *testing.T) {
	t.Parallel()

	steps, err := parseSteps(nil)
	require.NoError(t, err)
	require.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	require.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	require.Error(t, err)
	_, err = parseSteps([]string{"x"})
	require.Error(t, err)
}

func TestParseVersionAndTarget(t *testing.T) {
	t.Parallel()

	version, err := parseVersion("1776556800")
	require.NoError(t, err)
	require.Equal(t, 1776556800, version)

	_, err = parseVersion("-1")
	require.Error(t, err)

	target, err := parseTarget("42")
	require.NoError(t, err)
	require.Equal(t, uint(42), target)

	_, err = parseTarget("-2")
	require.Error(t, err)
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MIGRATIONS_DIR", "")

	got, err := resolveMigrationsDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, got)

	got, err = resolveMigrationsDir(filepath.Join("..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.Equal(t, "migrations", filepath.Base(got))
}
