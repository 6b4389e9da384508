package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/memberhub/internal/fixtures"
)

// run executes the CLI against an isolated home directory and config file.
func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	cmd, a := newRootCmd()
	defer a.close()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return ansi.Strip(out.String()), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEMBERHUB_CONFIG", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func dbConfig(t *testing.T) string {
	dir := t.TempDir()
	return writeConfig(t, `
[database]
path = "`+filepath.Join(dir, "hub.db")+`"

[log]
path = "`+filepath.Join(dir, "hub.log")+`"
level = "debug"
`)
}

func TestSeedThenList(t *testing.T) {
	cfg := dbConfig(t)

	out, err := run(t, cfg, "seed")
	require.NoError(t, err)
	require.Contains(t, out, "sample data ready")

	out, err = run(t, cfg, "list", "members", "--search", "okafor")
	require.NoError(t, err)
	require.Contains(t, out, "Amara Okafor")
	require.NotContains(t, out, "Sarah Kimani")

	out, err = run(t, cfg, "list", "members", "--filter", "country=Kenya")
	require.NoError(t, err)
	require.Contains(t, out, "Sarah Kimani")
	require.Contains(t, out, "Joseph Mwangi")
	require.NotContains(t, out, "Amara Okafor")

	out, err = run(t, cfg, "list", "members", "--search", "zzz")
	require.NoError(t, err)
	require.Contains(t, out, "No results match the current filters")
	require.Contains(t, out, "Clear filters")
}

func TestListRejectsBadInput(t *testing.T) {
	cfg := dbConfig(t)

	_, err := run(t, cfg, "list", "billing")
	require.ErrorIs(t, err, errUnknownTab)

	_, err = run(t, cfg, "list", "members", "--filter", "name=Amara Okafor")
	require.Error(t, err)

	_, err = run(t, cfg, "list", "members", "--filter", "country")
	require.Error(t, err)
}

func TestFailedCommandStillClosesDatabase(t *testing.T) {
	cfg := dbConfig(t)
	cmd, a := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfg, "list", "billing"})
	require.ErrorIs(t, cmd.Execute(), errUnknownTab)

	db := a.db
	require.NotNil(t, db, "list opens the database before resolving the tab")
	a.close()
	require.Nil(t, a.db)
	require.Error(t, db.Ping())
}

func TestRandomSeedAndReset(t *testing.T) {
	cfg := dbConfig(t)

	out, err := run(t, cfg, "seed", "--random", "12", "--seed", "7")
	require.NoError(t, err)
	require.Contains(t, out, "12 random rows")

	// the same seed upserts the same rows
	_, err = run(t, cfg, "seed", "--random", "12", "--seed", "7")
	require.NoError(t, err)

	_, err = run(t, cfg, "reset")
	require.Error(t, err, "reset needs --yes")

	out, err = run(t, cfg, "reset", "--yes")
	require.NoError(t, err)
	require.Contains(t, out, "12 deleted")

	out, err = run(t, cfg, "list", "events")
	require.NoError(t, err)
	require.Contains(t, out, "No records yet")
	require.Contains(t, out, "Clear filters")

	// an explicit seed restores the sample directory after a reset
	_, err = run(t, cfg, "seed")
	require.NoError(t, err)
	out, err = run(t, cfg, "list", "members", "--search", "okafor")
	require.NoError(t, err)
	require.Contains(t, out, "Amara Okafor")
}

func TestExportRoundTripsThroughFixtures(t *testing.T) {
	cfg := dbConfig(t)
	_, err := run(t, cfg, "seed")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.yaml")
	_, err = run(t, cfg, "export", path)
	require.NoError(t, err)

	f, err := fixtures.Load(path)
	require.NoError(t, err)
	require.Len(t, f.Members, 7)

	fixtureCfg := writeConfig(t, `
[data]
fixtures = "`+path+`"

[log]
path = ""
`)
	out, err := run(t, fixtureCfg, "list", "resources")
	require.NoError(t, err)
	require.NotContains(t, out, "No records yet")

	other := dbConfig(t)
	out, err = run(t, other, "seed", "--from", path)
	require.NoError(t, err)
	require.Contains(t, out, "imported 17 rows")
	out, err = run(t, other, "list", "members", "--search", "okafor")
	require.NoError(t, err)
	require.Contains(t, out, "Amara Okafor")
}

func TestConfigInitAndShow(t *testing.T) {
	cfg := dbConfig(t)
	target := filepath.Join(t.TempDir(), "written.toml")

	out, err := run(t, cfg, "config")
	require.NoError(t, err)
	require.Contains(t, out, "hub.db")

	_, err = run(t, target, "config", "init")
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "initial_tab"))
}

func TestMigrate(t *testing.T) {
	cfg := dbConfig(t)
	out, err := run(t, cfg, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "database up to date")
	require.Contains(t, out, "members    0 rows")

	_, err = run(t, cfg, "seed")
	require.NoError(t, err)
	out, err = run(t, cfg, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "members    7 rows")
}
