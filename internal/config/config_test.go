package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	home, work string
	env        map[string]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{home: t.TempDir(), work: t.TempDir(), env: map[string]string{}}
}

func (f *fixture) writeUser(t *testing.T, body string) {
	t.Helper()
	dir := filepath.Join(f.home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, UserFileName), []byte(body), 0o644))
}

func (f *fixture) writeProject(t *testing.T, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.work, ProjectFileName), []byte(body), 0o644))
}

func (f *fixture) load() (*Config, error) {
	return Load(Options{
		Home:    f.home,
		WorkDir: f.work,
		Getenv:  func(k string) string { return f.env[k] },
	})
}

func TestLoad_Defaults(t *testing.T) {
	f := newFixture(t)

	cfg, err := f.load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.home, ".ganttline", "ganttline.db"), cfg.DBPath)
	assert.Equal(t, 60.0, cfg.DayWidth)
	assert.False(t, cfg.PropagateTransitively)
	assert.False(t, cfg.LogCalls)
	assert.Empty(t, cfg.Files)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ProjectFileOverridesUserFile(t *testing.T) {
	f := newFixture(t)
	f.writeUser(t, "db_path = \"~/boards/main.db\"\nday_width = 40.0\nlog_calls = true\n")
	f.writeProject(t, "day_width = 80.0\npropagate_transitively = true\n")

	cfg, err := f.load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.home, "boards", "main.db"), cfg.DBPath)
	assert.Equal(t, 80.0, cfg.DayWidth)
	assert.True(t, cfg.PropagateTransitively)
	assert.True(t, cfg.LogCalls)
	assert.Len(t, cfg.Files, 2)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	f := newFixture(t)
	f.writeProject(t, "day_width = 80.0\n")
	f.env[EnvDayWidth] = "30"
	f.env[EnvDB] = "/tmp/other.db"
	f.env[EnvPropagate] = "true"
	f.env[EnvLog] = "1"

	cfg, err := f.load()
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.DayWidth)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.True(t, cfg.PropagateTransitively)
	assert.True(t, cfg.LogCalls)
}

func TestLoad_BadEnv(t *testing.T) {
	f := newFixture(t)
	f.env[EnvPropagate] = "sometimes"

	_, err := f.load()
	assert.ErrorContains(t, err, EnvPropagate)
}

func TestLoad_UnknownKey(t *testing.T) {
	f := newFixture(t)
	f.writeProject(t, "day_wdith = 80\n")

	_, err := f.load()
	assert.ErrorContains(t, err, "unknown keys: day_wdith")
}

func TestLoad_MalformedFile(t *testing.T) {
	f := newFixture(t)
	f.writeUser(t, "day_width = = 3")

	_, err := f.load()
	assert.ErrorContains(t, err, UserFileName)
}

func TestApplyFlags_OnlyChangedFlagsWin(t *testing.T) {
	f := newFixture(t)
	f.env[EnvDayWidth] = "30"
	cfg, err := f.load()
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--propagate", "--db", "/x/board.db"}))

	require.NoError(t, ApplyFlags(cfg, fs))
	assert.True(t, cfg.PropagateTransitively)
	assert.Equal(t, "/x/board.db", cfg.DBPath)
	assert.Equal(t, 30.0, cfg.DayWidth, "unset flag must not reset env value")
}

func TestApplyFlags_Validates(t *testing.T) {
	cfg := Default("/home/u")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--day-width", "2"}))

	assert.ErrorContains(t, ApplyFlags(&cfg, fs), "day_width")
}

func TestLayout_UsesDayWidth(t *testing.T) {
	cfg := Default("/home/u")
	cfg.DayWidth = 24
	assert.Equal(t, 24.0, cfg.Layout().DayWidth)
	assert.Equal(t, 48.0, cfg.Layout().RowHeight)
}
