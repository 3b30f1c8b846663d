package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AGENDA_CONFIG_PATH", "AGENDA_SERVER_HOST", "AGENDA_SERVER_PORT",
		"AGENDA_DB_PATH", "AGENDA_LOG_LEVEL", "AGENDA_SESSION_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":memory:", cfg.DB.Path)
	require.Equal(t, "127.0.0.1:8501", cfg.Server.Addr())
	require.Equal(t, "09:00", cfg.Meeting.StartTime)
	require.Equal(t, 12*time.Hour, cfg.Server.SessionTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "agenda.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  session_ttl: 30m
meeting:
  title: Weekly sync
  start_time: "10:30"
log:
  level: debug
`), 0o644))

	t.Setenv("AGENDA_CONFIG_PATH", path)
	t.Setenv("AGENDA_SERVER_PORT", "9100")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, "Weekly sync", cfg.Meeting.Title)
	require.Equal(t, "10:30", cfg.Meeting.StartTime)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)

	t.Setenv("AGENDA_SESSION_TTL", "2h")
	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour, cfg.Server.SessionTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("AGENDA_SERVER_PORT", "eighty")
	_, err := Load("")
	require.Error(t, err)

	t.Setenv("AGENDA_SERVER_PORT", "")
	t.Setenv("AGENDA_SESSION_TTL", "soon")
	_, err = Load("")
	require.Error(t, err)

	t.Setenv("AGENDA_SESSION_TTL", "-1m")
	_, err = Load("")
	require.Error(t, err)

	t.Setenv("AGENDA_SESSION_TTL", "")
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("meeting:\n  start_time: noon\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
