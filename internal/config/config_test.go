package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Wyydra/callstate/internal/core/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CALLSTATE_CONFIG",
	"CALLSTATE_ADDR",
	"CALLSTATE_SHUTDOWN_TIMEOUT_MS",
	"CALLSTATE_LOG_LEVEL",
	"CALLSTATE_LOG_PRETTY",
	"CALLSTATE_THROTTLE_WINDOW_MS",
	"CALLSTATE_PARTICIPANT_COALESCE_MS",
	"CALLSTATE_JOURNAL_CAPACITY",
	"CALLSTATE_DISPLAY_NAME",
	"CALLSTATE_SKIP_SETUP",
	"CALLSTATE_MICROPHONE_ON",
	"CALLSTATE_HIDDEN_BUTTONS",
	"CALLSTATE_DISABLED_BUTTONS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "callstate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.Store.ThrottleWindow)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  addr: ":9000"
log:
  level: debug
store:
  throttle_window: 250ms
  participant_coalesce: 2s
  journal_capacity: 32
launch:
  display_name: Ada
  skip_setup: true
  hidden_buttons: [rtt, report_issue]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Store.ThrottleWindow)
	assert.Equal(t, 2*time.Second, cfg.Store.ParticipantCoalesce)
	assert.Equal(t, 32, cfg.Store.JournalCapacity)
	assert.Equal(t, "Ada", cfg.Launch.DisplayName)
	assert.True(t, cfg.Launch.SkipSetup)
	assert.Equal(t, []domain.ButtonID{domain.ButtonRtt, domain.ButtonReportIssue}, cfg.Launch.Hidden())
}

func TestLoadFileFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALLSTATE_CONFIG", writeConfig(t, "launch:\n  title: Standup\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Standup", cfg.Launch.Title)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  addr: \":9000\"\nlaunch:\n  display_name: Ada\n")
	t.Setenv("CALLSTATE_ADDR", ":7000")
	t.Setenv("CALLSTATE_DISPLAY_NAME", "Grace")
	t.Setenv("CALLSTATE_THROTTLE_WINDOW_MS", "100")
	t.Setenv("CALLSTATE_MICROPHONE_ON", "yes")
	t.Setenv("CALLSTATE_DISABLED_BUTTONS", "camera, microphone")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "Grace", cfg.Launch.DisplayName)
	assert.Equal(t, 100*time.Millisecond, cfg.Store.ThrottleWindow)
	assert.True(t, cfg.Launch.MicrophoneOn)
	assert.Equal(t, []domain.ButtonID{domain.ButtonCamera, domain.ButtonMicrophone}, cfg.Launch.Disabled())
}

func TestMalformedEnvFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALLSTATE_JOURNAL_CAPACITY", "lots")
	t.Setenv("CALLSTATE_THROTTLE_WINDOW_MS", "-5")
	t.Setenv("CALLSTATE_LOG_PRETTY", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Store.JournalCapacity)
	assert.Equal(t, 500*time.Millisecond, cfg.Store.ThrottleWindow)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"log level", "log:\n  level: loud\n"},
		{"negative throttle", "store:\n  throttle_window: -1s\n"},
		{"negative coalesce", "store:\n  participant_coalesce: -1s\n"},
		{"unknown button", "launch:\n  hidden_buttons: [jetpack]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "store:\n  throttle: 1s\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFillsZeroValues(t *testing.T) {
	cfg := Config{Log: LogConfig{Level: "warn"}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 256, cfg.Store.JournalCapacity)
}
