package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokensale.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "Contract Configuration", cfg.Notification.Title)
	assert.Equal(t, "Your token sale contract configuration has been generated.", cfg.Notification.Description)
	assert.Equal(t, 5*time.Second, cfg.Notification.Duration)
	assert.False(t, cfg.Validation.EnforceCapOrder)
	assert.Equal(t, "Token Sale Smart Contract Builder", cfg.Page.Title)
}

func TestLoad_FileMergesOverDefaults(t *testing.T) {
	path := writeFile(t, `
server:
  address: ":9090"
validation:
  enforceCapOrder: true
logging:
  level: debug
`)
	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.True(t, cfg.Validation.EnforceCapOrder)
	assert.Equal(t, zapcore.DebugLevel, cfg.Logging.Level)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_EnvironmentAndOverrides(t *testing.T) {
	t.Setenv("TOKENSALE_SERVER_ADDRESS", ":7070")
	t.Setenv("TOKENSALE_NOTIFICATION_DURATION", "2s")

	cfg, err := Load(Options{Overrides: map[string]any{"logging.level": "warn"}})
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Notification.Duration)
	assert.Equal(t, zapcore.WarnLevel, cfg.Logging.Level)
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	path := writeFile(t, "logging:\n  level: verbose\n")
	_, err := Load(Options{File: path})
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "notification:\n  duration: 0s\nlogging:\n  format: xml\n")
	_, err := Load(Options{File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Notification.Duration")
	assert.Contains(t, err.Error(), "Logging.Format")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.yml")})
	assert.Error(t, err)
}

func TestLoggingConfig_Logger(t *testing.T) {
	cfg, err := Load(Options{})
	require.NoError(t, err)

	lc := cfg.Logging.Logger()
	assert.Equal(t, 100, lc.MaxSizeMB)
	assert.True(t, lc.Compress)
}
