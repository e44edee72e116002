package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range attributeNames() {
		t.Setenv("COMPLY_"+strings.ToUpper(name), "")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPLY_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddress())
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 40*time.Millisecond, cfg.AnalysisTickInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.AnalysisCompletionDelay)
	assert.True(t, cfg.IsAuditEnabled())
	assert.Equal(t, "default", cfg.Source("port"))

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
port: 9090
log_level: debug
audit_enabled: false
notification_ttl: 2s
database_url: postgres://comply:secret@db:5432/comply
`)
	t.Setenv("COMPLY_CONFIG_PATH", dir)
	t.Setenv("COMPLY_LOG_LEVEL", "warn")
	t.Setenv("COMPLY_ANALYSIS_TICK_INTERVAL", "10ms")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "environment", cfg.Source("log_level"))
	assert.False(t, cfg.IsAuditEnabled())
	assert.Equal(t, 2*time.Second, cfg.NotificationTTL)
	assert.Equal(t, 10*time.Millisecond, cfg.AnalysisTickInterval)
	assert.Equal(t, "environment", cfg.Source("analysis_tick_interval"))

	text := cfg.FormatText()
	assert.Contains(t, text, "xxxxx")
	assert.NotContains(t, text, "secret")

	js, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.Contains(t, js, `"config_file"`)
	assert.NotContains(t, js, "secret")
}

func TestLoad_BadInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("COMPLY_CONFIG_PATH", dir)

	t.Setenv("COMPLY_PORT", "eighty")
	_, err := Load()
	assert.Error(t, err)
	t.Setenv("COMPLY_PORT", "")

	t.Setenv("COMPLY_NOTIFICATION_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)
	t.Setenv("COMPLY_NOTIFICATION_TTL", "")

	writeConfig(t, dir, "port: [1, 2")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ComplianceConfig)
	}{
		{"port", func(c *ComplianceConfig) { c.Port = 70000 }},
		{"level", func(c *ComplianceConfig) { c.LogLevel = "loud" }},
		{"format", func(c *ComplianceConfig) { c.LogFormat = "xml" }},
		{"database url", func(c *ComplianceConfig) { c.DatabaseURL = "not a url" }},
		{"ttl", func(c *ComplianceConfig) { c.NotificationTTL = 0 }},
		{"tick", func(c *ComplianceConfig) { c.AnalysisTickInterval = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "log_level: info\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *ComplianceConfig, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *ComplianceConfig) {
			select {
			case changes <- c:
			default:
			}
		}, nil)
	}()

	// the watcher registers asynchronously, so keep rewriting until seen
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("log_level: debug\n"), 0o600)
		select {
		case c := <-changes:
			return c.LogLevel == "debug"
		case <-time.After(50 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, "debug", Get().LogLevel)

	cancel()
	require.NoError(t, <-done)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://u:xxxxx@h/db", redact("postgres://u:p@h/db"))
	assert.Equal(t, "redis://h:6379", redact("redis://h:6379"))
	assert.Equal(t, "", redact(""))
}
