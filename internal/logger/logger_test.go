package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input))
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delvegen.yaml")
	yaml := `
logging:
  level: DEBUG
  file_enabled: true
  file_path: /tmp/generation.log
dungeon:
  width: 80
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", config.Level)
	assert.True(t, config.FileEnabled)
	assert.Equal(t, "/tmp/generation.log", config.FilePath)
	// Keys absent from the file keep their defaults.
	assert.True(t, config.ConsoleEnabled)
	assert.Equal(t, 10, config.FileMaxSizeMB)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unterminated"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLevel, "ERROR")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvFile, "/custom/delvegen.log")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", config.Level)
	assert.Equal(t, "json", config.ConsoleFormat)
	assert.True(t, config.FileEnabled)
	assert.Equal(t, "/custom/delvegen.log", config.FilePath)
}

func TestEnvFileToggle(t *testing.T) {
	t.Setenv(EnvFile, "true")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, config.FileEnabled)
	assert.Equal(t, "logs/delvegen.log", config.FilePath)
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "delvegen.log")
	config := DefaultConfig()
	config.ConsoleEnabled = false
	config.FileEnabled = true
	config.FilePath = path

	require.NoError(t, Initialize(config))
	t.Cleanup(func() { logger = nil })

	Info("level generated", "depth", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"level generated"`)
	assert.Contains(t, string(data), `"depth":3`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	t.Cleanup(func() { logger = nil })

	Debug("debug message")
	Info("info message")
	Warning("warning message", "rooms", 2)
	Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "rooms=2")
	assert.Contains(t, output, "error message")
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { logger = nil })

	Debugf("depth %d", 4)
	Infof("seed %s", "abc")
	Warningf("placed %d of %d", 3, 5)
	Errorf("failed: %v", "boom")

	output := buf.String()
	assert.Contains(t, output, "depth 4")
	assert.Contains(t, output, "seed abc")
	assert.Contains(t, output, "placed 3 of 5")
	assert.Contains(t, output, "failed: boom")
}

func TestFanoutHandler(t *testing.T) {
	var info, errs bytes.Buffer
	logger = slog.New(newFanoutHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	))
	t.Cleanup(func() { logger = nil })

	With("seed", "s1").Info("generated")
	Error("broken")

	assert.Contains(t, info.String(), "generated")
	assert.Contains(t, info.String(), "seed=s1")
	assert.Contains(t, info.String(), "broken")
	assert.NotContains(t, errs.String(), "generated")
	assert.Contains(t, errs.String(), "broken")
}

func TestUninitializedIsNoop(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		Debug("debug")
		Info("info")
		Warning("warning")
		Error("error")
		With("k", "v").Info("discarded")
	})
}
