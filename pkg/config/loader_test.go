package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFromFile(t *testing.T) {
	path := writeConfigFile(t, `
backendURL: http://localhost:8000
language: ta
minVolume: 600
vadEnabled: true
vadModelPath: /models/silero_vad.onnx
redis:
  address: localhost:6379
  draftTTLHours: 48
`)

	cfg, err := FromFile(path)
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8000", cfg.BackendURL)
	require.Equal(t, "ta", cfg.Language)
	require.Equal(t, 600, cfg.MinVolume)
	require.True(t, cfg.VADEnabled)
	require.Equal(t, "localhost:6379", cfg.Redis.Address)
	require.Equal(t, 48, cfg.Redis.DraftTTLHours)

	// defaults survive for keys the file does not set
	require.Equal(t, 25, cfg.MaxRecordSeconds)
	require.Equal(t, 90, cfg.RequestTimeout)
}

func TestFromFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
backendURL: http://localhost:8000
unknownOption: true
`)

	_, err := FromFile(path)
	require.Error(t, err, "unknown config key")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
