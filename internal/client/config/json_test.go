package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "http://json.example:8000",
		"request_timeout": "45s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://json.example:8000", cfg.ServerBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep their defaults
	require.Equal(t, "dropspot.db", cfg.DatabasePath)
}

func TestFlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url": "http://json.example:8000"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag.example:8000")

	cfg := LoadConfig()
	require.Equal(t, "http://flag.example:8000", cfg.ServerBaseURL)
}
