package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 800.0, cfg.CanvasWidth)
	require.Equal(t, 400.0, cfg.CanvasHeight)
	require.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Origins())
	require.Equal(t, []string{"localhost:5173", "localhost:3000"}, cfg.OriginHosts())
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CANVAS_WIDTH", "1280")
	t.Setenv("ALLOWED_ORIGINS", " https://pad.example.com , ")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, 1280.0, cfg.CanvasWidth)
	require.Equal(t, []string{"pad.example.com"}, cfg.OriginHosts())
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsBadCanvas(t *testing.T) {
	t.Setenv("CANVAS_HEIGHT", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("CANVAS_HEIGHT", "tall")
	_, err = Load()
	require.Error(t, err)
}

func TestLoadRejectsBadIdleTTL(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "0s")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("SESSION_IDLE_TTL", "90s")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, cfg.SessionIdleTTL)
}
