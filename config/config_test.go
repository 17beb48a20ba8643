package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalker/config"
	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/engine"
)

var keys = []string{
	"PLAYER_TOKEN", "LEVEL_ID", "BACKEND_BASE", "FRONTEND_BASE", "STRATEGY",
	"ALPHA", "HEURISTIC", "HEURISTIC_SCALE", "HEURISTIC_ORDER", "TICK_DELAY",
	"CORNER_CHECK", "LOG_LEVEL",
}

// clearEnv unsets every key Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBackendBase, cfg.BackendBase)
	assert.Equal(t, config.DefaultFrontendBase, cfg.FrontendBase)
	assert.Equal(t, "bfs", cfg.Strategy)
	assert.Equal(t, 1.0, cfg.Alpha)
	assert.Equal(t, config.HeuristicEuclidean, cfg.Heuristic)
	assert.Equal(t, 1000.0, cfg.HeuristicScale)
	assert.False(t, cfg.HeuristicOrder)
	assert.Equal(t, 100*time.Millisecond, cfg.TickDelay)
	assert.True(t, cfg.CornerCheck)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.ErrorIs(t, cfg.ValidateRemote(), config.ErrMissingEnv)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLAYER_TOKEN", "tok")
	t.Setenv("LEVEL_ID", "lvl-1")
	t.Setenv("STRATEGY", "AStar")
	t.Setenv("ALPHA", "0.25")
	t.Setenv("HEURISTIC", "Manhattan")
	t.Setenv("TICK_DELAY", "250")
	t.Setenv("CORNER_CHECK", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.ValidateRemote())
	assert.Equal(t, "astar", cfg.Strategy)
	assert.Equal(t, 0.25, cfg.Alpha)
	assert.Equal(t, config.HeuristicManhattan, cfg.Heuristic)
	assert.Equal(t, 250*time.Millisecond, cfg.TickDelay)
	assert.False(t, cfg.CornerCheck)

	t.Setenv("TICK_DELAY", "2s")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.TickDelay)
}

func TestLoad_Invalid(t *testing.T) {
	for key, val := range map[string]string{
		"ALPHA":        "lots",
		"CORNER_CHECK": "maybe",
		"TICK_DELAY":   "-5",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.Load("")
			assert.ErrorIs(t, err, config.ErrInvalidEnv)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := write(t, "agent.env", "PLAYER_TOKEN=from-file\nLEVEL_ID=42\nSTRATEGY=dfs\n")
	t.Setenv("STRATEGY", "bfs")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.PlayerToken)
	assert.Equal(t, "42", cfg.LevelID)
	assert.Equal(t, "bfs", cfg.Strategy, "the process environment wins over the file")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestApplyTuning(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load("")
	require.NoError(t, err)

	path := write(t, "tuning.yaml", `kind: tuning
def:
  strategy: AStar
  alpha: 0.5
  heuristic: manhattan
  order: true
`)
	tuned, err := cfg.ApplyTuning(path)
	require.NoError(t, err)
	assert.Equal(t, "astar", tuned.Strategy)
	assert.Equal(t, 0.5, tuned.Alpha)
	assert.Equal(t, config.HeuristicManhattan, tuned.Heuristic)
	assert.True(t, tuned.HeuristicOrder)
	assert.Equal(t, cfg.HeuristicScale, tuned.HeuristicScale, "absent fields are left alone")
	assert.Equal(t, cfg.CornerCheck, tuned.CornerCheck)

	wrongKind := write(t, "other.yaml", "kind: training\ndef:\n  alpha: 2\n")
	_, err = cfg.ApplyTuning(wrongKind)
	assert.ErrorIs(t, err, config.ErrInvalidTuning)

	_, err = cfg.ApplyTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEngineOptions(t *testing.T) {
	clearEnv(t)
	t.Setenv("STRATEGY", "astar")
	t.Setenv("HEURISTIC", "manhattan")
	cfg, err := config.Load("")
	require.NoError(t, err)

	opts, err := cfg.EngineOptions(zap.NewNop())
	require.NoError(t, err)
	s, err := engine.New(opts...)
	require.NoError(t, err)

	_, err = s.Decide(context.Background(), engine.Tick{Position: core.Coord{}, Target: core.Coord{X: 3}})
	require.NoError(t, err)
	assert.Equal(t, engine.Exploring, s.Mode())

	cfg.Heuristic = "chebyshev"
	_, err = cfg.EngineOptions(nil)
	assert.ErrorIs(t, err, config.ErrUnknownHeuristic)

	cfg.Heuristic = config.HeuristicEuclidean
	cfg.Strategy = "greedy"
	opts, err = cfg.EngineOptions(nil)
	require.NoError(t, err)
	_, err = engine.New(opts...)
	assert.ErrorIs(t, err, engine.ErrOptionViolation)
}
