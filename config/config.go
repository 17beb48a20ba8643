package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/explore"
)

// Sentinel errors for configuration.
var (
	// ErrMissingEnv indicates a required environment variable is not set.
	ErrMissingEnv = errors.New("config: environment variable not set")

	// ErrInvalidEnv indicates an environment variable that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment variable")

	// ErrUnknownHeuristic indicates a heuristic name other than euclidean or manhattan.
	ErrUnknownHeuristic = errors.New("config: unknown heuristic")
)

// Defaults used when the environment leaves a value unset.
const (
	DefaultBackendBase  = "goldrush.monad.fi/backend"
	DefaultFrontendBase = "goldrush.monad.fi"
	DefaultTickDelay    = 100 * time.Millisecond
)

// Heuristic names.
const (
	HeuristicEuclidean = "euclidean"
	HeuristicManhattan = "manhattan"
)

// Config holds the agent's configuration values.
type Config struct {
	PlayerToken    string        // Token authorising game creation and the websocket
	LevelID        string        // Level to create a game for
	BackendBase    string        // Host and path prefix of the game backend
	FrontendBase   string        // Host of the game viewer
	Strategy       string        // Frontier policy: bfs, dfs or astar
	Alpha          float64       // Cost weight of the astar policy
	Heuristic      string        // euclidean or manhattan
	HeuristicScale float64       // Multiplier applied to the heuristic distance
	HeuristicOrder bool          // dfs pops the sibling closest to the target first
	TickDelay      time.Duration // Pause before each command is sent
	CornerCheck    bool          // Wall check on corner cutting
	LogLevel       string        // debug, info, warn or error
}

// Load reads the environment, first applying envFile when given. An explicit
// envFile that cannot be read is an error; a missing default .env is not.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Config{
		PlayerToken:  getEnvWithDefault("PLAYER_TOKEN", ""),
		LevelID:      getEnvWithDefault("LEVEL_ID", ""),
		BackendBase:  getEnvWithDefault("BACKEND_BASE", DefaultBackendBase),
		FrontendBase: getEnvWithDefault("FRONTEND_BASE", DefaultFrontendBase),
		Strategy:     strings.ToLower(getEnvWithDefault("STRATEGY", string(engine.StrategyBFS))),
		Heuristic:    strings.ToLower(getEnvWithDefault("HEURISTIC", HeuristicEuclidean)),
		LogLevel:     strings.ToLower(getEnvWithDefault("LOG_LEVEL", "info")),
	}

	var err error
	if cfg.Alpha, err = getEnvAsFloat("ALPHA", 1); err != nil {
		return Config{}, err
	}
	if cfg.HeuristicScale, err = getEnvAsFloat("HEURISTIC_SCALE", explore.DefaultHeuristicScale); err != nil {
		return Config{}, err
	}
	if cfg.HeuristicOrder, err = getEnvAsBool("HEURISTIC_ORDER", false); err != nil {
		return Config{}, err
	}
	if cfg.TickDelay, err = getEnvAsDuration("TICK_DELAY", DefaultTickDelay); err != nil {
		return Config{}, err
	}
	if cfg.CornerCheck, err = getEnvAsBool("CORNER_CHECK", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateRemote checks the values needed to play against the game backend.
func (c Config) ValidateRemote() error {
	if c.PlayerToken == "" {
		return fmt.Errorf("%w: PLAYER_TOKEN", ErrMissingEnv)
	}
	if c.LevelID == "" {
		return fmt.Errorf("%w: LEVEL_ID", ErrMissingEnv)
	}
	return nil
}

// HeuristicFunc resolves the configured heuristic name and scale.
func (c Config) HeuristicFunc() (explore.HeuristicFunc, error) {
	switch c.Heuristic {
	case HeuristicEuclidean, "":
		return explore.Euclidean(c.HeuristicScale), nil
	case HeuristicManhattan:
		return explore.Manhattan(c.HeuristicScale), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, c.Heuristic)
}

// EngineOptions converts the configuration into session options. Invalid
// strategy or alpha values surface from engine.New.
func (c Config) EngineOptions(log *zap.Logger) ([]engine.Option, error) {
	h, err := c.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	return []engine.Option{
		engine.WithStrategy(engine.Strategy(c.Strategy)),
		engine.WithAlpha(c.Alpha),
		engine.WithHeuristic(h),
		engine.WithHeuristicOrder(c.HeuristicOrder),
		engine.WithCornerCheck(c.CornerCheck),
		engine.WithLogger(log),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidEnv, key, err)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalidEnv, key, err)
	}
	return v, nil
}

// getEnvAsDuration accepts Go durations ("250ms") and bare milliseconds ("250").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	var d time.Duration
	if ms, err := strconv.Atoi(raw); err == nil {
		d = time.Duration(ms) * time.Millisecond
	} else if d, err = time.ParseDuration(raw); err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalidEnv, key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidEnv, key)
	}
	return d, nil
}
