// Command mazewalker solves a maze either on the game backend or offline.
//
// Online, credentials and level come from the environment (or -env file):
//
//	PLAYER_TOKEN=... LEVEL_ID=... mazewalker -strategy astar
//
// Offline, -maze plays an ASCII drawing through the simulator:
//
//	mazewalker -maze sim/testdata/rooms.txt -debug
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalker/config"
	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/gameclient"
	"github.com/katalvlaran/mazewalker/sim"
)

type flags struct {
	tuning   string
	envFile  string
	maze     string
	strategy string
	debug    bool
	maxTicks int
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mazewalker", flag.ContinueOnError)
	fs.StringVar(&f.tuning, "config", "", "YAML tuning file (kind: tuning)")
	fs.StringVar(&f.envFile, "env", "", ".env file to load before reading the environment")
	fs.StringVar(&f.maze, "maze", "", "play an ASCII maze offline instead of the backend")
	fs.StringVar(&f.strategy, "strategy", "", "frontier policy: bfs, dfs or astar (overrides STRATEGY)")
	fs.BoolVar(&f.debug, "debug", false, "development logging at debug level")
	fs.IntVar(&f.maxTicks, "max-ticks", 100000, "offline tick budget, 0 for none")
	return f, fs.Parse(args)
}

func newLogger(debug bool, level string) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

func runApp(ctx context.Context, args []string) (err error) {
	var f flags
	if f, err = parseFlags(args); err != nil {
		return
	}

	var cfg config.Config
	if cfg, err = config.Load(f.envFile); err != nil {
		return
	}
	if f.tuning != "" {
		if cfg, err = cfg.ApplyTuning(f.tuning); err != nil {
			return
		}
	}
	if f.strategy != "" {
		cfg.Strategy = f.strategy
	}

	var log *zap.Logger
	if log, err = newLogger(f.debug, cfg.LogLevel); err != nil {
		return
	}
	defer func() { _ = log.Sync() }()

	var opts []engine.Option
	if opts, err = cfg.EngineOptions(log); err != nil {
		return
	}
	var session *engine.Session
	if session, err = engine.New(opts...); err != nil {
		return
	}
	log.Info("session ready",
		zap.String("session", session.ID()),
		zap.String("strategy", cfg.Strategy),
		zap.Float64("alpha", cfg.Alpha),
		zap.String("heuristic", cfg.Heuristic))

	if f.maze != "" {
		err = playOffline(ctx, log, cfg, f, session)
	} else {
		err = playOnline(ctx, log, cfg, session)
	}
	if err != nil {
		return
	}

	st := session.Stats()
	log.Info("done",
		zap.Int("ticks", st.Ticks),
		zap.Int("cells", st.Cells),
		zap.Int("raw_route", st.RawRoute),
		zap.Int("route", st.Route),
		zap.Stringer("path", session.Route()))
	return nil
}

func playOffline(ctx context.Context, log *zap.Logger, cfg config.Config, f flags, s *engine.Session) error {
	m, err := sim.Load(f.maze)
	if err != nil {
		return err
	}
	if dist, ok := m.Distance(); ok {
		log.Debug("maze loaded", zap.Int("width", m.Width), zap.Int("height", m.Height), zap.Int("distance", dist))
	} else {
		log.Warn("target is not reachable from the start", zap.Int("regions", len(m.Regions())))
	}

	var gameOpts []sim.Option
	if cfg.CornerCheck {
		gameOpts = append(gameOpts, sim.WithStrictCorners())
	}
	res, err := sim.Run(ctx, sim.NewGame(m, gameOpts...), s, f.maxTicks)
	if err != nil {
		return err
	}
	log.Info("offline run finished",
		zap.String("maze", f.maze),
		zap.Int("ticks", res.Ticks),
		zap.Int("moves", res.Moves),
		zap.Int("rotations", res.Rotations),
		zap.Int("resets", res.Resets))
	return nil
}

func playOnline(ctx context.Context, log *zap.Logger, cfg config.Config, s *engine.Session) error {
	if err := cfg.ValidateRemote(); err != nil {
		return err
	}
	client, err := gameclient.New(cfg.PlayerToken,
		gameclient.WithBackend(cfg.BackendBase),
		gameclient.WithFrontend(cfg.FrontendBase),
		gameclient.WithTickDelay(cfg.TickDelay),
		gameclient.WithLogger(log))
	if err != nil {
		return err
	}
	id, err := client.CreateGame(ctx, cfg.LevelID)
	if err != nil {
		return err
	}
	log.Info("game at", zap.String("url", client.GameURL(id)))
	return client.Play(ctx, id, s)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runApp(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
