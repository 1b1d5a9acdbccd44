package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/console"
	"github.com/rocketscienceinc/gamehub/internal/repository"
	"github.com/rocketscienceinc/gamehub/internal/repository/storage"
	"github.com/rocketscienceinc/gamehub/internal/service"
	"github.com/rocketscienceinc/gamehub/internal/tictactoe"
	"github.com/rocketscienceinc/gamehub/internal/usecase"
)

const closeTimeout = 3 * time.Second

// RunApp - runs the game hub on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the hub against the given terminal streams and blocks until the session ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	resultRepo, closeRepo, err := newResultRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	stats := service.NewStatsService(logger, resultRepo)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()

		if err := stats.Close(closeCtx); err != nil {
			log.Error("could not clear session results", "error", err)
		}
	}()

	delays := conf.Delays.Effective()
	style := console.NewStyle(!conf.NoColor)
	screen := console.NewScreen(out, style, console.Delays{
		Loading: delays.Loading,
		Roll:    delays.Roll,
		AIThink: delays.AIThink,
		Notice:  delays.Notice,
	})
	input := console.NewPrompter(in, out, style)
	defer input.Close()

	rng := newRand(conf.Seed)
	bot := service.NewBotService(rng)
	controller := tictactoe.NewGameController(logger, input, bot, console.NewMatchView(screen))
	hub := usecase.NewGameHub(logger, screen, input, rng, controller, stats, usecase.HangmanRules{
		Words: conf.Hangman.Words,
		Lives: conf.Hangman.Lives,
	})

	log.Info("session started", "session", stats.SessionID(), "stats_driver", conf.Stats.Driver)

	if err = hub.Run(ctx); err != nil {
		return fmt.Errorf("game hub stopped: %w", err)
	}

	log.Info("session finished", "session", stats.SessionID())

	return nil
}

func newResultRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	if conf.Stats.Driver != config.StatsDriverRedis {
		return repository.NewMemoryResultRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Stats.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage), closeFn, nil
}

// newRand - a zero seed means a fresh sequence on every run.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed))
}
