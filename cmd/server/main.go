// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/netplay"
	"go-arena-shooter/internal/save"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	logger := settings.NewLogger()
	if settings.EnemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(settings.EnemyDefs); err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, settings, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, settings config.Settings, logger *slog.Logger) error {
	store := save.NewFileStore(settings.SavePath, logger)
	game := newGame(settings, logger, store)
	hub := netplay.NewHub(logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: settings.ListenAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("listening", "addr", settings.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	eg.Go(func() error {
		defer func() {
			if err := game.SaveProfile(); err != nil {
				logger.Error("failed to save profile", "err", err)
			}
		}()
		ticker := time.NewTicker(time.Duration(config.TickIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				for _, line := range hub.Commands() {
					out, err := game.Execute(line)
					logger.Info("remote command", "line", line, "out", out, "err", err)
				}
				game.Tick(float64(now.Sub(last).Microseconds())/1000, hub.Input())
				last = now
				if err := hub.Broadcast(game.World.Snapshot()); err != nil {
					logger.Warn("broadcast failed", "err", err)
				}
				if game.World.Phase != component.PhaseRunning {
					// Забег закончен: профиль сохраняется, следующий начинается сразу.
					if err := game.SaveProfile(); err != nil {
						logger.Error("failed to save profile", "err", err)
					}
					game = game.Restart(options(settings, logger, store))
					game.Start()
				}
			}
		}
	})
	return eg.Wait()
}

func options(settings config.Settings, logger *slog.Logger, store app.ProfileStore) app.Options {
	return app.Options{
		WavesToWin: settings.WavesToWin,
		Seed:       settings.Seed,
		Logger:     logger,
		Store:      store,
	}
}

func newGame(settings config.Settings, logger *slog.Logger, store app.ProfileStore) *app.Game {
	game := app.NewGame(options(settings, logger, store))
	p, err := store.Load()
	if err != nil {
		logger.Warn("profile load failed, starting fresh", "err", err)
	}
	game.ApplyProfile(p)
	game.Start()
	return game
}
