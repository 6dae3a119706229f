package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"delve-server/internal/engine"
	"delve-server/internal/infrastructure/storage"
	"delve-server/internal/server"
	"delve-server/internal/version"
	"delve-server/internal/worldgen"
	"delve-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var cfg engine.Config
	flag.StringVar(&cfg.Addr, "addr", "", "listen address (default :8080)")
	flag.Int64Var(&cfg.Seed, "seed", 0, "world seed (0 picks one)")
	flag.StringVar(&cfg.TuningPath, "config", "", "path to a tuning override YAML")
	flag.StringVar(&cfg.RecordPath, "record", "", "journal player actions to this file")
	flag.StringVar(&cfg.ReplayPath, "replay", "", "play a journal back headlessly and exit")
	flag.Parse()

	if err := cfg.Normalize(); err != nil {
		logger.Log.Fatal("bad configuration: ", err)
	}

	logger.Log.Info("Starting Delve...")
	logger.Log.Info(version.String())

	if cfg.ReplayPath != "" {
		if err := runReplay(cfg); err != nil {
			logger.Log.Fatal("replay failed: ", err)
		}
		return
	}

	logger.Log.WithField("seed", cfg.Seed).Info("seeding world")
	world, floor, player := worldgen.DemoFloor()
	game := engine.NewGame(world, floor, cfg.Tuning, cfg.Seed, player)

	if cfg.RecordPath != "" {
		journal, err := storage.NewWriter(cfg.RecordPath, cfg.Seed)
		if err != nil {
			logger.Log.Fatal("open journal: ", err)
		}
		defer func() {
			if err := journal.Close(); err != nil {
				logger.Log.WithError(err).Warn("journal close failed")
			}
		}()
		game.Journal = journal
		logger.Log.WithField("path", cfg.RecordPath).Info("recording enabled")
	}

	hub := server.NewHub()
	session := server.NewSession(game, hub)
	srv := server.New(session, hub)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			logger.Log.Fatal("server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}

// runReplay reconstructs the world from the journal's seed, feeds the
// recorded actions back through the simulation and logs the resulting
// state digest. Identical journals must always print identical
// digests.
func runReplay(cfg engine.Config) error {
	header, records, err := storage.Read(cfg.ReplayPath)
	if err != nil {
		return err
	}
	logger.Log.WithField("seed", header.Seed).
		WithField("actions", len(records)).
		Info("Mode: replay simulation")

	world, floor, player := worldgen.DemoFloor()
	game := engine.NewGame(world, floor, cfg.Tuning, header.Seed, player)

	if err := game.Playback(records); err != nil {
		return err
	}
	logger.Log.WithField("time", game.Clock.Now()).
		WithField("digest", game.Digest()).
		Info("replay complete")
	return nil
}
