package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/sequence/internal/config"
	"github.com/palemoky/sequence/internal/logger"
	"github.com/palemoky/sequence/internal/sim"
	"github.com/palemoky/sequence/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/sequence/config.yaml)")
	games := flag.Int("games", 0, "number of games, overrides the config")
	seed := flag.Uint64("seed", 0, "base seed, overrides the config")
	level := flag.String("log", "", "log level: none|results|turn|board")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("failed to apply environment: %v", err)
	}
	if *games > 0 {
		cfg.Simulation.Games = *games
	}
	if *seed > 0 {
		cfg.Simulation.Seed = *seed
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	lvl, _ := logger.ParseLevel(cfg.Log.Level)
	l, closeLog, err := logger.New(logger.Options{Level: lvl, File: cfg.Log.File})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store sim.Recorder
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		rs := storage.NewResultStore(client, cfg.Redis.TTL)
		if err := rs.Ping(ctx); err != nil {
			log.Fatalf("failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		store = rs
	}

	results, err := sim.NewRunner(cfg, l, store).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("simulation failed: %v", err)
	}
	fmt.Printf("played %d of %d games\n", len(results), cfg.Simulation.Games)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}
