package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/vbonduro/pantry/internal/config"
	"github.com/vbonduro/pantry/internal/inventory"
	"github.com/vbonduro/pantry/internal/logging"
	"github.com/vbonduro/pantry/internal/recipe"
	"github.com/vbonduro/pantry/internal/service"
	"github.com/vbonduro/pantry/internal/shell"
)

func main() {
	envFile := flag.String("env-file", "", "env file to load before reading the environment (default .env)")
	seed := flag.Bool("seed", false, "start with demo groceries and recipes")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	pantry := service.NewPantryService(inventory.New(), recipe.NewCookbook(), cfg.Today(time.Now()), logging.Component(logger, "service"))
	if cfg.Seed || *seed {
		if err := pantry.Seed(); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(pantry, os.Stdin, os.Stdout, cfg.Prompt, logging.Component(logger, "shell"))
	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("shell error", "error", err)
	}
}
