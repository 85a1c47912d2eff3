package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"promo-planner/internal/config"
	"promo-planner/internal/repository"
	"promo-planner/internal/seed"
	"promo-planner/internal/server"
	"promo-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := seed.Apply(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	clientRepo := repository.NewClientRepository(db)
	templateRepo := repository.NewTaskTemplateRepository(db)
	taskRepo := repository.NewClientTaskRepository(db)

	clientSvc := service.NewClientService(clientRepo, templateRepo)
	taskSvc := service.NewTaskService(clientRepo, taskRepo)

	srv := server.New(clientSvc, taskSvc, &cfg)

	log.Printf("[info] promo planner listening on %s", cfg.ListenAddr)
	if err := srv.Run(ctx, cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
