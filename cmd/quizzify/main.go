package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/config"
	"github.com/jadenpinto/QuizzifyApp/internal/delivery/cli"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database"
	"github.com/jadenpinto/QuizzifyApp/internal/infra/database/repository"
	"github.com/jadenpinto/QuizzifyApp/internal/logger"
	"github.com/jadenpinto/QuizzifyApp/internal/service"
	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

func main() {
	flags := pflag.NewFlagSet("quizzify", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("quizzify stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	driver, err := database.ParseDriver(cfg.DB.Driver)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, driver, cfg.DB.URL, database.PoolConfig{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := database.EnsureSchema(ctx, db, driver)
	if err != nil {
		return err
	}
	lg.Info("database ready",
		zap.String("driver", string(driver)),
		zap.Bool("created", created),
	)

	// Initialize repository, store and services.
	repo := repository.NewQuestionRepository(db, driver)

	store := storage.NewQuestionStore(repo, lg)
	store.Start(ctx)
	defer store.Close()

	// Seed only a question bank created by this start-up.
	if created && cfg.Quiz.Seed {
		if _, err := service.SeedExampleQuestions(ctx, store, lg); err != nil {
			return fmt.Errorf("first run: %w", err)
		}
	}

	quizService := service.NewQuizService(store, nil, lg)
	questionService := service.NewQuestionService(store, lg)

	handler := cli.NewHandler(os.Stdin, os.Stdout, lg, quizService, questionService)
	return handler.Run(ctx)
}
