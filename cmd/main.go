package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shopgenie/internal/cache"
	"shopgenie/internal/catalog"
	"shopgenie/internal/db"
	"shopgenie/internal/kafka"
	"shopgenie/internal/logger"
	"shopgenie/internal/policy"
	"shopgenie/internal/repository/postgresql"
	"shopgenie/internal/server"
	"shopgenie/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.SeedProducts(ctx, database); err != nil {
		log.Fatal("catalog seeding failed", zap.Error(err))
	}

	productRepo := postgresql.NewProductRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	returnRepo := postgresql.NewReturnRepo(database)
	reviewRepo := postgresql.NewReviewRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	productCache := cache.NewProductCache(productRepo)
	if err := productCache.LoadInitialData(ctx); err != nil {
		log.Fatal("product cache load failed", zap.Error(err))
	}

	store := storage.NewPostgresStore(database, productRepo, userRepo, orderRepo, returnRepo, reviewRepo, outboxRepo, productCache, log)
	ranker := catalog.NewRanker(productCache)
	evaluator := policy.NewEvaluator(policy.RuleClassifier{})

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	}, log)

	srv := server.New(store, ranker, evaluator, log)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, port)
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("service exited with error", zap.Error(err))
	}

	log.Info("service stopped")
}
