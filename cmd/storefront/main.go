package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/Tyyuu55/Crave-Now/internal/auth"
	"github.com/Tyyuu55/Crave-Now/internal/cart"
	"github.com/Tyyuu55/Crave-Now/internal/catalog"
	"github.com/Tyyuu55/Crave-Now/internal/checkout"
	"github.com/Tyyuu55/Crave-Now/internal/config"
	"github.com/Tyyuu55/Crave-Now/internal/events"
	h "github.com/Tyyuu55/Crave-Now/internal/http"
	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/Tyyuu55/Crave-Now/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, os.Stdout)

	ctx := context.Background()

	kv, closeKV, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatalf("failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer closeKV()

	cartStore := cart.Open(ctx, kv, log)
	session := auth.Open(ctx, kv, log)

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, log)
	catalogService := catalog.NewService(api, log)

	var publisher events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Infof("publishing order events to %v", cfg.KafkaBrokers)
	}

	flow := checkout.NewFlow(cartStore, api, publisher, log)

	router := h.NewRouter(h.Deps{
		Cart:           cartStore,
		Catalog:        catalogService,
		Checkout:       flow,
		Accounts:       api,
		Session:        session,
		Log:            log,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exited")
}

// openStore connects the configured backend and returns it with its closer.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (kvstore.Store, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		log.Warn("using in-memory storage, cart and session will not survive restarts")
		return kvstore.NewMemoryStore(), func() {}, nil

	case "sqlite":
		store, err := kvstore.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := store.RunMigrations(); err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Infof("using sqlite storage at %s", cfg.SQLitePath)
		return store, func() { store.Close() }, nil

	case "postgres":
		store, err := kvstore.NewPostgresStore(&kvstore.Credentials{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DBName:   cfg.Postgres.DBName,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := store.RunMigrations(); err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Info("using postgres storage")
		return store, func() { store.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Infof("using redis storage at %s", cfg.RedisAddr)
		return kvstore.NewRedisStore(client, cfg.RedisTTL), func() { client.Close() }, nil

	case "mongo":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		db, err := kvstore.ConnectMongoDB(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		store := kvstore.NewMongoStore(db)
		log.Info("using mongo storage")
		return store, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			store.Close(closeCtx)
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
