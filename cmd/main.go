package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/highlandco/docgen/internal/api"
	"github.com/highlandco/docgen/internal/api/events"
	"github.com/highlandco/docgen/internal/assets"
	"github.com/highlandco/docgen/internal/render"
	"github.com/highlandco/docgen/internal/repository"
	"github.com/highlandco/docgen/internal/service"
	"github.com/highlandco/docgen/pkg/broker"
	"github.com/highlandco/docgen/pkg/config"
	"github.com/highlandco/docgen/pkg/logger"
	"github.com/highlandco/docgen/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_ = logger.New()

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)
	store := assets.NewStore(cfg.MediaRoot)
	renderer := render.NewRenderer(store, cfg.CurrencyCode)

	producer := service.Producer(noopProducer{})

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.DocumentGeneratedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, store, renderer, producer)

	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.EmployeeCreatedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.EmployeeCreatedTopic, eventHandler.OnEmployeeCreated)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

type noopProducer struct{}

func (noopProducer) DocumentGenerated(context.Context, string, string) {}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
