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

	"github.com/samandr77/microservices/expenses/internal/api"
	"github.com/samandr77/microservices/expenses/internal/api/events"
	"github.com/samandr77/microservices/expenses/internal/clients/auth"
	"github.com/samandr77/microservices/expenses/internal/clients/bills"
	"github.com/samandr77/microservices/expenses/internal/clients/gomail"
	"github.com/samandr77/microservices/expenses/internal/clients/s3"
	"github.com/samandr77/microservices/expenses/internal/repository"
	"github.com/samandr77/microservices/expenses/internal/service"
	"github.com/samandr77/microservices/expenses/internal/web"
	"github.com/samandr77/microservices/expenses/pkg/broker"
	"github.com/samandr77/microservices/expenses/pkg/config"
	"github.com/samandr77/microservices/expenses/pkg/job"
	"github.com/samandr77/microservices/expenses/pkg/logger"
	"github.com/samandr77/microservices/expenses/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)
	files := s3.NewClient(cfg.S3)
	authClient := auth.NewClient(cfg.AuthServiceURL, cfg.AuthRetryAttempts)

	var publisher service.Events = events.Nop{}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers)
		defer producer.Close()

		publisher = events.NewPublisher(producer, cfg.Kafka.BillSubmittedTopic)
	} else {
		l.WarnContext(ctx, "kafka brokers not set, bill events are not published")
	}

	var mailer service.Mailer = gomail.NewMock()

	if cfg.Mailer.Enabled {
		mailer = gomail.New(cfg.Mailer)
	}

	s := service.New(repo, files, publisher, mailer, cfg.MaxUploadSize, cfg.DraftTTL)

	// Kafka consumers
	if len(cfg.Kafka.Brokers) > 0 {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.BillStatusChangedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.BillStatusChangedTopic, eventHandler.OnBillStatusChanged)
		consumer.Consume(ctx)
	}

	mw := api.NewMiddleware(authClient)
	apiRouter := api.NewRouter(api.NewHandler(s, cfg.MaxUploadSize), mw)
	pages := web.NewRouter(web.NewHandler(bills.NewClient(cfg.BillsAPIURL), l), mw, authClient)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/metrics", apiRouter)
	mux.Handle("/", pages)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      mux,
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

	jobs := job.NewService().
		RegisterJob("purge_drafts", cfg.JobPurgeDraftsInterval, s.PurgeDrafts)
	jobs.Start(ctx)

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
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
