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

	"github.com/bizflow/settlement/internal/api"
	"github.com/bizflow/settlement/internal/clients/auth"
	"github.com/bizflow/settlement/internal/entity"
	"github.com/bizflow/settlement/internal/gateway"
	"github.com/bizflow/settlement/internal/gateway/cod"
	"github.com/bizflow/settlement/internal/gateway/flutterwave"
	"github.com/bizflow/settlement/internal/gateway/paystack"
	"github.com/bizflow/settlement/internal/gateway/stripe"
	"github.com/bizflow/settlement/internal/repository"
	"github.com/bizflow/settlement/internal/service"
	"github.com/bizflow/settlement/pkg/broker"
	"github.com/bizflow/settlement/pkg/config"
	"github.com/bizflow/settlement/pkg/job"
	"github.com/bizflow/settlement/pkg/logger"
	"github.com/bizflow/settlement/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	providers := gateway.NewRegistry().
		Register(entity.ProviderCOD, cod.New()).
		Register(entity.ProviderPaystack, paystack.NewClient(cfg.Paystack)).
		Register(entity.ProviderFlutterwave, flutterwave.NewClient(cfg.Flutterwave)).
		Register(entity.ProviderStripe, stripe.NewClient(cfg.Stripe))

	documents := service.NewDocumentService(repo, repo)
	payments := service.NewPaymentService(repo, repo, producer)
	checkout := service.NewCheckoutService(
		repo,
		providers,
		producer,
		cfg.PublicBaseURL,
		time.Duration(cfg.Orders.StaleAfterHours)*time.Hour,
	)
	membership := service.NewMembershipService(repo)

	authService := auth.NewClient(cfg.AuthServiceURL)

	jobs := job.NewService().
		RegisterJob("expire stale orders", time.Hour, checkout.ExpireStaleOrders)
	jobs.Start(ctx)

	handler := api.NewHandler(documents, payments, checkout, membership)
	mw := api.NewMiddleware(authService, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey, cfg.Webhooks.MembershipSecret)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
