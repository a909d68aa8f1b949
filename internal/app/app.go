package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/wagholimess/mess-service/internal/cache"
	"github.com/wagholimess/mess-service/internal/config"
	jwtmaker "github.com/wagholimess/mess-service/internal/lib/jwt"
	"github.com/wagholimess/mess-service/internal/migrations"
	"github.com/wagholimess/mess-service/internal/rabbitmq"
	"github.com/wagholimess/mess-service/internal/seed"
	authservice "github.com/wagholimess/mess-service/internal/services/auth"
	cateringservice "github.com/wagholimess/mess-service/internal/services/catering"
	menuservice "github.com/wagholimess/mess-service/internal/services/menu"
	planservice "github.com/wagholimess/mess-service/internal/services/plan"
	statsservice "github.com/wagholimess/mess-service/internal/services/stats"
	subscriptionservice "github.com/wagholimess/mess-service/internal/services/subscription"
	"github.com/wagholimess/mess-service/internal/storage"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
	broker *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = seed.Run(ctx, db, logger); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	brokerConn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}
	brokerChannel, err := rabbitmq.SetupChannel(brokerConn, cfg.RabbitMQ.CateringQueue)
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(brokerChannel)

	tokens := jwtmaker.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, tokens, cfg.AdminPhone, logger)
	planService := planservice.New(db, cacheRedis, logger)
	menuService := menuservice.New(db, cacheRedis, logger)
	subscriptionService := subscriptionservice.New(db, logger)
	cateringService := cateringservice.New(db, publisher, logger)
	statsService := statsservice.New(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, &Services{
		Auth:         authService,
		Plan:         planService,
		Menu:         menuService,
		Subscription: subscriptionService,
		Catering:     cateringService,
		Stats:        statsService,
		Users:        db,
		Tokens:       tokens,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		broker: brokerConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.broker.Close()
		_ = a.cache.Close()
		_ = a.db.Close()
		return err
	}
}
