// Package app собирает приложение: хранилище, кеш, брокер, сервисы
// и маршруты HTTP-сервера.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	admincateringlist "github.com/wagholimess/mess-service/internal/http/handlers/admin/cateringlist"
	admincateringstatus "github.com/wagholimess/mess-service/internal/http/handlers/admin/cateringstatus"
	adminstats "github.com/wagholimess/mess-service/internal/http/handlers/admin/stats"
	adminusers "github.com/wagholimess/mess-service/internal/http/handlers/admin/users"
	"github.com/wagholimess/mess-service/internal/http/handlers/auth/login"
	"github.com/wagholimess/mess-service/internal/http/handlers/auth/profile"
	cateringcreate "github.com/wagholimess/mess-service/internal/http/handlers/catering/create"
	cateringlist "github.com/wagholimess/mess-service/internal/http/handlers/catering/list"
	menuget "github.com/wagholimess/mess-service/internal/http/handlers/menu/get"
	menuupdate "github.com/wagholimess/mess-service/internal/http/handlers/menu/update"
	planlist "github.com/wagholimess/mess-service/internal/http/handlers/plan/list"
	subscriptioncreate "github.com/wagholimess/mess-service/internal/http/handlers/subscription/create"
	subscriptionlist "github.com/wagholimess/mess-service/internal/http/handlers/subscription/list"
	subscriptionpause "github.com/wagholimess/mess-service/internal/http/handlers/subscription/pause"
	"github.com/wagholimess/mess-service/internal/http/middlewarectx"
	authservice "github.com/wagholimess/mess-service/internal/services/auth"
	cateringservice "github.com/wagholimess/mess-service/internal/services/catering"
	menuservice "github.com/wagholimess/mess-service/internal/services/menu"
	planservice "github.com/wagholimess/mess-service/internal/services/plan"
	statsservice "github.com/wagholimess/mess-service/internal/services/stats"
	subscriptionservice "github.com/wagholimess/mess-service/internal/services/subscription"
	"github.com/wagholimess/mess-service/internal/storage"
)

// Services — сервисы приложения, используемые маршрутами.
type Services struct {
	Auth         *authservice.Service
	Plan         *planservice.Service
	Menu         *menuservice.Service
	Subscription *subscriptionservice.Service
	Catering     *cateringservice.Service
	Stats        *statsservice.Service
	Users        *storage.Storage
	Tokens       middlewarectx.TokenParser
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
		r.Post("/auth/profile", profile.New(logger, s.Auth).ServeHTTP)

		r.Get("/plans", planlist.New(logger, s.Plan).ServeHTTP)

		r.Get("/menu", menuget.New(logger, s.Menu).ServeHTTP)
		r.Post("/menu", menuupdate.New(logger, s.Menu).ServeHTTP)

		r.Get("/subscriptions/{userId}", subscriptionlist.New(logger, s.Subscription).ServeHTTP)
		r.Post("/subscriptions", subscriptioncreate.New(logger, s.Subscription).ServeHTTP)
		r.Post("/subscriptions/pause", subscriptionpause.New(logger, s.Subscription).ServeHTTP)

		r.Post("/catering", cateringcreate.New(logger, s.Catering).ServeHTTP)
		r.Get("/catering/{userId}", cateringlist.New(logger, s.Catering).ServeHTTP)

		// Группа админских маршрутов: JWT с ролью admin
		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Tokens, logger))
			r.Use(middlewarectx.AdminOnlyMiddleware(logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/stats", adminstats.New(logger, s.Stats).ServeHTTP)
			r.Get("/catering", admincateringlist.New(logger, s.Catering).ServeHTTP)
			r.Post("/catering/status", admincateringstatus.New(logger, s.Catering).ServeHTTP)
			r.Get("/users", adminusers.New(logger, s.Users).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
