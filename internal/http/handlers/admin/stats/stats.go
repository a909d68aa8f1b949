// Package stats реализует HTTP-обработчик сводки для админской панели.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/wagholimess/mess-service/internal/http/response"
	"github.com/wagholimess/mess-service/internal/lib/sl"
	"github.com/wagholimess/mess-service/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сбора сводки.
type Service interface {
	Collect(ctx context.Context) (*models.AdminStats, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка для админа
// @Description Возвращает агрегаты: активные подписки, выручку, заявки в ожидании и подписки по категориям.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.AdminStats
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Collect(r.Context())
	if err != nil {
		log.Error("failed to collect stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect stats"))
		return
	}

	log.Info("collected stats", slog.Int("active_subscribers", res.ActiveSubscribers))
	render.JSON(w, r, res)
}
