// Package cateringlist реализует HTTP-обработчик выдачи всех заявок
// на кейтеринг с данными заявителя.
package cateringlist

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

// Service описывает интерфейс выдачи всех заявок.
type Service interface {
	ListAll(ctx context.Context) ([]*models.CateringRequestWithUser, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Все заявки на кейтеринг
// @Description Возвращает все заявки с именем и телефоном заявителя.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.CateringRequestWithUser
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуется роль admin"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/catering [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.cateringlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list catering requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list catering requests"))
		return
	}

	log.Info("list all catering requests", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
