// Package get реализует HTTP-обработчик выдачи недельного меню.
package get

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

// Service описывает интерфейс выдачи меню.
type Service interface {
	List(ctx context.Context) ([]*models.MenuEntry, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Недельное меню
// @Description Возвращает семь строк меню, по одной на день недели.
// @Tags Menu
// @Produce  json
// @Success 200 {array} models.MenuEntry
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /menu [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.get"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list menu", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list menu"))
		return
	}

	log.Info("list menu", slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
