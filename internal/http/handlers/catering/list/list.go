// Package list реализует HTTP-обработчик выдачи заявок на кейтеринг одного пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
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

// Service описывает интерфейс выдачи заявок пользователя.
type Service interface {
	ListForUser(ctx context.Context, userID int) ([]*models.CateringRequest, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Заявки пользователя
// @Description Возвращает все заявки пользователя на кейтеринг.
// @Tags Catering
// @Produce  json
// @Param userId path int true "ID пользователя"
// @Success 200 {array} models.CateringRequest
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /catering/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catering.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		log.Error("failed to decode userId from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode userId from url"))
		return
	}

	res, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list catering requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list catering requests"))
		return
	}

	log.Info("list catering requests", slog.Int("user_id", userID), slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
