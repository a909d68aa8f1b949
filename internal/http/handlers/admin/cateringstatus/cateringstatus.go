// Package cateringstatus реализует HTTP-обработчик выставления статуса
// и сметы по заявке на кейтеринг.
package cateringstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wagholimess/mess-service/internal/http/response"
	"github.com/wagholimess/mess-service/internal/lib/sl"
	"github.com/wagholimess/mess-service/internal/storage"
)

// Request — структура входных данных для выставления статуса.
type Request struct {
	ID          int    `json:"id" validate:"required"`
	Status      string `json:"status" validate:"required"`
	QuoteAmount int    `json:"quote_amount"`
}

// Handler обрабатывает HTTP-запросы выставления статуса заявки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выставления статуса.
type Service interface {
	UpdateStatus(ctx context.Context, id int, status string, quoteAmount int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выставить статус заявки
// @Description Ставит статус и смету по заявке на кейтеринг.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Статус и смета"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Заявка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /admin/catering/status [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.cateringstatus"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.UpdateStatus(r.Context(), req.ID, req.Status, req.QuoteAmount); err != nil {
		if errors.Is(err, storage.ErrCateringNotFound) {
			log.Error("catering request not found", slog.Int("id", req.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("catering request not found"))
			return
		}
		log.Error("failed to update catering status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update catering status"))
		return
	}

	log.Info("catering status updated", slog.Int("id", req.ID), slog.String("status", req.Status))
	render.JSON(w, r, response.OK())
}
