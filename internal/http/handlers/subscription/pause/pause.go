// Package pause реализует HTTP-обработчик отметки дня паузы по подписке.
//
// Единственный бизнес-отказ, отдаваемый клиенту как 400 — исчерпанный
// лимит дней паузы; счётчик при этом не меняется.
package pause

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

// Request — структура входных данных для паузы.
type Request struct {
	ID int `json:"id" validate:"required"`
}

// Handler обрабатывает HTTP-запросы паузы подписки.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики паузы.
type Service interface {
	Pause(ctx context.Context, id int) error
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
// @Summary Пауза подписки
// @Description Отмечает один день паузы. При исчерпанном лимите возвращает 400 без изменения счётчика.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body Request true "ID подписки"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Лимит паузы исчерпан"
// @Failure 404 {object} response.ErrorResponse "Подписка не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscriptions/pause [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.pause"
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

	if err := h.service.Pause(r.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, storage.ErrPauseLimitReached):
			log.Info("pause limit reached", slog.Int("id", req.ID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Max pause limit reached"))
		case errors.Is(err, storage.ErrSubscriptionNotFound):
			log.Error("subscription not found", slog.Int("id", req.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
		default:
			log.Error("failed to pause subscription", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not pause subscription"))
		}
		return
	}

	log.Info("subscription paused", slog.Int("id", req.ID))
	render.JSON(w, r, response.OK())
}
