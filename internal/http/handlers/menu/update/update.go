// Package update реализует HTTP-обработчик обновления меню по дню недели.
package update

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

// Request — структура входных данных для обновления меню.
type Request struct {
	Day       string `json:"day" validate:"required"`
	Breakfast string `json:"breakfast" validate:"required"`
	Lunch     string `json:"lunch" validate:"required"`
	Dinner    string `json:"dinner" validate:"required"`
}

// Handler обрабатывает HTTP-запросы обновления меню.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления меню.
type Service interface {
	UpdateDay(ctx context.Context, day, breakfast, lunch, dinner string) error
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
// @Summary Обновить меню дня
// @Description Обновляет завтрак, обед и ужин для указанного дня недели.
// @Tags Menu
// @Accept  json
// @Produce  json
// @Param request body Request true "Меню дня"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "День не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /menu [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.menu.update"
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

	if err := h.service.UpdateDay(r.Context(), req.Day, req.Breakfast, req.Lunch, req.Dinner); err != nil {
		if errors.Is(err, storage.ErrMenuDayNotFound) {
			log.Error("menu day not found", slog.String("day", req.Day))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("menu day not found"))
			return
		}
		log.Error("failed to update menu", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update menu"))
		return
	}

	log.Info("menu updated", slog.String("day", req.Day))
	render.JSON(w, r, response.OK())
}
