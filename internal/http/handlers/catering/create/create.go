// Package create реализует HTTP-обработчик создания заявки на кейтеринг.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/wagholimess/mess-service/internal/http/response"
	"github.com/wagholimess/mess-service/internal/lib/sl"
	"github.com/wagholimess/mess-service/internal/models"
)

// Request — структура входных данных для заявки на кейтеринг.
type Request struct {
	UserID       int    `json:"user_id" validate:"required"`
	EventType    string `json:"event_type" validate:"required"`
	EventDate    string `json:"event_date" validate:"required"`
	Pax          int    `json:"pax" validate:"required,gt=0"`
	Requirements string `json:"requirements"`
}

// Handler обрабатывает HTTP-запросы создания заявок.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания заявки.
type Service interface {
	Create(ctx context.Context, req models.CateringRequest) (int, error)
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
// @Summary Создать заявку на кейтеринг
// @Description Сохраняет заявку на кейтеринг мероприятия со статусом pending.
// @Tags Catering
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные заявки"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /catering [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catering.create"
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

	id, err := h.service.Create(r.Context(), models.CateringRequest{
		UserID:       req.UserID,
		EventType:    req.EventType,
		EventDate:    req.EventDate,
		Pax:          req.Pax,
		Requirements: req.Requirements,
	})
	if err != nil {
		log.Error("failed to create catering request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create catering request"))
		return
	}

	log.Info("created catering request", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}
