// Package catering содержит бизнес-логику заявок на кейтеринг: создание,
// выдачу списков и админское выставление статуса и сметы. О каждой смене
// состояния публикуется событие в брокер сообщений; недоступность брокера
// не влияет на результат операции.
package catering

import (
	"context"
	"log/slog"
	"time"

	"github.com/wagholimess/mess-service/internal/lib/sl"
	"github.com/wagholimess/mess-service/internal/models"
)

// Типы публикуемых событий.
const (
	EventRequested     = "catering.requested"
	EventStatusChanged = "catering.status_changed"
)

// Event — сообщение о смене состояния заявки, публикуемое в брокер.
type Event struct {
	Type        string    `json:"type"`
	RequestID   int       `json:"request_id"`
	UserID      int       `json:"user_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	QuoteAmount int       `json:"quote_amount,omitempty"`
	At          time.Time `json:"at"`
}

// CateringRepository определяет методы для работы с заявками в хранилище.
type CateringRepository interface {
	// CreateCateringRequest добавляет новую заявку и возвращает её ID.
	CreateCateringRequest(ctx context.Context, req models.CateringRequest) (int, error)
	// ListUserCateringRequests возвращает заявки одного пользователя.
	ListUserCateringRequests(ctx context.Context, userID int) ([]*models.CateringRequest, error)
	// ListAllCateringRequests возвращает все заявки с данными заявителя.
	ListAllCateringRequests(ctx context.Context) ([]*models.CateringRequestWithUser, error)
	// UpdateCateringStatus выставляет статус и смету по заявке.
	UpdateCateringStatus(ctx context.Context, id int, status string, quoteAmount int) error
}

// Publisher публикует событие в брокер сообщений.
type Publisher interface {
	Publish(message any) error
}

// Service реализует операции над заявками на кейтеринг.
type Service struct {
	repo      CateringRepository
	publisher Publisher
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo CateringRepository, publisher Publisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// Create сохраняет новую заявку и публикует событие catering.requested.
func (s *Service) Create(ctx context.Context, req models.CateringRequest) (int, error) {
	id, err := s.repo.CreateCateringRequest(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("created catering request", slog.Int("id", id))

	event := Event{
		Type:      EventRequested,
		RequestID: id,
		UserID:    req.UserID,
		At:        time.Now().UTC(),
	}
	if err := s.publisher.Publish(event); err != nil {
		s.log.Warn("failed to publish catering event", sl.Err(err))
	}

	return id, nil
}

// ListForUser возвращает заявки одного пользователя.
func (s *Service) ListForUser(ctx context.Context, userID int) ([]*models.CateringRequest, error) {
	return s.repo.ListUserCateringRequests(ctx, userID)
}

// ListAll возвращает все заявки с данными заявителя.
func (s *Service) ListAll(ctx context.Context) ([]*models.CateringRequestWithUser, error) {
	return s.repo.ListAllCateringRequests(ctx)
}

// UpdateStatus выставляет статус и смету по заявке и публикует
// событие catering.status_changed.
// Возвращает storage.ErrCateringNotFound, если заявки нет.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string, quoteAmount int) error {
	if err := s.repo.UpdateCateringStatus(ctx, id, status, quoteAmount); err != nil {
		return err
	}
	s.log.Info("updated catering request", slog.Int("id", id), slog.String("status", status))

	event := Event{
		Type:        EventStatusChanged,
		RequestID:   id,
		Status:      status,
		QuoteAmount: quoteAmount,
		At:          time.Now().UTC(),
	}
	if err := s.publisher.Publish(event); err != nil {
		s.log.Warn("failed to publish catering event", sl.Err(err))
	}

	return nil
}
