// Package subscription содержит бизнес-логику жизненного цикла подписки:
// оформление, учёт дней паузы и выдачу списка подписок пользователя.
package subscription

import (
	"context"
	"log/slog"
	"time"

	"github.com/wagholimess/mess-service/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// PauseSubscription отмечает один день паузы в одной транзакции.
	PauseSubscription(ctx context.Context, id int) error
	// ListUserSubscriptions возвращает подписки пользователя с данными плана.
	ListUserSubscriptions(ctx context.Context, userID int) ([]*models.UserSubscription, error)
	// GetPlan возвращает план по ID.
	GetPlan(ctx context.Context, id int) (*models.Plan, error)
}

// Service реализует правила оформления и паузы подписок.
type Service struct {
	repo SubscriptionRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo SubscriptionRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create оформляет подписку пользователя на план.
//
// Окно действия: start_date — текущий момент, end_date — start_date плюс
// duration_days суток; при паузах оно не пересчитывается. Лимит дней паузы
// фиксируется при создании: 26 для категории breakfast, иначе 4.
// Возвращает storage.ErrPlanNotFound, если план не существует.
func (s *Service) Create(ctx context.Context, userID, planID int) (int, error) {
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return 0, err
	}

	startDate := time.Now().UTC()
	endDate := startDate.Add(time.Duration(plan.DurationDays) * 24 * time.Hour)

	maxPauseDays := models.MaxPauseDaysMess
	if plan.Category == models.CategoryBreakfast {
		maxPauseDays = models.MaxPauseDaysBreakfast
	}

	sub := models.Subscription{
		UserID:       userID,
		PlanID:       planID,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       "active",
		PausedDays:   0,
		MaxPauseDays: maxPauseDays,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new subscription",
		slog.Int("id", id),
		slog.Int("plan_id", planID),
		slog.Int("max_pause_days", maxPauseDays))

	return id, nil
}

// Pause отмечает один день паузы по подписке.
// Возвращает storage.ErrSubscriptionNotFound или storage.ErrPauseLimitReached.
func (s *Service) Pause(ctx context.Context, id int) error {
	if err := s.repo.PauseSubscription(ctx, id); err != nil {
		return err
	}
	s.log.Info("paused subscription for one day", slog.Int("id", id))
	return nil
}

// List возвращает все подписки пользователя с данными плана.
func (s *Service) List(ctx context.Context, userID int) ([]*models.UserSubscription, error) {
	return s.repo.ListUserSubscriptions(ctx, userID)
}
