// Package stats собирает агрегаты по состоянию хранилища для админской панели.
package stats

import (
	"context"
	"log/slog"

	"github.com/wagholimess/mess-service/internal/models"
)

// StatsRepository определяет агрегирующие запросы к хранилищу.
type StatsRepository interface {
	CountActiveSubscriptions(ctx context.Context) (int, error)
	CountActiveSubscriptionsByCategory(ctx context.Context, category string) (int, error)
	SumSuccessfulPayments(ctx context.Context) (int, error)
	CountPendingCateringRequests(ctx context.Context) (int, error)
}

// Service собирает сводку для админской панели.
type Service struct {
	repo StatsRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo StatsRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Collect возвращает сводку: активные подписки (всего и по категориям),
// выручку по успешным платежам и количество заявок в ожидании.
func (s *Service) Collect(ctx context.Context) (*models.AdminStats, error) {
	active, err := s.repo.CountActiveSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.SumSuccessfulPayments(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingCateringRequests(ctx)
	if err != nil {
		return nil, err
	}
	breakfast, err := s.repo.CountActiveSubscriptionsByCategory(ctx, models.CategoryBreakfast)
	if err != nil {
		return nil, err
	}
	mess, err := s.repo.CountActiveSubscriptionsByCategory(ctx, models.CategoryMess)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		ActiveSubscribers:    active,
		MonthlyRevenue:       revenue,
		PendingCatering:      pending,
		BreakfastSubscribers: breakfast,
		MessSubscribers:      mess,
	}, nil
}
