// Package plan отдает каталог тарифных планов с кешированием в redis:
// каталог неизменяем после сидинга, поэтому кеш не инвалидируется.
package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/wagholimess/mess-service/internal/models"
)

const cacheKey = "plans:all"

// PlanRepository определяет чтение каталога планов из хранилища.
type PlanRepository interface {
	ListPlans(ctx context.Context) ([]*models.Plan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service отдает каталог планов, используя кеш или хранилище.
type Service struct {
	repo  PlanRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo PlanRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает весь каталог планов.
func (s *Service) List(ctx context.Context) ([]*models.Plan, error) {
	var result []*models.Plan
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read plans from cache", slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache plans", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}
