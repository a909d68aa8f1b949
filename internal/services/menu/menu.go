// Package menu содержит бизнес-логику недельного меню: выдачу с кешированием
// и обновление блюд по дню недели с инвалидацией кеша.
package menu

import (
	"context"
	"log/slog"
	"time"

	"github.com/wagholimess/mess-service/internal/models"
)

const cacheKey = "menu:all"

// MenuRepository определяет методы для работы с меню в хранилище.
type MenuRepository interface {
	// ListMenu возвращает все строки недельного меню.
	ListMenu(ctx context.Context) ([]*models.MenuEntry, error)
	// UpdateMenuDay обновляет блюда для указанного дня недели.
	UpdateMenuDay(ctx context.Context, day, breakfast, lunch, dinner string) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует выдачу и обновление меню с учётом кеша.
type Service struct {
	repo  MenuRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo MenuRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает все семь строк меню, используя кеш или хранилище.
func (s *Service) List(ctx context.Context) ([]*models.MenuEntry, error) {
	var result []*models.MenuEntry
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read menu from cache", slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListMenu(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache menu", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// UpdateDay обновляет блюда одного дня недели и инвалидирует кеш меню.
// Возвращает storage.ErrMenuDayNotFound, если такого дня нет.
func (s *Service) UpdateDay(ctx context.Context, day, breakfast, lunch, dinner string) error {
	if err := s.repo.UpdateMenuDay(ctx, day, breakfast, lunch, dinner); err != nil {
		return err
	}

	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate menu cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	s.log.Info("updated menu", slog.String("day", day))
	return nil
}
