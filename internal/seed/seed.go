// Package seed наполняет пустые таблицы каталога планов и недельного меню
// значениями по умолчанию. Повторный запуск с непустыми таблицами ничего не делает.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wagholimess/mess-service/internal/models"
	"github.com/wagholimess/mess-service/internal/storage"
)

var defaultPlans = []models.Plan{
	{Name: "Veg Basic", Description: "Lunch only - 26 days", Price: 2400, DurationDays: 26, Type: "veg", Category: models.CategoryMess},
	{Name: "Veg Premium", Description: "Lunch + Dinner - 26 days", Price: 3800, DurationDays: 26, Type: "veg", Category: models.CategoryMess},
	{Name: "Non-Veg Combo", Description: "Lunch + Dinner + Chicken 3 days/week", Price: 4500, DurationDays: 26, Type: "non-veg", Category: models.CategoryMess},
	{Name: "Breakfast Basic", Description: "Mon–Sat - 26 days", Price: 1200, DurationDays: 26, Type: "veg", Category: models.CategoryBreakfast},
	{Name: "Breakfast Premium", Description: "Mon–Sat + Special Sunday - 30 days", Price: 1600, DurationDays: 30, Type: "veg", Category: models.CategoryBreakfast},
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	defaultBreakfast = "Poha / Upma / Idli"
	defaultLunch     = "Dal Tadka, Jeera Rice, Roti, Sabzi"
	defaultDinner    = "Paneer Masala, Roti, Rice, Salad"
)

// Run выполняет сидинг каталога планов и меню. Ошибка сидинга
// фатальна для запуска процесса: вызывающий код не должен её глотать.
func Run(ctx context.Context, db *storage.Storage, log *slog.Logger) error {
	const op = "seed.Run"

	planCount, err := db.CountPlans(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if planCount == 0 {
		for _, plan := range defaultPlans {
			if _, err := db.CreatePlan(ctx, plan); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		log.Info("seeded default plans", slog.Int("count", len(defaultPlans)))
	}

	menuCount, err := db.CountMenuEntries(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if menuCount == 0 {
		for _, day := range weekdays {
			entry := models.MenuEntry{
				Day:       day,
				Breakfast: defaultBreakfast,
				Lunch:     defaultLunch,
				Dinner:    defaultDinner,
			}
			if _, err := db.CreateMenuEntry(ctx, entry); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		log.Info("seeded default menu", slog.Int("count", len(weekdays)))
	}

	return nil
}
