package storage

import (
	"context"
	"fmt"

	"github.com/wagholimess/mess-service/internal/models"
)

// CreateMenuEntry вставляет строку меню для одного дня недели.
// Используется только сидером меню.
func (s *Storage) CreateMenuEntry(ctx context.Context, entry models.MenuEntry) (int, error) {
	const op = "storage.CreateMenuEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO menu (day, breakfast, lunch, dinner)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		entry.Day, entry.Breakfast, entry.Lunch, entry.Dinner).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMenu возвращает все строки недельного меню в порядке вставки
// (понедельник — воскресенье после сидинга).
func (s *Storage) ListMenu(ctx context.Context) ([]*models.MenuEntry, error) {
	const op = "storage.ListMenu"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, day, breakfast, lunch, dinner
			  FROM menu
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.MenuEntry
	for rows.Next() {
		var m models.MenuEntry
		if err := rows.Scan(&m.ID, &m.Day, &m.Breakfast, &m.Lunch, &m.Dinner); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMenuDay обновляет блюда для указанного дня недели.
func (s *Storage) UpdateMenuDay(ctx context.Context, day, breakfast, lunch, dinner string) error {
	const op = "storage.UpdateMenuDay"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE menu SET breakfast = $1, lunch = $2, dinner = $3 WHERE day = $4`
	result, err := s.DB.ExecContext(ctx, query, breakfast, lunch, dinner, day)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrMenuDayNotFound)
	}
	return nil
}

// CountMenuEntries возвращает количество строк меню.
func (s *Storage) CountMenuEntries(ctx context.Context) (int, error) {
	const op = "storage.CountMenuEntries"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
