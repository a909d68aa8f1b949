package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wagholimess/mess-service/internal/models"
)

// CreatePlan вставляет новый тарифный план и возвращает его ID.
// Используется только сидером каталога.
func (s *Storage) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO plans (name, description, price, duration_days, type, category)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		plan.Name, plan.Description, plan.Price, plan.DurationDays,
		plan.Type, plan.Category).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetPlan возвращает тарифный план по его ID.
func (s *Storage) GetPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.GetPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, duration_days, type, category
			  FROM plans
			  WHERE id = $1`
	var p models.Plan
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description,
		&p.Price, &p.DurationDays, &p.Type, &p.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrPlanNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// ListPlans возвращает весь каталог планов в порядке вставки.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price, duration_days, type, category
			  FROM plans
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price,
			&p.DurationDays, &p.Type, &p.Category); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountPlans возвращает количество планов в каталоге.
func (s *Storage) CountPlans(ctx context.Context) (int, error) {
	const op = "storage.CountPlans"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM plans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
