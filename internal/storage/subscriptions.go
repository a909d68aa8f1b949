package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wagholimess/mess-service/internal/models"
)

// Даты подписок хранятся в колонках TEXT в формате RFC3339.
const dateLayout = time.RFC3339

// CreateSubscription вставляет новую подписку и возвращает её ID.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (user_id, plan_id, start_date, end_date,
			      status, paused_days, max_pause_days)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		sub.UserID, sub.PlanID,
		sub.StartDate.UTC().Format(dateLayout), sub.EndDate.UTC().Format(dateLayout),
		sub.Status, sub.PausedDays, sub.MaxPauseDays).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetSubscription возвращает подписку по её ID.
func (s *Storage) GetSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, plan_id, start_date, end_date, status,
			      paused_days, max_pause_days
			  FROM subscriptions
			  WHERE id = $1`
	var sub models.Subscription
	var startDate, endDate string
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&sub.ID, &sub.UserID, &sub.PlanID,
		&startDate, &endDate, &sub.Status, &sub.PausedDays, &sub.MaxPauseDays)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sub.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sub.EndDate, err = time.Parse(dateLayout, endDate); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// ListUserSubscriptions возвращает подписки пользователя вместе с именем,
// ценой и категорией плана, в порядке вставки.
func (s *Storage) ListUserSubscriptions(ctx context.Context, userID int) ([]*models.UserSubscription, error) {
	const op = "storage.ListUserSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.user_id, s.plan_id, s.start_date, s.end_date, s.status,
			      s.paused_days, s.max_pause_days,
			      p.name, p.price, p.category
			  FROM subscriptions s
			  JOIN plans p ON s.plan_id = p.id
			  WHERE s.user_id = $1
			  ORDER BY s.id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.UserSubscription
	for rows.Next() {
		var sub models.UserSubscription
		var startDate, endDate string
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.PlanID, &startDate, &endDate,
			&sub.Status, &sub.PausedDays, &sub.MaxPauseDays,
			&sub.PlanName, &sub.PlanPrice, &sub.PlanCategory); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if sub.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if sub.EndDate, err = time.Parse(dateLayout, endDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// PauseSubscription отмечает один день паузы по подписке.
//
// Чтение счётчиков и условный инкремент выполняются в одной транзакции:
// два конкурентных вызова не могут вместе превысить лимит.
// Возвращает ErrSubscriptionNotFound, если подписки нет,
// и ErrPauseLimitReached, если лимит уже исчерпан (без мутации).
func (s *Storage) PauseSubscription(ctx context.Context, id int) error {
	const op = "storage.PauseSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var pausedDays, maxPauseDays int
	query := `SELECT paused_days, max_pause_days FROM subscriptions WHERE id = $1`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&pausedDays, &maxPauseDays); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if pausedDays >= maxPauseDays {
		return fmt.Errorf("%s: %w", op, ErrPauseLimitReached)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE subscriptions SET paused_days = paused_days + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
