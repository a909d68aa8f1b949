package storage

import (
	"context"
	"fmt"
)

// CountActiveSubscriptions возвращает количество подписок со статусом active.
func (s *Storage) CountActiveSubscriptions(ctx context.Context) (int, error) {
	const op = "storage.CountActiveSubscriptions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM subscriptions WHERE status = 'active'`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountActiveSubscriptionsByCategory возвращает количество активных подписок
// на планы заданной категории.
func (s *Storage) CountActiveSubscriptionsByCategory(ctx context.Context, category string) (int, error) {
	const op = "storage.CountActiveSubscriptionsByCategory"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*)
			  FROM subscriptions s
			  JOIN plans p ON s.plan_id = p.id
			  WHERE s.status = 'active' AND p.category = $1`
	if err := s.DB.QueryRowContext(ctx, query, category).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// SumSuccessfulPayments возвращает сумму успешных платежей.
// При отсутствии платежей возвращает 0, а не NULL.
func (s *Storage) SumSuccessfulPayments(ctx context.Context) (int, error) {
	const op = "storage.SumSuccessfulPayments"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total int
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'success'`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// CountPendingCateringRequests возвращает количество заявок в статусе pending.
func (s *Storage) CountPendingCateringRequests(ctx context.Context) (int, error) {
	const op = "storage.CountPendingCateringRequests"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM catering_requests WHERE status = 'pending'`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
