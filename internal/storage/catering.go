package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wagholimess/mess-service/internal/models"
)

// CreateCateringRequest вставляет новую заявку на кейтеринг и возвращает её ID.
// Статус новой заявки всегда "pending", смета отсутствует.
func (s *Storage) CreateCateringRequest(ctx context.Context, req models.CateringRequest) (int, error) {
	const op = "storage.CreateCateringRequest"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO catering_requests (user_id, event_type, event_date, pax, requirements)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query,
		req.UserID, req.EventType, req.EventDate, req.Pax, req.Requirements).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListUserCateringRequests возвращает заявки одного пользователя.
func (s *Storage) ListUserCateringRequests(ctx context.Context, userID int) ([]*models.CateringRequest, error) {
	const op = "storage.ListUserCateringRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, event_type, event_date, pax, requirements, status, quote_amount
			  FROM catering_requests
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.CateringRequest
	for rows.Next() {
		var req models.CateringRequest
		var quote sql.NullInt64
		if err := rows.Scan(&req.ID, &req.UserID, &req.EventType, &req.EventDate,
			&req.Pax, &req.Requirements, &req.Status, &quote); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if quote.Valid {
			amount := int(quote.Int64)
			req.QuoteAmount = &amount
		}
		result = append(result, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllCateringRequests возвращает все заявки с именем и телефоном заявителя.
func (s *Storage) ListAllCateringRequests(ctx context.Context) ([]*models.CateringRequestWithUser, error) {
	const op = "storage.ListAllCateringRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.user_id, c.event_type, c.event_date, c.pax, c.requirements,
			      c.status, c.quote_amount, u.name, u.phone
			  FROM catering_requests c
			  JOIN users u ON c.user_id = u.id
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.CateringRequestWithUser
	for rows.Next() {
		var req models.CateringRequestWithUser
		var quote sql.NullInt64
		var userName sql.NullString
		if err := rows.Scan(&req.ID, &req.UserID, &req.EventType, &req.EventDate,
			&req.Pax, &req.Requirements, &req.Status, &quote, &userName, &req.UserPhone); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if quote.Valid {
			amount := int(quote.Int64)
			req.QuoteAmount = &amount
		}
		req.UserName = userName.String
		result = append(result, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateCateringStatus выставляет статус и смету по заявке.
func (s *Storage) UpdateCateringStatus(ctx context.Context, id int, status string, quoteAmount int) error {
	const op = "storage.UpdateCateringStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE catering_requests SET status = $1, quote_amount = $2 WHERE id = $3`
	result, err := s.DB.ExecContext(ctx, query, status, quoteAmount, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrCateringNotFound)
	}
	return nil
}
