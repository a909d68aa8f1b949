// Package auth содержит бизнес-логику входа по номеру телефона и обновления профиля.
//
// Вход работает как заглушка OTP: незнакомый номер автоматически регистрируется.
// Номер из конфигурации admin_phone получает роль admin, все остальные — user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wagholimess/mess-service/internal/models"
	"github.com/wagholimess/mess-service/internal/storage"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser добавляет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)
	// GetUserByPhone возвращает пользователя по номеру телефона.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// UpdateUserProfile обновляет имя и адрес пользователя.
	UpdateUserProfile(ctx context.Context, id int, name, address string) error
}

// TokenMaker выдает JWT для ответа на вход.
type TokenMaker interface {
	GenerateToken(phone, role string) (string, error)
}

// Service реализует вход с авторегистрацией и обновление профиля.
type Service struct {
	repo       UserRepository
	tokens     TokenMaker
	adminPhone string
	log        *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRepository, tokens TokenMaker, adminPhone string, log *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		tokens:     tokens,
		adminPhone: adminPhone,
		log:        log,
	}
}

// Login находит пользователя по номеру телефона или регистрирует нового.
// Возвращает пользователя и подписанный токен. Повторный вход с тем же
// номером возвращает того же пользователя.
func (s *Service) Login(ctx context.Context, phone string) (*models.User, string, error) {
	user, err := s.repo.GetUserByPhone(ctx, phone)
	if errors.Is(err, storage.ErrUserNotFound) {
		role := models.RoleUser
		if phone == s.adminPhone {
			role = models.RoleAdmin
		}
		newUser := models.User{
			UID:   uuid.NewString(),
			Phone: phone,
			Role:  role,
		}
		id, err := s.repo.CreateUser(ctx, newUser)
		if err != nil {
			return nil, "", err
		}
		s.log.Info("registered new user", slog.Int("id", id), slog.String("role", role))
		user, err = s.repo.GetUser(ctx, id)
		if err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.Phone, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// UpdateProfile обновляет имя и адрес пользователя и возвращает обновленную запись.
func (s *Service) UpdateProfile(ctx context.Context, id int, name, address string) (*models.User, error) {
	if err := s.repo.UpdateUserProfile(ctx, id, name, address); err != nil {
		return nil, err
	}
	return s.repo.GetUser(ctx, id)
}
