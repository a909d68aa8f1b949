// Package storage реализует хранилище данных на основе SQLite
// для управления пользователями, планами, подписками, меню и заявками
// на кейтеринг. Предоставляет методы создания, чтения, обновления
// и агрегирования записей.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера sqlite3 для использования с database/sql.
	_ "github.com/mattn/go-sqlite3"
)

// Типизированные ошибки хранилища, по которым обработчики выбирают HTTP-статус.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrMenuDayNotFound      = errors.New("menu day not found")
	ErrCateringNotFound     = errors.New("catering request not found")
	ErrPauseLimitReached    = errors.New("max pause limit reached")
)

// Storage инкапсулирует соединение с базой данных SQLite
// и реализует методы работы с доменными сущностями.
type Storage struct {
	DB *sql.DB
}

// New открывает файл базы данных SQLite и проверяет соединение.
func New(storagePath string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("sqlite3", storagePath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// SQLite допускает одного писателя; единственное соединение
	// сериализует транзакцию паузы между конкурентными запросами.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает соединение с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}
