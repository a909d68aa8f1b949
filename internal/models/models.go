// Package models содержит доменные структуры сервиса доставки домашней еды:
// пользователей, тарифные планы, подписки, меню, заявки на кейтеринг и платежи,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Категории тарифных планов.
const (
	CategoryMess      = "mess"
	CategoryBreakfast = "breakfast"
)

// Лимиты дней паузы по категориям плана, фиксируются при создании подписки.
const (
	MaxPauseDaysMess      = 4
	MaxPauseDaysBreakfast = 26
)

// User представляет пользователя сервиса. Идентичность определяется
// номером телефона (уникален), поля Name и Address заполняются позже
// через обновление профиля.
type User struct {
	ID      int    `json:"id"`
	UID     string `json:"uid"`
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// Plan описывает тарифный план из каталога. После сидинга планы
// неизменяемы и доступны обработчикам только на чтение.
type Plan struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int    `json:"price"`
	DurationDays int    `json:"duration_days"`
	Type         string `json:"type"`
	Category     string `json:"category"`
}

// Subscription связывает пользователя с планом. Окно действия
// вычисляется один раз при создании и не пересчитывается при паузах.
type Subscription struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	PlanID       int       `json:"plan_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	PausedDays   int       `json:"paused_days"`
	MaxPauseDays int       `json:"max_pause_days"`
}

// UserSubscription — подписка, дополненная данными плана,
// для выдачи списка подписок пользователя.
type UserSubscription struct {
	Subscription
	PlanName     string `json:"plan_name"`
	PlanPrice    int    `json:"price"`
	PlanCategory string `json:"plan_category"`
}

// MenuEntry — строка недельного меню, одна запись на день недели.
type MenuEntry struct {
	ID        int    `json:"id"`
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// CateringRequest — заявка пользователя на кейтеринг мероприятия.
// QuoteAmount равен nil, пока администратор не выставил смету.
type CateringRequest struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date"`
	Pax          int    `json:"pax"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
	QuoteAmount  *int   `json:"quote_amount"`
}

// CateringRequestWithUser — заявка с данными заявителя для админской выдачи.
type CateringRequestWithUser struct {
	CateringRequest
	UserName  string `json:"user_name"`
	UserPhone string `json:"user_phone"`
}

// AdminStats — агрегаты для админской панели.
type AdminStats struct {
	ActiveSubscribers    int `json:"activeSubscribers"`
	MonthlyRevenue       int `json:"monthlyRevenue"`
	PendingCatering      int `json:"pendingCatering"`
	BreakfastSubscribers int `json:"breakfastSubscribers"`
	MessSubscribers      int `json:"messSubscribers"`
}
