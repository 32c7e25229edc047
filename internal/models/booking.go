package models

import "time"

// Статусы бронирования. Других значений модель не допускает:
// ограничение продублировано CHECK-ограничением в базе.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
)

// BookingStatuses перечисляет все допустимые статусы бронирования.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCanceled,
}

// Booking представляет бронирование объявления пользователем на период дат.
// Модель не требует StartDate < EndDate.
type Booking struct {
	UID        string    `json:"booking_id"` // Уникальный идентификатор бронирования
	ListingUID string    `json:"listing_id"` // Забронированное объявление
	UserUID    string    `json:"user_id"`    // Пользователь, создавший бронирование
	StartDate  time.Time `json:"start_date"` // Начало периода
	EndDate    time.Time `json:"end_date"`   // Конец периода
	Status     string    `json:"status"`     // pending, confirmed или canceled
	CreatedAt  time.Time `json:"created_at"` // Дата создания
}

// DummyBooking используется для приёма данных нового бронирования из JSON-запроса.
// Даты приходят строками в формате RFC3339; формат проверяется при парсинге
// на уровне сервиса.
type DummyBooking struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	UserID    string `json:"user_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
}

// DummyBookingUpdate используется для полного обновления бронирования (PUT).
// UserID идентифицирует действующего пользователя: обновлять бронирование
// может только его создатель.
type DummyBookingUpdate struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=pending confirmed canceled"`
}

// PatchBooking используется для частичного обновления бронирования (PATCH).
type PatchBooking struct {
	UserID    string  `json:"user_id" validate:"required,uuid"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status" validate:"omitempty,oneof=pending confirmed canceled"`
}
