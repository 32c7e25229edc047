// Package models содержит доменные структуры системы бронирования жилья:
// пользователей, объявления, бронирования и отзывы, а также вспомогательные
// типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Пароль хранится только в виде bcrypt-хэша и никогда не попадает в ответы API.
type User struct {
	UID          string    `json:"user_id"`      // Уникальный идентификатор пользователя
	Email        string    `json:"email"`        // Электронная почта (логин, уникальная)
	Username     string    `json:"username"`     // Имя пользователя
	FirstName    string    `json:"first_name"`   // Имя
	LastName     string    `json:"last_name"`    // Фамилия
	PhoneNumber  *string   `json:"phone_number"` // Телефон, может отсутствовать
	PasswordHash string    `json:"-"`            // Хэш пароля, не сериализуется
	CreatedAt    time.Time `json:"created_at"`   // Дата регистрации
}

// DummyUser используется для приёма данных регистрации из JSON-запроса.
// Поле Password принимается только на вход и проверяется на стойкость
// до сохранения пользователя.
type DummyUser struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	FirstName   string `json:"first_name" validate:"required,max=255"`
	LastName    string `json:"last_name" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	Password    string `json:"password" validate:"required"`
}
