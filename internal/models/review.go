package models

import "time"

// Review представляет отзыв пользователя на объявление.
type Review struct {
	UID        string    `json:"review_id"`  // Уникальный идентификатор отзыва
	ListingUID string    `json:"listing_id"` // Объявление, к которому оставлен отзыв
	UserUID    string    `json:"user_id"`    // Автор отзыва
	Rating     int       `json:"rating"`     // Оценка от 1 до 5
	Comment    string    `json:"comment"`    // Текст отзыва, обязателен
	CreatedAt  time.Time `json:"created_at"` // Дата создания
}

// DummyReview используется для приёма данных нового отзыва из JSON-запроса.
type DummyReview struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	UserID    string `json:"user_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"required"`
}
