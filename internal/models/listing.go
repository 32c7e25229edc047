package models

import "time"

// Listing представляет объявление о сдаче жилья.
// Поле HostUID задаётся один раз при создании и далее не изменяется.
type Listing struct {
	UID         string    `json:"listing_id"`  // Уникальный идентификатор объявления
	Title       string    `json:"title"`       // Заголовок
	Description string    `json:"description"` // Описание
	HostUID     string    `json:"host"`        // Идентификатор владельца (User)
	Street      string    `json:"street"`      // Улица, дом
	City        string    `json:"city"`        // Город
	State       string    `json:"state"`       // Регион
	PostalCode  string    `json:"postal_code"` // Почтовый индекс
	Country     string    `json:"country"`     // Страна
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
	IsActive    bool      `json:"is_active"`   // Активно ли объявление
}

// DummyListing используется для приёма данных нового объявления из JSON-запроса.
// Host принимается только при создании, при обновлении владелец не меняется.
type DummyListing struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Host        string `json:"host" validate:"required,uuid"`
	Street      string `json:"street" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	Country     string `json:"country" validate:"required,max=100"`
}

// DummyListingUpdate используется для полного обновления объявления (PUT).
type DummyListingUpdate struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Street      string `json:"street" validate:"required,max=255"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=100"`
	PostalCode  string `json:"postal_code" validate:"required,max=20"`
	Country     string `json:"country" validate:"required,max=100"`
	IsActive    *bool  `json:"is_active" validate:"required"`
}

// PatchListing используется для частичного обновления объявления (PATCH).
// Обновляются только переданные поля.
type PatchListing struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Street      *string `json:"street" validate:"omitempty,max=255"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	State       *string `json:"state" validate:"omitempty,max=100"`
	PostalCode  *string `json:"postal_code" validate:"omitempty,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	IsActive    *bool   `json:"is_active"`
}
