// Package services содержит бизнес-логику для управления бронированиями,
// включая проверку владельца при обновлении.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/models"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

// ErrNotOwner возвращается при попытке обновить чужое бронирование.
var ErrNotOwner = errors.New("booking belongs to another user")

// ErrInvalidDate возвращается, когда дата бронирования не соответствует
// формату RFC3339.
var ErrInvalidDate = errors.New("date is not in RFC3339 format")

// BookingRepository определяет методы для работы с бронированиями в хранилище.
type BookingRepository interface {
	// CreateBooking добавляет новое бронирование и возвращает его UID.
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	// ReadBooking возвращает бронирование по UID.
	ReadBooking(ctx context.Context, uid string) (*models.Booking, error)
	// UpdateBooking обновляет даты и статус бронирования по UID.
	UpdateBooking(ctx context.Context, booking models.Booking) (int, error)
	// RemoveBooking удаляет бронирование по UID и возвращает количество удалённых записей.
	RemoveBooking(ctx context.Context, uid string) (int, error)
	// ListBookings возвращает список бронирований с пагинацией.
	ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error)
}

// BookingService реализует бизнес-логику работы с бронированиями.
type BookingService struct {
	repo BookingRepository
	log  *slog.Logger
}

// NewBookingService создает новый экземпляр BookingService.
func NewBookingService(repo BookingRepository, log *slog.Logger) *BookingService {
	return &BookingService{
		repo: repo,
		log:  log,
	}
}

// Create создает новое бронирование. Статус по умолчанию — pending.
func (s *BookingService) Create(ctx context.Context, req models.DummyBooking) (*models.Booking, error) {
	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", ErrInvalidDate)
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", ErrInvalidDate)
	}

	status := req.Status
	if status == "" {
		status = models.BookingStatusPending
	}

	booking := models.Booking{
		UID:        uuid.New().String(),
		ListingUID: req.ListingID,
		UserUID:    req.UserID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("created new booking", slog.String("uid", booking.UID))
	return &booking, nil
}

// Read возвращает бронирование по UID.
func (s *BookingService) Read(ctx context.Context, uid string) (*models.Booking, error) {
	return s.repo.ReadBooking(ctx, uid)
}

// Update полностью обновляет бронирование. Обновить бронирование может
// только его создатель: иначе возвращается ErrNotOwner.
func (s *BookingService) Update(ctx context.Context, uid string, req models.DummyBookingUpdate) (int, error) {
	booking, err := s.repo.ReadBooking(ctx, uid)
	if err != nil {
		return 0, err
	}
	if booking.UserUID != req.UserID {
		return 0, ErrNotOwner
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", ErrInvalidDate)
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", ErrInvalidDate)
	}

	booking.StartDate = startDate
	booking.EndDate = endDate
	booking.Status = req.Status

	return s.repo.UpdateBooking(ctx, *booking)
}

// Patch частично обновляет бронирование: только переданные поля.
// Проверка владельца такая же, как в Update.
func (s *BookingService) Patch(ctx context.Context, uid string, req models.PatchBooking) (int, error) {
	booking, err := s.repo.ReadBooking(ctx, uid)
	if err != nil {
		return 0, err
	}
	if booking.UserUID != req.UserID {
		return 0, ErrNotOwner
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return 0, fmt.Errorf("invalid start date: %w", ErrInvalidDate)
		}
		booking.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return 0, fmt.Errorf("invalid end date: %w", ErrInvalidDate)
		}
		booking.EndDate = endDate
	}
	if req.Status != nil {
		booking.Status = *req.Status
	}

	return s.repo.UpdateBooking(ctx, *booking)
}

// Remove удаляет бронирование по UID.
func (s *BookingService) Remove(ctx context.Context, uid string) (int, error) {
	count, err := s.repo.RemoveBooking(ctx, uid)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// List возвращает список бронирований с пагинацией.
func (s *BookingService) List(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	return s.repo.ListBookings(ctx, limit, offset)
}
