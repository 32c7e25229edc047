// Package services содержит бизнес-логику для управления объявлениями.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/models"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

// ListingRepository определяет методы для работы с объявлениями в хранилище.
type ListingRepository interface {
	// CreateListing добавляет новое объявление и возвращает его UID.
	CreateListing(ctx context.Context, listing models.Listing) (string, error)
	// ReadListing возвращает объявление по UID.
	ReadListing(ctx context.Context, uid string) (*models.Listing, error)
	// UpdateListing обновляет данные объявления по UID.
	UpdateListing(ctx context.Context, listing models.Listing) (int, error)
	// RemoveListing удаляет объявление по UID и возвращает количество удалённых записей.
	RemoveListing(ctx context.Context, uid string) (int, error)
	// ListListings возвращает список объявлений с пагинацией.
	ListListings(ctx context.Context, limit, offset int) ([]*models.Listing, error)
}

// ListingService реализует бизнес-логику работы с объявлениями.
type ListingService struct {
	repo ListingRepository
	log  *slog.Logger
}

// NewListingService создает новый экземпляр ListingService.
func NewListingService(repo ListingRepository, log *slog.Logger) *ListingService {
	return &ListingService{
		repo: repo,
		log:  log,
	}
}

// Create создает новое объявление и возвращает его.
// Новое объявление всегда активно.
func (s *ListingService) Create(ctx context.Context, req models.DummyListing) (*models.Listing, error) {
	listing := models.Listing{
		UID:         uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		HostUID:     req.Host,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		CreatedAt:   time.Now().UTC(),
		IsActive:    true,
	}

	if _, err := s.repo.CreateListing(ctx, listing); err != nil {
		return nil, err
	}
	s.log.Info("created new listing", slog.String("uid", listing.UID))
	return &listing, nil
}

// Read возвращает объявление по UID.
func (s *ListingService) Read(ctx context.Context, uid string) (*models.Listing, error) {
	return s.repo.ReadListing(ctx, uid)
}

// Update полностью обновляет объявление, владелец не изменяется.
// Возвращает количество обновлённых записей.
func (s *ListingService) Update(ctx context.Context, uid string, req models.DummyListingUpdate) (int, error) {
	listing := models.Listing{
		UID:         uid,
		Title:       req.Title,
		Description: req.Description,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		Country:     req.Country,
		IsActive:    *req.IsActive,
	}
	count, err := s.repo.UpdateListing(ctx, listing)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// Patch частично обновляет объявление: только переданные поля.
func (s *ListingService) Patch(ctx context.Context, uid string, req models.PatchListing) (int, error) {
	listing, err := s.repo.ReadListing(ctx, uid)
	if err != nil {
		return 0, err
	}

	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Street != nil {
		listing.Street = *req.Street
	}
	if req.City != nil {
		listing.City = *req.City
	}
	if req.State != nil {
		listing.State = *req.State
	}
	if req.PostalCode != nil {
		listing.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		listing.Country = *req.Country
	}
	if req.IsActive != nil {
		listing.IsActive = *req.IsActive
	}

	return s.repo.UpdateListing(ctx, *listing)
}

// Remove удаляет объявление по UID. Связанные бронирования и отзывы
// удаляются каскадом на уровне базы.
func (s *ListingService) Remove(ctx context.Context, uid string) (int, error) {
	count, err := s.repo.RemoveListing(ctx, uid)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, repository.ErrNotFound
	}
	return count, nil
}

// List возвращает список объявлений с пагинацией.
func (s *ListingService) List(ctx context.Context, limit, offset int) ([]*models.Listing, error) {
	return s.repo.ListListings(ctx, limit, offset)
}
