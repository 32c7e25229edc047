// Package services содержит бизнес-логику для работы с отзывами.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// ReviewRepository определяет методы для работы с отзывами в хранилище.
type ReviewRepository interface {
	// CreateReview добавляет новый отзыв и возвращает его UID.
	CreateReview(ctx context.Context, review models.Review) (string, error)
	// ListReviews возвращает список отзывов с пагинацией.
	ListReviews(ctx context.Context, limit, offset int) ([]*models.Review, error)
}

// ReviewService реализует бизнес-логику работы с отзывами.
type ReviewService struct {
	repo ReviewRepository
	log  *slog.Logger
}

// NewReviewService создает новый экземпляр ReviewService.
func NewReviewService(repo ReviewRepository, log *slog.Logger) *ReviewService {
	return &ReviewService{
		repo: repo,
		log:  log,
	}
}

// Create создает новый отзыв. Границы оценки проверяются валидатором
// на уровне обработчика и CHECK-ограничением в базе.
func (s *ReviewService) Create(ctx context.Context, req models.DummyReview) (*models.Review, error) {
	review := models.Review{
		UID:        uuid.New().String(),
		ListingUID: req.ListingID,
		UserUID:    req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}
	s.log.Info("created new review", slog.String("uid", review.UID))
	return &review, nil
}

// List возвращает список отзывов с пагинацией.
func (s *ReviewService) List(ctx context.Context, limit, offset int) ([]*models.Review, error) {
	return s.repo.ListReviews(ctx, limit, offset)
}
