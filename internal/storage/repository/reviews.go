package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// CreateReview вставляет новый отзыв и возвращает его UID.
func (s *Storage) CreateReview(ctx context.Context, review models.Review) (string, error) {
	const op = "storage.CreateReview"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO reviews (uid, listing_uid, user_uid, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid`
	var newUID string
	err := s.DB.QueryRowContext(ctx, query,
		review.UID, review.ListingUID, review.UserUID, review.Rating,
		review.Comment, review.CreatedAt).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newUID, nil
}

// ListReviews возвращает список отзывов с пагинацией.
func (s *Storage) ListReviews(ctx context.Context, limit, offset int) ([]*models.Review, error) {
	const op = "storage.ListReviews"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, listing_uid, user_uid, rating, comment, created_at
			  FROM reviews
			  ORDER BY created_at
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Review
	for rows.Next() {
		var item models.Review
		if err := rows.Scan(&item.UID, &item.ListingUID, &item.UserUID,
			&item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountReviews возвращает количество отзывов.
func (s *Storage) CountReviews(ctx context.Context) (int, error) {
	const op = "storage.CountReviews"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// RemoveAllReviews удаляет все отзывы и возвращает количество удалённых строк.
func (s *Storage) RemoveAllReviews(ctx context.Context) (int, error) {
	const op = "storage.RemoveAllReviews"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM reviews`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
