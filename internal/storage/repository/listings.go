package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// CreateListing вставляет новое объявление и возвращает его UID.
func (s *Storage) CreateListing(ctx context.Context, listing models.Listing) (string, error) {
	const op = "storage.CreateListing"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO listings (uid, title, description, host_uid, street, city,
			      state, postal_code, country, created_at, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING uid`
	var newUID string
	err := s.DB.QueryRowContext(ctx, query,
		listing.UID, listing.Title, listing.Description, listing.HostUID,
		listing.Street, listing.City, listing.State, listing.PostalCode,
		listing.Country, listing.CreatedAt, listing.IsActive).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newUID, nil
}

// ReadListing возвращает объявление по его UID.
func (s *Storage) ReadListing(ctx context.Context, uid string) (*models.Listing, error) {
	const op = "storage.ReadListing"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, description, host_uid, street, city, state,
			      postal_code, country, created_at, is_active
			  FROM listings WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	var result models.Listing
	if err := row.Scan(&result.UID, &result.Title, &result.Description, &result.HostUID,
		&result.Street, &result.City, &result.State, &result.PostalCode,
		&result.Country, &result.CreatedAt, &result.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &result, nil
}

// UpdateListing обновляет данные объявления по его UID и возвращает
// количество изменённых строк. Владелец объявления не изменяется.
func (s *Storage) UpdateListing(ctx context.Context, listing models.Listing) (int, error) {
	const op = "storage.UpdateListing"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE listings
			  SET title = $1, description = $2, street = $3, city = $4,
			      state = $5, postal_code = $6, country = $7, is_active = $8
			  WHERE uid = $9`
	result, err := s.DB.ExecContext(ctx, query,
		listing.Title, listing.Description, listing.Street, listing.City,
		listing.State, listing.PostalCode, listing.Country, listing.IsActive,
		listing.UID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveListing удаляет объявление по UID и возвращает количество удалённых строк.
// Каскад в базе удаляет связанные бронирования и отзывы.
func (s *Storage) RemoveListing(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveListing"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM listings WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListListings возвращает список объявлений с пагинацией.
func (s *Storage) ListListings(ctx context.Context, limit, offset int) ([]*models.Listing, error) {
	const op = "storage.ListListings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, description, host_uid, street, city, state,
			      postal_code, country, created_at, is_active
			  FROM listings
			  ORDER BY created_at
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Listing
	for rows.Next() {
		var item models.Listing
		if err := rows.Scan(&item.UID, &item.Title, &item.Description, &item.HostUID,
			&item.Street, &item.City, &item.State, &item.PostalCode,
			&item.Country, &item.CreatedAt, &item.IsActive); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountListings возвращает количество объявлений.
func (s *Storage) CountListings(ctx context.Context) (int, error) {
	const op = "storage.CountListings"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// RemoveAllListings удаляет все объявления и возвращает количество удалённых строк.
func (s *Storage) RemoveAllListings(ctx context.Context) (int, error) {
	const op = "storage.RemoveAllListings"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM listings`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
