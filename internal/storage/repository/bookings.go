package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// CreateBooking вставляет новое бронирование и возвращает его UID.
// Ссылка на несуществующее объявление или пользователя транслируется
// в ErrInvalidReference.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	const op = "storage.CreateBooking"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bookings (uid, listing_uid, user_uid, start_date,
			      end_date, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING uid`
	var newUID string
	err := s.DB.QueryRowContext(ctx, query,
		booking.UID, booking.ListingUID, booking.UserUID, booking.StartDate,
		booking.EndDate, booking.Status, booking.CreatedAt).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newUID, nil
}

// ReadBooking возвращает бронирование по его UID.
func (s *Storage) ReadBooking(ctx context.Context, uid string) (*models.Booking, error) {
	const op = "storage.ReadBooking"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, listing_uid, user_uid, start_date, end_date, status, created_at
			  FROM bookings WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	var result models.Booking
	if err := row.Scan(&result.UID, &result.ListingUID, &result.UserUID,
		&result.StartDate, &result.EndDate, &result.Status, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return &result, nil
}

// UpdateBooking обновляет даты и статус бронирования по его UID
// и возвращает количество изменённых строк.
func (s *Storage) UpdateBooking(ctx context.Context, booking models.Booking) (int, error) {
	const op = "storage.UpdateBooking"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bookings
			  SET start_date = $1, end_date = $2, status = $3
			  WHERE uid = $4`
	result, err := s.DB.ExecContext(ctx, query,
		booking.StartDate, booking.EndDate, booking.Status, booking.UID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveBooking удаляет бронирование по UID и возвращает количество удалённых строк.
func (s *Storage) RemoveBooking(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveBooking"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM bookings WHERE uid = $1`
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

// ListBookings возвращает список бронирований с пагинацией.
func (s *Storage) ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	const op = "storage.ListBookings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, listing_uid, user_uid, start_date, end_date, status, created_at
			  FROM bookings
			  ORDER BY created_at
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(&item.UID, &item.ListingUID, &item.UserUID,
			&item.StartDate, &item.EndDate, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountBookings возвращает количество бронирований.
func (s *Storage) CountBookings(ctx context.Context) (int, error) {
	const op = "storage.CountBookings"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// RemoveAllBookings удаляет все бронирования и возвращает количество удалённых строк.
func (s *Storage) RemoveAllBookings(ctx context.Context) (int, error) {
	const op = "storage.RemoveAllBookings"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM bookings`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
