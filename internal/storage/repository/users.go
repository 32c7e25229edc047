package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его UID.
// Нарушение уникальности email транслируется в ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (uid, email, username, first_name, last_name,
			      phone_number, password_hash, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING uid`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Email, user.Username, user.FirstName, user.LastName,
		user.PhoneNumber, user.PasswordHash, user.CreatedAt).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, mapError(err))
	}
	return newUID, nil
}

// ReadUser возвращает пользователя по его UID.
func (s *Storage) ReadUser(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.ReadUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, username, first_name, last_name, phone_number,
			      password_hash, created_at
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, uid)

	var phoneNumber sql.NullString
	if err := row.Scan(&u.UID, &u.Email, &u.Username, &u.FirstName, &u.LastName,
		&phoneNumber, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	if phoneNumber.Valid {
		u.PhoneNumber = &phoneNumber.String
	}
	return u, nil
}

// RemoveUser удаляет пользователя по UID и возвращает количество удалённых строк.
// Каскад в базе удаляет его объявления, бронирования и отзывы.
func (s *Storage) RemoveUser(ctx context.Context, uid string) (int, error) {
	const op = "storage.RemoveUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE uid = $1`
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

// CountUsers возвращает количество пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// RemoveAllUsers удаляет всех пользователей и возвращает количество удалённых строк.
// Используется утилитой наполнения базы при флаге --clear.
func (s *Storage) RemoveAllUsers(ctx context.Context) (int, error) {
	const op = "storage.RemoveAllUsers"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
