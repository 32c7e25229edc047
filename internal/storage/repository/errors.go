package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ошибки хранилища, различаемые обработчиками через errors.Is.
var (
	// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken возвращается при нарушении уникальности email пользователя.
	ErrEmailTaken = errors.New("email already taken")
	// ErrInvalidReference возвращается, когда внешний ключ указывает
	// на несуществующую запись (например, бронирование несуществующего объявления).
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// mapError переводит низкоуровневые ошибки драйвера в ошибки хранилища.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEmailTaken
		case pgerrcode.ForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}
