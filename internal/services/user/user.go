// Package services содержит бизнес-логику регистрации пользователей:
// проверку стойкости пароля, хеширование и сохранение учётной записи.
package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/lib/password"
	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// WeakPasswordError возвращается, когда пароль не прошёл проверку стойкости.
// Violations перечисляет каждое нарушенное правило.
type WeakPasswordError struct {
	Violations []string
}

func (e *WeakPasswordError) Error() string {
	return "weak password: " + strings.Join(e.Violations, ", ")
}

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// ReadUser возвращает пользователя по UID или ErrNotFound.
	ReadUser(ctx context.Context, uid string) (*models.User, error)
}

// UserService отвечает за регистрацию пользователей.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// Register проверяет пароль на стойкость, хеширует его и сохраняет
// пользователя. При слабом пароле возвращает WeakPasswordError,
// ни одна запись при этом не сохраняется.
func (s *UserService) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	if violations := password.ValidateStrength(req.Password); len(violations) > 0 {
		return nil, &WeakPasswordError{Violations: violations}
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		UID:          uuid.New().String(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = &req.PhoneNumber
	}

	if _, err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("registered new user", slog.String("uid", user.UID))
	return &user, nil
}
