// Package services реализует наполнение базы синтетическими данными
// для ручного тестирования. Сущности создаются строго последовательно:
// пользователи, объявления, бронирования, отзывы — более поздние ссылаются
// на более ранние по внешнему ключу. Первая же ошибка сохранения прерывает
// наполнение, частично записанные данные не откатываются.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/travel-booking/internal/lib/fake"
	"github.com/magabrotheeeer/travel-booking/internal/lib/password"
	"github.com/magabrotheeeer/travel-booking/internal/models"
)

// seedPassword — пароль всех синтетических пользователей.
const seedPassword = "password123"

// progressStep — интервал отчёта о прогрессе в записях.
const progressStep = 5

// SeedRepository определяет методы хранилища, используемые при наполнении базы.
type SeedRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	CreateListing(ctx context.Context, listing models.Listing) (string, error)
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	CreateReview(ctx context.Context, review models.Review) (string, error)

	RemoveAllReviews(ctx context.Context) (int, error)
	RemoveAllBookings(ctx context.Context) (int, error)
	RemoveAllListings(ctx context.Context) (int, error)
	RemoveAllUsers(ctx context.Context) (int, error)

	CountUsers(ctx context.Context) (int, error)
	CountListings(ctx context.Context) (int, error)
	CountBookings(ctx context.Context) (int, error)
	CountReviews(ctx context.Context) (int, error)
}

// Options задаёт количество создаваемых записей каждого типа
// и флаг предварительной очистки базы.
type Options struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
	Clear    bool
}

// Summary содержит итоговые счётчики записей после наполнения.
type Summary struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

// SeedService наполняет базу синтетическими данными.
type SeedService struct {
	repo SeedRepository
	gen  *fake.Generator
	log  *slog.Logger
}

// NewSeedService создает новый экземпляр SeedService.
func NewSeedService(repo SeedRepository, gen *fake.Generator, log *slog.Logger) *SeedService {
	return &SeedService{
		repo: repo,
		gen:  gen,
		log:  log,
	}
}

// Run выполняет наполнение базы согласно opts и возвращает итоговые счётчики.
func (s *SeedService) Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Clear {
		if err := s.clear(ctx); err != nil {
			return nil, err
		}
	}

	users, err := s.seedUsers(ctx, opts.Users)
	if err != nil {
		return nil, err
	}
	listings, err := s.seedListings(ctx, opts.Listings, users)
	if err != nil {
		return nil, err
	}
	if err := s.seedBookings(ctx, opts.Bookings, users, listings); err != nil {
		return nil, err
	}
	if err := s.seedReviews(ctx, opts.Reviews, users, listings); err != nil {
		return nil, err
	}

	return s.summary(ctx)
}

func (s *SeedService) clear(ctx context.Context) error {
	s.log.Info("clearing existing data")
	if _, err := s.repo.RemoveAllReviews(ctx); err != nil {
		return fmt.Errorf("clear reviews: %w", err)
	}
	if _, err := s.repo.RemoveAllBookings(ctx); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	if _, err := s.repo.RemoveAllListings(ctx); err != nil {
		return fmt.Errorf("clear listings: %w", err)
	}
	if _, err := s.repo.RemoveAllUsers(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	s.log.Info("existing data cleared")
	return nil
}

func (s *SeedService) seedUsers(ctx context.Context, count int) ([]models.User, error) {
	s.log.Info("creating users", slog.Int("count", count))

	hash, err := password.GetHash(seedPassword)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := range count {
		email := s.gen.Email()
		phone := s.gen.PhoneNumber()
		user := models.User{
			UID:          uuid.New().String(),
			Email:        email,
			Username:     usernameFromEmail(email),
			FirstName:    s.gen.FirstName(),
			LastName:     s.gen.LastName(),
			PhoneNumber:  &phone,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if _, err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %d: %w", i+1, err)
		}
		users = append(users, user)
		if i%progressStep == 0 {
			s.log.Info("progress", slog.Int("users_created", i+1))
		}
	}
	s.log.Info("users created", slog.Int("count", len(users)))
	return users, nil
}

func (s *SeedService) seedListings(ctx context.Context, count int, users []models.User) ([]models.Listing, error) {
	s.log.Info("creating listings", slog.Int("count", count))
	if count > 0 && len(users) == 0 {
		return nil, fmt.Errorf("cannot create listings without users")
	}

	listings := make([]models.Listing, 0, count)
	for i := range count {
		listing := models.Listing{
			UID:         uuid.New().String(),
			Title:       s.gen.Sentence(4),
			Description: s.gen.Paragraph(3),
			HostUID:     users[s.gen.IntRange(0, len(users)-1)].UID,
			Street:      s.gen.StreetAddress(),
			City:        s.gen.City(),
			State:       s.gen.State(),
			PostalCode:  s.gen.PostalCode(),
			Country:     s.gen.Country(),
			CreatedAt:   time.Now().UTC(),
			IsActive:    s.gen.Bool(0.75),
		}
		if _, err := s.repo.CreateListing(ctx, listing); err != nil {
			return nil, fmt.Errorf("create listing %d: %w", i+1, err)
		}
		listings = append(listings, listing)
		if i%progressStep == 0 {
			s.log.Info("progress", slog.Int("listings_created", i+1))
		}
	}
	s.log.Info("listings created", slog.Int("count", len(listings)))
	return listings, nil
}

func (s *SeedService) seedBookings(ctx context.Context, count int, users []models.User, listings []models.Listing) error {
	s.log.Info("creating bookings", slog.Int("count", count))
	if count > 0 && (len(users) == 0 || len(listings) == 0) {
		return fmt.Errorf("cannot create bookings without users and listings")
	}

	for i := range count {
		// Период от -30 до +60 дней от текущей даты, окончание через 1-14 дней.
		startDate := time.Now().UTC().AddDate(0, 0, s.gen.IntRange(-30, 60))
		endDate := startDate.AddDate(0, 0, s.gen.IntRange(1, 14))

		booking := models.Booking{
			UID:        uuid.New().String(),
			ListingUID: listings[s.gen.IntRange(0, len(listings)-1)].UID,
			UserUID:    users[s.gen.IntRange(0, len(users)-1)].UID,
			StartDate:  startDate,
			EndDate:    endDate,
			Status:     s.gen.Pick(models.BookingStatuses),
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.repo.CreateBooking(ctx, booking); err != nil {
			return fmt.Errorf("create booking %d: %w", i+1, err)
		}
		if i%progressStep == 0 {
			s.log.Info("progress", slog.Int("bookings_created", i+1))
		}
	}
	s.log.Info("bookings created", slog.Int("count", count))
	return nil
}

func (s *SeedService) seedReviews(ctx context.Context, count int, users []models.User, listings []models.Listing) error {
	s.log.Info("creating reviews", slog.Int("count", count))
	if count > 0 && (len(users) == 0 || len(listings) == 0) {
		return fmt.Errorf("cannot create reviews without users and listings")
	}

	for i := range count {
		review := models.Review{
			UID:        uuid.New().String(),
			ListingUID: listings[s.gen.IntRange(0, len(listings)-1)].UID,
			UserUID:    users[s.gen.IntRange(0, len(users)-1)].UID,
			Rating:     s.gen.IntRange(1, 5),
			Comment:    s.gen.Paragraph(s.gen.IntRange(2, 5)),
			CreatedAt:  time.Now().UTC(),
		}
		if _, err := s.repo.CreateReview(ctx, review); err != nil {
			return fmt.Errorf("create review %d: %w", i+1, err)
		}
		if i%progressStep == 0 {
			s.log.Info("progress", slog.Int("reviews_created", i+1))
		}
	}
	s.log.Info("reviews created", slog.Int("count", count))
	return nil
}

func (s *SeedService) summary(ctx context.Context) (*Summary, error) {
	var sum Summary
	var err error
	if sum.Users, err = s.repo.CountUsers(ctx); err != nil {
		return nil, err
	}
	if sum.Listings, err = s.repo.CountListings(ctx); err != nil {
		return nil, err
	}
	if sum.Bookings, err = s.repo.CountBookings(ctx); err != nil {
		return nil, err
	}
	if sum.Reviews, err = s.repo.CountReviews(ctx); err != nil {
		return nil, err
	}
	return &sum, nil
}

func usernameFromEmail(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}
