package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-booking/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful create and read back", func(t *testing.T) {
		phone := "+12025550142"
		user := testUser("guest@example.com")
		user.PhoneNumber = &phone

		uid, err := storage.CreateUser(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, user.UID, uid)

		got, err := storage.ReadUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		require.NotNil(t, got.PhoneNumber)
		assert.Equal(t, phone, *got.PhoneNumber)
	})

	t.Run("duplicate email", func(t *testing.T) {
		first := testUser("taken@example.com")
		_, err := storage.CreateUser(ctx, first)
		require.NoError(t, err)

		second := testUser("taken@example.com")
		_, err = storage.CreateUser(ctx, second)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("read non-existing user", func(t *testing.T) {
		_, err := storage.ReadUser(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorage_CreateListing(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	t.Run("successful create", func(t *testing.T) {
		hostUID := factory.CreateUser(t, "host@example.com")

		listing := models.Listing{
			UID:         uuid.New().String(),
			Title:       "Sunny loft downtown",
			Description: "Modern studio with a view",
			HostUID:     hostUID,
			Street:      "500 Oak St",
			City:        "Austin",
			State:       "TX",
			PostalCode:  "78701",
			Country:     "US",
			CreatedAt:   time.Now().UTC(),
			IsActive:    true,
		}

		uid, err := storage.CreateListing(ctx, listing)
		require.NoError(t, err)

		got, err := storage.ReadListing(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, listing.Title, got.Title)
		assert.Equal(t, hostUID, got.HostUID)
		assert.True(t, got.IsActive)
	})

	t.Run("unknown host", func(t *testing.T) {
		listing := models.Listing{
			UID:         uuid.New().String(),
			Title:       "Orphan listing",
			Description: "No such host",
			HostUID:     uuid.New().String(),
			Street:      "1 Pine Rd",
			City:        "Bend",
			State:       "OR",
			PostalCode:  "97701",
			Country:     "US",
			CreatedAt:   time.Now().UTC(),
		}

		_, err := storage.CreateListing(ctx, listing)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestStorage_UpdateListing(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	listingUID := factory.CreateListing(t, hostUID)

	t.Run("successful update keeps host", func(t *testing.T) {
		count, err := storage.UpdateListing(ctx, models.Listing{
			UID:         listingUID,
			Title:       "Renovated cabin",
			Description: "Now with a sauna",
			Street:      "12 Lakeview Dr",
			City:        "Bend",
			State:       "OR",
			PostalCode:  "97701",
			Country:     "US",
			IsActive:    false,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := storage.ReadListing(ctx, listingUID)
		require.NoError(t, err)
		assert.Equal(t, "Renovated cabin", got.Title)
		assert.False(t, got.IsActive)
		// Владелец не изменяется при обновлении
		assert.Equal(t, hostUID, got.HostUID)
	})

	t.Run("update non-existing listing", func(t *testing.T) {
		count, err := storage.UpdateListing(ctx, models.Listing{
			UID:   uuid.New().String(),
			Title: "Ghost",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestStorage_RemoveListingCascade(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	guestUID := factory.CreateUser(t, "guest@example.com")
	listingUID := factory.CreateListing(t, hostUID)
	otherListingUID := factory.CreateListing(t, hostUID)

	factory.CreateBooking(t, listingUID, guestUID, models.BookingStatusPending)
	factory.CreateBooking(t, otherListingUID, guestUID, models.BookingStatusConfirmed)
	factory.CreateReview(t, listingUID, guestUID, 5)

	count, err := storage.RemoveListing(ctx, listingUID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Бронирования и отзывы удалённого объявления удаляются каскадом,
	// записи других объявлений не затрагиваются
	assert.Equal(t, 1, factory.CountRows(t, "bookings"))
	assert.Equal(t, 0, factory.CountRows(t, "reviews"))
	assert.Equal(t, 1, factory.CountRows(t, "listings"))
}

func TestStorage_RemoveUserCascade(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	guestUID := factory.CreateUser(t, "guest@example.com")
	listingUID := factory.CreateListing(t, hostUID)

	factory.CreateBooking(t, listingUID, guestUID, models.BookingStatusPending)
	factory.CreateReview(t, listingUID, guestUID, 4)

	// Удаление владельца забирает объявление и всё, что на него ссылается
	count, err := storage.RemoveUser(ctx, hostUID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.Equal(t, 0, factory.CountRows(t, "listings"))
	assert.Equal(t, 0, factory.CountRows(t, "bookings"))
	assert.Equal(t, 0, factory.CountRows(t, "reviews"))
	assert.Equal(t, 1, factory.CountRows(t, "users"))
}

func TestStorage_Bookings(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	guestUID := factory.CreateUser(t, "guest@example.com")
	listingUID := factory.CreateListing(t, hostUID)

	t.Run("create and read", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		booking := models.Booking{
			UID:        uuid.New().String(),
			ListingUID: listingUID,
			UserUID:    guestUID,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, 6),
			Status:     models.BookingStatusPending,
			CreatedAt:  time.Now().UTC(),
		}

		uid, err := storage.CreateBooking(ctx, booking)
		require.NoError(t, err)

		got, err := storage.ReadBooking(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, got.Status)
		assert.Equal(t, guestUID, got.UserUID)
		assert.True(t, got.StartDate.Equal(start))
	})

	t.Run("booking for unknown listing", func(t *testing.T) {
		booking := models.Booking{
			UID:        uuid.New().String(),
			ListingUID: uuid.New().String(),
			UserUID:    guestUID,
			StartDate:  time.Now().UTC(),
			EndDate:    time.Now().UTC().AddDate(0, 0, 3),
			Status:     models.BookingStatusPending,
			CreatedAt:  time.Now().UTC(),
		}

		_, err := storage.CreateBooking(ctx, booking)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("update dates and status", func(t *testing.T) {
		bookingUID := factory.CreateBooking(t, listingUID, guestUID, models.BookingStatusPending)

		newStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		count, err := storage.UpdateBooking(ctx, models.Booking{
			UID:       bookingUID,
			StartDate: newStart,
			EndDate:   newStart.AddDate(0, 0, 4),
			Status:    models.BookingStatusConfirmed,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := storage.ReadBooking(ctx, bookingUID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, got.Status)
		assert.True(t, got.StartDate.Equal(newStart))
	})

	t.Run("remove booking", func(t *testing.T) {
		bookingUID := factory.CreateBooking(t, listingUID, guestUID, models.BookingStatusCanceled)

		count, err := storage.RemoveBooking(ctx, bookingUID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = storage.RemoveBooking(ctx, bookingUID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestStorage_ListListings(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	for range 5 {
		factory.CreateListing(t, hostUID)
	}

	got, err := storage.ListListings(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = storage.ListListings(ctx, 10, 4)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	count, err := storage.CountListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestStorage_Reviews(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	guestUID := factory.CreateUser(t, "guest@example.com")
	listingUID := factory.CreateListing(t, hostUID)

	t.Run("create and list", func(t *testing.T) {
		review := models.Review{
			UID:        uuid.New().String(),
			ListingUID: listingUID,
			UserUID:    guestUID,
			Rating:     4,
			Comment:    "Great stay, would come back",
			CreatedAt:  time.Now().UTC(),
		}

		_, err := storage.CreateReview(ctx, review)
		require.NoError(t, err)

		got, err := storage.ListReviews(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].Rating)
		assert.Equal(t, review.Comment, got[0].Comment)
	})

	t.Run("review for unknown user", func(t *testing.T) {
		review := models.Review{
			UID:        uuid.New().String(),
			ListingUID: listingUID,
			UserUID:    uuid.New().String(),
			Rating:     3,
			Comment:    "Ghost reviewer",
			CreatedAt:  time.Now().UTC(),
		}

		_, err := storage.CreateReview(ctx, review)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestStorage_RemoveAll(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	hostUID := factory.CreateUser(t, "host@example.com")
	guestUID := factory.CreateUser(t, "guest@example.com")
	listingUID := factory.CreateListing(t, hostUID)
	factory.CreateBooking(t, listingUID, guestUID, models.BookingStatusPending)
	factory.CreateReview(t, listingUID, guestUID, 5)

	// Очистка идёт от зависимых таблиц к независимым
	n, err := storage.RemoveAllReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = storage.RemoveAllBookings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = storage.RemoveAllListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = storage.RemoveAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := storage.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
