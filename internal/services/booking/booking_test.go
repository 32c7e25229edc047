package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-booking/internal/models"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ReadBooking(ctx context.Context, uid string) (*models.Booking, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *RepoMock) UpdateBooking(ctx context.Context, booking models.Booking) (int, error) {
	args := m.Called(ctx, booking)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveBooking(ctx context.Context, uid string) (int, error) {
	args := m.Called(ctx, uid)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListBookings(ctx context.Context, limit, offset int) ([]*models.Booking, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Booking), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

const (
	ownerUID    = "2b1f8a34-33aa-4c9f-9ad2-111111111111"
	strangerUID = "7f9c24e8-3b2a-4f01-9c1d-222222222222"
	bookingUID  = "5c11d0aa-77aa-4c9f-9ad2-555555555555"
)

func storedBooking() *models.Booking {
	return &models.Booking{
		UID:        bookingUID,
		ListingUID: "3a77b4c1-54cd-4b58-8f00-333333333333",
		UserUID:    ownerUID,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Status:     models.BookingStatusPending,
	}
}

func TestBookingService_Create(t *testing.T) {
	req := models.DummyBooking{
		ListingID: "3a77b4c1-54cd-4b58-8f00-333333333333",
		UserID:    ownerUID,
		StartDate: "2026-09-01T00:00:00Z",
		EndDate:   "2026-09-07T00:00:00Z",
	}

	t.Run("default status is pending", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
			return b.Status == models.BookingStatusPending && b.UID != ""
		})).Return(bookingUID, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		booking, err := service.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, booking.Status)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.StartDate)

		repo.AssertExpectations(t)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateBooking", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
			return b.Status == models.BookingStatusConfirmed
		})).Return(bookingUID, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		confirmed := req
		confirmed.Status = models.BookingStatusConfirmed

		booking, err := service.Create(context.Background(), confirmed)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

		repo.AssertExpectations(t)
	})

	t.Run("invalid date", func(t *testing.T) {
		repo := new(RepoMock)
		service := NewBookingService(repo, newNoopLogger())

		bad := req
		bad.StartDate = "not-a-date"

		booking, err := service.Create(context.Background(), bad)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrInvalidDate)

		repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})
}

func TestBookingService_Update(t *testing.T) {
	req := models.DummyBookingUpdate{
		UserID:    ownerUID,
		StartDate: "2026-10-01T00:00:00Z",
		EndDate:   "2026-10-05T00:00:00Z",
		Status:    models.BookingStatusConfirmed,
	}

	t.Run("owner can update", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadBooking", mock.Anything, bookingUID).Return(storedBooking(), nil).Once()
		repo.On("UpdateBooking", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
			return b.Status == models.BookingStatusConfirmed &&
				b.StartDate.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
		})).Return(1, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		count, err := service.Update(context.Background(), bookingUID, req)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		repo.AssertExpectations(t)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadBooking", mock.Anything, bookingUID).Return(storedBooking(), nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		foreign := req
		foreign.UserID = strangerUID

		count, err := service.Update(context.Background(), bookingUID, foreign)
		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, ErrNotOwner)

		repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})

	t.Run("booking not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadBooking", mock.Anything, bookingUID).
			Return(nil, repository.ErrNotFound).Once()

		service := NewBookingService(repo, newNoopLogger())

		count, err := service.Update(context.Background(), bookingUID, req)
		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBookingService_Patch(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadBooking", mock.Anything, bookingUID).Return(storedBooking(), nil).Once()
		repo.On("UpdateBooking", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
			// Статус изменился, даты остались прежними
			return b.Status == models.BookingStatusCanceled &&
				b.StartDate.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) &&
				b.EndDate.Equal(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
		})).Return(1, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		status := models.BookingStatusCanceled
		count, err := service.Patch(context.Background(), bookingUID, models.PatchBooking{
			UserID: ownerUID,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		repo.AssertExpectations(t)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadBooking", mock.Anything, bookingUID).Return(storedBooking(), nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		status := models.BookingStatusCanceled
		count, err := service.Patch(context.Background(), bookingUID, models.PatchBooking{
			UserID: strangerUID,
			Status: &status,
		})
		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, ErrNotOwner)

		repo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything)
	})
}

func TestBookingService_Remove(t *testing.T) {
	t.Run("success remove", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("RemoveBooking", mock.Anything, bookingUID).Return(1, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		count, err := service.Remove(context.Background(), bookingUID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("RemoveBooking", mock.Anything, bookingUID).Return(0, nil).Once()

		service := NewBookingService(repo, newNoopLogger())

		count, err := service.Remove(context.Background(), bookingUID)
		assert.Equal(t, 0, count)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
