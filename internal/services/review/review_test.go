package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/travel-booking/internal/models"
	"github.com/magabrotheeeer/travel-booking/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateReview(ctx context.Context, review models.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListReviews(ctx context.Context, limit, offset int) ([]*models.Review, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Review), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReviewService_Create(t *testing.T) {
	req := models.DummyReview{
		ListingID: "3a77b4c1-54cd-4b58-8f00-333333333333",
		UserID:    "2b1f8a34-33aa-4c9f-9ad2-111111111111",
		Rating:    4,
		Comment:   "Great stay, would come back",
	}

	t.Run("success create", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r models.Review) bool {
			return r.ListingUID == req.ListingID &&
				r.UserUID == req.UserID &&
				r.Rating == req.Rating &&
				r.UID != ""
		})).Return("uid", nil).Once()

		service := NewReviewService(repo, newNoopLogger())

		review, err := service.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, req.Comment, review.Comment)
		assert.False(t, review.CreatedAt.IsZero())

		repo.AssertExpectations(t)
	})

	t.Run("unknown listing or user", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateReview", mock.Anything, mock.Anything).
			Return("", repository.ErrInvalidReference).Once()

		service := NewReviewService(repo, newNoopLogger())

		review, err := service.Create(context.Background(), req)
		assert.Nil(t, review)
		assert.ErrorIs(t, err, repository.ErrInvalidReference)
	})
}

func TestReviewService_List(t *testing.T) {
	repo := new(RepoMock)
	reviews := []*models.Review{
		{UID: "8e42f6bb-11bb-4c9f-9ad2-666666666666", Rating: 5},
	}
	repo.On("ListReviews", mock.Anything, 100, 0).Return(reviews, nil).Once()

	service := NewReviewService(repo, newNoopLogger())

	got, err := service.List(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
