package review

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/pkg/apperrors"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

var testMetrics = metrics.New("review_service_test")

type mockRepo struct {
	createCalls int
	listCalls   int
	reviews     []*model.Review
}

func (m *mockRepo) Create(_ context.Context, r *model.Review) error {
	m.createCalls++
	r.ID = uuid.New()
	m.reviews = append([]*model.Review{r}, m.reviews...)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*model.Review, error) {
	m.listCalls++
	return m.reviews, nil
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, testMetrics, zerolog.Nop())
}

func validReview() *model.CreateReviewRequest {
	return &model.CreateReviewRequest{
		Name:   "Asha Rao",
		Rating: 5,
		Text:   "The reading was spot on, thank you!",
	}
}

func TestCreateRejectsInvalidReviews(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateReviewRequest)
		field  string
	}{
		{"rating too high", func(r *model.CreateReviewRequest) { r.Rating = 6 }, "rating"},
		{"rating missing", func(r *model.CreateReviewRequest) { r.Rating = 0 }, "rating"},
		{"name blank after trim", func(r *model.CreateReviewRequest) { r.Name = "   " }, "name"},
		{"text blank after trim", func(r *model.CreateReviewRequest) { r.Text = "  " }, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := newTestService(repo)

			req := validReview()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))
			assert.Contains(t, apperrors.As(err).Fields, tt.field)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestCreatePersistsTrimmedReview(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	review, err := svc.Create(context.Background(), &model.CreateReviewRequest{
		Name:   "  Asha Rao  ",
		Rating: 4,
		Text:   "  Very helpful session.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", review.Name)
	assert.Equal(t, "Very helpful session.", review.Text)
	assert.Equal(t, 4, review.Rating)
	assert.NotEqual(t, uuid.Nil, review.ID)
}

func TestListServesFromCache(t *testing.T) {
	repo := &mockRepo{reviews: []*model.Review{{Name: "Asha Rao", Rating: 5, Text: "Great"}}}
	svc := newTestService(repo)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls, "second call must be served from cache")
}

func TestCreateInvalidatesListCache(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	_, err = svc.Create(context.Background(), validReview())
	require.NoError(t, err)

	reviews, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls, "create must drop the cached feed")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Asha Rao", reviews[0].Name)
}
