package review

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/internal/repository"
	"github.com/cosmoracle/booking-api/pkg/apperrors"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

const (
	listCacheKey = "reviews"
	listCacheTTL = time.Minute
)

// Service handles testimonial submission and the carousel feed. The feed is
// read far more often than it changes, so List is memoized briefly.
type Service struct {
	repo     repository.ReviewRepository
	cache    *gocache.Cache
	metrics  *metrics.Metrics
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewService(repo repository.ReviewRepository, m *metrics.Metrics, logger zerolog.Logger) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Service{
		repo:     repo,
		cache:    gocache.New(listCacheTTL, 5*time.Minute),
		metrics:  m,
		validate: v,
		logger:   logger,
	}
}

// Create validates and persists one testimonial, then invalidates the feed.
func (s *Service) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)

	if err := s.validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, apperrors.Internal(err)
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = reviewFieldMessage(fe)
		}
		return nil, apperrors.ValidationFields("please correct the highlighted fields", fields)
	}

	review := &model.Review{
		Name:   req.Name,
		Rating: req.Rating,
		Text:   req.Text,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperrors.Persistence(err)
	}

	s.cache.Delete(listCacheKey)
	s.metrics.ReviewsCreated.Inc()
	return review, nil
}

// List returns reviews newest-first, serving from cache when fresh.
func (s *Service) List(ctx context.Context) ([]*model.Review, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.Review), nil
	}

	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	s.cache.Set(listCacheKey, reviews, listCacheTTL)
	return reviews, nil
}

func reviewFieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		return "Name is required"
	case "Rating":
		return "Rating must be between 1 and 5"
	case "Text":
		if fe.Tag() == "max" {
			return "Review must be at most 1000 characters"
		}
		return "Review text is required"
	}
	return "Invalid value for " + fe.Field()
}
