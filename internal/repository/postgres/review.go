package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosmoracle/booking-api/internal/model"
)

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, name, rating, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	review.ID = uuid.New()
	review.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.Name,
		review.Rating,
		review.Text,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	query := `
		SELECT id, name, rating, text, created_at
		FROM reviews
		ORDER BY created_at DESC
	`
	var reviews []*model.Review
	if err := r.db.SelectContext(ctx, &reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
