package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cosmoracle/booking-api/internal/model"
)

// BookingRepository persists consultation requests. Bookings are
// append-mostly: the API creates and reads them, never updates or deletes.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
}

// ReviewRepository persists testimonials, read newest-first.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	List(ctx context.Context) ([]*model.Review, error)
}
