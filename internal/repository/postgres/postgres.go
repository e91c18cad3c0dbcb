package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/cosmoracle/booking-api/internal/repository"
)

type bookingRepository struct {
	db *sqlx.DB
}

type reviewRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}
