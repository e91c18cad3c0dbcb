package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/pkg/apperrors"
)

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, full_name, gender, phone,
			date_of_birth, time_of_birth, place_of_birth,
			question_concern, preferred_plan,
			payment_screenshot_url, transaction_number,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.FullName,
		booking.Gender,
		booking.Phone,
		booking.DateOfBirth,
		booking.TimeOfBirth,
		booking.PlaceOfBirth,
		booking.QuestionConcern,
		booking.PreferredPlan,
		booking.PaymentScreenshotURL,
		booking.TransactionNumber,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, full_name, gender, phone,
			   date_of_birth, time_of_birth, place_of_birth,
			   question_concern, preferred_plan,
			   payment_screenshot_url, transaction_number,
			   status, created_at
		FROM bookings
		WHERE id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("booking")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT id, full_name, gender, phone,
			   date_of_birth, time_of_birth, place_of_birth,
			   question_concern, preferred_plan,
			   payment_screenshot_url, transaction_number,
			   status, created_at
		FROM bookings
		ORDER BY created_at DESC
	`
	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
