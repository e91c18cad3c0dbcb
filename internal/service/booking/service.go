package booking

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/internal/repository"
	"github.com/cosmoracle/booking-api/internal/service/notification"
	"github.com/cosmoracle/booking-api/internal/storage"
	"github.com/cosmoracle/booking-api/pkg/apperrors"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

// Service runs the booking submission workflow: schema validation, artifact
// upload, record insertion, then a best-effort notification dispatch.
type Service struct {
	repo     repository.BookingRepository
	store    storage.ObjectStore
	notifier notification.Service
	metrics  *metrics.Metrics
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewService(
	repo repository.BookingRepository,
	store storage.ObjectStore,
	notifier notification.Service,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Service {
	v := validator.New()
	// Report violations under the form field names the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Service{
		repo:     repo,
		store:    store,
		notifier: notifier,
		metrics:  m,
		validate: v,
		logger:   logger,
	}
}

// Submit validates user input, stores the payment screenshot, persists the
// booking and fires the notification relay. Validation happens entirely
// before any storage or database call; the screenshot is mandatory and an
// upload failure aborts the submission. Only the notification step is
// non-fatal.
func (s *Service) Submit(ctx context.Context, req *model.CreateBookingRequest, artifact *model.BookingArtifact) (*model.Booking, error) {
	start := time.Now()

	trimRequest(req)
	if err := s.validateRequest(req); err != nil {
		s.metrics.BookingsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}
	if err := validateArtifact(artifact); err != nil {
		s.metrics.BookingsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	key := storage.GenerateKey(artifact.Filename)
	screenshotURL, err := s.store.Put(ctx, key, artifact.ContentType, artifact.Content)
	if err != nil {
		s.metrics.BookingsRejected.WithLabelValues("upload").Inc()
		s.metrics.ArtifactUploads.WithLabelValues("failed").Inc()
		return nil, apperrors.Upload(err)
	}
	s.metrics.ArtifactUploads.WithLabelValues("ok").Inc()
	s.metrics.ArtifactBytes.Add(float64(len(artifact.Content)))

	booking := &model.Booking{
		FullName:             req.FullName,
		Gender:               req.Gender,
		Phone:                req.Phone,
		DateOfBirth:          req.DateOfBirth,
		TimeOfBirth:          req.TimeOfBirth,
		PlaceOfBirth:         req.PlaceOfBirth,
		QuestionConcern:      req.QuestionConcern,
		PreferredPlan:        req.PreferredPlan,
		PaymentScreenshotURL: &screenshotURL,
		TransactionNumber:    model.DefaultTransactionNo,
		Status:               model.BookingStatusPending,
	}
	if booking.TimeOfBirth == "" {
		booking.TimeOfBirth = model.DefaultTimeOfBirth
	}
	if booking.PlaceOfBirth == "" {
		booking.PlaceOfBirth = model.DefaultPlaceOfBirth
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.metrics.BookingsRejected.WithLabelValues("persistence").Inc()
		return nil, apperrors.Persistence(err)
	}

	// Best-effort: the relay never blocks the booking outcome.
	result := s.notifier.Notify(ctx, &model.BookingNotification{
		FullName:        booking.FullName,
		Phone:           booking.Phone,
		PreferredPlan:   booking.PreferredPlan,
		DateOfBirth:     booking.DateOfBirth,
		QuestionConcern: booking.QuestionConcern,
	})
	s.logger.Info().
		Str("booking_id", booking.ID.String()).
		Bool("email_sent", result.EmailSent).
		Msg("booking notification dispatched")

	s.metrics.BookingsSubmitted.Inc()
	s.metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	return booking, nil
}

// Get returns a single booking, for the confirmation view.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.repo.Get(ctx, id)
}

// List returns all bookings newest-first, for the admin table and export.
func (s *Service) List(ctx context.Context) ([]*model.Booking, error) {
	return s.repo.List(ctx)
}

func (s *Service) validateRequest(req *model.CreateBookingRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Internal(err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperrors.ValidationFields("please correct the highlighted fields", fields)
}

func trimRequest(req *model.CreateBookingRequest) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.PlaceOfBirth = strings.TrimSpace(req.PlaceOfBirth)
	req.QuestionConcern = strings.TrimSpace(req.QuestionConcern)
	req.PreferredPlan = strings.TrimSpace(req.PreferredPlan)
}

// validateArtifact enforces the payment-proof policy: a screenshot is
// mandatory, must be a JPG or PNG, and may not exceed 5 MiB.
func validateArtifact(artifact *model.BookingArtifact) error {
	if artifact == nil || len(artifact.Content) == 0 {
		return apperrors.ValidationFields("payment screenshot is required",
			map[string]string{"payment_screenshot": "Payment screenshot is required"})
	}
	if _, ok := model.AllowedArtifactTypes[artifact.ContentType]; !ok {
		return apperrors.ValidationFields(
			fmt.Sprintf("unsupported screenshot type %q: please upload a JPG or PNG file", artifact.ContentType),
			map[string]string{"payment_screenshot": "Please upload a JPG or PNG file"})
	}
	size := artifact.Size
	if size <= 0 {
		size = int64(len(artifact.Content))
	}
	if size > model.MaxArtifactSize {
		return apperrors.ValidationFields(
			fmt.Sprintf("screenshot is %d bytes: file size must be less than 5MB", size),
			map[string]string{"payment_screenshot": "File size must be less than 5MB"})
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FullName":
		switch fe.Tag() {
		case "min", "required":
			return "Name must be at least 2 characters"
		case "max":
			return "Name must be at most 100 characters"
		}
	case "Gender":
		return "Please select your gender"
	case "Phone":
		return "Enter a valid phone number"
	case "DateOfBirth":
		if fe.Tag() == "required" {
			return "Date of birth is required"
		}
		return "Enter a valid date of birth"
	case "TimeOfBirth":
		return "Enter a valid time of birth"
	case "PlaceOfBirth":
		return "Place of birth is too long"
	case "QuestionConcern":
		if fe.Tag() == "max" {
			return "Concern must be at most 1000 characters"
		}
		return "Please describe your concern (min 10 characters)"
	case "PreferredPlan":
		return "Please select a plan"
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
