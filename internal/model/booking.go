package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Artifact size and type bounds for the payment screenshot.
const (
	MaxArtifactSize = 5 << 20 // 5 MiB
)

// AllowedArtifactTypes are the accepted screenshot MIME types.
var AllowedArtifactTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Defaults recorded when optional fields are omitted. Status transitions
// after creation happen out-of-band by staff, never through this API.
const (
	DefaultTimeOfBirth   = "00:00"
	DefaultPlaceOfBirth  = "Not specified"
	DefaultTransactionNo = "Screenshot uploaded"
)

// Booking is one consultation request. Created once on submission,
// never updated or deleted by this system.
type Booking struct {
	ID                   uuid.UUID     `db:"id" json:"id"`
	FullName             string        `db:"full_name" json:"full_name"`
	Gender               string        `db:"gender" json:"gender"`
	Phone                string        `db:"phone" json:"phone"`
	DateOfBirth          string        `db:"date_of_birth" json:"date_of_birth"`
	TimeOfBirth          string        `db:"time_of_birth" json:"time_of_birth"`
	PlaceOfBirth         string        `db:"place_of_birth" json:"place_of_birth"`
	QuestionConcern      string        `db:"question_concern" json:"question_concern"`
	PreferredPlan        string        `db:"preferred_plan" json:"preferred_plan"`
	PaymentScreenshotURL *string       `db:"payment_screenshot_url" json:"payment_screenshot_url"`
	TransactionNumber    string        `db:"transaction_number" json:"transaction_number"`
	Status               BookingStatus `db:"status" json:"status"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
}

// CreateBookingRequest carries the user-entered form fields. The validate
// tags are the single declaration of the submission invariants; the booking
// service both enforces them and derives field-level messages from them.
type CreateBookingRequest struct {
	FullName        string `form:"full_name" json:"full_name" validate:"required,min=2,max=100"`
	Gender          string `form:"gender" json:"gender" validate:"required,oneof=Male Female Other"`
	Phone           string `form:"phone" json:"phone" validate:"required,number,min=10,max=15"`
	DateOfBirth     string `form:"date_of_birth" json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	TimeOfBirth     string `form:"time_of_birth" json:"time_of_birth" validate:"omitempty,datetime=15:04"`
	PlaceOfBirth    string `form:"place_of_birth" json:"place_of_birth" validate:"omitempty,max=255"`
	QuestionConcern string `form:"question_concern" json:"question_concern" validate:"required,min=10,max=1000"`
	PreferredPlan   string `form:"preferred_plan" json:"preferred_plan" validate:"required"`
}

// BookingArtifact is the uploaded payment screenshot as received by the
// handler, before any storage write.
type BookingArtifact struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}
