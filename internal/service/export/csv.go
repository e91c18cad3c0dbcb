package export

import (
	"strings"
	"time"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/pkg/apperrors"
)

// csvHeader is the fixed export header, one column per booking attribute.
var csvHeader = []string{
	"Name",
	"Gender",
	"Phone",
	"Date of Birth",
	"Time of Birth",
	"Place of Birth",
	"Question/Concern",
	"Plan",
	"Status",
	"Payment Screenshot",
	"Created At",
}

// BookingsCSV renders the admin export: a header row plus one row per
// booking, every field double-quoted with embedded quotes doubled, rows
// joined by newlines with no trailing newline. An empty booking set is
// refused rather than producing a header-only file.
//
// The all-quoted layout is part of the export contract, which is why this
// does not go through encoding/csv (that writer quotes only when needed).
func BookingsCSV(bookings []*model.Booking) ([]byte, error) {
	if len(bookings) == 0 {
		return nil, apperrors.Validation("no bookings to export")
	}

	rows := make([]string, 0, len(bookings)+1)
	rows = append(rows, strings.Join(csvHeader, ","))

	for _, b := range bookings {
		screenshot := ""
		if b.PaymentScreenshotURL != nil {
			screenshot = *b.PaymentScreenshotURL
		}
		fields := []string{
			b.FullName,
			b.Gender,
			b.Phone,
			b.DateOfBirth,
			b.TimeOfBirth,
			b.PlaceOfBirth,
			b.QuestionConcern,
			b.PreferredPlan,
			string(b.Status),
			screenshot,
			b.CreatedAt.Format(time.RFC3339),
		}
		for i, f := range fields {
			fields[i] = quote(f)
		}
		rows = append(rows, strings.Join(fields, ","))
	}

	return []byte(strings.Join(rows, "\n")), nil
}

// Filename names the download after the export date, e.g.
// cosmoracle-bookings-2026-08-30.csv.
func Filename(now time.Time) string {
	return "cosmoracle-bookings-" + now.Format("2006-01-02") + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
