package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoracle/booking-api/internal/model"
	bookingService "github.com/cosmoracle/booking-api/internal/service/booking"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

var testMetrics = metrics.New("admin_handler_test")

type stubRepo struct {
	bookings []*model.Booking
}

func (s *stubRepo) Create(_ context.Context, b *model.Booking) error {
	b.ID = uuid.New()
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *stubRepo) Get(_ context.Context, _ uuid.UUID) (*model.Booking, error) {
	return nil, nil
}

func (s *stubRepo) List(_ context.Context) ([]*model.Booking, error) {
	return s.bookings, nil
}

type stubStore struct{}

func (stubStore) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	return "/uploads/" + key, nil
}

type stubNotifier struct{}

func (stubNotifier) Notify(_ context.Context, _ *model.BookingNotification) *model.NotificationResult {
	return &model.NotificationResult{Success: true}
}

func setupRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := bookingService.NewService(repo, stubStore{}, stubNotifier{}, testMetrics, zerolog.Nop())
	r := gin.New()
	NewHandler(svc, testMetrics).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func storedBooking(name string) *model.Booking {
	url := "/uploads/1700000000000-abc12345.jpg"
	return &model.Booking{
		ID:                   uuid.New(),
		FullName:             name,
		Gender:               "Female",
		Phone:                "9876543210",
		DateOfBirth:          "1995-04-02",
		TimeOfBirth:          "00:00",
		PlaceOfBirth:         "Not specified",
		QuestionConcern:      "Will I get the new job offer this month?",
		PreferredPlan:        "Quick Clarity - ₹221",
		PaymentScreenshotURL: &url,
		TransactionNumber:    "Screenshot uploaded",
		Status:               model.BookingStatusPending,
		CreatedAt:            time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
	}
}

func TestListBookings(t *testing.T) {
	repo := &stubRepo{bookings: []*model.Booking{storedBooking("Asha Rao"), storedBooking("Ravi Iyer")}}
	r := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Bookings []*model.Booking `json:"bookings"`
			Count    int              `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 2, resp.Data.Count)
	require.Len(t, resp.Data.Bookings, 2)
	assert.Equal(t, "Asha Rao", resp.Data.Bookings[0].FullName)
}

func TestExportBookings(t *testing.T) {
	repo := &stubRepo{bookings: []*model.Booking{storedBooking("Asha Rao")}}
	r := setupRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, `attachment; filename="cosmoracle-bookings-`), disposition)
	assert.True(t, strings.HasSuffix(disposition, `.csv"`), disposition)

	lines := strings.Split(w.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Asha Rao"`)
}

func TestExportBookingsRefusesEmptySet(t *testing.T) {
	r := setupRouter(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "no bookings to export", resp.Message)
}
