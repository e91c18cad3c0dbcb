package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmoracle/booking-api/internal/model"
)

type stubService struct {
	calls int
	last  *model.BookingNotification
}

func (s *stubService) Notify(_ context.Context, n *model.BookingNotification) *model.NotificationResult {
	s.calls++
	s.last = n
	return &model.NotificationResult{
		Success:     true,
		Message:     "Notification processed successfully",
		WhatsAppURL: "https://wa.me/916230016403?text=hello",
		EmailTo:     "niyati.nivriti@gmail.com",
	}
}

func setupRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestSendBookingNotification(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	body := `{"fullName":"Asha Rao","phone":"9876543210","preferredPlan":"Quick Clarity - ₹221"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "Asha Rao", svc.last.FullName)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "https://wa.me/916230016403?text=hello", result["whatsappUrl"])
	assert.Equal(t, false, result["emailSent"])
}

func TestSendBookingNotificationMalformedBody(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/booking", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, svc.calls)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result, "error")
}
