package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmoracle/booking-api/internal/handler"
	"github.com/cosmoracle/booking-api/internal/service/booking"
	"github.com/cosmoracle/booking-api/internal/service/export"
	"github.com/cosmoracle/booking-api/pkg/metrics"
)

// Handler serves the staff dashboard data. The dashboard is deliberately
// unprotected: the deployment fronts it with network-level access control.
type Handler struct {
	bookingSvc *booking.Service
	metrics    *metrics.Metrics
}

func NewHandler(bookingSvc *booking.Service, m *metrics.Metrics) *Handler {
	return &Handler{bookingSvc: bookingSvc, metrics: m}
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.List(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	}))
}

// ExportBookings streams the CSV download. Zero bookings is a refusal, not
// an empty file.
func (h *Handler) ExportBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.List(c.Request.Context())
	if err != nil {
		h.metrics.CSVExports.WithLabelValues("failed").Inc()
		handler.Error(c, err)
		return
	}

	data, err := export.BookingsCSV(bookings)
	if err != nil {
		h.metrics.CSVExports.WithLabelValues("refused").Inc()
		handler.Error(c, err)
		return
	}

	h.metrics.CSVExports.WithLabelValues("ok").Inc()
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/admin/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/export", h.ExportBookings)
	}
}
