package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/internal/service/notification"
)

// Handler exposes the notification relay. Its wire contract is fixed: 200
// with a result body for any well-formed payload (delivery failures are
// reported inside the body, never as an HTTP error), 500 with {"error"}
// only when the payload cannot be parsed.
type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SendBookingNotification(c *gin.Context) {
	var payload model.BookingNotification
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Notify(c.Request.Context(), &payload)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	{
		notifications.POST("/booking", h.SendBookingNotification)
	}
}
