package booking

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmoracle/booking-api/internal/handler"
	"github.com/cosmoracle/booking-api/internal/model"
	"github.com/cosmoracle/booking-api/internal/service/booking"
)

// artifactField is the multipart form field carrying the payment screenshot.
const artifactField = "payment_screenshot"

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking accepts the multipart booking form and runs the submission
// workflow. Missing or invalid artifacts are rejected by the service with
// field-level messages, so the handler passes through whatever it received.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	artifact, err := h.readArtifact(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("failed to read payment screenshot"))
		return
	}

	created, err := h.service.Submit(c.Request.Context(), &req, artifact)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	booking, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(booking))
}

// ListPlans serves the static consultation catalog.
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.Plans()))
}

// GetPlan resolves an incoming link parameter to a catalog entry, used to
// pre-select a plan on the booking form.
func (h *Handler) GetPlan(c *gin.Context) {
	plan, ok := model.PlanByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("plan not found"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(plan))
}

// readArtifact extracts the uploaded screenshot. A missing file is not an
// error here: the service owns the artifact-required policy. The read is
// capped just past the size bound so an oversized upload is still rejected
// with a descriptive message rather than buffered in full.
func (h *Handler) readArtifact(c *gin.Context) (*model.BookingArtifact, error) {
	fh, err := c.FormFile(artifactField)
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, model.MaxArtifactSize+1))
	if err != nil {
		return nil, err
	}

	return &model.BookingArtifact{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     content,
	}, nil
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
	}

	plans := r.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
	}
}
