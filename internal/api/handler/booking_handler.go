package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealfourwheel/marketplace-api/internal/api/metrics"
	"github.com/dealfourwheel/marketplace-api/internal/core/ports"
)

// BookingHandler handles booking creation and listing.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /bookings. The buyer identity is the authenticated
// caller's email from the token, never a body field. An optional
// Idempotency-Key header suppresses duplicate submissions.
//
// @Summary      Place a booking on a product
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createBookingRequest  true   "Booking details"
// @Success      201              {object}  createBookingResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Price:           req.Price,
		BuyerName:       req.BuyerName,
		BuyerEmail:      email,
		Phone:           req.Phone,
		MeetingLocation: req.MeetingLocation,
		IdempotencyKey:  c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	if result.Duplicate {
		metrics.BookingsDedupTotal.WithLabelValues("hit").Inc()
		return c.JSON(http.StatusOK, createBookingResponse{Duplicate: true})
	}

	metrics.BookingsCreatedTotal.Inc()
	metrics.BookingsDedupTotal.WithLabelValues("miss").Inc()
	return c.JSON(http.StatusCreated, createBookingResponse{Booking: result.Booking})
}

// List handles GET /bookings — globally listable, no per-user filtering.
//
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}
