package v1

import (
	"net/http"
	"strconv"

	"github.com/coursebill/coursebill/internal/api/dto"
	"github.com/coursebill/coursebill/internal/domain/booking"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/service"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	resp, err := h.service.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := booking.Filter{
		BookingStatus: types.BookingStatus(c.Query("status")),
		OfferID:       c.Query("offer_id"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("year must be an integer").
				Mark(ierr.ErrValidation))
			return
		}
		filter.Year = year
	}

	resp, err := h.service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ImportBookings(c *gin.Context) {
	var req dto.ImportBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ImportBookings(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) IssueInvoice(c *gin.Context) {
	resp, err := h.service.IssueInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) StornoBooking(c *gin.Context) {
	var req dto.StornoBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.StornoBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
