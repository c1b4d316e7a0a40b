package v1

import (
	"net/http"

	"github.com/coursebill/coursebill/internal/api/dto"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/service"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	service service.OfferService
	log     *logger.Logger
}

func NewOfferHandler(service service.OfferService, log *logger.Logger) *OfferHandler {
	return &OfferHandler{service: service, log: log}
}

func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateOffer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *OfferHandler) GetOfferByID(c *gin.Context) {
	resp, err := h.service.GetOfferByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *OfferHandler) GetAllOffers(c *gin.Context) {
	resp, err := h.service.GetAllOffers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
