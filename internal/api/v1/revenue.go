package v1

import (
	"net/http"
	"strconv"

	"github.com/coursebill/coursebill/internal/api/dto"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/service"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	service service.RevenueService
	log     *logger.Logger
}

func NewRevenueHandler(service service.RevenueService, log *logger.Logger) *RevenueHandler {
	return &RevenueHandler{service: service, log: log}
}

func (h *RevenueHandler) GetReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("year must be an integer").
			Mark(ierr.ErrValidation))
		return
	}

	req := dto.RevenueReportRequest{
		Year:  year,
		Mode:  types.RecognitionMode(c.DefaultQuery("mode", string(types.RecognitionModeCash))),
		Debug: c.Query("debug") == "true",
	}

	resp, err := h.service.GetReport(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
