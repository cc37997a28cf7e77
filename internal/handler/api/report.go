package api

import (
	"net/http"

	resdto "fuelpos/internal/handler/dto/response"
	"fuelpos/internal/handler/httperr"
	"fuelpos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	saleQueries queries.SaleQueries
}

func NewReportHandler(saleQueries queries.SaleQueries) *ReportHandler {
	return &ReportHandler{
		saleQueries: saleQueries,
	}
}

// SalesReport filters by query parameters; absent parameters are
// unconstrained, a malformed uuid is a client error.
func (h *ReportHandler) SalesReport(c *gin.Context) {
	var filter queries.SaleReportFilter

	if raw, ok := c.GetQuery("pump_id"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pump_id filter")
			return
		}
		filter.PumpID = &id
	}
	if raw, ok := c.GetQuery("attendant_id"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid attendant_id filter")
			return
		}
		filter.AttendantID = &id
	}
	if raw, ok := c.GetQuery("shift_id"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shift_id filter")
			return
		}
		filter.ShiftID = &id
	}
	if raw, ok := c.GetQuery("mobile_no"); ok && raw != "" {
		filter.MobileNo = &raw
	}

	rows, err := h.saleQueries.Report(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.Success(rows))
}

func (h *ReportHandler) FilterOptions(c *gin.Context) {
	opts, err := h.saleQueries.FilterOptions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.Success(opts))
}
