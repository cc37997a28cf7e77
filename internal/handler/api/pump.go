package api

import (
	"net/http"

	resdto "fuelpos/internal/handler/dto/response"
	"fuelpos/internal/handler/httperr"
	"fuelpos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PumpHandler struct {
	pumpQueries  queries.PumpQueries
	shiftQueries queries.ShiftTemplateQueries
}

func NewPumpHandler(pumpQueries queries.PumpQueries, shiftQueries queries.ShiftTemplateQueries) *PumpHandler {
	return &PumpHandler{
		pumpQueries:  pumpQueries,
		shiftQueries: shiftQueries,
	}
}

// ListPumps returns the active pumps with their open-shift state, which the
// POS screen uses to decide between the open and close actions.
func (h *PumpHandler) ListPumps(c *gin.Context) {
	pumps, err := h.pumpQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if pumps == nil {
		pumps = []*queries.PumpView{}
	}
	c.JSON(http.StatusOK, resdto.Success(pumps))
}

func (h *PumpHandler) ListShiftTemplates(c *gin.Context) {
	templates, err := h.shiftQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if templates == nil {
		templates = []*queries.ShiftTemplateView{}
	}
	c.JSON(http.StatusOK, resdto.Success(templates))
}
