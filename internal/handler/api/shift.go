package api

import (
	"errors"
	"net/http"

	reqdto "fuelpos/internal/handler/dto/request"
	resdto "fuelpos/internal/handler/dto/response"
	"fuelpos/internal/handler/httperr"
	"fuelpos/internal/handler/middleware"
	"fuelpos/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	shiftCommands commands.ShiftCommands
}

func NewShiftHandler(shiftCommands commands.ShiftCommands) *ShiftHandler {
	return &ShiftHandler{
		shiftCommands: shiftCommands,
	}
}

func (h *ShiftHandler) OpenShift(c *gin.Context) {
	var req reqdto.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	attendantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user id"), "User not authenticated")
		return
	}

	pumpShiftID, err := h.shiftCommands.OpenShift(c.Request.Context(), req, attendantID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidMeterReading):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid opening meter reading")
		case errors.Is(err, commands.ErrPumpNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pump not found")
		case errors.Is(err, commands.ErrPumpInactive):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Pump is inactive")
		case errors.Is(err, commands.ErrShiftTemplateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shift template not found")
		case errors.Is(err, commands.ErrShiftAlreadyOpen):
			httperr.AbortWithError(c, http.StatusConflict, err, "Shift is already open for this pump")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewOpenShiftResponse(pumpShiftID))
}

func (h *ShiftHandler) CloseShift(c *gin.Context) {
	var req reqdto.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	attendantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user id"), "User not authenticated")
		return
	}

	err := h.shiftCommands.CloseShift(c.Request.Context(), req, attendantID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidMeterReading):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid closing meter reading")
		case errors.Is(err, commands.ErrMeterReadingRegression):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Closing meter reading cannot be below opening reading")
		case errors.Is(err, commands.ErrPumpShiftNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pump shift not found")
		case errors.Is(err, commands.ErrShiftAlreadyClosed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Shift is already closed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewCloseShiftResponse())
}
