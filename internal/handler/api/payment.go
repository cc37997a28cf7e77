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

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	saleCommands    commands.SaleCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, saleCommands commands.SaleCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		saleCommands:    saleCommands,
	}
}

// StkPush runs the whole simulated checkout in one request: log the push,
// wait out the callback, then record the sale with the drawn outcome.
func (h *PaymentHandler) StkPush(c *gin.Context) {
	var req reqdto.StkPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields for STK Push")
		return
	}

	attendantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user id"), "User not authenticated")
		return
	}

	ctx := c.Request.Context()

	transaction, err := h.paymentCommands.Initiate(ctx, req.MobileNo, req.Amount)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidPayment) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid mobile number or amount")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	resolved, err := h.paymentCommands.Resolve(ctx, transaction.ID())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	saleID, err := h.saleCommands.RecordSale(ctx, req.PumpShiftID, req.SaleRef, attendantID, req.Amount, resolved)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPumpShiftNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pump shift ID")
		case errors.Is(err, commands.ErrDuplicateSaleRef):
			httperr.AbortWithError(c, http.StatusConflict, err, "Sale reference already recorded")
		case errors.Is(err, commands.ErrInvalidSale):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	outcome, err := resolved.Outcome()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.NewStkPushResponse(resolved, outcome, saleID))
}
