package response

import (
	"github.com/google/uuid"
)

type OpenShiftResponse struct {
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	PumpShiftID uuid.UUID `json:"pump_shift_id"`
}

func NewOpenShiftResponse(pumpShiftID uuid.UUID) OpenShiftResponse {
	return OpenShiftResponse{
		Status:      "success",
		Message:     "Shift opened successfully",
		PumpShiftID: pumpShiftID,
	}
}

type CloseShiftResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewCloseShiftResponse() CloseShiftResponse {
	return CloseShiftResponse{
		Status:  "success",
		Message: "Shift closed successfully",
	}
}
