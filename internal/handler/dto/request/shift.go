package request

import (
	"github.com/google/uuid"

	"fuelpos/internal/domain/shift"
)

type OpenShiftRequest struct {
	PumpID              uuid.UUID `json:"pump_id" binding:"required"`
	ShiftID             uuid.UUID `json:"shift_id" binding:"required"`
	OpeningMeterReading string    `json:"opening_meter_reading" binding:"required"`
}

func (r OpenShiftRequest) Reading() (shift.MeterReading, error) {
	return shift.NewMeterReadingFromString(r.OpeningMeterReading)
}

type CloseShiftRequest struct {
	PumpShiftID         uuid.UUID `json:"pump_shift_id" binding:"required"`
	ClosingMeterReading string    `json:"closing_meter_reading" binding:"required"`
}

func (r CloseShiftRequest) Reading() (shift.MeterReading, error) {
	return shift.NewMeterReadingFromString(r.ClosingMeterReading)
}
