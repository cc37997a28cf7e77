package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed = errors.New("pump shift is already closed")
)

// PumpShift is one opening-to-closing operating window of a physical pump.
// The only transition is open -> closed; a closed shift never reopens.
type PumpShift struct {
	id                  uuid.UUID
	pumpID              uuid.UUID
	shiftID             uuid.UUID
	openingAttendantID  uuid.UUID
	openingTime         time.Time
	openingMeterReading MeterReading
	closingAttendantID  *uuid.UUID
	closingTime         *time.Time
	closingMeterReading *MeterReading
	closed              bool
}

func NewPumpShift(pumpID, shiftID, attendantID uuid.UUID, opening MeterReading, now time.Time) *PumpShift {
	return &PumpShift{
		id:                  uuid.New(),
		pumpID:              pumpID,
		shiftID:             shiftID,
		openingAttendantID:  attendantID,
		openingTime:         now,
		openingMeterReading: opening,
		closed:              false,
	}
}

func ReconstructPumpShift(
	id, pumpID, shiftID, openingAttendantID uuid.UUID,
	openingTime time.Time,
	openingMeterReading MeterReading,
	closingAttendantID *uuid.UUID,
	closingTime *time.Time,
	closingMeterReading *MeterReading,
	closed bool,
) *PumpShift {
	return &PumpShift{
		id:                  id,
		pumpID:              pumpID,
		shiftID:             shiftID,
		openingAttendantID:  openingAttendantID,
		openingTime:         openingTime,
		openingMeterReading: openingMeterReading,
		closingAttendantID:  closingAttendantID,
		closingTime:         closingTime,
		closingMeterReading: closingMeterReading,
		closed:              closed,
	}
}

// Close records the closing attendant, time and reading. The closing reading
// must not be below the opening reading.
func (s *PumpShift) Close(attendantID uuid.UUID, closing MeterReading, now time.Time) error {
	if s.closed {
		return ErrAlreadyClosed
	}
	if closing.Before(s.openingMeterReading) {
		return ErrMeterReadingRegression
	}

	s.closingAttendantID = &attendantID
	s.closingTime = &now
	s.closingMeterReading = &closing
	s.closed = true
	return nil
}

func (s *PumpShift) IsClosed() bool {
	return s.closed
}

func (s *PumpShift) ID() uuid.UUID                      { return s.id }
func (s *PumpShift) PumpID() uuid.UUID                  { return s.pumpID }
func (s *PumpShift) ShiftID() uuid.UUID                 { return s.shiftID }
func (s *PumpShift) OpeningAttendantID() uuid.UUID      { return s.openingAttendantID }
func (s *PumpShift) OpeningTime() time.Time             { return s.openingTime }
func (s *PumpShift) OpeningMeterReading() MeterReading  { return s.openingMeterReading }
func (s *PumpShift) ClosingAttendantID() *uuid.UUID     { return s.closingAttendantID }
func (s *PumpShift) ClosingTime() *time.Time            { return s.closingTime }
func (s *PumpShift) ClosingMeterReading() *MeterReading { return s.closingMeterReading }
