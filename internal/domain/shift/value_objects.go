package shift

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeMeterReading   = errors.New("meter reading cannot be negative")
	ErrMeterReadingRegression = errors.New("closing meter reading cannot be below opening reading")
)

// MeterReading is a cumulative litre counter on a pump. Readings only ever
// move forward over the life of a pump.
type MeterReading struct {
	value decimal.Decimal
}

func NewMeterReading(value decimal.Decimal) (MeterReading, error) {
	if value.IsNegative() {
		return MeterReading{}, ErrNegativeMeterReading
	}
	return MeterReading{value: value}, nil
}

func NewMeterReadingFromString(s string) (MeterReading, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return MeterReading{}, ErrNegativeMeterReading
	}
	return NewMeterReading(d)
}

func (m MeterReading) Value() decimal.Decimal {
	return m.value
}

func (m MeterReading) Before(other MeterReading) bool {
	return m.value.LessThan(other.value)
}

func (m MeterReading) String() string {
	return m.value.String()
}
