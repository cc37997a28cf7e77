package payment

import (
	"fmt"
	"math/rand/v2"
)

// Outcome is the terminal result of a simulated STK push. Every initiated
// transaction resolves to exactly one of these; there is no timeout outcome.
type Outcome string

const (
	OutcomeSuccess           Outcome = "SUCCESS"
	OutcomeInsufficientFunds Outcome = "INSUFFICIENT_FUNDS"
	OutcomeCancelled         Outcome = "CANCELLED"
	OutcomeOtherError        Outcome = "OTHER_ERROR"
)

var allOutcomes = []Outcome{
	OutcomeSuccess,
	OutcomeInsufficientFunds,
	OutcomeCancelled,
	OutcomeOtherError,
}

func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

func (o Outcome) ResultCode() string {
	switch o {
	case OutcomeSuccess:
		return "0"
	case OutcomeInsufficientFunds:
		return "1001"
	case OutcomeCancelled:
		return "1032"
	default:
		return "1000"
	}
}

func (o Outcome) ResultDescription() string {
	switch o {
	case OutcomeSuccess:
		return "The transaction was successful."
	case OutcomeInsufficientFunds:
		return "The customer has insufficient funds in Mpesa account."
	case OutcomeCancelled:
		return "Failed cancelled by customer."
	default:
		return "An error occurred during the transaction."
	}
}

// OutcomePicker draws the settlement outcome for one resolution. Injected so
// tests can force a deterministic draw.
type OutcomePicker interface {
	Pick() Outcome
}

// ReceiptGenerator produces provider receipt numbers for successful
// settlements.
type ReceiptGenerator interface {
	Generate() string
}

type UniformOutcomePicker struct{}

func NewUniformOutcomePicker() *UniformOutcomePicker {
	return &UniformOutcomePicker{}
}

// Pick draws each of the four outcomes with probability 1/4.
func (p *UniformOutcomePicker) Pick() Outcome {
	return allOutcomes[rand.IntN(len(allOutcomes))]
}

type FixedOutcomePicker struct {
	Outcome Outcome
}

func (p *FixedOutcomePicker) Pick() Outcome {
	return p.Outcome
}

type MpesaReceiptGenerator struct{}

func NewMpesaReceiptGenerator() *MpesaReceiptGenerator {
	return &MpesaReceiptGenerator{}
}

func (g *MpesaReceiptGenerator) Generate() string {
	return fmt.Sprintf("NF%d", rand.IntN(900000)+100000)
}

type Services struct {
	Outcomes OutcomePicker
	Receipts ReceiptGenerator
}
