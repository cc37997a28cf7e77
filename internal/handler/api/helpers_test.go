//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuelpos/internal/domain/payment"
	"fuelpos/internal/domain/user"
	reqdto "fuelpos/internal/handler/dto/request"
	"fuelpos/internal/usecase/commands"
	"fuelpos/internal/usecase/queries"
)

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "response body: %s", rec.Body.String())
}

func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rec.Code, "response body: %s", rec.Body.String())

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "error", body.Status)
	if expectedMsg != "" {
		assert.Contains(t, body.Message, expectedMsg)
	}
}

// asUser fakes the auth middleware for handler-level tests.
func asUser(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type mockAuthCommands struct {
	mock.Mock
}

func (m *mockAuthCommands) Login(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*commands.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShiftCommands struct {
	mock.Mock
}

func (m *mockShiftCommands) OpenShift(ctx context.Context, req reqdto.OpenShiftRequest, attendantID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, req, attendantID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockShiftCommands) CloseShift(ctx context.Context, req reqdto.CloseShiftRequest, attendantID uuid.UUID) error {
	args := m.Called(ctx, req, attendantID)
	return args.Error(0)
}

type mockPaymentCommands struct {
	mock.Mock
}

func (m *mockPaymentCommands) Initiate(ctx context.Context, mobileNo string, amount decimal.Decimal) (*payment.Transaction, error) {
	args := m.Called(ctx, mobileNo, amount)
	if v := args.Get(0); v != nil {
		return v.(*payment.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentCommands) Resolve(ctx context.Context, transactionID uuid.UUID) (*payment.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if v := args.Get(0); v != nil {
		return v.(*payment.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSaleCommands struct {
	mock.Mock
}

func (m *mockSaleCommands) RecordSale(ctx context.Context, pumpShiftID uuid.UUID, saleRef string, attendantID uuid.UUID, amount decimal.Decimal, resolved *payment.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, pumpShiftID, saleRef, attendantID, amount, resolved)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockUserQueries struct {
	mock.Mock
}

func (m *mockUserQueries) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.(*queries.AuthorizedUserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserQueries) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*queries.UserView), args.Error(1)
	}
	return nil, args.Error(1)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
