package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bank-mobile-api/internal/application/account"
	"github.com/bank-mobile-api/internal/config"
	"github.com/bank-mobile-api/internal/domain"
	jwtinfra "github.com/bank-mobile-api/internal/infrastructure/jwt"
	"github.com/bank-mobile-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockAccountSvc struct{ mock.Mock }

func (m *mockAccountSvc) Profile(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountSvc) Products(ctx context.Context, customerID string) ([]account.Product, error) {
	args := m.Called(ctx, customerID)
	if p, _ := args.Get(0).([]account.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountSvc) Transactions(ctx context.Context, customerID, handle string) ([]domain.Transaction, error) {
	args := m.Called(ctx, customerID, handle)
	if t, _ := args.Get(0).([]domain.Transaction); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

// authedRequest builds a request whose context already carries claims, as the
// session guard would leave it.
func authedRequest(t *testing.T, target, customerID string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	p, err := jwtinfra.NewProvider(&config.Config{JWTSecret: "handler-test-secret"})
	require.NoError(t, err)
	tok, err := p.Sign(customerID)
	require.NoError(t, err)
	claims, err := p.Verify(tok)
	require.NoError(t, err)
	ctx := context.WithValue(req.Context(), middleware.ClaimsKey, claims)
	return req.WithContext(ctx)
}

func TestMe_NoClaims(t *testing.T) {
	h := NewAccountHandler(&mockAccountSvc{})
	rr := httptest.NewRecorder()
	h.Me(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_HappyPath(t *testing.T) {
	svc := &mockAccountSvc{}
	svc.On("Profile", mock.Anything, "CUST1").Return(&domain.Customer{
		CustomerID: "CUST1", FirstName: "Asha", LastName: "Rao",
	}, nil)

	h := NewAccountHandler(svc)
	rr := httptest.NewRecorder()
	h.Me(rr, authedRequest(t, "/auth/me", "CUST1"))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"FirstName":"Asha"`)
}

func TestProducts_HappyPath(t *testing.T) {
	svc := &mockAccountSvc{}
	svc.On("Products", mock.Anything, "CUST1").Return([]account.Product{
		{AccountHandle: "h1", ProductName: "Saving Account", Rank: 1},
		{AccountHandle: "h2", ProductName: "Gold Loan", Rank: 7},
	}, nil)

	h := NewAccountHandler(svc)
	rr := httptest.NewRecorder()
	h.Products(rr, authedRequest(t, "/auth/user-products", "CUST1"))
	require.Equal(t, http.StatusOK, rr.Code)

	var env ProductsEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Len(t, env.Products, 2)
	assert.Equal(t, "h1", env.Products[0].AccountHandle)
}

func TestTransactions_MissingHandle(t *testing.T) {
	h := NewAccountHandler(&mockAccountSvc{})
	rr := httptest.NewRecorder()
	h.Transactions(rr, authedRequest(t, "/auth/transactions", "CUST1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTransactions_MalformedHandle(t *testing.T) {
	svc := &mockAccountSvc{}
	svc.On("Transactions", mock.Anything, "CUST1", "garbage").
		Return(nil, fmt.Errorf("decode account handle: %w", domain.ErrMalformedHandle))

	h := NewAccountHandler(svc)
	rr := httptest.NewRecorder()
	h.Transactions(rr, authedRequest(t, "/auth/transactions?acc=garbage", "CUST1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTransactions_OwnershipViolation(t *testing.T) {
	svc := &mockAccountSvc{}
	svc.On("Transactions", mock.Anything, "CUST1", "someone-elses").
		Return(nil, fmt.Errorf("account ownership: %w", domain.ErrForbidden))

	h := NewAccountHandler(svc)
	rr := httptest.NewRecorder()
	h.Transactions(rr, authedRequest(t, "/auth/transactions?acc=someone-elses", "CUST1"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestTransactions_HappyPath(t *testing.T) {
	svc := &mockAccountSvc{}
	svc.On("Transactions", mock.Anything, "CUST1", "h1").Return([]domain.Transaction{
		{TransactionID: "T1", Type: "CREDIT", Amount: 100},
	}, nil)

	h := NewAccountHandler(svc)
	rr := httptest.NewRecorder()
	h.Transactions(rr, authedRequest(t, "/auth/transactions?acc=h1", "CUST1"))
	require.Equal(t, http.StatusOK, rr.Code)

	var env TransactionsEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Len(t, env.Transactions, 1)
	assert.Equal(t, "T1", env.Transactions[0].TransactionID)
}
