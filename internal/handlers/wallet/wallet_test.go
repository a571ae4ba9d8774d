package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/greenriot/greenriot/internal/domain"
	"github.com/greenriot/greenriot/internal/dto"
	"github.com/greenriot/greenriot/internal/stripe"
	"github.com/greenriot/greenriot/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WalletResponseDTO
	}{
		{
			name:  "Default currency is USD",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1, domain.CurrencyUSD).Return(&domain.Wallet{
					Balance:  decimal.NewFromFloat(120.5),
					Currency: domain.CurrencyUSD,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WalletResponseDTO{Balance: decimal.NewFromFloat(120.5), Currency: domain.CurrencyUSD},
		},
		{
			name:  "Unsupported currency",
			query: "?currency=GBP",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1, "GBP").Return(nil, domain.ErrUnsupportedCurrency)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1, domain.CurrencyUSD).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodGet, "/api/wallet"+tt.query, nil))
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Balance.Equal(tt.expectedBody.Balance))
				assert.Equal(t, tt.expectedBody.Currency, body.Currency)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Session created",
			body: `{"amount": 25, "currency": "USD"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositSession(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(&stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.test/cs_1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount below minimum",
			body: `{"amount": 5, "currency": "USD"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositSession(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(nil, domain.ErrAmountBelowMinimum)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Processor failure",
			body: `{"amount": 25, "currency": "USD"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositSession(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(nil, errors.New("api down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := authed(httptest.NewRequest(http.MethodPost, "/api/wallet/deposit", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()
			handler.Deposit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DepositSessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "cs_1", body.SessionID)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount": 50, "currency": "USD"}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).Return(
					&domain.Wallet{Balance: decimal.NewFromInt(70), Currency: domain.CurrencyUSD},
					&domain.Transaction{ID: 42},
					decimal.NewFromInt(120),
					nil,
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance maps to 402",
			body: `{"amount": 500, "currency": "USD"}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(nil, nil, decimal.Decimal{}, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Missing wallet maps to 400",
			body: `{"amount": 50, "currency": "EUR"}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), 1, gomock.Any(), domain.CurrencyEUR).
					Return(nil, nil, decimal.Decimal{}, domain.ErrWalletNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/api/wallet/withdraw", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()
			handler.Withdraw(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WithdrawResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Success)
				assert.Equal(t, 42, body.TransactionID)
				assert.True(t, body.PreviousBalance.Equal(decimal.NewFromInt(120)))
				assert.True(t, body.NewBalance.Equal(decimal.NewFromInt(70)))
			}
		})
	}
}

func TestWithdrawRealHandler(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful payout",
			prepareMock: func() {
				service.EXPECT().WithdrawReal(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).Return(
					&domain.Wallet{Balance: decimal.NewFromInt(50), Currency: domain.CurrencyUSD},
					&stripe.Transfer{ID: "tr_1"},
					nil,
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No connected account maps to 400",
			prepareMock: func() {
				service.EXPECT().WithdrawReal(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(nil, nil, domain.ErrNoConnectedAccount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance maps to 402",
			prepareMock: func() {
				service.EXPECT().WithdrawReal(gomock.Any(), 1, gomock.Any(), domain.CurrencyUSD).
					Return(nil, nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authed(httptest.NewRequest(http.MethodPost, "/api/wallet/withdraw-real", bytes.NewBufferString(`{"amount": 50, "currency": "USD"}`)))
			w := httptest.NewRecorder()
			handler.WithdrawReal(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.RealWithdrawResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "tr_1", body.TransferID)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
		{ID: 2, Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(25)},
		{ID: 1, Type: domain.TransactionTypeDebit, Amount: decimal.NewFromInt(-3)},
	}, nil)
	r := authed(httptest.NewRequest(http.MethodGet, "/api/wallet/transactions", nil))
	w := httptest.NewRecorder()
	handler.GetTransactions(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.TransactionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)

	service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
	r = authed(httptest.NewRequest(http.MethodGet, "/api/wallet/transactions", nil))
	w = httptest.NewRecorder()
	handler.GetTransactions(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
